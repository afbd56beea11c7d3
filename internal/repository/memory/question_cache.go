package memory

import (
	"time"

	"maum-baedal-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// QuestionCache keeps the resolved question of the day in memory so the
// rotation query runs once per date per instance. Entries expire on their
// own; the date key makes stale reads impossible across midnight.
type QuestionCache struct {
	cache *cache.Cache
}

func NewQuestionCache() *QuestionCache {
	// Default expiration of 24 hours, purging expired entries hourly.
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &QuestionCache{
		cache: c,
	}
}

func dateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

func (r *QuestionCache) Save(date time.Time, question *entity.Question) {
	r.cache.Set(dateKey(date), question, cache.DefaultExpiration)
}

func (r *QuestionCache) Get(date time.Time) (*entity.Question, bool) {
	if x, found := r.cache.Get(dateKey(date)); found {
		return x.(*entity.Question), true
	}
	return nil, false
}

func (r *QuestionCache) Delete(date time.Time) {
	r.cache.Delete(dateKey(date))
}
