package service

import (
	"context"
	"hash/fnv"
	"time"

	"maum-baedal-be/internal/dto"
	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/pkg/apperror"
	"maum-baedal-be/internal/repository/memory"
	"maum-baedal-be/internal/repository/specification"
	"maum-baedal-be/internal/repository/unitofwork"
)

// rotationPoolSize bounds how many least-recently-served questions the date
// hash picks between, so consecutive days don't walk the pool in a fixed order.
const rotationPoolSize = 10

type IQuestionService interface {
	// GetTodaysQuestion resolves the question of the day for the given service
	// date. The pick is deterministic per date: every caller and every
	// instance sees the same question until the next rotation boundary.
	GetTodaysQuestion(ctx context.Context, date time.Time) (*dto.QuestionResponse, error)

	// ServiceDate normalizes a wall-clock instant to the date the daily
	// question belongs to. Days roll over at the configured rotation hour
	// (Asia/Seoul), not at midnight.
	ServiceDate(now time.Time) time.Time
}

type questionService struct {
	uowFactory   unitofwork.RepositoryFactory
	cache        *memory.QuestionCache
	rotationHour int
	location     *time.Location
}

func NewQuestionService(uowFactory unitofwork.RepositoryFactory, cache *memory.QuestionCache, rotationHour int) IQuestionService {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		loc = time.FixedZone("KST", 9*60*60)
	}
	return &questionService{
		uowFactory:   uowFactory,
		cache:        cache,
		rotationHour: rotationHour,
		location:     loc,
	}
}

func (s *questionService) ServiceDate(now time.Time) time.Time {
	local := now.In(s.location)
	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	if local.Hour() < s.rotationHour {
		date = date.AddDate(0, 0, -1)
	}
	return date
}

func (s *questionService) GetTodaysQuestion(ctx context.Context, date time.Time) (*dto.QuestionResponse, error) {
	if q, found := s.cache.Get(date); found {
		return s.toResponse(q, date), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Another instance may already have pinned today's question.
	question, err := uow.QuestionRepository().FindOne(ctx,
		specification.ActiveQuestions{},
		specification.ServedOn{Date: date},
	)
	if err != nil {
		return nil, err
	}

	if question == nil {
		question, err = s.rotate(ctx, uow, date)
		if err != nil {
			return nil, err
		}
	}

	s.cache.Save(date, question)
	return s.toResponse(question, date), nil
}

// rotate pins a question to the service date. The pool is the N least
// recently served active questions; the date hash picks one of them so a
// question sits out at least a full pool cycle before reappearing.
func (s *questionService) rotate(ctx context.Context, uow unitofwork.UnitOfWork, date time.Time) (*entity.Question, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	candidates, err := uow.QuestionRepository().FindAll(ctx,
		specification.ActiveQuestions{},
		specification.LeastRecentlyServed{Limit: rotationPoolSize},
		specification.LockForUpdate{},
	)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, apperror.NotFound("no questions available")
	}

	// The lock wait above is the cross-instance serialization point: another
	// instance rotating the same date holds these rows until it commits its
	// pin. Re-check under the transaction and adopt that pin instead of
	// marking a second question for the date.
	pinned, err := uow.QuestionRepository().FindOne(ctx,
		specification.ActiveQuestions{},
		specification.ServedOn{Date: date},
	)
	if err != nil {
		return nil, err
	}
	if pinned != nil {
		return pinned, nil
	}

	question := candidates[dateIndex(date, len(candidates))]

	served := date
	question.UsedAt = &served
	if err := uow.QuestionRepository().Update(ctx, question); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return question, nil
}

func dateIndex(date time.Time, n int) int {
	h := fnv.New32a()
	h.Write([]byte(date.Format("2006-01-02")))
	return int(h.Sum32() % uint32(n))
}

func (s *questionService) toResponse(q *entity.Question, date time.Time) *dto.QuestionResponse {
	return &dto.QuestionResponse{
		Id:       q.Id,
		Content:  q.Content,
		Category: q.Category,
		Date:     date.Format("2006-01-02"),
	}
}
