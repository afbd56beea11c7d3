package service

import (
	"context"
	"testing"
	"time"

	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/repository/memory"

	"github.com/google/uuid"
)

func newTestQuestionService(rotationHour int) *questionService {
	return NewQuestionService(nil, memory.NewQuestionCache(), rotationHour).(*questionService)
}

func TestServiceDate(t *testing.T) {
	svc := newTestQuestionService(5)
	kst := time.FixedZone("KST", 9*60*60)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "after rotation hour stays on same date",
			now:  time.Date(2026, 3, 10, 9, 0, 0, 0, kst),
			want: "2026-03-10",
		},
		{
			name: "before rotation hour belongs to previous date",
			now:  time.Date(2026, 3, 10, 3, 30, 0, 0, kst),
			want: "2026-03-09",
		},
		{
			name: "exactly at rotation hour rolls over",
			now:  time.Date(2026, 3, 10, 5, 0, 0, 0, kst),
			want: "2026-03-10",
		},
		{
			name: "utc midnight is already morning in seoul",
			now:  time.Date(2026, 3, 10, 0, 30, 0, 0, time.UTC), // 09:30 KST
			want: "2026-03-10",
		},
		{
			name: "utc evening crosses the date line",
			now:  time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC), // 03:00 KST next day, pre-rotation
			want: "2026-03-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.ServiceDate(tt.now).Format("2006-01-02")
			if got != tt.want {
				t.Errorf("ServiceDate(%v) = %s, want %s", tt.now, got, tt.want)
			}
		})
	}
}

func TestServiceDateIsStableWithinADay(t *testing.T) {
	svc := newTestQuestionService(5)
	kst := time.FixedZone("KST", 9*60*60)

	morning := svc.ServiceDate(time.Date(2026, 3, 10, 5, 0, 0, 0, kst))
	night := svc.ServiceDate(time.Date(2026, 3, 11, 4, 59, 59, 0, kst))
	if !morning.Equal(night) {
		t.Errorf("window endpoints map to different dates: %v vs %v", morning, night)
	}
}

func questionPool(n int) []*entity.Question {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	pool := make([]*entity.Question, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, &entity.Question{
			Id:        uuid.New(),
			Content:   "질문",
			IsActive:  true,
			CreatedAt: base.AddDate(0, 0, i),
		})
	}
	return pool
}

func TestGetTodaysQuestionPinsOnce(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeQuestionRepo{questions: questionPool(3)}
	svc := NewQuestionService(fakeFactory{&fakeUow{questions: repo}}, memory.NewQuestionCache(), 5)

	first, err := svc.GetTodaysQuestion(context.Background(), date)
	if err != nil {
		t.Fatalf("GetTodaysQuestion() error = %v", err)
	}
	if repo.updates != 1 {
		t.Errorf("pinned %d questions, want exactly 1", repo.updates)
	}

	// A second instance with a cold cache must find the pin instead of
	// rotating again.
	other := NewQuestionService(fakeFactory{&fakeUow{questions: repo}}, memory.NewQuestionCache(), 5)
	second, err := other.GetTodaysQuestion(context.Background(), date)
	if err != nil {
		t.Fatalf("GetTodaysQuestion() on second instance error = %v", err)
	}
	if second.Id != first.Id {
		t.Errorf("instances disagree on the question: %s vs %s", second.Id, first.Id)
	}
	if repo.updates != 1 {
		t.Errorf("second instance pinned again: %d updates", repo.updates)
	}
}

func TestGetTodaysQuestionAdoptsConcurrentPin(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	pool := questionPool(3)
	repo := &fakeQuestionRepo{questions: pool}

	// Simulate losing the rotation race: by the time the row locks are
	// granted, another instance has already committed a pin for the date.
	pinned := pool[2]
	repo.onLocked = func() {
		served := date
		pinned.UsedAt = &served
	}

	svc := NewQuestionService(fakeFactory{&fakeUow{questions: repo}}, memory.NewQuestionCache(), 5)
	got, err := svc.GetTodaysQuestion(context.Background(), date)
	if err != nil {
		t.Fatalf("GetTodaysQuestion() error = %v", err)
	}
	if got.Id != pinned.Id {
		t.Errorf("returned %s, want the concurrently pinned %s", got.Id, pinned.Id)
	}
	if repo.updates != 0 {
		t.Errorf("pinned a second question for the date: %d updates", repo.updates)
	}
}

func TestDateIndexDeterministic(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	first := dateIndex(date, 10)
	for i := 0; i < 100; i++ {
		if got := dateIndex(date, 10); got != first {
			t.Fatalf("dateIndex not deterministic: %d vs %d", got, first)
		}
	}
	if first < 0 || first >= 10 {
		t.Errorf("dateIndex out of range: %d", first)
	}
}

func TestDateIndexVariesAcrossDates(t *testing.T) {
	seen := make(map[int]bool)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		seen[dateIndex(start.AddDate(0, 0, i), 10)] = true
	}
	// A month of dates hitting one slot would mean the hash is broken.
	if len(seen) < 2 {
		t.Errorf("30 consecutive dates picked %d distinct slots", len(seen))
	}
}
