package service

import (
	"testing"

	"maum-baedal-be/internal/entity"
)

func answersBy(names ...string) []*entity.Answer {
	answers := make([]*entity.Answer, 0, len(names))
	for _, n := range names {
		answers = append(answers, &entity.Answer{AuthorName: n})
	}
	return answers
}

func TestMostActiveParticipants(t *testing.T) {
	answers := answersBy("엄마", "아빠", "엄마", "나", "엄마", "아빠")

	got := mostActiveParticipants(answers, 5)
	if len(got) != 3 {
		t.Fatalf("got %d participants, want 3", len(got))
	}
	if got[0].DisplayName != "엄마" || got[0].AnswerCount != 3 {
		t.Errorf("top = %s(%d), want 엄마(3)", got[0].DisplayName, got[0].AnswerCount)
	}
	if got[1].DisplayName != "아빠" || got[1].AnswerCount != 2 {
		t.Errorf("second = %s(%d), want 아빠(2)", got[1].DisplayName, got[1].AnswerCount)
	}
}

func TestMostActiveParticipantsTieBreaksByName(t *testing.T) {
	got := mostActiveParticipants(answersBy("나", "둘째", "첫째"), 5)
	if len(got) != 3 {
		t.Fatalf("got %d participants, want 3", len(got))
	}
	// Equal counts fall back to name order so the ranking is stable.
	if got[0].DisplayName != "나" || got[1].DisplayName != "둘째" || got[2].DisplayName != "첫째" {
		t.Errorf("tie order = %s, %s, %s", got[0].DisplayName, got[1].DisplayName, got[2].DisplayName)
	}
}

func TestMostActiveParticipantsHonorsLimit(t *testing.T) {
	got := mostActiveParticipants(answersBy("a", "b", "c", "d", "e", "f", "g"), 5)
	if len(got) != 5 {
		t.Errorf("got %d participants, want limit of 5", len(got))
	}
}

func TestMostActiveParticipantsEmpty(t *testing.T) {
	if got := mostActiveParticipants(nil, 5); len(got) != 0 {
		t.Errorf("got %d participants from no answers", len(got))
	}
}
