package service

import (
	"testing"

	"maum-baedal-be/internal/constant"
	"maum-baedal-be/internal/entity"

	"github.com/google/uuid"
)

func participant(answered bool) *entity.Participant {
	return &entity.Participant{
		Id:          uuid.New(),
		HasAnswered: answered,
	}
}

func TestEvaluateGate(t *testing.T) {
	tests := []struct {
		name        string
		answered    []bool // one entry per participant; index 0 is the viewer
		viewerIdx   int    // -1 means the viewer is not a participant
		wantStatus  constant.GateStatus
		wantCanView bool
	}{
		{
			name:        "non-participant is unauthorized",
			answered:    []bool{true, true},
			viewerIdx:   -1,
			wantStatus:  constant.GateUnauthorized,
			wantCanView: false,
		},
		{
			name:        "viewer has not answered",
			answered:    []bool{false, true},
			viewerIdx:   0,
			wantStatus:  constant.GateLocked,
			wantCanView: false,
		},
		{
			name:        "viewer answered but nobody else has",
			answered:    []bool{true, false},
			viewerIdx:   0,
			wantStatus:  constant.GateLocked,
			wantCanView: true,
		},
		{
			name:        "viewer and one other answered, third pending",
			answered:    []bool{true, true, false},
			viewerIdx:   0,
			wantStatus:  constant.GateUnlocked,
			wantCanView: true,
		},
		{
			name:        "everyone answered",
			answered:    []bool{true, true},
			viewerIdx:   0,
			wantStatus:  constant.GateCompleted,
			wantCanView: true,
		},
		{
			name:        "others answered, viewer still pending",
			answered:    []bool{false, true, true},
			viewerIdx:   0,
			wantStatus:  constant.GateLocked,
			wantCanView: false,
		},
		{
			name:        "single participant answered alone",
			answered:    []bool{true},
			viewerIdx:   0,
			wantStatus:  constant.GateCompleted,
			wantCanView: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participants := make([]*entity.Participant, 0, len(tt.answered))
			for _, a := range tt.answered {
				participants = append(participants, participant(a))
			}

			var viewer *entity.Participant
			if tt.viewerIdx >= 0 {
				viewer = participants[tt.viewerIdx]
			}

			status, canView := EvaluateGate(participants, viewer)
			if status != tt.wantStatus {
				t.Errorf("status = %q, want %q", status, tt.wantStatus)
			}
			if canView != tt.wantCanView {
				t.Errorf("canView = %v, want %v", canView, tt.wantCanView)
			}
		})
	}
}

func TestBuildGateViewFiltersOthersWhileLocked(t *testing.T) {
	viewer := participant(true)
	other := participant(false)
	participants := []*entity.Participant{viewer, other}

	answers := []*entity.Answer{
		{Id: uuid.New(), ParticipantId: other.Id, AuthorName: "엄마", Content: "첫 번째", Position: 0},
		{Id: uuid.New(), ParticipantId: viewer.Id, AuthorName: "나", Content: "두 번째", Position: 1},
	}

	// Viewer answered but the other participant has not: locked, and gate
	// rules still hide the other answer row even while canView is true.
	view := BuildGateView(participants, answers, viewer)
	if view.Status != constant.GateLocked {
		t.Fatalf("status = %q, want locked", view.Status)
	}
	if !view.CanViewOthersAnswers {
		t.Fatal("viewer who answered must keep visibility")
	}
	if view.AnsweredCount != 1 || view.ParticipantCount != 2 {
		t.Errorf("counts = %d/%d, want 1/2", view.AnsweredCount, view.ParticipantCount)
	}
	for _, item := range view.Answers {
		if !item.IsMine && !view.CanViewOthersAnswers {
			t.Errorf("leaked another participant's answer %s", item.Id)
		}
	}
}

func TestBuildGateViewHidesEverythingForUnansweredViewer(t *testing.T) {
	viewer := participant(false)
	other := participant(true)
	participants := []*entity.Participant{viewer, other}

	answers := []*entity.Answer{
		{Id: uuid.New(), ParticipantId: other.Id, AuthorName: "아빠", Content: "비밀", Position: 0},
	}

	view := BuildGateView(participants, answers, viewer)
	if view.Status != constant.GateLocked {
		t.Fatalf("status = %q, want locked", view.Status)
	}
	if len(view.Answers) != 0 {
		t.Fatalf("got %d answers, want none before the viewer answers", len(view.Answers))
	}
	// The count is still reported so the client can render "1명이 답변했어요".
	if view.AnsweredCount != 1 {
		t.Errorf("answeredCount = %d, want 1", view.AnsweredCount)
	}
}

func TestBuildGateViewCompletedShowsAll(t *testing.T) {
	viewer := participant(true)
	other := participant(true)
	participants := []*entity.Participant{viewer, other}

	answers := []*entity.Answer{
		{Id: uuid.New(), ParticipantId: viewer.Id, AuthorName: "나", Content: "내 답", Position: 0},
		{Id: uuid.New(), ParticipantId: other.Id, AuthorName: "동생", Content: "동생 답", Position: 1},
	}

	view := BuildGateView(participants, answers, viewer)
	if view.Status != constant.GateCompleted {
		t.Fatalf("status = %q, want completed", view.Status)
	}
	if len(view.Answers) != 2 {
		t.Fatalf("got %d answers, want 2", len(view.Answers))
	}

	mine := 0
	for _, item := range view.Answers {
		if item.IsMine {
			mine++
		}
	}
	if mine != 1 {
		t.Errorf("IsMine marked on %d answers, want exactly 1", mine)
	}
}
