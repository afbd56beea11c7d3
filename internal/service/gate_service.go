package service

import (
	"maum-baedal-be/internal/constant"
	"maum-baedal-be/internal/entity"
)

// EvaluateGate decides, for a single viewer, whether the other participants'
// answers are visible. Pure function of the participant set; recomputed on
// every read and after every accepted answer, never cached or stored.
//
// viewer is the participant row of the caller, or nil when the caller is not
// part of the conversation (a distinct unauthorized outcome, not locked).
func EvaluateGate(participants []*entity.Participant, viewer *entity.Participant) (constant.GateStatus, bool) {
	if viewer == nil {
		return constant.GateUnauthorized, false
	}

	answered := 0
	for _, p := range participants {
		if p.HasAnswered {
			answered++
		}
	}

	// Visibility follows the viewer's own submission alone and never
	// reverts: answering is a one-way door.
	canView := viewer.HasAnswered

	switch {
	case len(participants) > 0 && answered == len(participants):
		return constant.GateCompleted, canView
	case viewer.HasAnswered && answered >= 2:
		return constant.GateUnlocked, canView
	default:
		// Covers both "viewer has not answered" and "viewer answered but
		// is still waiting for anyone else"; in the latter case canView is
		// already true, there is simply nothing to view yet.
		return constant.GateLocked, canView
	}
}
