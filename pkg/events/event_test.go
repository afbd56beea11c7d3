package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	occurred := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	evt := BaseEvent{
		Type: "ANSWER_SUBMITTED",
		Data: map[string]interface{}{
			"conversation_id": "6f1f2a4e-9d3b-4c7e-8e2a-0b5d1c9e7f31",
			"author_name":     "엄마",
		},
		OccurredAt: occurred,
	}

	payload, err := json.Marshal(Wrap(evt))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := env.Unwrap()
	if got.EventType() != evt.EventType() {
		t.Errorf("type = %q, want %q", got.EventType(), evt.EventType())
	}
	if !got.Timestamp().Equal(occurred) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp(), occurred)
	}
	if got.Payload()["author_name"] != "엄마" {
		t.Errorf("payload lost data: %v", got.Payload())
	}
}
