package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"maum-baedal-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

func newTestConsumer(uow *fakeUow) *consumerService {
	return NewConsumerService(nil, "projection-test", fakeFactory{uow}).(*consumerService)
}

func projectionMessage(t *testing.T, conversationId uuid.UUID) *message.Message {
	t.Helper()
	payload, err := json.Marshal(dto.ProjectConversationMessage{ConversationId: conversationId})
	if err != nil {
		t.Fatal(err)
	}
	return message.NewMessage(watermill.NewUUID(), payload)
}

func assertAcked(t *testing.T, msg *message.Message) {
	t.Helper()
	select {
	case <-msg.Acked():
	default:
		t.Fatal("message was not acked")
	}
}

func TestProcessMessageAcksMalformedPayload(t *testing.T) {
	cs := newTestConsumer(&fakeUow{})
	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))

	cs.processMessage(context.Background(), msg)
	assertAcked(t, msg)
}

func TestProcessMessageAcksUnknownConversation(t *testing.T) {
	cs := newTestConsumer(&fakeUow{conversations: &fakeConversationRepo{}})
	msg := projectionMessage(t, uuid.New())

	// A conversation that no longer exists is not retriable.
	cs.processMessage(context.Background(), msg)
	assertAcked(t, msg)
}

func TestProcessMessageDropsAfterMaxAttempts(t *testing.T) {
	cs := newTestConsumer(&fakeUow{
		conversations: &fakeConversationRepo{findErr: errors.New("db down")},
	})
	msg := projectionMessage(t, uuid.New())
	msg.Metadata.Set("attempts", strconv.Itoa(projectionMaxAttempts-1))

	// The attempt budget is exhausted: the message is acked away instead of
	// spinning on immediate redelivery forever.
	cs.processMessage(context.Background(), msg)
	assertAcked(t, msg)
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "short string untouched", input: "안녕하세요", limit: 80, want: "안녕하세요"},
		{name: "exact limit untouched", input: strings.Repeat("가", 80), limit: 80, want: strings.Repeat("가", 80)},
		{name: "over limit gets ellipsis", input: strings.Repeat("가", 81), limit: 80, want: strings.Repeat("가", 80) + "…"},
		{name: "empty string", input: "", limit: 80, want: ""},
		{name: "ascii over limit", input: "abcdef", limit: 3, want: "abc…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateRunes(tt.input, tt.limit)
			if got != tt.want {
				t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateRunesCountsCodepointsNotBytes(t *testing.T) {
	// 3 bytes per hangul syllable; byte-based truncation would split one.
	input := strings.Repeat("말", 100)
	got := truncateRunes(input, 80)
	if !utf8.ValidString(got) {
		t.Fatal("truncation produced invalid utf-8")
	}
	if n := utf8.RuneCountInString(got); n != 81 { // 80 + ellipsis
		t.Errorf("result has %d runes, want 81", n)
	}
}
