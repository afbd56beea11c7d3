package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"maum-baedal-be/internal/constant"
	"maum-baedal-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveToken(t *testing.T) {
	now := time.Now()
	used := now.Add(-2 * time.Hour)

	question := &entity.Question{
		Id:       uuid.New(),
		Content:  "오늘 가장 기뻤던 순간은 언제였나요?",
		Category: "일상",
		IsActive: true,
	}
	sender := &entity.User{Id: uuid.New(), FullName: "김마음"}

	newToken := func(tokenStr string, issuedAgo time.Duration, usedAt *time.Time) *entity.ShareToken {
		return &entity.ShareToken{
			Id:         uuid.New(),
			Token:      tokenStr,
			QuestionId: question.Id,
			SenderId:   sender.Id,
			IssuedAt:   now.Add(-issuedAgo),
			ExpiresAt:  now.Add(-issuedAgo).Add(24 * time.Hour),
			UsedAt:     usedAt,
		}
	}

	uow := &fakeUow{
		tokens: &fakeShareTokenRepo{tokens: []*entity.ShareToken{
			newToken("live-token", time.Hour, nil),
			newToken("spent-token", 2*time.Hour, &used),
			newToken("stale-token", 25*time.Hour, nil),
			newToken("spent-stale-token", 30*time.Hour, &used),
		}},
		questions: &fakeQuestionRepo{questions: []*entity.Question{question}},
		users:     &fakeUserRepo{users: []*entity.User{sender}},
	}
	svc := NewShareService(fakeFactory{uow}, nil, nil, nil, "http://localhost:5173", 24)

	tests := []struct {
		name           string
		token          string
		wantStatus     constant.TokenStatus
		wantQuestion   bool
		wantExpiresAt  bool
		wantSenderName string
	}{
		{
			name:           "live token resolves valid with expiry",
			token:          "live-token",
			wantStatus:     constant.TokenValid,
			wantQuestion:   true,
			wantExpiresAt:  true,
			wantSenderName: "김마음",
		},
		{
			name:           "consumed token stays used",
			token:          "spent-token",
			wantStatus:     constant.TokenUsed,
			wantQuestion:   true,
			wantSenderName: "김마음",
		},
		{
			name:           "past the 24h horizon",
			token:          "stale-token",
			wantStatus:     constant.TokenExpired,
			wantQuestion:   true,
			wantSenderName: "김마음",
		},
		{
			name:           "used wins over expired",
			token:          "spent-stale-token",
			wantStatus:     constant.TokenUsed,
			wantQuestion:   true,
			wantSenderName: "김마음",
		},
		{
			name:       "unknown token is invalid, never an error",
			token:      "no-such-token",
			wantStatus: constant.TokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.ResolveToken(context.Background(), tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantSenderName, res.SenderName)
			if tt.wantQuestion {
				require.NotNil(t, res.Question)
				assert.Equal(t, question.Content, res.Question.Content)
			} else {
				assert.Nil(t, res.Question)
			}
			if tt.wantExpiresAt {
				assert.NotNil(t, res.ExpiresAt)
			} else {
				assert.Nil(t, res.ExpiresAt)
			}
		})
	}
}

func TestResolveTokenIsIdempotentAfterConsumption(t *testing.T) {
	now := time.Now()
	used := now.Add(-time.Hour)
	token := &entity.ShareToken{
		Id:        uuid.New(),
		Token:     "redeemed",
		IssuedAt:  now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(22 * time.Hour),
		UsedAt:    &used,
	}
	uow := &fakeUow{
		tokens:    &fakeShareTokenRepo{tokens: []*entity.ShareToken{token}},
		questions: &fakeQuestionRepo{},
		users:     &fakeUserRepo{},
	}
	svc := NewShareService(fakeFactory{uow}, nil, nil, nil, "http://localhost:5173", 24)

	for i := 0; i < 3; i++ {
		res, err := svc.ResolveToken(context.Background(), "redeemed")
		require.NoError(t, err)
		assert.Equal(t, constant.TokenUsed, res.Status)
	}
}

func TestGenerateShareToken(t *testing.T) {
	token, err := generateShareToken()
	if err != nil {
		t.Fatalf("generateShareToken() error = %v", err)
	}

	// 32 random bytes base64url-encoded without padding.
	if len(token) != 43 {
		t.Errorf("token length = %d, want 43", len(token))
	}
	if strings.ContainsAny(token, "+/=") {
		t.Errorf("token %q contains characters unsafe in a URL path", token)
	}
}

func TestGenerateShareTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token, err := generateShareToken()
		if err != nil {
			t.Fatalf("generateShareToken() error = %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token after %d draws", i)
		}
		seen[token] = true
	}
}
