package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"maum-baedal-be/internal/constant"
	"maum-baedal-be/internal/dto"
	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/pkg/apperror"
	"maum-baedal-be/internal/pkg/logger"
	"maum-baedal-be/internal/pkg/mailer"
	"maum-baedal-be/internal/repository/specification"
	"maum-baedal-be/internal/repository/unitofwork"
	"maum-baedal-be/pkg/events"
	pktNats "maum-baedal-be/pkg/nats"

	"github.com/google/uuid"
)

type IShareService interface {
	IssueToken(ctx context.Context, userId uuid.UUID, req *dto.IssueTokenRequest) (*dto.IssueTokenResponse, error)
	ResolveToken(ctx context.Context, tokenStr string) (*dto.ResolveTokenResponse, error)
}

type shareService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
	clientURL      string
	tokenTTL       time.Duration
}

func NewShareService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	clientURL string,
	tokenTTLHours int,
) IShareService {
	return &shareService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
		clientURL:      clientURL,
		tokenTTL:       time.Duration(tokenTTLHours) * time.Hour,
	}
}

func (s *shareService) IssueToken(ctx context.Context, userId uuid.UUID, req *dto.IssueTokenRequest) (*dto.IssueTokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	question, err := uow.QuestionRepository().FindOne(ctx,
		specification.ByID{ID: req.QuestionId},
		specification.ActiveQuestions{},
	)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperror.NotFound("question not found")
	}

	label, err := uow.LabelRepository().FindOne(ctx,
		specification.ByID{ID: req.RecipientLabelId},
		specification.OwnedBy{UserID: userId, Column: "owner_id"},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, apperror.NotFound("label not found")
	}

	tokenStr, err := generateShareToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	token := entity.ShareToken{
		Id:               uuid.New(),
		Token:            tokenStr,
		QuestionId:       question.Id,
		SenderId:         userId,
		RecipientLabelId: label.Id,
		IssuedAt:         now,
		ExpiresAt:        now.Add(s.tokenTTL),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ShareTokenRepository().Create(ctx, &token); err != nil {
		return nil, err
	}

	// Every send touches the label: pick-lists sort on these fields.
	label.UsageCount++
	label.LastUsedAt = &now
	if err := uow.LabelRepository().Update(ctx, label); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	shareURL := fmt.Sprintf("%s/share/%s", s.clientURL, token.Token)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventShareTokenIssued,
			Data: map[string]interface{}{
				"user_id":     userId,
				"question_id": question.Id,
				"label_id":    label.Id,
				"expires_at":  token.ExpiresAt,
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ShareService", "Failed to publish SHARE_TOKEN_ISSUED event", map[string]interface{}{"error": err.Error()})
		}
	}

	if req.RecipientEmail != "" {
		sender, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
		senderName := "Your family"
		if err == nil && sender != nil {
			senderName = sender.FullName
		}
		// Mail delivery is best effort; the link itself is the product.
		if err := s.emailService.SendShareInvite(req.RecipientEmail, senderName, question.Content, shareURL); err != nil {
			s.logger.Warn("ShareService", "Failed to send share invite mail", map[string]interface{}{
				"error": err.Error(),
				"to":    req.RecipientEmail,
			})
		}
	}

	return &dto.IssueTokenResponse{
		Token:     token.Token,
		URL:       shareURL,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

// ResolveToken classifies a token string without ever failing: unknown input
// is a tagged "invalid" result. Used and expired tokens still return the
// original question so the recipient-facing page can explain what happened.
func (s *shareService) ResolveToken(ctx context.Context, tokenStr string) (*dto.ResolveTokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	token, err := uow.ShareTokenRepository().FindOne(ctx, specification.ByTokenString{Token: tokenStr})
	if err != nil {
		return nil, err
	}
	if token == nil {
		return &dto.ResolveTokenResponse{Status: constant.TokenInvalid}, nil
	}

	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: token.QuestionId})
	if err != nil {
		return nil, err
	}

	var questionDTO *dto.QuestionResponse
	if question != nil {
		questionDTO = &dto.QuestionResponse{
			Id:       question.Id,
			Content:  question.Content,
			Category: question.Category,
			Date:     token.IssuedAt.Format("2006-01-02"),
		}
	}

	senderName := ""
	if sender, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: token.SenderId}); err == nil && sender != nil {
		senderName = sender.FullName
	}

	res := &dto.ResolveTokenResponse{
		Question:   questionDTO,
		SenderName: senderName,
	}

	// Used wins over expired: a consumed token stays "used" forever, the
	// expiry clock only matters while the token is still live.
	switch {
	case token.IsUsed():
		res.Status = constant.TokenUsed
	case token.IsExpired(time.Now()):
		res.Status = constant.TokenExpired
	default:
		res.Status = constant.TokenValid
		expires := token.ExpiresAt
		res.ExpiresAt = &expires
	}

	return res, nil
}

func generateShareToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
