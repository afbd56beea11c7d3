package unitofwork

import (
	"context"

	"maum-baedal-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	QuestionRepository() contract.QuestionRepository
	ShareTokenRepository() contract.ShareTokenRepository
	ConversationRepository() contract.ConversationRepository
	ParticipantRepository() contract.ParticipantRepository
	AnswerRepository() contract.AnswerRepository
	LabelRepository() contract.LabelRepository
	SummaryRepository() contract.SummaryRepository
}
