package service

import (
	"context"
	"sort"

	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/repository/contract"
	"maum-baedal-be/internal/repository/specification"
	"maum-baedal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory fakes over the repository contracts. Each test wires only the
// repositories its path touches; the rest stay nil.

type fakeUow struct {
	questions     *fakeQuestionRepo
	tokens        *fakeShareTokenRepo
	users         *fakeUserRepo
	conversations *fakeConversationRepo

	began      bool
	committed  bool
	rolledBack bool
}

func (u *fakeUow) Begin(ctx context.Context) error {
	u.began = true
	return nil
}

func (u *fakeUow) Commit() error {
	u.committed = true
	return nil
}

func (u *fakeUow) Rollback() error {
	u.rolledBack = true
	return nil
}

func (u *fakeUow) UserRepository() contract.UserRepository                 { return u.users }
func (u *fakeUow) QuestionRepository() contract.QuestionRepository         { return u.questions }
func (u *fakeUow) ShareTokenRepository() contract.ShareTokenRepository     { return u.tokens }
func (u *fakeUow) ConversationRepository() contract.ConversationRepository { return u.conversations }
func (u *fakeUow) ParticipantRepository() contract.ParticipantRepository   { return nil }
func (u *fakeUow) AnswerRepository() contract.AnswerRepository             { return nil }
func (u *fakeUow) LabelRepository() contract.LabelRepository               { return nil }
func (u *fakeUow) SummaryRepository() contract.SummaryRepository           { return nil }

type fakeFactory struct {
	uow *fakeUow
}

func (f fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// fakeQuestionRepo interprets the same specifications the GORM implementation
// applies as SQL. onLocked fires when a FOR UPDATE scan happens, standing in
// for whatever a concurrent transaction committed while this one was blocked
// on the row locks.
type fakeQuestionRepo struct {
	questions []*entity.Question
	updates   int
	onLocked  func()
}

func questionMatches(q *entity.Question, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ActiveQuestions:
			if !q.IsActive {
				return false
			}
		case specification.ServedOn:
			if q.UsedAt == nil || !q.UsedAt.Equal(sp.Date) {
				return false
			}
		case specification.ByID:
			if q.Id != sp.ID {
				return false
			}
		}
	}
	return true
}

func (r *fakeQuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	r.questions = append(r.questions, question)
	return nil
}

func (r *fakeQuestionRepo) Update(ctx context.Context, question *entity.Question) error {
	r.updates++
	for i, q := range r.questions {
		if q.Id == question.Id {
			r.questions[i] = question
		}
	}
	return nil
}

func (r *fakeQuestionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error) {
	for _, q := range r.questions {
		if questionMatches(q, specs) {
			return q, nil
		}
	}
	return nil, nil
}

func (r *fakeQuestionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	limit := 0
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.LockForUpdate:
			if r.onLocked != nil {
				r.onLocked()
			}
		case specification.LeastRecentlyServed:
			limit = sp.Limit
		}
	}

	var out []*entity.Question
	for _, q := range r.questions {
		if questionMatches(q, specs) {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		iu, ju := out[i].UsedAt, out[j].UsedAt
		switch {
		case iu == nil && ju != nil:
			return true
		case iu != nil && ju == nil:
			return false
		case iu != nil && ju != nil && !iu.Equal(*ju):
			return iu.Before(*ju)
		default:
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeQuestionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeShareTokenRepo struct {
	tokens []*entity.ShareToken
}

func tokenMatches(t *entity.ShareToken, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByTokenString:
			if t.Token != sp.Token {
				return false
			}
		case specification.ByID:
			if t.Id != sp.ID {
				return false
			}
		}
	}
	return true
}

func (r *fakeShareTokenRepo) Create(ctx context.Context, token *entity.ShareToken) error {
	r.tokens = append(r.tokens, token)
	return nil
}

func (r *fakeShareTokenRepo) Update(ctx context.Context, token *entity.ShareToken) error {
	for i, t := range r.tokens {
		if t.Id == token.Id {
			r.tokens[i] = token
		}
	}
	return nil
}

func (r *fakeShareTokenRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ShareToken, error) {
	for _, t := range r.tokens {
		if tokenMatches(t, specs) {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeShareTokenRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ShareToken, error) {
	var out []*entity.ShareToken
	for _, t := range r.tokens {
		if tokenMatches(t, specs) {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		match := true
		for _, s := range specs {
			if sp, ok := s.(specification.ByID); ok && u.Id != sp.ID {
				match = false
			}
		}
		if match {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) ActivateUser(ctx context.Context, userId uuid.UUID) error { return nil }

func (r *fakeUserRepo) CreateEmailVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error {
	return nil
}

func (r *fakeUserRepo) FindEmailVerificationToken(ctx context.Context, specs ...specification.Specification) (*entity.EmailVerificationToken, error) {
	return nil, nil
}

func (r *fakeUserRepo) DeleteEmailVerificationToken(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (r *fakeUserRepo) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	return nil
}

func (r *fakeUserRepo) RevokeRefreshToken(ctx context.Context, tokenHash string) error { return nil }

func (r *fakeUserRepo) SaveUserProvider(ctx context.Context, provider *entity.UserProvider) error {
	return nil
}

func (r *fakeUserRepo) FindUserProvider(ctx context.Context, providerName, providerUserId string) (*entity.UserProvider, error) {
	return nil, nil
}

type fakeConversationRepo struct {
	conversations []*entity.Conversation
	findErr       error
}

func (r *fakeConversationRepo) Create(ctx context.Context, conversation *entity.Conversation) error {
	r.conversations = append(r.conversations, conversation)
	return nil
}

func (r *fakeConversationRepo) Update(ctx context.Context, conversation *entity.Conversation) error {
	return nil
}

func (r *fakeConversationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, c := range r.conversations {
		match := true
		for _, s := range specs {
			if sp, ok := s.(specification.ByID); ok && c.Id != sp.ID {
				match = false
			}
		}
		if match {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	return r.conversations, nil
}
