package service

import (
	"context"
	"sort"

	"maum-baedal-be/internal/constant"
	"maum-baedal-be/internal/dto"
	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/pkg/apperror"
	"maum-baedal-be/internal/repository/specification"
	"maum-baedal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const defaultHistoryPageSize = 20

type IHistoryService interface {
	List(ctx context.Context, userId uuid.UUID, filter dto.HistoryFilter) (*dto.HistoryListResponse, error)
	SetArchived(ctx context.Context, userId, id uuid.UUID, archived bool) error
	SetFavorite(ctx context.Context, userId, id uuid.UUID, favorite bool) error
	Stats(ctx context.Context, userId uuid.UUID) (*dto.HistoryStatsResponse, error)
}

type historyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHistoryService(uowFactory unitofwork.RepositoryFactory) IHistoryService {
	return &historyService{
		uowFactory: uowFactory,
	}
}

func (s *historyService) List(ctx context.Context, userId uuid.UUID, filter dto.HistoryFilter) (*dto.HistoryListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId, Column: "owner_id"},
	}
	if filter.Status != "" {
		specs = append(specs, specification.ByStatus{Status: filter.Status})
	}
	if filter.Category != "" {
		specs = append(specs, specification.ByCategory{Category: filter.Category})
	}
	if filter.From != nil || filter.To != nil {
		between := specification.CreatedBetween{}
		if filter.From != nil {
			between.From = *filter.From
		}
		if filter.To != nil {
			between.To = *filter.To
		}
		specs = append(specs, between)
	}
	if filter.Archived != nil {
		specs = append(specs, specification.ArchivedIs{Archived: *filter.Archived})
	}
	if filter.Favorite != nil {
		specs = append(specs, specification.FavoriteIs{Favorite: *filter.Favorite})
	}
	if filter.Query != "" {
		specs = append(specs, specification.QuestionContains{Query: filter.Query})
	}

	total, err := uow.SummaryRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultHistoryPageSize
	}

	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	)

	summaries, err := uow.SummaryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.HistoryItemResponse, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, toHistoryItem(summary))
	}

	return &dto.HistoryListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *historyService) SetArchived(ctx context.Context, userId, id uuid.UUID, archived bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.ensureOwned(ctx, uow, userId, id); err != nil {
		return err
	}
	return uow.SummaryRepository().SetArchived(ctx, id, userId, archived)
}

func (s *historyService) SetFavorite(ctx context.Context, userId, id uuid.UUID, favorite bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.ensureOwned(ctx, uow, userId, id); err != nil {
		return err
	}
	return uow.SummaryRepository().SetFavorite(ctx, id, userId, favorite)
}

// Stats recomputes every aggregate from the summary rows on each call.
// Derived views only: nothing here is stored back.
func (s *historyService) Stats(ctx context.Context, userId uuid.UUID) (*dto.HistoryStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	summaries, err := uow.SummaryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId, Column: "owner_id"},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.HistoryStatsResponse{
		Total:      int64(len(summaries)),
		ByStatus:   make(map[constant.ConversationStatus]int),
		ByCategory: make(map[constant.QuestionCategory]int),
		ByMonth:    []dto.MonthlyCount{},
		MostActive: []dto.ParticipantActivity{},
	}

	byMonth := make(map[string]int)
	conversationIds := make([]uuid.UUID, 0, len(summaries))
	completed := 0

	for _, summary := range summaries {
		res.ByStatus[summary.Status]++
		res.ByCategory[summary.QuestionCategory]++
		byMonth[summary.CreatedAt.Format("2006-01")]++
		conversationIds = append(conversationIds, summary.ConversationId)
		if summary.IsArchived {
			res.ArchivedCount++
		}
		if summary.IsFavorite {
			res.FavoriteCount++
		}
		if summary.Status == constant.ConversationCompleted {
			completed++
		}
	}

	if len(summaries) > 0 {
		res.CompletionRate = float64(completed) / float64(len(summaries))
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		res.ByMonth = append(res.ByMonth, dto.MonthlyCount{Month: month, Count: byMonth[month]})
	}

	if len(conversationIds) > 0 {
		answers, err := uow.AnswerRepository().FindAll(ctx,
			specification.ByConversationIDs{ConversationIDs: conversationIds},
		)
		if err != nil {
			return nil, err
		}
		res.MostActive = mostActiveParticipants(answers, 5)
	}

	return res, nil
}

func (s *historyService) ensureOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) error {
	summary, err := uow.SummaryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId, Column: "owner_id"},
	)
	if err != nil {
		return err
	}
	if summary == nil {
		return apperror.NotFound("history item not found")
	}
	return nil
}

func mostActiveParticipants(answers []*entity.Answer, limit int) []dto.ParticipantActivity {
	counts := make(map[string]int)
	for _, a := range answers {
		counts[a.AuthorName]++
	}

	activity := make([]dto.ParticipantActivity, 0, len(counts))
	for name, count := range counts {
		activity = append(activity, dto.ParticipantActivity{DisplayName: name, AnswerCount: count})
	}
	sort.Slice(activity, func(i, j int) bool {
		if activity[i].AnswerCount != activity[j].AnswerCount {
			return activity[i].AnswerCount > activity[j].AnswerCount
		}
		return activity[i].DisplayName < activity[j].DisplayName
	})

	if len(activity) > limit {
		activity = activity[:limit]
	}
	return activity
}

func toHistoryItem(summary *entity.ConversationSummary) dto.HistoryItemResponse {
	return dto.HistoryItemResponse{
		Id:                  summary.Id,
		ConversationId:      summary.ConversationId,
		QuestionContent:     summary.QuestionContent,
		QuestionCategory:    summary.QuestionCategory,
		ParticipantCount:    summary.ParticipantCount,
		AnswerCount:         summary.AnswerCount,
		Status:              summary.Status,
		IsArchived:          summary.IsArchived,
		IsFavorite:          summary.IsFavorite,
		LatestAnswerPreview: summary.LatestAnswerPreview,
		LastAnsweredAt:      summary.LastAnsweredAt,
		CreatedAt:           summary.CreatedAt,
	}
}
