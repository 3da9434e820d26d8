package usecases

import (
	"context"
	"fmt"

	"github.com/ledgerpos/ledgerpos/internal/application/auditlog/dto"
	"github.com/ledgerpos/ledgerpos/internal/domain/auditlog"
	"github.com/ledgerpos/ledgerpos/internal/shared/biztime"
	apperrors "github.com/ledgerpos/ledgerpos/internal/shared/errors"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/mapper"
	"github.com/ledgerpos/ledgerpos/internal/shared/query"
)

// ListAuditLogsQuery takes calendar dates in the business timezone
// (YYYY-MM-DD); To is inclusive.
type ListAuditLogsQuery struct {
	BusinessID string
	EntityType string
	ActorID    string
	From       string
	To         string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListAuditLogsResult struct {
	Items []*dto.AuditLogDTO
	Total int64
	Page  int
	Size  int
}

type ListAuditLogsUseCase struct {
	repo   auditlog.Repository
	logger logger.Interface
}

func NewListAuditLogsUseCase(repo auditlog.Repository, logger logger.Interface) *ListAuditLogsUseCase {
	return &ListAuditLogsUseCase{repo: repo, logger: logger}
}

func (uc *ListAuditLogsUseCase) Execute(ctx context.Context, q ListAuditLogsQuery) (*ListAuditLogsResult, error) {
	filter := auditlog.Filter{
		PageFilter: query.PageFilter{Page: q.Page, PageSize: q.PageSize},
		SortFilter: query.SortFilter{SortBy: q.SortBy, SortOrder: q.SortOrder},
		BusinessID: q.BusinessID,
		EntityType: q.EntityType,
		ActorID:    q.ActorID,
	}

	if q.From != "" {
		from, _, err := biztime.ParseBizDate(q.From)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid from date", err.Error())
		}
		filter.From = from
	}
	if q.To != "" {
		_, end, err := biztime.ParseBizDate(q.To)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid to date", err.Error())
		}
		filter.To = end
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, apperrors.NewValidationError("to date is before from date")
	}

	entries, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list audit logs", "business_id", q.BusinessID, "error", err)
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	items := mapper.MapSlice(entries, dto.ToAuditLogDTO)
	if items == nil {
		items = []*dto.AuditLogDTO{}
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	return &ListAuditLogsResult{
		Items: items,
		Total: total,
		Page:  page,
		Size:  filter.Limit(),
	}, nil
}
