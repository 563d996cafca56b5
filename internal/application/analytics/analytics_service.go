package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/application/authctx"
	"github.com/mosslight/storefront/internal/domain/analytics"
	"go.uber.org/zap"
)

// Default reporting window when the caller gives none
const defaultReportWindow = 30 * 24 * time.Hour

// AnalyticsService records storefront interactions and builds admin reports
type AnalyticsService struct {
	eventRepo analytics.EventRepository
	logger    *zap.Logger
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(eventRepo analytics.EventRepository, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// RecordEventRequest represents a tracking submission
type RecordEventRequest struct {
	Kind      string     `json:"kind" binding:"required,oneof=page_view product_view add_to_cart checkout"`
	ProductID *uuid.UUID `json:"product_id"`
	Path      string     `json:"path" binding:"max=500"`
}

// ReportFilter represents query parameters for an analytics report
type ReportFilter struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// RecordEvent stores one interaction. UserID comes from the caller when
// signed in; anonymous visitors pass a nil caller user.
func (s *AnalyticsService) RecordEvent(ctx context.Context, userID *uuid.UUID, req RecordEventRequest) error {
	event, err := analytics.NewEvent(analytics.EventKind(req.Kind), userID, req.ProductID, req.Path)
	if err != nil {
		return err
	}

	if err := s.eventRepo.Record(ctx, event); err != nil {
		// Tracking must never break the storefront; log and move on.
		s.logger.Warn("failed to record analytics event",
			zap.String("kind", req.Kind),
			zap.Error(err))
		return nil
	}

	return nil
}

// GetReport aggregates event counts over a window. Admin only.
// All known kinds appear in the report, zero-count kinds included.
func (s *AnalyticsService) GetReport(ctx context.Context, caller authctx.Caller, filter ReportFilter) (*analytics.Report, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	to := time.Now()
	if filter.To != nil {
		to = *filter.To
	}
	from := to.Add(-defaultReportWindow)
	if filter.From != nil {
		from = *filter.From
	}

	counts, err := s.eventRepo.CountByKind(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byKind := make(map[analytics.EventKind]int64, len(counts))
	for _, c := range counts {
		byKind[c.Kind] = c.Count
	}

	full := make([]analytics.KindCount, 0, len(analytics.AllKinds))
	for _, kind := range analytics.AllKinds {
		full = append(full, analytics.KindCount{Kind: kind, Count: byKind[kind]})
	}

	return &analytics.Report{From: from, To: to, Counts: full}, nil
}

// GetProductViews returns a product's view count over a window. Admin only.
func (s *AnalyticsService) GetProductViews(ctx context.Context, caller authctx.Caller, productID uuid.UUID, filter ReportFilter) (int64, error) {
	if err := caller.RequireAdmin(); err != nil {
		return 0, err
	}

	to := time.Now()
	if filter.To != nil {
		to = *filter.To
	}
	from := to.Add(-defaultReportWindow)
	if filter.From != nil {
		from = *filter.From
	}

	return s.eventRepo.CountForProduct(ctx, productID, analytics.KindProductView, from, to)
}
