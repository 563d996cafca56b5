package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/application/authctx"
	"github.com/mosslight/storefront/internal/domain/analytics"
	"github.com/mosslight/storefront/internal/domain/identity"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockEventRepository is a mock implementation of analytics.EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Record(ctx context.Context, event *analytics.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) CountByKind(ctx context.Context, from, to time.Time) ([]analytics.KindCount, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]analytics.KindCount), args.Error(1)
}

func (m *MockEventRepository) CountForProduct(ctx context.Context, productID uuid.UUID, kind analytics.EventKind, from, to time.Time) (int64, error) {
	args := m.Called(ctx, productID, kind, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func TestAnalyticsServiceRecordEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("should record a product view", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		service := NewAnalyticsService(eventRepo, zap.NewNop())

		productID := uuid.New()
		eventRepo.On("Record", ctx, mock.MatchedBy(func(e *analytics.Event) bool {
			return e.Kind == analytics.KindProductView && e.ProductID != nil && *e.ProductID == productID
		})).Return(nil)

		err := service.RecordEvent(ctx, nil, RecordEventRequest{
			Kind:      "product_view",
			ProductID: &productID,
			Path:      "/shop/tee-01",
		})

		assert.NoError(t, err)
		eventRepo.AssertExpectations(t)
	})

	t.Run("should reject a product view without a product", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		service := NewAnalyticsService(eventRepo, zap.NewNop())

		err := service.RecordEvent(ctx, nil, RecordEventRequest{Kind: "product_view"})

		assert.Error(t, err)
		eventRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})

	t.Run("should swallow repository failures", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		service := NewAnalyticsService(eventRepo, zap.NewNop())

		eventRepo.On("Record", ctx, mock.Anything).
			Return(shared.NewDomainError("INTERNAL_ERROR", "db down"))

		err := service.RecordEvent(ctx, nil, RecordEventRequest{Kind: "page_view", Path: "/"})

		assert.NoError(t, err)
	})
}

func TestAnalyticsServiceGetReport(t *testing.T) {
	ctx := context.Background()
	admin := authctx.Caller{UserID: uuid.New(), Email: "studio@mosslight.example", Role: identity.RoleAdmin}

	t.Run("should fill in zero counts for missing kinds", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		service := NewAnalyticsService(eventRepo, zap.NewNop())

		eventRepo.On("CountByKind", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]analytics.KindCount{
				{Kind: analytics.KindPageView, Count: 42},
				{Kind: analytics.KindCheckout, Count: 3},
			}, nil)

		report, err := service.GetReport(ctx, admin, ReportFilter{})

		require.NoError(t, err)
		require.Len(t, report.Counts, len(analytics.AllKinds))
		assert.Equal(t, int64(42), report.Counts[0].Count)
		assert.Equal(t, int64(0), report.Counts[1].Count)
		assert.Equal(t, int64(0), report.Counts[2].Count)
		assert.Equal(t, int64(3), report.Counts[3].Count)
	})

	t.Run("should refuse non-admin callers", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		service := NewAnalyticsService(eventRepo, zap.NewNop())

		caller := authctx.Caller{UserID: uuid.New(), Email: "ada@example.com", Role: identity.RoleCustomer}
		_, err := service.GetReport(ctx, caller, ReportFilter{})

		assert.Error(t, err)
		eventRepo.AssertNotCalled(t, "CountByKind", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should honor an explicit window", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		service := NewAnalyticsService(eventRepo, zap.NewNop())

		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
		eventRepo.On("CountByKind", ctx, from, to).Return([]analytics.KindCount{}, nil)

		report, err := service.GetReport(ctx, admin, ReportFilter{From: &from, To: &to})

		require.NoError(t, err)
		assert.Equal(t, from, report.From)
		assert.Equal(t, to, report.To)
	})
}
