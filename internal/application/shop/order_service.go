package shop

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/application/authctx"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/mosslight/storefront/internal/domain/shop"
	"go.uber.org/zap"
)

// OrderService handles order reads and admin status transitions
type OrderService struct {
	orderRepo shop.OrderRepository
	events    shared.EventPublisher
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo shop.OrderRepository, events shared.EventPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		events:    events,
		logger:    logger,
	}
}

// GetMyOrders returns the caller's orders, newest first
func (s *OrderService) GetMyOrders(ctx context.Context, caller authctx.Caller, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	domainFilter := toDomainFilter(filter)
	// The count must be scoped to the caller like the listing query
	domainFilter.Filters["customer_id"] = caller.UserID

	orders, err := s.orderRepo.FindByCustomer(ctx, caller.UserID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(toOrderResponses(orders), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// GetMyOrder returns one of the caller's orders. Admins can read any order;
// customers only their own.
func (s *OrderService) GetMyOrder(ctx context.Context, caller authctx.Caller, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.CustomerID != caller.UserID && !caller.IsAdmin() {
		return nil, shared.NewDomainError("FORBIDDEN",
			fmt.Sprintf("User %s is not permitted to view this order", caller.Identity()))
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// ListOrders returns all orders. Admin only.
func (s *OrderService) ListOrders(ctx context.Context, caller authctx.Caller, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	domainFilter := toDomainFilter(filter)

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(toOrderResponses(orders), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// UpdateStatus transitions an order forward. Admin only; the status
// change event notifies the customer through the bus.
func (s *OrderService) UpdateStatus(ctx context.Context, caller authctx.Caller, orderID uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	old := order.Status
	if err := order.UpdateStatus(shop.OrderStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	if err := s.events.Publish(ctx, order.GetDomainEvents()...); err != nil {
		s.logger.Warn("failed to deliver status change notification",
			zap.String("order_number", order.Number),
			zap.Error(err))
	}
	order.ClearDomainEvents()

	s.logger.Info("order status updated",
		zap.String("order_number", order.Number),
		zap.String("old_status", string(old)),
		zap.String("new_status", string(order.Status)),
		zap.String("updated_by", caller.Identity()))

	resp := ToOrderResponse(order)
	return &resp, nil
}

func toDomainFilter(filter OrderListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	return domainFilter
}

func toOrderResponses(orders []shop.Order) []OrderResponse {
	items := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, ToOrderResponse(&orders[i]))
	}
	return items
}
