package order

import (
	"context"
	"errors"
	"time"

	"pizzaria-be/internal/logger"
	"pizzaria-be/internal/pricing"

	"go.uber.org/zap"
)

// AuditTrail mirrors the order lifecycle outside the primary store. Its
// writes are not atomic with the store: a failure is logged and the order
// operation still succeeds.
type AuditTrail interface {
	Opened(ctx context.Context, o StoredOrder) error
	Closed(ctx context.Context, o StoredOrder, closedAt time.Time) error
}

type InvoiceIssuer interface {
	Issue(ctx context.Context, orderID int64) (*InvoiceResult, error)
}

type Service interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*StoredOrder, error)
	ListOrders(ctx context.Context) ([]StoredOrder, error)
	DeleteOrder(ctx context.Context, id int64) error
	IssueInvoice(ctx context.Context, id int64) (*InvoiceResult, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	EditOrder(ctx context.Context, id int64, in CreateOrderInput) error
}

type service struct {
	repo    Repository
	prices  *pricing.PriceBook
	audit   AuditTrail
	invoice InvoiceIssuer
	now     func() time.Time
}

func NewService(repo Repository, prices *pricing.PriceBook, audit AuditTrail, invoice InvoiceIssuer) Service {
	if prices == nil {
		prices = pricing.DefaultPriceBook()
	}
	return &service{
		repo:    repo,
		prices:  prices,
		audit:   audit,
		invoice: invoice,
		now:     time.Now,
	}
}

// CreateOrder persists a new order. Id and timestamp are assigned here and
// by the database, and the total always comes from the price book.
func (s *service) CreateOrder(ctx context.Context, in CreateOrderInput) (*StoredOrder, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
	)

	in.ApplyDefaults()
	total := s.prices.Quote(in.Charge())

	if in.EstimatedTotal > 0 && pricing.Round(in.EstimatedTotal) != total {
		log.Warn("client estimate differs from computed total",
			zap.Float64("estimate", in.EstimatedTotal),
			zap.Float64("total", total),
		)
	}

	o := NewStoredOrder(in, total, s.now().UTC())
	if err := s.repo.Insert(ctx, &o); err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	log = log.With(zap.Int64("order_id", o.ID))
	if s.audit != nil {
		if err := s.audit.Opened(ctx, o); err != nil {
			log.Warn("failed to write active audit line", zap.Error(err))
		}
	}

	log.Info("order created", zap.Float64("total", o.TotalPrice))
	return &o, nil
}

func (s *service) ListOrders(ctx context.Context) ([]StoredOrder, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// DeleteOrder closes an order: the record is removed from the store, its
// active audit line dropped and a closing line appended to the history.
func (s *service) DeleteOrder(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteOrder"),
		zap.Int64("order_id", id),
	)

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Error("failed to load order", zap.Error(err))
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete order", zap.Error(err))
		return err
	}

	if s.audit != nil {
		if err := s.audit.Closed(ctx, *o, s.now().UTC()); err != nil {
			log.Warn("failed to move audit line to history", zap.Error(err))
		}
	}

	log.Info("order closed")
	return nil
}

func (s *service) IssueInvoice(ctx context.Context, id int64) (*InvoiceResult, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if s.invoice == nil {
		return nil, ErrUnsupported
	}
	return s.invoice.Issue(ctx, id)
}

// UpdateQuantity is not supported by the store; orders are removed and
// created again instead.
func (s *service) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	logger.FromCtx(ctx).Info("quantity update rejected", zap.Int64("order_id", id), zap.Int("quantity", quantity))
	return ErrUnsupported
}

func (s *service) EditOrder(ctx context.Context, id int64, in CreateOrderInput) error {
	logger.FromCtx(ctx).Info("order edit rejected", zap.Int64("order_id", id))
	return ErrUnsupported
}
