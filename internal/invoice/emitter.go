package invoice

import (
	"context"
	"fmt"
	"time"

	"pizzaria-be/internal/logger"
	"pizzaria-be/internal/order"

	"go.uber.org/zap"
)

// URLPattern is the placeholder document address of an issued invoice.
const URLPattern = "https://www.nfe.fazenda.gov.br/exemplo-nota-%d.pdf"

const DefaultDelay = time.Second

// Store persists the invoice state of an order.
type Store interface {
	UpdateInvoice(ctx context.Context, id int64, status, url string) error
}

// Emitter is a stand-in for the tax authority integration: it waits, builds
// a fake document URL and marks the order as issued.
type Emitter struct {
	store Store
	delay time.Duration
}

func NewEmitter(store Store, delay time.Duration) *Emitter {
	if delay < 0 {
		delay = 0
	}
	return &Emitter{store: store, delay: delay}
}

func (e *Emitter) Issue(ctx context.Context, orderID int64) (*order.InvoiceResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "invoice"),
		zap.Int64("order_id", orderID),
	)
	log.Info("issuing invoice")

	if e.delay > 0 {
		timer := time.NewTimer(e.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	url := fmt.Sprintf(URLPattern, orderID)
	if err := e.store.UpdateInvoice(ctx, orderID, order.InvoiceIssued, url); err != nil {
		log.Error("failed to store invoice", zap.Error(err))
		return nil, err
	}

	log.Info("invoice issued", zap.String("url", url))
	return &order.InvoiceResult{Status: order.InvoiceIssued, URL: url}, nil
}
