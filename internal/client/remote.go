package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pizzaria-be/internal/order"

	"github.com/go-resty/resty/v2"
)

const ordersPath = "/api/pedidos"

// apiError is the error body returned by the order API.
type apiError struct {
	Error string `json:"error"`
}

// HTTPRemote talks to the order API over HTTP.
type HTTPRemote struct {
	http *resty.Client
}

func NewHTTPRemote(baseURL string, timeout time.Duration) *HTTPRemote {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &HTTPRemote{http: c}
}

func (r *HTTPRemote) Create(ctx context.Context, in order.CreateOrderInput) (*order.StoredOrder, error) {
	var out order.StoredOrder
	resp, err := r.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(in).
		SetResult(&out).
		SetError(&apiError{}).
		Post(ordersPath)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *HTTPRemote) List(ctx context.Context) ([]order.StoredOrder, error) {
	var out []order.StoredOrder
	resp, err := r.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiError{}).
		Get(ordersPath)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	if out == nil {
		out = []order.StoredOrder{}
	}
	return out, nil
}

func (r *HTTPRemote) Delete(ctx context.Context, id int64) error {
	resp, err := r.http.R().
		SetContext(ctx).
		SetError(&apiError{}).
		Delete(fmt.Sprintf("%s/%d", ordersPath, id))
	return check(resp, err)
}

// check maps transport failures and error statuses onto the order errors.
func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", order.ErrPersistence, err)
	}
	if !resp.IsError() {
		return nil
	}

	msg := resp.Status()
	if e, ok := resp.Error().(*apiError); ok && e.Error != "" {
		msg = e.Error
	}
	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", order.ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", order.ErrUnsupported, msg)
	default:
		return fmt.Errorf("%w: remote status %d: %s", order.ErrPersistence, resp.StatusCode(), msg)
	}
}
