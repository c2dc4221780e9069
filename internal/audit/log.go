package audit

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"pizzaria-be/internal/logger"
	"pizzaria-be/internal/order"

	"go.uber.org/zap"
)

const (
	ActiveFile  = "ativos.csv"
	HistoryFile = "historico.csv"

	timeLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Log mirrors open orders into ativos.csv and closed orders into
// historico.csv. One process owns the files.
type Log struct {
	mu      sync.Mutex
	active  string
	history string
}

// New creates dir when it is missing. The files themselves are created on
// the first write.
func New(dir string) (*Log, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audit dir: %w", err)
	}
	return &Log{
		active:  filepath.Join(dir, ActiveFile),
		history: filepath.Join(dir, HistoryFile),
	}, nil
}

func (l *Log) ActivePath() string  { return l.active }
func (l *Log) HistoryPath() string { return l.history }

// Opened appends the order to the active file.
func (l *Log) Opened(ctx context.Context, o order.StoredOrder) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := appendLine(l.active, Format(o, nil)); err != nil {
		return err
	}
	logger.FromCtx(ctx).Debug("audit line opened", zap.Int64("order_id", o.ID))
	return nil
}

// Closed drops the active line of the order and appends it, with the
// closing timestamp, to the history file.
func (l *Log) Closed(ctx context.Context, o order.StoredOrder, closedAt time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := removeActive(l.active, o.ID); err != nil {
		return err
	}
	if err := appendLine(l.history, Format(o, &closedAt)); err != nil {
		return err
	}
	logger.FromCtx(ctx).Debug("audit line closed", zap.Int64("order_id", o.ID))
	return nil
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append %s: %w", filepath.Base(path), err)
	}
	return nil
}

// removeActive rewrites the active file without the records of id. The
// file is read record by record so fields holding a newline are dropped
// with the rest of their record.
func removeActive(path string, id int64) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	f.Close()
	if err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	target := strconv.FormatInt(id, 10)
	var b strings.Builder
	for _, rec := range records {
		if rec[0] == target || (len(rec) == 1 && strings.TrimSpace(rec[0]) == "") {
			continue
		}
		for i, field := range rec {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(Escape(field))
		}
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("rewrite %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Format renders one audit line, newline included. closedAt is empty for
// active lines.
func Format(o order.StoredOrder, closedAt *time.Time) string {
	closed := ""
	if closedAt != nil {
		closed = formatTime(*closedAt)
	}
	extra := ""
	if o.ExtraItem != nil {
		extra = *o.ExtraItem
	}

	fields := []string{
		strconv.FormatInt(o.ID, 10),
		o.Customer,
		o.Phone,
		o.PizzaName,
		o.BeverageName,
		o.PizzaSize,
		strconv.Itoa(o.PizzaQuantity),
		strconv.FormatBool(o.CrustFilled),
		strconv.Itoa(o.BeverageQuantity),
		o.DessertName,
		strconv.Itoa(o.DessertQuantity),
		o.Address,
		formatTime(o.CreatedAt),
		o.PaymentMethod,
		closed,
		formatFloat(o.TotalPrice),
		extra,
		formatFloat(o.ExtraItemPrice),
	}
	for i, f := range fields {
		fields[i] = Escape(f)
	}
	return strings.Join(fields, ",") + "\n"
}

// Escape quotes s only when it holds a comma, a double quote or a newline.
func Escape(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
