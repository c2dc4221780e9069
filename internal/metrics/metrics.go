package metrics

import (
	"net/http"
	"sync/atomic"
	"time"

	"pizzaria-be/internal/utils"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Registry counts the requests served by the order API.
type Registry struct {
	Requests     Counter
	ClientErrors Counter
	ServerErrors Counter
	latencyMicro Counter
	started      time.Time
}

func NewRegistry() *Registry {
	return &Registry{started: time.Now()}
}

type Snapshot struct {
	Requests      uint64  `json:"requests"`
	ClientErrors  uint64  `json:"clientErrors"`
	ServerErrors  uint64  `json:"serverErrors"`
	AvgLatencyMs  float64 `json:"avgLatencyMs"`
	UptimeSeconds int64   `json:"uptimeSeconds"`
}

func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		Requests:      r.Requests.Load(),
		ClientErrors:  r.ClientErrors.Load(),
		ServerErrors:  r.ServerErrors.Load(),
		UptimeSeconds: int64(time.Since(r.started).Seconds()),
	}
	if s.Requests > 0 {
		s.AvgLatencyMs = float64(r.latencyMicro.Load()) / float64(s.Requests) / 1000
	}
	return s
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Middleware records every request passing through next.
func (r *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		timer := StartTimer()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, req)

		r.Requests.Inc()
		r.latencyMicro.Add(uint64(timer.Duration().Microseconds()))
		switch {
		case sw.status >= 500:
			r.ServerErrors.Inc()
		case sw.status >= 400:
			r.ClientErrors.Inc()
		}
	})
}

// Handler serves the current snapshot as JSON.
func (r *Registry) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteJSON(w, http.StatusOK, r.Snapshot())
	}
}
