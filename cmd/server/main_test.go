package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pizzaria-be/internal/api"
	"pizzaria-be/internal/config"
	"pizzaria-be/internal/metrics"
	"pizzaria-be/internal/middleware"
	"pizzaria-be/internal/order"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRouter(t *testing.T) {
	database, _, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	svc := order.NewService(order.NewRepository(database), nil, nil, nil)
	reg := metrics.NewRegistry()
	router := setupRouter(api.NewHandler(svc), middleware.NewRateLimiter(""), reg, []string{"*"})

	t.Run("Health Check", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "OK")
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Catalog", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/catalogo?categoria=bebida", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var products []map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &products))
		assert.NotEmpty(t, products)
	})

	t.Run("Preflight", func(t *testing.T) {
		req, _ := http.NewRequest("OPTIONS", "/api/pedidos", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Metrics", func(t *testing.T) {
		before := reg.Requests.Load()
		req, _ := http.NewRequest("GET", "/metrics", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var snap metrics.Snapshot
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
		assert.Equal(t, before, snap.Requests)
		assert.Equal(t, before+1, reg.Requests.Load())
	})
}

func TestBuildHandler(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	dir := filepath.Join(t.TempDir(), "csv")
	cfg := &config.Config{AuditDir: dir, InvoiceDelay: 0, CORSOrigins: []string{"*"}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler, err := buildHandler(ctx, cfg, database)
	require.NoError(t, err)

	_, err = os.Stat(dir)
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO pedidos`).
		WillReturnRows(sqlmock.NewRows([]string{"id_pedido"}).AddRow(1))

	body := `{"cliente":"Ana","telefone":"1234","enderecoEntrega":"Rua A","formaPagamento":"PIX",` +
		`"pedidoPizza":"Calabresa","tamanhoPizza":"Grande","quantidadePizza":2,"bordaRecheada":true}`
	req := httptest.NewRequest("POST", "/api/pedidos", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var created order.StoredOrder
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 106.0, created.TotalPrice)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Minute)

	active, err := os.ReadFile(filepath.Join(dir, "ativos.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(active), "1,Ana,1234,Calabresa,"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildHandler_BadAuditDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := buildHandler(context.Background(), &config.Config{AuditDir: filepath.Join(file, "csv")}, nil)
	assert.Error(t, err)
}
