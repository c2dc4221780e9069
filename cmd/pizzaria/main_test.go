package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"pizzaria-be/internal/cache"
	"pizzaria-be/internal/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// offlineClient points at a closed server so every call lands in the cache.
func offlineClient(t *testing.T) *client.Client {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	local, err := cache.Open(filepath.Join(t.TempDir(), "offline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })

	return client.New(client.NewHTTPRemote(baseURL, time.Second), local, zap.NewNop())
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer

	assert.Error(t, run(context.Background(), nil, &out, nil))
	assert.Contains(t, out.String(), "usage: pizzaria")

	out.Reset()
	err := run(context.Background(), []string{"bake"}, &out, nil)
	assert.ErrorContains(t, err, `unknown command "bake"`)

	out.Reset()
	assert.NoError(t, run(context.Background(), []string{"help"}, &out, nil))
}

func TestRun_Catalog(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), []string{"catalog", "-categoria", "bebida"}, &out, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Suco Natural")
	assert.NotContains(t, out.String(), "Calabresa")

	out.Reset()
	err = run(context.Background(), []string{"catalog", "-busca", "catupiry"}, &out, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Frango com Catupiry")
	assert.NotContains(t, out.String(), "Pudim")
}

func TestRun_OrderFlow(t *testing.T) {
	ctx := context.Background()
	c := offlineClient(t)
	var out bytes.Buffer

	err := run(ctx, []string{"create",
		"-item", "calabresa", "-qtd", "2", "-tamanho", "Grande", "-massa", "Recheada",
		"-sem", "Cebola, Azeitona", "-cliente", "Ana", "-telefone", "1234", "-endereco", "Rua A",
	}, &out, c)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "2 x Calabresa, total R$ 106.00")

	out.Reset()
	err = run(ctx, []string{"create",
		"-item", "s3", "-qtd", "2", "-cliente", "Bia", "-telefone", "5678", "-endereco", "Rua B",
	}, &out, c)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "2 x Pudim, total R$ 16.00")

	out.Reset()
	require.NoError(t, run(ctx, []string{"list"}, &out, c))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "SEM")
	assert.Contains(t, lines[1], "Pudim")
	assert.Contains(t, lines[2], "Calabresa")
	assert.Contains(t, lines[2], "Cebola, Azeitona")

	out.Reset()
	require.NoError(t, run(ctx, []string{"stats"}, &out, c))
	assert.Contains(t, out.String(), "pedidos: 2")
	assert.Contains(t, out.String(), "receita: R$ 122.00")

	items, err := c.GetOrders(ctx)
	require.NoError(t, err)
	out.Reset()
	require.NoError(t, run(ctx, []string{"delete", "-id", strconv.FormatInt(items[0].ID, 10)}, &out, c))
	assert.Contains(t, out.String(), "finalizado")

	items, err = c.GetOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRun_CreateErrors(t *testing.T) {
	c := offlineClient(t)
	var out bytes.Buffer

	err := run(context.Background(), []string{"create", "-item", "lasanha"}, &out, c)
	assert.ErrorContains(t, err, "unknown product")

	err = run(context.Background(), []string{"create", "-item", "p5", "-cliente", "Ana"}, &out, c)
	assert.Error(t, err)

	err = run(context.Background(), []string{"delete"}, &out, c)
	assert.ErrorContains(t, err, "-id is required")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Cebola", "Azeitona"}, splitList(" Cebola,,Azeitona "))
	assert.Empty(t, splitList(""))
}
