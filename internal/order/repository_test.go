package order

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderRowColumns = []string{
	"id_pedido", "cliente", "telefone", "endereco_entrega", "forma_pagamento",
	"pedido_pizza", "tamanho_pizza", "quantidade_pizza", "borda_recheada",
	"pedido_bebida", "tamanho_bebida", "quantidade_bebidas",
	"sobremesa", "quantidade_sobremesa",
	"item_extra", "preco_item_extra", "preco_total", "hora_pedido",
	"cpf_nota", "nfe_status", "nfe_url",
}

func pizzaRow(id int64, createdAt time.Time) []driver.Value {
	return []driver.Value{
		id, "Ana", "1234", "Rua A", "PIX",
		"Calabresa", "Grande", 2, true,
		"N/A", nil, 0,
		"N/A", 0,
		"Sem: Cebola", 0.0, 106.0, createdAt,
		nil, "Pendente", nil,
	}
}

func TestRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	note := "Sem: Cebola"

	newOrder := func() *StoredOrder {
		return &StoredOrder{
			Customer: "Ana", Phone: "1234", Address: "Rua A", PaymentMethod: "PIX",
			PizzaName: "Calabresa", PizzaSize: "Grande", PizzaQuantity: 2, CrustFilled: true,
			BeverageName: NotApplicable, DessertName: NotApplicable,
			ExtraItem: &note, TotalPrice: 106, CreatedAt: time.Now().UTC(),
			InvoiceStatus: InvoicePending,
		}
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO pedidos .* RETURNING id_pedido`).
			WithArgs(
				"Ana", "1234", "Rua A", "PIX",
				"Calabresa", "Grande", 2, true,
				NotApplicable, nil, 0,
				NotApplicable, 0,
				"Sem: Cebola", 0.0, 106.0, sqlmock.AnyArg(),
				nil, InvoicePending,
			).
			WillReturnRows(sqlmock.NewRows([]string{"id_pedido"}).AddRow(7))

		o := newOrder()
		err := repo.Insert(ctx, o)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), o.ID)
	})

	t.Run("BeverageSize", func(t *testing.T) {
		o := newOrder()
		o.PizzaName, o.PizzaQuantity = NotApplicable, 0
		o.BeverageName, o.BeverageSize, o.BeverageQuantity = "Suco Natural", "Grande", 1

		mock.ExpectQuery(`INSERT INTO pedidos`).
			WithArgs(
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				NotApplicable, sqlmock.AnyArg(), 0, sqlmock.AnyArg(),
				"Suco Natural", "Grande", 1,
				sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id_pedido"}).AddRow(8))

		assert.NoError(t, repo.Insert(ctx, o))
		assert.Equal(t, int64(8), o.ID)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO pedidos`).
			WillReturnError(errors.New("connection refused"))

		err := repo.Insert(ctx, newOrder())
		assert.ErrorIs(t, err, ErrPersistence)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("PostgresError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO pedidos`).
			WillReturnError(&pq.Error{Code: "23502", Message: "null value in column"})

		err := repo.Insert(ctx, newOrder())
		assert.ErrorIs(t, err, ErrPersistence)
		assert.Contains(t, err.Error(), "23502")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		newer := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
		older := newer.Add(-time.Hour)

		rows := sqlmock.NewRows(orderRowColumns).
			AddRow(pizzaRow(2, newer)...).
			AddRow(
				1, "Bia", "5678", "Rua B", "Dinheiro",
				"N/A", "Média", 0, false,
				"Suco Natural", "Grande", 2,
				"N/A", 0,
				nil, 0.0, 24.0, older,
				"111.222.333-44", "Emitida", "https://nota/1.pdf",
			)

		mock.ExpectQuery(`SELECT id_pedido, .* FROM pedidos ORDER BY hora_pedido DESC`).
			WillReturnRows(rows)

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)

		first := orders[0]
		assert.Equal(t, int64(2), first.ID)
		assert.Equal(t, "Calabresa", first.PizzaName)
		assert.True(t, first.CrustFilled)
		require.NotNil(t, first.ExtraItem)
		assert.Equal(t, "Sem: Cebola", *first.ExtraItem)
		assert.Nil(t, first.TaxID)
		assert.Nil(t, first.InvoiceURL)
		assert.Equal(t, InvoicePending, first.InvoiceStatus)
		assert.Empty(t, first.BeverageSize)

		second := orders[1]
		assert.Equal(t, "Grande", second.BeverageSize)
		assert.Nil(t, second.ExtraItem)
		require.NotNil(t, second.TaxID)
		assert.Equal(t, "111.222.333-44", *second.TaxID)
		assert.Equal(t, InvoiceIssued, second.InvoiceStatus)
		require.NotNil(t, second.InvoiceURL)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM pedidos`).
			WillReturnRows(sqlmock.NewRows(orderRowColumns))

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM pedidos`).
			WillReturnError(errors.New("db down"))

		_, err := repo.List(ctx)
		assert.ErrorIs(t, err, ErrPersistence)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM pedidos WHERE id_pedido = \$1`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(orderRowColumns).AddRow(pizzaRow(5, time.Now())...))

		o, err := repo.GetByID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), o.ID)
		assert.Equal(t, 106.0, o.TotalPrice)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM pedidos WHERE id_pedido = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(orderRowColumns))

		o, err := repo.GetByID(ctx, 99)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM pedidos WHERE id_pedido = \$1`).
			WillReturnError(errors.New("timeout"))

		_, err := repo.GetByID(ctx, 1)
		assert.ErrorIs(t, err, ErrPersistence)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM pedidos WHERE id_pedido = \$1`).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 3))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM pedidos`).
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 4), ErrNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM pedidos`).
			WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, repo.Delete(ctx, 5), ErrPersistence)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateInvoice(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE pedidos SET nfe_status = \$1, nfe_url = \$2 WHERE id_pedido = \$3`).
			WithArgs(InvoiceIssued, "https://nota", int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateInvoice(ctx, 3, InvoiceIssued, "https://nota"))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE pedidos`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateInvoice(ctx, 8, InvoiceIssued, "x"), ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
