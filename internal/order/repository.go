package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type Repository interface {
	Insert(ctx context.Context, o *StoredOrder) error
	List(ctx context.Context) ([]StoredOrder, error)
	GetByID(ctx context.Context, id int64) (*StoredOrder, error)
	Delete(ctx context.Context, id int64) error
	UpdateInvoice(ctx context.Context, id int64, status, url string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id_pedido, cliente, telefone, endereco_entrega, forma_pagamento,
		pedido_pizza, tamanho_pizza, quantidade_pizza, borda_recheada,
		pedido_bebida, tamanho_bebida, quantidade_bebidas,
		sobremesa, quantidade_sobremesa,
		item_extra, preco_item_extra, preco_total, hora_pedido,
		cpf_nota, nfe_status, nfe_url`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (StoredOrder, error) {
	var (
		o             StoredOrder
		beverageSize  sql.NullString
		extraItem     sql.NullString
		taxID         sql.NullString
		invoiceStatus sql.NullString
		invoiceURL    sql.NullString
	)

	err := row.Scan(
		&o.ID, &o.Customer, &o.Phone, &o.Address, &o.PaymentMethod,
		&o.PizzaName, &o.PizzaSize, &o.PizzaQuantity, &o.CrustFilled,
		&o.BeverageName, &beverageSize, &o.BeverageQuantity,
		&o.DessertName, &o.DessertQuantity,
		&extraItem, &o.ExtraItemPrice, &o.TotalPrice, &o.CreatedAt,
		&taxID, &invoiceStatus, &invoiceURL,
	)
	if err != nil {
		return o, err
	}

	o.BeverageSize = beverageSize.String
	o.ExtraItem = nullableString(extraItem)
	o.TaxID = nullableString(taxID)
	o.InvoiceURL = nullableString(invoiceURL)
	o.InvoiceStatus = InvoicePending
	if invoiceStatus.Valid {
		o.InvoiceStatus = invoiceStatus.String
	}
	return o, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// persistenceError tags err with ErrPersistence, keeping the postgres code
// when there is one.
func persistenceError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%w: %s: %s (%s)", ErrPersistence, op, pqErr.Message, pqErr.Code)
	}
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

// Insert persists o and sets its id from the sequence.
func (r *repository) Insert(ctx context.Context, o *StoredOrder) error {
	query := `
		INSERT INTO pedidos (
			cliente, telefone, endereco_entrega, forma_pagamento,
			pedido_pizza, tamanho_pizza, quantidade_pizza, borda_recheada,
			pedido_bebida, tamanho_bebida, quantidade_bebidas,
			sobremesa, quantidade_sobremesa,
			item_extra, preco_item_extra, preco_total, hora_pedido,
			cpf_nota, nfe_status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
		RETURNING id_pedido
	`

	var beverageSize *string
	if o.BeverageSize != "" {
		beverageSize = &o.BeverageSize
	}

	err := r.db.QueryRowContext(ctx, query,
		o.Customer, o.Phone, o.Address, o.PaymentMethod,
		o.PizzaName, o.PizzaSize, o.PizzaQuantity, o.CrustFilled,
		o.BeverageName, beverageSize, o.BeverageQuantity,
		o.DessertName, o.DessertQuantity,
		o.ExtraItem, o.ExtraItemPrice, o.TotalPrice, o.CreatedAt,
		o.TaxID, o.InvoiceStatus,
	).Scan(&o.ID)
	if err != nil {
		return persistenceError("insert order", err)
	}
	return nil
}

// List returns every active order, newest first.
func (r *repository) List(ctx context.Context) ([]StoredOrder, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM pedidos ORDER BY hora_pedido DESC`)
	if err != nil {
		return nil, persistenceError("list orders", err)
	}
	defer rows.Close()

	orders := make([]StoredOrder, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, persistenceError("scan order", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceError("list orders", err)
	}
	return orders, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*StoredOrder, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM pedidos WHERE id_pedido = $1`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistenceError("get order", err)
	}
	return &o, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pedidos WHERE id_pedido = $1`, id)
	if err != nil {
		return persistenceError("delete order", err)
	}
	return requireAffected(res)
}

// UpdateInvoice records the invoice status and url of an order.
func (r *repository) UpdateInvoice(ctx context.Context, id int64, status, url string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pedidos SET nfe_status = $1, nfe_url = $2 WHERE id_pedido = $3`,
		status, url, id,
	)
	if err != nil {
		return persistenceError("update invoice", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return persistenceError("rows affected", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
