package order

import (
	"strings"
	"time"

	"pizzaria-be/internal/catalog"
	"pizzaria-be/internal/pricing"
)

// NotApplicable marks the unused category slots of a StoredOrder.
const NotApplicable = "N/A"

const (
	InvoicePending = "Pendente"
	InvoiceIssued  = "Emitida"
)

const (
	PaymentCash = "Dinheiro"
	PaymentCard = "Cartão"
	PaymentPIX  = "PIX"
)

// OrderItem is the client view of one order line.
type OrderItem struct {
	ID                 int64            `json:"id"`
	ProductID          string           `json:"itemId"`
	Name               string           `json:"nome"`
	Category           catalog.Category `json:"categoria"`
	UnitPrice          float64          `json:"preco"`
	Quantity           int              `json:"quantidade"`
	Size               string           `json:"tamanho"`
	Crust              string           `json:"tipoMassa"`
	RemovedIngredients []string         `json:"removedIngredients"`
	Customer           string           `json:"cliente"`
	Phone              string           `json:"telefone"`
	Address            string           `json:"endereco"`
	PaymentMethod      string           `json:"formaPagamento"`
	TaxID              string           `json:"cpfNota,omitempty"`
	InvoiceURL         string           `json:"nfeUrl,omitempty"`
	CreatedAt          *time.Time       `json:"criadoEm,omitempty"`
	BackendTotal       *float64         `json:"precoTotalBackend,omitempty"`
}

// Total returns the store computed total when known and the client
// estimate otherwise.
func (o OrderItem) Total() float64 {
	if o.BackendTotal != nil {
		return *o.BackendTotal
	}
	return pricing.Estimate(o.UnitPrice, o.Quantity, o.Category, o.Size, o.Crust)
}

// StoredOrder is the flat, category-agnostic persisted record. Exactly one
// of PizzaName, BeverageName and DessertName holds an item name, the other
// two hold NotApplicable.
type StoredOrder struct {
	ID            int64  `json:"idPedido"`
	Customer      string `json:"cliente"`
	Phone         string `json:"telefone"`
	Address       string `json:"enderecoEntrega"`
	PaymentMethod string `json:"formaPagamento"`

	PizzaName     string `json:"pedidoPizza"`
	PizzaSize     string `json:"tamanhoPizza"`
	PizzaQuantity int    `json:"quantidadePizza"`
	CrustFilled   bool   `json:"bordaRecheada"`

	BeverageName     string `json:"pedidoBebida"`
	BeverageSize     string `json:"tamanhoBebida,omitempty"`
	BeverageQuantity int    `json:"quantidadeBebidas"`

	DessertName     string `json:"sobremesa"`
	DessertQuantity int    `json:"quantidadeSobremesa"`

	ExtraItem      *string `json:"itemExtra,omitempty"`
	ExtraItemPrice float64 `json:"precoItemExtra"`

	TotalPrice float64   `json:"precoTotal"`
	CreatedAt  time.Time `json:"horaPedido"`

	TaxID         *string `json:"cpfNota,omitempty"`
	InvoiceStatus string  `json:"nfeStatus,omitempty"`
	InvoiceURL    *string `json:"nfeUrl,omitempty"`
}

// CreateOrderInput is the creation payload of a StoredOrder. EstimatedTotal
// is the client side price; the store only uses it for diagnostics.
type CreateOrderInput struct {
	Customer      string  `json:"cliente"`
	Phone         string  `json:"telefone"`
	Address       string  `json:"enderecoEntrega"`
	PaymentMethod string  `json:"formaPagamento"`
	TaxID         *string `json:"cpfNota,omitempty"`

	PizzaName     string `json:"pedidoPizza"`
	PizzaSize     string `json:"tamanhoPizza"`
	PizzaQuantity int    `json:"quantidadePizza"`
	CrustFilled   bool   `json:"bordaRecheada"`

	BeverageName     string `json:"pedidoBebida"`
	BeverageSize     string `json:"tamanhoBebida,omitempty"`
	BeverageQuantity int    `json:"quantidadeBebidas"`

	DessertName     string `json:"sobremesa"`
	DessertQuantity int    `json:"quantidadeSobremesa"`

	ExtraItem      *string `json:"itemExtra,omitempty"`
	ExtraItemPrice float64 `json:"precoItemExtra"`

	EstimatedTotal float64 `json:"precoEstimado,omitempty"`
}

// ApplyDefaults fills the fields a sparse payload may omit the same way the
// store does: empty slots become NotApplicable, the pizza size becomes Média
// and an empty tax id is dropped.
func (in *CreateOrderInput) ApplyDefaults() {
	if strings.TrimSpace(in.PizzaName) == "" {
		in.PizzaName = NotApplicable
	}
	if strings.TrimSpace(in.BeverageName) == "" {
		in.BeverageName = NotApplicable
	}
	if strings.TrimSpace(in.DessertName) == "" {
		in.DessertName = NotApplicable
	}
	if strings.TrimSpace(in.PizzaSize) == "" {
		in.PizzaSize = catalog.SizeMedium
	}
	if in.PizzaQuantity < 0 {
		in.PizzaQuantity = 0
	}
	if in.BeverageQuantity < 0 {
		in.BeverageQuantity = 0
	}
	if in.DessertQuantity < 0 {
		in.DessertQuantity = 0
	}
	if in.ExtraItem != nil && *in.ExtraItem == "" {
		in.ExtraItem = nil
	}
	if in.ExtraItemPrice < 0 {
		in.ExtraItemPrice = 0
	}
	if in.TaxID != nil && strings.TrimSpace(*in.TaxID) == "" {
		in.TaxID = nil
	}
}

// Charge extracts the pricing relevant fields.
func (in CreateOrderInput) Charge() pricing.Charge {
	return pricing.Charge{
		PizzaName:        in.PizzaName,
		PizzaSize:        in.PizzaSize,
		PizzaQuantity:    in.PizzaQuantity,
		CrustFilled:      in.CrustFilled,
		BeverageName:     in.BeverageName,
		BeverageSize:     in.BeverageSize,
		BeverageQuantity: in.BeverageQuantity,
		DessertName:      in.DessertName,
		DessertQuantity:  in.DessertQuantity,
		ExtraItemPrice:   in.ExtraItemPrice,
	}
}

// NewStoredOrder builds the record persisted for in. The caller owns id,
// total and timestamp.
func NewStoredOrder(in CreateOrderInput, total float64, createdAt time.Time) StoredOrder {
	return StoredOrder{
		Customer:         in.Customer,
		Phone:            in.Phone,
		Address:          in.Address,
		PaymentMethod:    in.PaymentMethod,
		PizzaName:        in.PizzaName,
		PizzaSize:        in.PizzaSize,
		PizzaQuantity:    in.PizzaQuantity,
		CrustFilled:      in.CrustFilled,
		BeverageName:     in.BeverageName,
		BeverageSize:     in.BeverageSize,
		BeverageQuantity: in.BeverageQuantity,
		DessertName:      in.DessertName,
		DessertQuantity:  in.DessertQuantity,
		ExtraItem:        in.ExtraItem,
		ExtraItemPrice:   in.ExtraItemPrice,
		TotalPrice:       total,
		CreatedAt:        createdAt,
		TaxID:            in.TaxID,
		InvoiceStatus:    InvoicePending,
	}
}

// InvoiceResult is returned when an invoice is issued for an order.
type InvoiceResult struct {
	Status string `json:"status"`
	URL    string `json:"url"`
}
