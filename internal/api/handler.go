package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"pizzaria-be/internal/catalog"
	"pizzaria-be/internal/logger"
	"pizzaria-be/internal/order"
	"pizzaria-be/internal/stats"
	"pizzaria-be/internal/utils"

	"go.uber.org/zap"
)

// Error bodies returned to the front end.
const (
	msgInvalidJSON   = "JSON inválido"
	msgInvalidID     = "ID inválido"
	msgCreateFailed  = "Erro ao criar pedido"
	msgListFailed    = "Erro ao listar pedidos"
	msgNotFound      = "Pedido não encontrado."
	msgCloseFailed   = "Erro ao finalizar pedido"
	msgInvoiceFailed = "Erro ao emitir nota"
	msgEditFailed    = "Erro ao editar pedido"
	msgUnsupported   = "Edição não suportada: remova o pedido e adicione novamente."
	msgClosed        = "Pedido finalizado"
)

type Handler struct {
	svc order.Service
}

func NewHandler(svc order.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes registers the order API on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/pedidos", h.createOrder)
	mux.HandleFunc("GET /api/pedidos", h.listOrders)
	mux.HandleFunc("GET /api/pedidos/stats", h.orderStats)
	mux.HandleFunc("DELETE /api/pedidos/{id}", h.closeOrder)
	mux.HandleFunc("PATCH /api/pedidos/{id}", h.editOrder)
	mux.HandleFunc("POST /api/pedidos/{id}/nfe", h.issueInvoice)
	mux.HandleFunc("GET /api/catalogo", h.listCatalog)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in order.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	o, err := h.svc.CreateOrder(r.Context(), in)
	if err != nil {
		utils.WriteJSONError(w, msgCreateFailed, http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, o)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		utils.WriteJSONError(w, msgListFailed, http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) orderStats(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		utils.WriteJSONError(w, msgListFailed, http.StatusInternalServerError)
		return
	}

	items := make([]order.OrderItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, order.FromStorage(o))
	}
	utils.WriteJSON(w, http.StatusOK, stats.Summarize(items))
}

func (h *Handler) closeOrder(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		utils.WriteJSONError(w, msgInvalidID, http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteOrder(r.Context(), id); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			utils.WriteJSONError(w, msgNotFound, http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, msgCloseFailed, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"message":  msgClosed,
		"idPedido": id,
	})
}

// editOrder answers both quantity updates, a body with only "quantidade",
// and full edits. Neither is supported by the store.
func (h *Handler) editOrder(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		utils.WriteJSONError(w, msgInvalidID, http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if raw, ok := body["quantidade"]; ok && len(body) == 1 {
		var qty int
		if err := json.Unmarshal(raw, &qty); err != nil {
			utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
			return
		}
		err = h.svc.UpdateQuantity(r.Context(), id, qty)
	} else {
		var in order.CreateOrderInput
		if err := json.Unmarshal(data, &in); err != nil {
			utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
			return
		}
		err = h.svc.EditOrder(r.Context(), id, in)
	}

	if errors.Is(err, order.ErrUnsupported) {
		utils.WriteJSONError(w, msgUnsupported, http.StatusConflict)
		return
	}
	if err != nil {
		logger.FromCtx(r.Context()).Error("order edit failed", zap.Int64("order_id", id), zap.Error(err))
		utils.WriteJSONError(w, msgEditFailed, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) issueInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		utils.WriteJSONError(w, msgInvalidID, http.StatusBadRequest)
		return
	}

	res, err := h.svc.IssueInvoice(r.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			utils.WriteJSONError(w, msgNotFound, http.StatusNotFound)
			return
		}
		logger.FromCtx(r.Context()).Error("invoice failed", zap.Int64("order_id", id), zap.Error(err))
		utils.WriteJSONError(w, msgInvoiceFailed, http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

// listCatalog serves the menu, optionally narrowed by ?categoria= and ?busca=.
func (h *Handler) listCatalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("categoria")
	if category == "" {
		category = catalog.FilterAll
	}
	utils.WriteJSON(w, http.StatusOK, catalog.Filter(category, q.Get("busca")))
}
