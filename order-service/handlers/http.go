package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/philippedeb/order-system/order-service/application"
	"github.com/philippedeb/order-system/order-service/domain"
	"github.com/pkg/errors"
)

// OrderHandlers contains order HTTP handlers
type OrderHandlers struct {
	createOrder    *application.CreateOrder
	findOrder      *application.FindOrder
	manageItems    *application.ManageItems
	checkout       *application.Checkout
	getCheckoutLog *application.GetCheckoutLog
}

// NewOrderHandlers creates new order handlers
func NewOrderHandlers(
	createOrder *application.CreateOrder,
	findOrder *application.FindOrder,
	manageItems *application.ManageItems,
	checkout *application.Checkout,
	getCheckoutLog *application.GetCheckoutLog,
) *OrderHandlers {
	return &OrderHandlers{
		createOrder:    createOrder,
		findOrder:      findOrder,
		manageItems:    manageItems,
		checkout:       checkout,
		getCheckoutLog: getCheckoutLog,
	}
}

// RegisterRoutes registers order routes
func (h *OrderHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/create/{user_id}", h.CreateOrder)
		r.Delete("/remove/{order_id}", h.RemoveOrder)
		r.Post("/addItem/{order_id}/{item_id}", h.AddItem)
		r.Delete("/removeItem/{order_id}/{item_id}", h.RemoveItem)
		r.Get("/find/{order_id}", h.FindOrder)
		r.Post("/checkout/{order_id}", h.Checkout)
		r.Get("/log/{order_id}", h.GetCheckoutLog)
	})
}

// CreateOrder handles order creation requests
func (h *OrderHandlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	cmd := &application.CreateOrderCommand{UserID: chi.URLParam(r, "user_id")}

	response, err := h.createOrder.Execute(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// RemoveOrder handles order deletion requests
func (h *OrderHandlers) RemoveOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.manageItems.RemoveOrder(r.Context(), chi.URLParam(r, "order_id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"Success": true})
}

// AddItem handles adding an item to an order
func (h *OrderHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	err := h.manageItems.AddItem(r.Context(), chi.URLParam(r, "order_id"), chi.URLParam(r, "item_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"Success": true})
}

// RemoveItem handles removing an item from an order
func (h *OrderHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	err := h.manageItems.RemoveItem(r.Context(), chi.URLParam(r, "order_id"), chi.URLParam(r, "item_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"Success": true})
}

// FindOrder handles order retrieval requests
func (h *OrderHandlers) FindOrder(w http.ResponseWriter, r *http.Request) {
	query := &application.FindOrderQuery{OrderID: chi.URLParam(r, "order_id")}

	response, err := h.findOrder.Execute(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// Checkout handles checkout requests. A failed saga is reported with
// the per-step status map so callers can see which step failed or
// failed to compensate.
func (h *OrderHandlers) Checkout(w http.ResponseWriter, r *http.Request) {
	cmd := &application.CheckoutCommand{OrderID: chi.URLParam(r, "order_id")}

	response, err := h.checkout.Execute(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	if response.Success {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"Success":    true,
			"total_cost": response.TotalCost,
		})
		return
	}

	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"Error":               response.StepStatuses,
		"compensation_failed": response.CompensationFailed,
		"audit_degraded":      response.AuditDegraded,
	})
}

// GetCheckoutLog handles audit trail requests
func (h *OrderHandlers) GetCheckoutLog(w http.ResponseWriter, r *http.Request) {
	query := &application.GetCheckoutLogQuery{OrderID: chi.URLParam(r, "order_id")}

	response, err := h.getCheckoutLog.Execute(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"Error": "Order not found"})
	case errors.Is(err, domain.ErrItemNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"Error": "Item not found"})
	case errors.Is(err, domain.ErrOrderAlreadyPaid):
		writeJSON(w, http.StatusBadRequest, map[string]string{"Error": "Order is already paid"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"Error": err.Error()})
	}
}
