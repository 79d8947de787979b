package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/philippedeb/order-system/payment-service/application"
	"github.com/philippedeb/order-system/payment-service/domain"
	"github.com/pkg/errors"
)

// PaymentHandlers contains payment HTTP handlers
type PaymentHandlers struct {
	manageUser     *application.ManageUser
	processPayment *application.ProcessPayment
}

// NewPaymentHandlers creates new payment handlers
func NewPaymentHandlers(manageUser *application.ManageUser, processPayment *application.ProcessPayment) *PaymentHandlers {
	return &PaymentHandlers{manageUser: manageUser, processPayment: processPayment}
}

// RegisterRoutes registers payment routes
func (h *PaymentHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/payment", func(r chi.Router) {
		r.Post("/create_user", h.CreateUser)
		r.Get("/find_user/{user_id}", h.FindUser)
		r.Post("/add_funds/{user_id}/{amount}", h.AddFunds)
		r.Post("/pay/{user_id}/{order_id}/{amount}", h.Pay)
		r.Post("/cancel/{user_id}/{order_id}/{amount}", h.Cancel)
		r.Post("/status/{user_id}/{order_id}", h.Status)
	})
}

// CreateUser handles account creation requests
func (h *PaymentHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	response, err := h.manageUser.CreateUser(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// FindUser handles account retrieval requests
func (h *PaymentHandlers) FindUser(w http.ResponseWriter, r *http.Request) {
	response, err := h.manageUser.FindUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// AddFunds handles account top-up requests
func (h *PaymentHandlers) AddFunds(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseInt(chi.URLParam(r, "amount"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"Error": "Invalid amount"})
		return
	}

	if err := h.manageUser.AddFunds(r.Context(), chi.URLParam(r, "user_id"), amount); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"Success": true})
}

// Pay handles debit requests. Insufficient funds is a rejection, not
// a server error.
func (h *PaymentHandlers) Pay(w http.ResponseWriter, r *http.Request) {
	cmd, err := paymentCommand(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"Error": "Invalid amount"})
		return
	}

	if err := h.processPayment.Pay(r.Context(), cmd); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"Success": true})
}

// Cancel handles refund requests. Refunding an order the user never
// paid is reported as not found.
func (h *PaymentHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	cmd, err := paymentCommand(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"Error": "Invalid amount"})
		return
	}

	if err := h.processPayment.Cancel(r.Context(), cmd); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"Success": true})
}

// Status reports whether the order was paid by the user
func (h *PaymentHandlers) Status(w http.ResponseWriter, r *http.Request) {
	cmd := &application.PaymentCommand{
		UserID:  chi.URLParam(r, "user_id"),
		OrderID: chi.URLParam(r, "order_id"),
	}

	response, err := h.processPayment.Status(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func paymentCommand(r *http.Request) (*application.PaymentCommand, error) {
	amount, err := strconv.ParseInt(chi.URLParam(r, "amount"), 10, 64)
	if err != nil {
		return nil, err
	}
	return &application.PaymentCommand{
		UserID:  chi.URLParam(r, "user_id"),
		OrderID: chi.URLParam(r, "order_id"),
		Amount:  amount,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"Error": "User not found"})
	case errors.Is(err, domain.ErrOrderNotPaid):
		writeJSON(w, http.StatusNotFound, map[string]string{"Error": "Order was not paid"})
	case errors.Is(err, domain.ErrInsufficientFunds):
		writeJSON(w, http.StatusBadRequest, map[string]string{"Error": "Insufficient funds"})
	case errors.Is(err, domain.ErrInvalidAmount):
		writeJSON(w, http.StatusBadRequest, map[string]string{"Error": "Amount must be positive"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"Error": err.Error()})
	}
}
