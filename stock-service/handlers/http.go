package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/philippedeb/order-system/stock-service/application"
	"github.com/philippedeb/order-system/stock-service/domain"
	"github.com/pkg/errors"
)

// StockHandlers contains stock HTTP handlers
type StockHandlers struct {
	createItem    *application.CreateItem
	findItem      *application.FindItem
	addStock      *application.AddStock
	subtractStock *application.SubtractStock
}

// NewStockHandlers creates new stock handlers
func NewStockHandlers(
	createItem *application.CreateItem,
	findItem *application.FindItem,
	addStock *application.AddStock,
	subtractStock *application.SubtractStock,
) *StockHandlers {
	return &StockHandlers{
		createItem:    createItem,
		findItem:      findItem,
		addStock:      addStock,
		subtractStock: subtractStock,
	}
}

// RegisterRoutes registers stock routes
func (h *StockHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/stock", func(r chi.Router) {
		r.Post("/item/create/{price}", h.CreateItem)
		r.Get("/find/{item_id}", h.FindItem)
		r.Post("/add/{item_id}/{amount}", h.AddStock)
		r.Post("/subtract/{item_id}/{amount}", h.SubtractStock)
	})
}

// CreateItem handles item creation requests
func (h *StockHandlers) CreateItem(w http.ResponseWriter, r *http.Request) {
	price, err := strconv.ParseInt(chi.URLParam(r, "price"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"Error": "Invalid price"})
		return
	}

	response, err := h.createItem.Execute(r.Context(), &application.CreateItemCommand{Price: price})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// FindItem handles item retrieval requests
func (h *StockHandlers) FindItem(w http.ResponseWriter, r *http.Request) {
	query := &application.FindItemQuery{ItemID: chi.URLParam(r, "item_id")}

	response, err := h.findItem.Execute(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// AddStock handles restock requests
func (h *StockHandlers) AddStock(w http.ResponseWriter, r *http.Request) {
	cmd, err := adjustCommand(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"Error": "Invalid amount"})
		return
	}

	response, err := h.addStock.Execute(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// SubtractStock handles stock reservation requests. Insufficient
// stock is a rejection, not a server error.
func (h *StockHandlers) SubtractStock(w http.ResponseWriter, r *http.Request) {
	cmd, err := adjustCommand(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"Error": "Invalid amount"})
		return
	}

	response, err := h.subtractStock.Execute(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func adjustCommand(r *http.Request) (*application.AdjustStockCommand, error) {
	amount, err := strconv.ParseInt(chi.URLParam(r, "amount"), 10, 64)
	if err != nil {
		return nil, err
	}
	return &application.AdjustStockCommand{
		ItemID: chi.URLParam(r, "item_id"),
		Amount: amount,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"Error": "Item not found"})
	case errors.Is(err, domain.ErrInsufficientStock):
		writeJSON(w, http.StatusBadRequest, map[string]string{"Error": "Insufficient stock"})
	case errors.Is(err, domain.ErrInvalidAmount):
		writeJSON(w, http.StatusBadRequest, map[string]string{"Error": "Amount must be positive"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"Error": err.Error()})
	}
}
