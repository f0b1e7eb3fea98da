package orders

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/acme/company-api/models"
)

const contentTypeJSON = "application/json; charset=UTF-8"

// OrderResponse renders the subtotal as a string so the exact decimal
// digits survive JSON encoding.
type OrderResponse struct {
	ID         uint   `json:"id"`
	Subtotal   string `json:"subtotal"`
	CustomerID *uint  `json:"customer_id"`
}

type OrderProvider interface {
	GetAllOrders() ([]models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	CreateOrder(order *models.Order) error
}

type OrdersHandler struct {
	repo OrderProvider
}

func NewOrdersHandler(r OrderProvider) *OrdersHandler {
	return &OrdersHandler{repo: r}
}

func (h *OrdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.GetAllOrders()
	if err != nil {
		http.Error(w, "failed to fetch orders", http.StatusInternalServerError)
		return
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:         o.ID,
			Subtotal:   o.Subtotal.String(),
			CustomerID: o.CustomerID,
		}
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *OrdersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	// Subtotal accepts a JSON string or number; either way the literal
	// digits are kept exact by the decimal type.
	var input struct {
		ID       *uint            `json:"id"`
		Subtotal *decimal.Decimal `json:"subtotal"`
		Customer *struct {
			ID *uint `json:"id"`
		} `json:"customer"`
	}
	if err := json.Unmarshal(body, &input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if input.Subtotal == nil {
		http.Error(w, "missing required field: subtotal", http.StatusBadRequest)
		return
	}
	if input.Customer == nil || input.Customer.ID == nil {
		http.Error(w, "missing required field: customer.id", http.StatusBadRequest)
		return
	}

	order := &models.Order{
		Subtotal:   *input.Subtotal,
		CustomerID: input.Customer.ID,
	}
	if input.ID != nil {
		order.ID = *input.ID
	}

	if err := h.repo.CreateOrder(order); err != nil {
		if errors.Is(err, models.ErrOrderCustomerMissing) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, models.ErrDuplicateOrderID) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "failed to create order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.Write(body)
}

func (h *OrdersHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	if idStr == "" {
		http.Error(w, "no ID specified", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid ID", http.StatusBadRequest)
		return
	}

	order, err := h.repo.GetOrderByID(uint(id))
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := OrderResponse{
		ID:         order.ID,
		Subtotal:   order.Subtotal.String(),
		CustomerID: order.CustomerID,
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
