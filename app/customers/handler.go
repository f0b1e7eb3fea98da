package customers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/acme/company-api/models"
)

const contentTypeJSON = "application/json; charset=UTF-8"

type CustomerResponse struct {
	ID   uint    `json:"id"`
	Name *string `json:"name"`
}

type CustomerProvider interface {
	GetAllCustomers() ([]models.Customer, error)
	GetCustomerByID(id uint) (*models.Customer, error)
	CreateCustomer(customer *models.Customer) error
}

type CustomersHandler struct {
	repo CustomerProvider
}

func NewCustomersHandler(r CustomerProvider) *CustomersHandler {
	return &CustomersHandler{repo: r}
}

func (h *CustomersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	customers, err := h.repo.GetAllCustomers()
	if err != nil {
		http.Error(w, "failed to fetch customers", http.StatusInternalServerError)
		return
	}

	response := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		response[i] = CustomerResponse{
			ID:   c.ID,
			Name: c.Name,
		}
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *CustomersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	var input struct {
		ID   *uint   `json:"id"`
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(body, &input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if input.Name == nil {
		http.Error(w, "missing required field: name", http.StatusBadRequest)
		return
	}

	customer := &models.Customer{Name: input.Name}
	if input.ID != nil {
		customer.ID = *input.ID
	}

	if err := h.repo.CreateCustomer(customer); err != nil {
		if errors.Is(err, models.ErrDuplicateCustomerID) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "failed to create customer", http.StatusInternalServerError)
		return
	}

	// The create contract echoes the request body back verbatim.
	w.Header().Set("Content-Type", contentTypeJSON)
	w.Write(body)
}

func (h *CustomersHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
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

	customer, err := h.repo.GetCustomerByID(uint(id))
	if err != nil {
		if errors.Is(err, models.ErrCustomerNotFound) {
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := CustomerResponse{
		ID:   customer.ID,
		Name: customer.Name,
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
