package products

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

// ProductResponse renders the price as a string so the exact decimal
// digits survive JSON encoding.
type ProductResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type ProductProvider interface {
	GetAllProducts() ([]models.Product, error)
	GetProductByID(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
}

type ProductsHandler struct {
	repo ProductProvider
}

func NewProductsHandler(r ProductProvider) *ProductsHandler {
	return &ProductsHandler{repo: r}
}

func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.GetAllProducts()
	if err != nil {
		http.Error(w, "failed to fetch products", http.StatusInternalServerError)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ProductResponse{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price.String(),
		}
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	var input struct {
		ID    *uint            `json:"id"`
		Name  *string          `json:"name"`
		Price *decimal.Decimal `json:"price"`
	}
	if err := json.Unmarshal(body, &input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if input.Name == nil {
		http.Error(w, "missing required field: name", http.StatusBadRequest)
		return
	}
	if input.Price == nil {
		http.Error(w, "missing required field: price", http.StatusBadRequest)
		return
	}

	product := &models.Product{
		Name:  *input.Name,
		Price: *input.Price,
	}
	if input.ID != nil {
		product.ID = *input.ID
	}

	if err := h.repo.CreateProduct(product); err != nil {
		if errors.Is(err, models.ErrDuplicateProductName) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "failed to create product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.Write(body)
}

func (h *ProductsHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
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

	product, err := h.repo.GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := ProductResponse{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price.String(),
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
