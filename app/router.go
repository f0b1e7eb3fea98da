package app

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/acme/company-api/app/customers"
	"github.com/acme/company-api/app/home"
	"github.com/acme/company-api/app/orders"
	"github.com/acme/company-api/app/products"
	"github.com/acme/company-api/models"
)

// NewRouter wires one handler per (entity, verb) pair over the shared
// database handle.
func NewRouter(db *gorm.DB) *http.ServeMux {
	customersHandler := customers.NewCustomersHandler(models.NewCustomersRepository(db))
	ordersHandler := orders.NewOrdersHandler(models.NewOrdersRepository(db))
	productsHandler := products.NewProductsHandler(models.NewProductsRepository(db))
	homeHandler := home.NewHomeHandler()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", homeHandler.HandleIndex)
	mux.HandleFunc("GET /ping", homeHandler.HandlePing)

	mux.HandleFunc("GET /customer", customersHandler.HandleList)
	mux.HandleFunc("POST /customer", customersHandler.HandleCreate)
	mux.HandleFunc("GET /customer/{id}", customersHandler.HandleGetByID)

	mux.HandleFunc("GET /order", ordersHandler.HandleList)
	mux.HandleFunc("POST /order", ordersHandler.HandleCreate)
	mux.HandleFunc("GET /order/{id}", ordersHandler.HandleGetByID)

	mux.HandleFunc("GET /product", productsHandler.HandleList)
	mux.HandleFunc("POST /product", productsHandler.HandleCreate)
	mux.HandleFunc("GET /product/{id}", productsHandler.HandleGetByID)

	return mux
}
