package server

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/shopfront/catalog-service/app/catalog"
	"github.com/shopfront/catalog-service/app/categories"
)

// Routes wires the catalog handlers onto a mux wrapped in the request
// middleware.
func Routes(products catalog.ProductProvider, cats categories.CategoryProvider, log logrus.FieldLogger) http.Handler {
	catalogHandler := catalog.NewCatalogHandler(products, log)
	categoryHandler := categories.NewCategoryHandler(cats, log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /product", catalogHandler.HandleGet)
	mux.HandleFunc("POST /product", catalogHandler.HandleCreate)
	mux.HandleFunc("GET /category", categoryHandler.HandleGetAll)
	mux.HandleFunc("POST /category", categoryHandler.HandleCreate)

	return requestID(accessLog(log, recoverer(log, mux)))
}
