package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/shopfront/catalog-service/app/render"
	"github.com/shopfront/catalog-service/models"
	"github.com/shopfront/catalog-service/schemas"
)

type ProductProvider interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
}

type CatalogHandler struct {
	repo ProductProvider
	log  logrus.FieldLogger
}

func NewCatalogHandler(r ProductProvider, log logrus.FieldLogger) *CatalogHandler {
	return &CatalogHandler{
		repo: r,
		log:  log,
	}
}

// HandleGet lists every product with its categories.
func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.GetAllProducts(r.Context())
	if err != nil {
		h.log.WithError(err).Error("list products")
		render.Error(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	render.JSON(w, http.StatusOK, schemas.DumpProducts(products))
}

func (h *CatalogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	product, err := schemas.LoadProduct(r.Body)
	if err != nil {
		var verr *schemas.ValidationError
		if errors.As(err, &verr) {
			render.Invalid(w, verr)
			return
		}
		h.log.WithError(err).Error("load product")
		render.Error(w, http.StatusInternalServerError, "failed to read product")
		return
	}

	if err := h.repo.CreateProduct(r.Context(), product); err != nil {
		if errors.Is(err, models.ErrDuplicateName) {
			render.Error(w, http.StatusConflict, "product name already exists")
			return
		}
		h.log.WithError(err).Error("create product")
		render.Error(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	render.JSON(w, http.StatusCreated, schemas.DumpProduct(*product))
}
