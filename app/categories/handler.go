package categories

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/shopfront/catalog-service/app/render"
	"github.com/shopfront/catalog-service/models"
	"github.com/shopfront/catalog-service/schemas"
)

type CategoryProvider interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
}

type CategoryHandler struct {
	repo CategoryProvider
	log  logrus.FieldLogger
}

func NewCategoryHandler(r CategoryProvider, log logrus.FieldLogger) *CategoryHandler {
	return &CategoryHandler{repo: r, log: log}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories(r.Context())
	if err != nil {
		h.log.WithError(err).Error("list categories")
		render.Error(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	render.JSON(w, http.StatusOK, schemas.DumpCategories(categories))
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	category, err := schemas.LoadCategory(r.Body)
	if err != nil {
		var verr *schemas.ValidationError
		if errors.As(err, &verr) {
			render.Invalid(w, verr)
			return
		}
		h.log.WithError(err).Error("load category")
		render.Error(w, http.StatusInternalServerError, "failed to read category")
		return
	}

	if err := h.repo.CreateCategory(r.Context(), category); err != nil {
		if errors.Is(err, models.ErrDuplicateName) {
			render.Error(w, http.StatusConflict, "category name already exists")
			return
		}
		h.log.WithError(err).Error("create category")
		render.Error(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	render.JSON(w, http.StatusCreated, schemas.DumpCategory(*category))
}
