package categories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/shopfront/catalog-service/app/render"
	"github.com/shopfront/catalog-service/models"
	"github.com/shopfront/catalog-service/schemas"
)

// --- Mock Repository ---

type MockCategoryRepo struct {
	Categories []models.Category
	CreateErr  error
	ListErr    error
	LastSaved  *models.Category
}

func (m *MockCategoryRepo) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Categories, nil
}

func (m *MockCategoryRepo) CreateCategory(ctx context.Context, cat *models.Category) error {
	m.LastSaved = cat
	if m.CreateErr != nil {
		return m.CreateErr
	}
	cat.ID = 7
	return nil
}

// --- Tests: GET /category ---

func TestHandleGetAll(t *testing.T) {
	widget := models.Product{
		ID:          1,
		Name:        "Widget",
		Description: "A widget",
		Price:       decimal.NewFromFloat(9.99),
		Qty:         10,
	}

	testCases := []struct {
		name               string
		mockRepoSetup      func() *MockCategoryRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Success with multiple categories",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{
					Categories: []models.Category{
						{ID: 1, Name: "Hardware", Products: []models.Product{widget}},
						{ID: 2, Name: "Garden"},
					},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []schemas.Category
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 2)
				assert.Equal(t, "Hardware", resp[0].Name)
				assert.Equal(t, []schemas.PlainProduct{{
					ID: 1, Name: "Widget", Description: "A widget", Price: 9.99, Qty: 10,
				}}, resp[0].Products)
				assert.Equal(t, "Garden", resp[1].Name)
				assert.NotNil(t, resp[1].Products)
			},
		},
		{
			name: "Nested products do not embed categories",
			mockRepoSetup: func() *MockCategoryRepo {
				p := widget
				p.Categories = []models.Category{{ID: 1, Name: "Hardware"}}
				return &MockCategoryRepo{
					Categories: []models.Category{{ID: 1, Name: "Hardware", Products: []models.Product{p}}},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t,
					`[{"id":1,"name":"Hardware","products":[{"id":1,"name":"Widget","description":"A widget","price":9.99,"qty":10}]}]`,
					rec.Body.String())
			},
		},
		{
			name: "Success with empty list",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{
					Categories: []models.Category{},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []schemas.Category
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 0)
			},
		},
		{
			name: "Repository error",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{
					ListErr: errors.New("db down"),
				}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "failed to fetch categories", errResp["error"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			logger, _ := logtest.NewNullLogger()
			mockRepo := tc.mockRepoSetup()
			handler := NewCategoryHandler(mockRepo, logger)
			req := httptest.NewRequest("GET", "/category", nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGetAll(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

// --- Tests: POST /category ---

func TestHandleCreate(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		mockRepoSetup      func() *MockCategoryRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkRepoCall      func(t *testing.T, repo *MockCategoryRepo)
	}{
		{
			name:        "Success",
			requestBody: `{"name":"Accessories"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"id":7,"name":"Accessories","products":[]}`, rec.Body.String())
			},
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.NotNil(t, repo.LastSaved)
				assert.Equal(t, "Accessories", repo.LastSaved.Name)
			},
		},
		{
			name:        "Invalid JSON body",
			requestBody: `{invalid json`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp render.ErrorResponse
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "invalid input", errResp.Error)
				assert.Equal(t, []string{"Invalid input type."}, errResp.Fields["_schema"])
			},
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Nil(t, repo.LastSaved, "CreateCategory should not be called with invalid JSON")
			},
		},
		{
			name:        "Missing required fields (name)",
			requestBody: `{}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp render.ErrorResponse
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, []string{"Missing data for required field."}, errResp.Fields["name"])
			},
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Nil(t, repo.LastSaved, "CreateCategory should not be called with missing fields")
			},
		},
		{
			name:        "Duplicate name",
			requestBody: `{"name":"Hardware"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{CreateErr: fmt.Errorf("create category: %w", models.ErrDuplicateName)}
			},
			expectedStatusCode: http.StatusConflict,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "category name already exists", errResp["error"])
			},
		},
		{
			name:        "Repository error on create",
			requestBody: `{"name":"Toys"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{CreateErr: errors.New("insert failed")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "failed to create category", errResp["error"])
			},
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.NotNil(t, repo.LastSaved, "CreateCategory should have been called")
				assert.Equal(t, "Toys", repo.LastSaved.Name)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			logger, _ := logtest.NewNullLogger()
			mockRepo := tc.mockRepoSetup()
			handler := NewCategoryHandler(mockRepo, logger)
			req := httptest.NewRequest("POST", "/category", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			// Act
			handler.HandleCreate(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)

			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}

			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, mockRepo)
			}
		})
	}
}
