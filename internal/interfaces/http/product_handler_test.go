package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/audit"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/usecase"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	apphttp "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/interfaces/http"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/pkg/logger"
)

// stubProductRepo mirrors the unique SKU constraint of the real adapter.
type stubProductRepo struct {
	created []*entity.Product
}

func (r *stubProductRepo) Create(p *entity.Product) error {
	for _, ex := range r.created {
		if ex.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.created = append(r.created, p)
	return nil
}
func (r *stubProductRepo) GetByID(string) (*entity.Product, error)  { return nil, nil }
func (r *stubProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error             { return nil }
func (r *stubProductRepo) Delete(string) error                      { return nil }
func (r *stubProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }

type noopAuditRepo struct{}

func (noopAuditRepo) Create(*entity.AuditLog) error             { return nil }
func (noopAuditRepo) List(int, int) ([]*entity.AuditLog, error) { return nil, nil }
func (noopAuditRepo) ListByEntity(string, string, int, int) ([]*entity.AuditLog, error) {
	return nil, nil
}

func buildProductApp(repo *stubProductRepo) *fiber.App {
	auditor := audit.NewRecorder(noopAuditRepo{}, logger.New(logger.Config{Env: "test", Level: "error"}))
	handler := apphttp.NewProductHandler(usecase.NewProductUseCase(repo, auditor))

	app := fiber.New()
	app.Post("/products",
		apphttp.AuthMiddleware(testJWTSecret, activeUser("products.create")),
		apphttp.RequirePermissions(domain.PermProductsCreate),
		handler.Create,
	)
	return app
}

func postProduct(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", accessToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Registering a SKU twice: the first create succeeds, the second returns
// 409 with the DUPLICATE code, and the first product is unaffected.
func TestProductCreate_DuplicateSKUReturns409(t *testing.T) {
	repo := &stubProductRepo{}
	app := buildProductApp(repo)

	body := `{"sku":"ONT-001","name":"ONT ZTE F609","category":"Active","unit":"pcs"}`
	resp := postProduct(t, app, body)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postProduct(t, app, `{"sku":"ONT-001","name":"ONT Huawei HG8245","category":"Active","unit":"pcs"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "DUPLICATE", out.Code)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "ONT ZTE F609", repo.created[0].Name)
}
