package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/audit"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/usecase"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/pkg/logger"
)

// memProductCatalog mirrors the database's unique SKU constraint: a second
// insert with a known SKU fails with ErrDuplicate, like the real adapter.
type memProductCatalog struct {
	products map[string]*entity.Product
}

func newMemProductCatalog() *memProductCatalog {
	return &memProductCatalog{products: make(map[string]*entity.Product)}
}

func (m *memProductCatalog) Create(p *entity.Product) error {
	for _, ex := range m.products {
		if ex.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	m.products[p.ID] = &cp
	return nil
}
func (m *memProductCatalog) GetByID(id string) (*entity.Product, error) {
	return m.products[id], nil
}
func (m *memProductCatalog) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range m.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (m *memProductCatalog) Update(p *entity.Product) error { m.products[p.ID] = p; return nil }
func (m *memProductCatalog) Delete(id string) error         { delete(m.products, id); return nil }
func (m *memProductCatalog) List(int, int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func newProductFixture() (*usecase.ProductUseCase, *memProductCatalog, *auditSink) {
	catalog := newMemProductCatalog()
	sink := &auditSink{}
	auditor := audit.NewRecorder(sink, logger.New(logger.Config{Env: "test", Level: "error"}))
	return usecase.NewProductUseCase(catalog, auditor), catalog, sink
}

func ontRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{SKU: "ONT-001", Name: "ONT ZTE F609", Category: entity.CategoryActive, Unit: "pcs"}
}

// A second create with an already-registered SKU fails and leaves the first
// product untouched.
func TestProductCreate_DuplicateSKURejected(t *testing.T) {
	uc, catalog, sink := newProductFixture()

	first, err := uc.Create(testActor, ontRequest())
	require.NoError(t, err)

	second := ontRequest()
	second.Name = "ONT Huawei HG8245"
	_, err = uc.Create(testActor, second)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	kept, err := catalog.GetByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, "ONT ZTE F609", kept.Name)

	all, err := catalog.List(0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Only the successful create is audited.
	assert.Len(t, sink.rows, 1)
}

func TestProductCreate_InvalidCategoryRejected(t *testing.T) {
	uc, _, _ := newProductFixture()
	in := ontRequest()
	in.Category = "Consumable"
	_, err := uc.Create(testActor, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_UnitDefaultsToPcs(t *testing.T) {
	uc, _, _ := newProductFixture()
	in := ontRequest()
	in.Unit = ""
	out, err := uc.Create(testActor, in)
	require.NoError(t, err)
	assert.Equal(t, "pcs", out.Unit)
}

func TestProductCreate_AppendsAuditRow(t *testing.T) {
	uc, _, sink := newProductFixture()
	out, err := uc.Create(testActor, ontRequest())
	require.NoError(t, err)

	require.Len(t, sink.rows, 1)
	assert.Equal(t, entity.AuditActionCreate, sink.rows[0].Action)
	assert.Equal(t, out.ID, sink.rows[0].EntityID)
}
