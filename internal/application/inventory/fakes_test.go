package inventory_test

import (
	"context"
	"fmt"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/audit"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/inventory"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/pkg/logger"
)

// In-memory fakes. The tx runner hands the same fakes to the callback, so a
// "transaction" is just a direct call; rollback is not modeled because the
// assertions only exercise committed paths and validation failures that
// happen before any write.

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.Item)}
}

func (f *fakeItemRepo) Create(item *entity.Item) error {
	for _, it := range f.items {
		if it.SN == item.SN {
			return fmt.Errorf("duplicate sn")
		}
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (f *fakeItemRepo) GetBySN(sn string) (*entity.Item, error) {
	for _, it := range f.items {
		if it.SN == sn {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeItemRepo) Update(item *entity.Item) error {
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeItemRepo) SetDeleted(id string, deleted bool) error {
	if it, ok := f.items[id]; ok {
		it.Deleted = deleted
	}
	return nil
}

func (f *fakeItemRepo) List(filter repository.ItemFilter) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range f.items {
		if !filter.IncludeDeleted && it.Deleted {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

type fakeHistoryRepo struct {
	rows []*entity.ItemHistory
}

func (f *fakeHistoryRepo) Create(h *entity.ItemHistory) error {
	cp := *h
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeHistoryRepo) ListByItem(itemID string, limit, offset int) ([]*entity.ItemHistory, error) {
	var out []*entity.ItemHistory
	for _, h := range f.rows {
		if h.ItemID == itemID {
			out = append(out, h)
		}
	}
	return out, nil
}

// byItem returns the history rows of one item in insertion order.
func (f *fakeHistoryRepo) byItem(itemID string) []*entity.ItemHistory {
	out, _ := f.ListByItem(itemID, 0, 0)
	return out
}

type fakeStockRepo struct {
	stocks map[string]*entity.Stock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{stocks: make(map[string]*entity.Stock)}
}

func stockKey(productID, warehouseID string) string {
	return productID + "/" + warehouseID
}

func (f *fakeStockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	if s, ok := f.stocks[stockKey(productID, warehouseID)]; ok {
		cp := *s
		return &cp, nil
	}
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID}, nil
}

func (f *fakeStockRepo) Ensure(productID, warehouseID string) error {
	key := stockKey(productID, warehouseID)
	if _, ok := f.stocks[key]; !ok {
		f.stocks[key] = &entity.Stock{ProductID: productID, WarehouseID: warehouseID}
	}
	return nil
}

func (f *fakeStockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	return f.Get(productID, warehouseID)
}

func (f *fakeStockRepo) Upsert(stock *entity.Stock) error {
	cp := *stock
	f.stocks[stockKey(stock.ProductID, stock.WarehouseID)] = &cp
	return nil
}

func (f *fakeStockRepo) List(limit, offset int) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range f.stocks {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

type fakeMovementRepo struct {
	rows []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range f.rows {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) Delete(id string) error         { delete(f.products, id); return nil }
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo(warehouses ...*entity.Warehouse) *fakeWarehouseRepo {
	f := &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
	for _, w := range warehouses {
		f.warehouses[w.ID] = w
	}
	return f
}

func (f *fakeWarehouseRepo) Create(w *entity.Warehouse) error { f.warehouses[w.ID] = w; return nil }
func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return f.warehouses[id], nil
}
func (f *fakeWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	for _, w := range f.warehouses {
		if w.Code == code {
			return w, nil
		}
	}
	return nil, nil
}
func (f *fakeWarehouseRepo) List() ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range f.warehouses {
		out = append(out, w)
	}
	return out, nil
}

type fakeTxRunner struct {
	itemRepo    repository.ItemRepository
	historyRepo repository.ItemHistoryRepository
	stockRepo   repository.StockRepository
	movRepo     repository.StockMovementRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	historyRepo repository.ItemHistoryRepository,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(f.itemRepo, f.historyRepo, f.stockRepo, f.movRepo)
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

type fakeAuditRepo struct {
	rows []*entity.AuditLog
}

func (f *fakeAuditRepo) Create(l *entity.AuditLog) error {
	f.rows = append(f.rows, l)
	return nil
}

func (f *fakeAuditRepo) List(limit, offset int) ([]*entity.AuditLog, error) {
	return f.rows, nil
}

func (f *fakeAuditRepo) ListByEntity(entityType, entityID string, limit, offset int) ([]*entity.AuditLog, error) {
	return f.rows, nil
}

func testAuditor(repo *fakeAuditRepo) *audit.Recorder {
	return audit.NewRecorder(repo, logger.New(logger.Config{Env: "test", Level: "error"}))
}

func listFilter(includeDeleted bool) repository.ItemFilter {
	return repository.ItemFilter{IncludeDeleted: includeDeleted, Limit: 20}
}
