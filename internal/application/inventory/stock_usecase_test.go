package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/inventory"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
)

type stockFixture struct {
	uc        *inventory.StockUseCase
	stocks    *fakeStockRepo
	movements *fakeMovementRepo
	audits    *fakeAuditRepo
}

func newStockFixture() *stockFixture {
	stocks := newFakeStockRepo()
	movements := &fakeMovementRepo{}
	audits := &fakeAuditRepo{}
	products := newFakeProductRepo(&entity.Product{ID: "p1", SKU: "DROP-CORE-1", Category: entity.CategoryPassive})
	warehouses := newFakeWarehouseRepo(&entity.Warehouse{ID: "w1", Code: "JKT-01"})
	tx := &fakeTxRunner{itemRepo: newFakeItemRepo(), historyRepo: &fakeHistoryRepo{}, stockRepo: stocks, movRepo: movements}
	uc := inventory.NewStockUseCase(tx, stocks, products, warehouses, testAuditor(audits))
	return &stockFixture{uc: uc, stocks: stocks, movements: movements, audits: audits}
}

func adjust(qty int64) dto.StockAdjustRequest {
	return dto.StockAdjustRequest{ProductID: "p1", WarehouseID: "w1", Quantity: qty, Description: "test"}
}

func TestStockIn_AccumulatesQuantity(t *testing.T) {
	f := newStockFixture()

	out, err := f.uc.StockIn(context.Background(), testActor, adjust(100))
	require.NoError(t, err)
	assert.Equal(t, int64(100), out.Quantity)

	out, err = f.uc.StockIn(context.Background(), testActor, adjust(50))
	require.NoError(t, err)
	assert.Equal(t, int64(150), out.Quantity)
}

func TestStockOut_DecrementsQuantity(t *testing.T) {
	f := newStockFixture()
	_, err := f.uc.StockIn(context.Background(), testActor, adjust(100))
	require.NoError(t, err)

	out, err := f.uc.StockOut(context.Background(), testActor, adjust(40))
	require.NoError(t, err)
	assert.Equal(t, int64(60), out.Quantity)
}

// An out larger than the available quantity must fail and leave the stored
// quantity untouched.
func TestStockOut_UnderflowRejectedAndQuantityUnchanged(t *testing.T) {
	f := newStockFixture()
	_, err := f.uc.StockIn(context.Background(), testActor, adjust(30))
	require.NoError(t, err)

	_, err = f.uc.StockOut(context.Background(), testActor, adjust(31))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	s, err := f.stocks.Get("p1", "w1")
	require.NoError(t, err)
	assert.Equal(t, int64(30), s.Quantity)

	// The failed out must not leave a movement row either.
	require.Len(t, f.movements.rows, 1)
	assert.Equal(t, entity.MovementTypeIN, f.movements.rows[0].Type)
}

// A missing stock row reads as zero, so the first out on an untouched pair
// always underflows.
func TestStockOut_FromZeroRejected(t *testing.T) {
	f := newStockFixture()
	_, err := f.uc.StockOut(context.Background(), testActor, adjust(1))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestStockAdjust_NonPositiveQuantityRejected(t *testing.T) {
	f := newStockFixture()
	_, err := f.uc.StockIn(context.Background(), testActor, adjust(0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.StockOut(context.Background(), testActor, adjust(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockAdjust_UnknownProductRejected(t *testing.T) {
	f := newStockFixture()
	in := adjust(10)
	in.ProductID = "missing"
	_, err := f.uc.StockIn(context.Background(), testActor, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Each applied adjustment appends one signed movement ledger row.
func TestStockAdjust_WritesMovementLedger(t *testing.T) {
	f := newStockFixture()
	_, err := f.uc.StockIn(context.Background(), testActor, adjust(100))
	require.NoError(t, err)
	_, err = f.uc.StockOut(context.Background(), testActor, adjust(25))
	require.NoError(t, err)

	rows, err := f.movements.ListByProduct("p1", 20, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, entity.MovementTypeIN, rows[0].Type)
	assert.Equal(t, int64(100), rows[0].Quantity)
	assert.Equal(t, entity.MovementTypeOUT, rows[1].Type)
	assert.Equal(t, int64(-25), rows[1].Quantity)
	assert.Equal(t, "u1", rows[1].CreatedBy)
}

// journalingStockRepo records the order of stock repo calls.
type journalingStockRepo struct {
	*fakeStockRepo
	calls []string
}

func (j *journalingStockRepo) Ensure(productID, warehouseID string) error {
	j.calls = append(j.calls, "ensure")
	return j.fakeStockRepo.Ensure(productID, warehouseID)
}

func (j *journalingStockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	j.calls = append(j.calls, "lock")
	return j.fakeStockRepo.GetForUpdate(productID, warehouseID)
}

func (j *journalingStockRepo) Upsert(stock *entity.Stock) error {
	j.calls = append(j.calls, "upsert")
	return j.fakeStockRepo.Upsert(stock)
}

// The first adjustment for a pair must seed the row before the locked read.
// A row lock only exists on a row that exists: without the seed, two
// concurrent first-time ins both read zero and the loser's increment is
// overwritten by the absolute upsert.
func TestStockIn_SeedsRowBeforeLockedRead(t *testing.T) {
	stocks := &journalingStockRepo{fakeStockRepo: newFakeStockRepo()}
	movements := &fakeMovementRepo{}
	audits := &fakeAuditRepo{}
	products := newFakeProductRepo(&entity.Product{ID: "p1", SKU: "DROP-CORE-1", Category: entity.CategoryPassive})
	warehouses := newFakeWarehouseRepo(&entity.Warehouse{ID: "w1", Code: "JKT-01"})
	tx := &fakeTxRunner{itemRepo: newFakeItemRepo(), historyRepo: &fakeHistoryRepo{}, stockRepo: stocks, movRepo: movements}
	uc := inventory.NewStockUseCase(tx, stocks, products, warehouses, testAuditor(audits))

	out, err := uc.StockIn(context.Background(), testActor, adjust(100))
	require.NoError(t, err)
	assert.Equal(t, int64(100), out.Quantity)

	assert.Equal(t, []string{"ensure", "lock", "upsert"}, stocks.calls)

	s, err := stocks.Get("p1", "w1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), s.Quantity)
}

func TestStockAdjust_AppendsAuditRows(t *testing.T) {
	f := newStockFixture()
	_, err := f.uc.StockIn(context.Background(), testActor, adjust(10))
	require.NoError(t, err)
	_, err = f.uc.StockOut(context.Background(), testActor, adjust(5))
	require.NoError(t, err)

	require.Len(t, f.audits.rows, 2)
	assert.Equal(t, entity.AuditActionStockIn, f.audits.rows[0].Action)
	assert.Equal(t, entity.AuditActionStockOut, f.audits.rows[1].Action)
	assert.Equal(t, "p1/w1", f.audits.rows[0].EntityID)
}
