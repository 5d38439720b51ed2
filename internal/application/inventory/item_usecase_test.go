package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/audit"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/inventory"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
)

var testActor = audit.Actor{ID: "u1", Name: "Budi"}

type itemFixture struct {
	uc        *inventory.ItemUseCase
	items     *fakeItemRepo
	histories *fakeHistoryRepo
	audits    *fakeAuditRepo
}

func newItemFixture() *itemFixture {
	items := newFakeItemRepo()
	histories := &fakeHistoryRepo{}
	audits := &fakeAuditRepo{}
	products := newFakeProductRepo(&entity.Product{ID: "p1", SKU: "ONT-100", Category: entity.CategoryActive})
	warehouses := newFakeWarehouseRepo(
		&entity.Warehouse{ID: "w1", Code: "JKT-01"},
		&entity.Warehouse{ID: "w2", Code: "BDG-01"},
	)
	tx := &fakeTxRunner{itemRepo: items, historyRepo: histories, stockRepo: newFakeStockRepo(), movRepo: &fakeMovementRepo{}}
	uc := inventory.NewItemUseCase(tx, items, histories, products, warehouses, testAuditor(audits))
	return &itemFixture{uc: uc, items: items, histories: histories, audits: audits}
}

func (f *itemFixture) create(t *testing.T) *dto.ItemResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), testActor, dto.CreateItemRequest{
		ProductID: "p1", SN: "SN001", MAC: "AA:BB:CC:00:11:22", WarehouseID: "w1",
	})
	require.NoError(t, err)
	return out
}

func TestItemCreate_DefaultsToGudangAndWritesHistory(t *testing.T) {
	f := newItemFixture()
	out := f.create(t)

	assert.Equal(t, entity.StatusGudang, out.Status)

	rows := f.histories.byItem(out.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, entity.HistoryActionCreate, rows[0].Action)
	assert.Equal(t, "status", rows[0].Field)
	assert.Equal(t, entity.StatusGudang, rows[0].NewValue)
	assert.Equal(t, "Budi", rows[0].ActorName)
}

func TestItemCreate_UnknownProductRejected(t *testing.T) {
	f := newItemFixture()
	_, err := f.uc.Create(context.Background(), testActor, dto.CreateItemRequest{
		ProductID: "missing", SN: "SN001", WarehouseID: "w1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemCreate_InvalidStatusRejected(t *testing.T) {
	f := newItemFixture()
	_, err := f.uc.Create(context.Background(), testActor, dto.CreateItemRequest{
		ProductID: "p1", SN: "SN001", WarehouseID: "w1", Status: "BROKEN",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Every status transition writes exactly one history row carrying the old
// and the new status.
func TestItemUpdateStatus_WritesExactlyOneRowPerTransition(t *testing.T) {
	f := newItemFixture()
	item := f.create(t)

	_, err := f.uc.UpdateStatus(context.Background(), testActor, item.ID, dto.UpdateItemStatusRequest{Status: entity.StatusTeknisi})
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(context.Background(), testActor, item.ID, dto.UpdateItemStatusRequest{Status: entity.StatusTerpasang})
	require.NoError(t, err)
	// TERPASANG back to GUDANG is allowed: the graph is unrestricted.
	_, err = f.uc.UpdateStatus(context.Background(), testActor, item.ID, dto.UpdateItemStatusRequest{Status: entity.StatusGudang})
	require.NoError(t, err)

	rows := f.histories.byItem(item.ID)
	require.Len(t, rows, 4) // CREATE + 3 transitions

	assert.Equal(t, entity.StatusGudang, rows[1].OldValue)
	assert.Equal(t, entity.StatusTeknisi, rows[1].NewValue)
	assert.Equal(t, entity.StatusTeknisi, rows[2].OldValue)
	assert.Equal(t, entity.StatusTerpasang, rows[2].NewValue)
	assert.Equal(t, entity.StatusTerpasang, rows[3].OldValue)
	assert.Equal(t, entity.StatusGudang, rows[3].NewValue)
}

// Setting the current status again is a no-op: no history row.
func TestItemUpdateStatus_SameStatusWritesNothing(t *testing.T) {
	f := newItemFixture()
	item := f.create(t)

	out, err := f.uc.UpdateStatus(context.Background(), testActor, item.ID, dto.UpdateItemStatusRequest{Status: entity.StatusGudang})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusGudang, out.Status)
	assert.Len(t, f.histories.byItem(item.ID), 1)
}

func TestItemMove_WritesMoveRow(t *testing.T) {
	f := newItemFixture()
	item := f.create(t)

	out, err := f.uc.Move(context.Background(), testActor, item.ID, dto.MoveItemRequest{WarehouseID: "w2"})
	require.NoError(t, err)
	assert.Equal(t, "w2", out.WarehouseID)

	rows := f.histories.byItem(item.ID)
	require.Len(t, rows, 2)
	assert.Equal(t, entity.HistoryActionMove, rows[1].Action)
	assert.Equal(t, "warehouse_id", rows[1].Field)
	assert.Equal(t, "w1", rows[1].OldValue)
	assert.Equal(t, "w2", rows[1].NewValue)
}

// Editing two fields at once yields one row per changed field.
func TestItemUpdate_OneRowPerChangedField(t *testing.T) {
	f := newItemFixture()
	item := f.create(t)

	mac := "AA:BB:CC:00:11:33"
	notes := "swapped antenna"
	_, err := f.uc.Update(context.Background(), testActor, item.ID, dto.UpdateItemRequest{MAC: &mac, Notes: &notes})
	require.NoError(t, err)

	rows := f.histories.byItem(item.ID)
	require.Len(t, rows, 3)
	fields := []string{rows[1].Field, rows[2].Field}
	assert.ElementsMatch(t, []string{"mac", "notes"}, fields)
}

func TestItemDelete_SoftDeleteAndRestore(t *testing.T) {
	f := newItemFixture()
	item := f.create(t)

	require.NoError(t, f.uc.Delete(context.Background(), testActor, item.ID))

	// The row is still readable, flagged deleted.
	got, err := f.uc.GetByID(item.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Deleted)

	// Deleting again conflicts.
	assert.ErrorIs(t, f.uc.Delete(context.Background(), testActor, item.ID), domain.ErrConflict)

	require.NoError(t, f.uc.Restore(context.Background(), testActor, item.ID))
	got, err = f.uc.GetByID(item.ID)
	require.NoError(t, err)
	assert.False(t, got.Deleted)

	// Restoring a live item conflicts too.
	assert.ErrorIs(t, f.uc.Restore(context.Background(), testActor, item.ID), domain.ErrConflict)

	rows := f.histories.byItem(item.ID)
	require.Len(t, rows, 3) // CREATE, DELETE, RESTORE
	assert.Equal(t, entity.HistoryActionDelete, rows[1].Action)
	assert.Equal(t, entity.HistoryActionRestore, rows[2].Action)
}

// Mutations on a soft-deleted item are rejected until it is restored.
func TestItemUpdate_DeletedItemRejected(t *testing.T) {
	f := newItemFixture()
	item := f.create(t)
	require.NoError(t, f.uc.Delete(context.Background(), testActor, item.ID))

	notes := "should not apply"
	_, err := f.uc.Update(context.Background(), testActor, item.ID, dto.UpdateItemRequest{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.UpdateStatus(context.Background(), testActor, item.ID, dto.UpdateItemStatusRequest{Status: entity.StatusTeknisi})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemList_ExcludesDeletedByDefault(t *testing.T) {
	f := newItemFixture()
	item := f.create(t)
	require.NoError(t, f.uc.Delete(context.Background(), testActor, item.ID))

	out, err := f.uc.List(listFilter(false))
	require.NoError(t, err)
	assert.Empty(t, out.Data)

	out, err = f.uc.List(listFilter(true))
	require.NoError(t, err)
	assert.Len(t, out.Data, 1)
}

func TestItemHistory_UnknownItemRejected(t *testing.T) {
	f := newItemFixture()
	_, err := f.uc.History("missing", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemMutations_AppendAuditRows(t *testing.T) {
	f := newItemFixture()
	item := f.create(t)
	_, err := f.uc.UpdateStatus(context.Background(), testActor, item.ID, dto.UpdateItemStatusRequest{Status: entity.StatusTeknisi})
	require.NoError(t, err)

	require.Len(t, f.audits.rows, 2)
	assert.Equal(t, entity.AuditActionCreate, f.audits.rows[0].Action)
	assert.Equal(t, "u1", f.audits.rows[0].ActorID)
	assert.Equal(t, entity.AuditActionUpdate, f.audits.rows[1].Action)
	assert.NotEmpty(t, f.audits.rows[1].OldValues)
	assert.NotEmpty(t, f.audits.rows[1].NewValues)
}
