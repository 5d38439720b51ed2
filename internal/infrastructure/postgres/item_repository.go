package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, product_id, sn, mac, status, warehouse_id, notes, deleted, created_at, updated_at`

// ItemRepo implements ItemRepository over PostgreSQL (usable with pool or tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository builds the item persistence adapter.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persists a new serialized item. Duplicate SN or MAC fails with
// ErrDuplicate. The MAC column stores NULL for empty values so the partial
// unique index only applies when a MAC is present.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, product_id, sn, mac, status, warehouse_id, notes, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProductID, item.SN, item.MAC, item.Status, item.WarehouseID,
		item.Notes, item.Deleted, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID fetches an item by id, including soft-deleted rows.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.get(`WHERE id = $1`, id)
}

// GetBySN fetches an item by serial number (the sync upsert key).
func (r *ItemRepo) GetBySN(sn string) (*entity.Item, error) {
	return r.get(`WHERE sn = $1`, sn)
}

func (r *ItemRepo) get(where string, arg any) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ` + where
	item, err := scanItem(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Update persists field changes (SN/MAC/notes/status/warehouse).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET sn = $2, mac = NULLIF($3, ''), status = $4, warehouse_id = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SN, item.MAC, item.Status, item.WarehouseID, item.Notes, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// SetDeleted flips the soft-delete flag.
func (r *ItemRepo) SetDeleted(id string, deleted bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET deleted = $2, updated_at = now() WHERE id = $1`,
		id, deleted,
	)
	if err != nil {
		return fmt.Errorf("set item deleted: %w", err)
	}
	return nil
}

// List returns items matching the filter, newest first.
func (r *ItemRepo) List(filter repository.ItemFilter) ([]*entity.Item, error) {
	var (
		conds []string
		args  []any
	)
	if !filter.IncludeDeleted {
		conds = append(conds, "deleted = false")
	}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		conds = append(conds, "product_id = $"+strconv.Itoa(len(args)))
	}
	if filter.WarehouseID != "" {
		args = append(args, filter.WarehouseID)
		conds = append(conds, "warehouse_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + itemColumns + ` FROM items`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit)
	query += " ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var i entity.Item
	var mac *string
	err := row.Scan(
		&i.ID, &i.ProductID, &i.SN, &mac, &i.Status, &i.WarehouseID,
		&i.Notes, &i.Deleted, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if mac != nil {
		i.MAC = *mac
	}
	return &i, nil
}
