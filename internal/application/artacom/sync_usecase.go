package artacom

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/inventory"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/pkg/logger"
)

// recordError is one failed record inside an otherwise-applied batch.
type recordError struct {
	SN    string `json:"sn"`
	Error string `json:"error"`
}

// SyncUseCase pulls partner inventory and upserts it by serial number.
// A failing record is recorded and skipped; the batch never aborts on it.
// Runs are expected to be triggered one at a time (operators serialize
// triggers externally); per record the last write wins.
type SyncUseCase struct {
	fetcher       Fetcher
	txRunner      inventory.TxRunner
	itemRepo      repository.ItemRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	syncRepo      repository.SyncRunRepository
	log           *logger.Logger
}

// NewSyncUseCase builds the use case.
func NewSyncUseCase(
	fetcher Fetcher,
	txRunner inventory.TxRunner,
	itemRepo repository.ItemRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	syncRepo repository.SyncRunRepository,
	log *logger.Logger,
) *SyncUseCase {
	return &SyncUseCase{
		fetcher:       fetcher,
		txRunner:      txRunner,
		itemRepo:      itemRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		syncRepo:      syncRepo,
		log:           log,
	}
}

// Run executes one sync pass and persists a SyncRun row with the outcome.
// Idempotent per run: the upsert is keyed on the unique serial number.
func (uc *SyncUseCase) Run(ctx context.Context) (*dto.SyncRunResponse, error) {
	run := &entity.SyncRun{
		ID:        uuid.New().String(),
		Status:    entity.SyncStatusRunning,
		StartedAt: time.Now(),
	}
	if err := uc.syncRepo.Create(run); err != nil {
		return nil, err
	}

	records, err := uc.fetcher.FetchInventory(ctx)
	if err != nil {
		uc.finish(run, entity.SyncStatusFailed, []recordError{{Error: err.Error()}})
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	run.Fetched = len(records)

	var errs []recordError
	for _, rec := range records {
		created, err := uc.applyRecord(ctx, rec)
		if err != nil {
			run.Failed++
			errs = append(errs, recordError{SN: rec.SN, Error: err.Error()})
			uc.log.Warn().Err(err).Str("sn", rec.SN).Msg("artacom record skipped")
			continue
		}
		if created {
			run.Created++
		} else {
			run.Updated++
		}
	}

	status := entity.SyncStatusSuccess
	if run.Failed > 0 {
		status = entity.SyncStatusPartial
	}
	uc.finish(run, status, errs)
	return toSyncRunResponse(run), nil
}

// applyRecord upserts one partner record. Reports whether a new item was
// created. Every change to local state appends one history row tagged with
// the external actor, so the timeline can attribute it even though no local
// User row exists for them.
func (uc *SyncUseCase) applyRecord(ctx context.Context, rec Record) (created bool, err error) {
	if rec.SN == "" {
		return false, domain.ErrInvalidInput
	}
	status := rec.Status
	if status == "" {
		status = entity.StatusGudang
	}
	if !entity.ValidStatus(status) {
		return false, fmt.Errorf("unknown status %q", rec.Status)
	}

	meta, _ := json.Marshal(map[string]string{entity.MetadataKeyArtacomUser: rec.ArtacomUser})
	existing, err := uc.itemRepo.GetBySN(rec.SN)
	if err != nil {
		return false, err
	}

	if existing == nil {
		product, err := uc.productRepo.GetBySKU(rec.ProductSKU)
		if err != nil {
			return false, err
		}
		if product == nil {
			return false, fmt.Errorf("unknown product sku %q", rec.ProductSKU)
		}
		warehouse, err := uc.warehouseRepo.GetByCode(rec.WarehouseCode)
		if err != nil {
			return false, err
		}
		if warehouse == nil {
			return false, fmt.Errorf("unknown warehouse code %q", rec.WarehouseCode)
		}
		now := time.Now()
		item := &entity.Item{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			SN:          rec.SN,
			MAC:         rec.MAC,
			Status:      status,
			WarehouseID: warehouse.ID,
			Notes:       rec.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		err = uc.txRunner.Run(ctx, func(
			itemRepo repository.ItemRepository,
			historyRepo repository.ItemHistoryRepository,
			_ repository.StockRepository,
			_ repository.StockMovementRepository,
		) error {
			if err := itemRepo.Create(item); err != nil {
				return err
			}
			return historyRepo.Create(&entity.ItemHistory{
				ID:        uuid.New().String(),
				ItemID:    item.ID,
				Action:    entity.HistoryActionSync,
				Field:     "status",
				NewValue:  status,
				ActorName: rec.ArtacomUser,
				Metadata:  meta,
				CreatedAt: now,
			})
		})
		return true, err
	}

	// A locally soft-deleted item stays untouched: partner data must not
	// silently mutate an item an operator hid from every listing. The
	// record lands in the run's error list so the conflict is visible.
	if existing.Deleted {
		return false, fmt.Errorf("item %s is soft-deleted locally", rec.SN)
	}

	// Known serial number: update changed fields, one history row per field.
	type fieldChange struct {
		field, oldVal, newVal string
	}
	var changes []fieldChange
	if existing.Status != status {
		changes = append(changes, fieldChange{"status", existing.Status, status})
		existing.Status = status
	}
	if rec.MAC != "" && existing.MAC != rec.MAC {
		changes = append(changes, fieldChange{"mac", existing.MAC, rec.MAC})
		existing.MAC = rec.MAC
	}
	if rec.Notes != "" && existing.Notes != rec.Notes {
		changes = append(changes, fieldChange{"notes", existing.Notes, rec.Notes})
		existing.Notes = rec.Notes
	}
	if len(changes) == 0 {
		return false, nil
	}

	now := time.Now()
	existing.UpdatedAt = now
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		historyRepo repository.ItemHistoryRepository,
		_ repository.StockRepository,
		_ repository.StockMovementRepository,
	) error {
		if err := itemRepo.Update(existing); err != nil {
			return err
		}
		for _, ch := range changes {
			h := &entity.ItemHistory{
				ID:        uuid.New().String(),
				ItemID:    existing.ID,
				Action:    entity.HistoryActionSync,
				Field:     ch.field,
				OldValue:  ch.oldVal,
				NewValue:  ch.newVal,
				ActorName: rec.ArtacomUser,
				Metadata:  meta,
				CreatedAt: now,
			}
			if err := historyRepo.Create(h); err != nil {
				return err
			}
		}
		return nil
	})
	return false, err
}

func (uc *SyncUseCase) finish(run *entity.SyncRun, status string, errs []recordError) {
	now := time.Now()
	run.Status = status
	run.FinishedAt = &now
	if len(errs) > 0 {
		if b, err := json.Marshal(errs); err == nil {
			run.Errors = b
		}
	}
	if err := uc.syncRepo.Update(run); err != nil {
		uc.log.Error().Err(err).Str("run_id", run.ID).Msg("persist sync run failed")
	}
}

// Status returns the latest sync run, or nil when none exists yet.
func (uc *SyncUseCase) Status() (*dto.SyncRunResponse, error) {
	run, err := uc.syncRepo.GetLatest()
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, nil
	}
	return toSyncRunResponse(run), nil
}

// History returns past sync runs, newest first.
func (uc *SyncUseCase) History(limit, offset int) (*dto.SyncRunListResponse, error) {
	runs, err := uc.syncRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SyncRunListResponse{Data: make([]dto.SyncRunResponse, 0, len(runs))}
	for _, r := range runs {
		out.Data = append(out.Data, *toSyncRunResponse(r))
	}
	return out, nil
}

// Inventory fetches the partner inventory without applying it (preview).
func (uc *SyncUseCase) Inventory(ctx context.Context) (*dto.ArtacomInventoryResponse, error) {
	records, err := uc.fetcher.FetchInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return &dto.ArtacomInventoryResponse{Data: records}, nil
}

func toSyncRunResponse(r *entity.SyncRun) *dto.SyncRunResponse {
	return &dto.SyncRunResponse{
		ID:         r.ID,
		Status:     r.Status,
		Fetched:    r.Fetched,
		Created:    r.Created,
		Updated:    r.Updated,
		Failed:     r.Failed,
		Errors:     r.Errors,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
}
