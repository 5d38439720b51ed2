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

var testActor = audit.Actor{ID: "u1", Name: "Budi"}

type memRoleRepo struct {
	roles map[string]*entity.Role
}

func newMemRoleRepo() *memRoleRepo {
	return &memRoleRepo{roles: make(map[string]*entity.Role)}
}

func (m *memRoleRepo) Create(r *entity.Role) error { m.roles[r.ID] = r; return nil }
func (m *memRoleRepo) GetByID(id string) (*entity.Role, error) {
	return m.roles[id], nil
}
func (m *memRoleRepo) GetByName(name string) (*entity.Role, error) {
	for _, r := range m.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}
func (m *memRoleRepo) Update(r *entity.Role) error { m.roles[r.ID] = r; return nil }
func (m *memRoleRepo) Delete(id string) error      { delete(m.roles, id); return nil }
func (m *memRoleRepo) List() ([]*entity.Role, error) {
	var out []*entity.Role
	for _, r := range m.roles {
		out = append(out, r)
	}
	return out, nil
}

// holderCountRepo only serves CountByRole; the rest is unused by RoleUseCase.
type holderCountRepo struct {
	count int
}

func (h *holderCountRepo) Create(*entity.User) error               { return nil }
func (h *holderCountRepo) GetByID(string) (*entity.User, error)    { return nil, nil }
func (h *holderCountRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (h *holderCountRepo) GetWithRole(string) (*entity.User, *entity.Role, error) {
	return nil, nil, nil
}
func (h *holderCountRepo) Update(*entity.User) error             { return nil }
func (h *holderCountRepo) List(int, int) ([]*entity.User, error) { return nil, nil }
func (h *holderCountRepo) CountByRole(string) (int, error)       { return h.count, nil }

type auditSink struct {
	rows []*entity.AuditLog
}

func (a *auditSink) Create(l *entity.AuditLog) error { a.rows = append(a.rows, l); return nil }
func (a *auditSink) List(int, int) ([]*entity.AuditLog, error) {
	return a.rows, nil
}
func (a *auditSink) ListByEntity(string, string, int, int) ([]*entity.AuditLog, error) {
	return a.rows, nil
}

func newRoleFixture(holders int) (*usecase.RoleUseCase, *memRoleRepo, *auditSink) {
	roles := newMemRoleRepo()
	sink := &auditSink{}
	auditor := audit.NewRecorder(sink, logger.New(logger.Config{Env: "test", Level: "error"}))
	uc := usecase.NewRoleUseCase(roles, &holderCountRepo{count: holders}, auditor)
	return uc, roles, sink
}

func TestRoleCreate_DuplicateNameRejected(t *testing.T) {
	uc, _, _ := newRoleFixture(0)
	_, err := uc.Create(testActor, dto.CreateRoleRequest{Name: "teknisi", Permissions: []string{"items.view"}})
	require.NoError(t, err)

	_, err = uc.Create(testActor, dto.CreateRoleRequest{Name: "teknisi"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// A role still held by users must not be deletable.
func TestRoleDelete_InUseRejected(t *testing.T) {
	uc, roles, _ := newRoleFixture(3)
	created, err := uc.Create(testActor, dto.CreateRoleRequest{Name: "gudang"})
	require.NoError(t, err)

	err = uc.Delete(testActor, created.ID)
	assert.ErrorIs(t, err, domain.ErrRoleInUse)
	assert.NotNil(t, roles.roles[created.ID], "role must survive the rejected delete")
}

func TestRoleDelete_UnusedRoleRemoved(t *testing.T) {
	uc, roles, sink := newRoleFixture(0)
	created, err := uc.Create(testActor, dto.CreateRoleRequest{Name: "temp"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(testActor, created.ID))
	assert.Nil(t, roles.roles[created.ID])

	// CREATE + DELETE audit rows.
	require.Len(t, sink.rows, 2)
	assert.Equal(t, entity.AuditActionDelete, sink.rows[1].Action)
}

func TestRoleUpdate_ReplacesPermissionSet(t *testing.T) {
	uc, _, _ := newRoleFixture(0)
	created, err := uc.Create(testActor, dto.CreateRoleRequest{Name: "teknisi", Permissions: []string{"items.view"}})
	require.NoError(t, err)

	out, err := uc.Update(testActor, created.ID, dto.UpdateRoleRequest{
		Permissions: []string{"items.view", "items.move"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"items.view", "items.move"}, out.Permissions)
}

func TestRoleUpdate_RenameToTakenNameRejected(t *testing.T) {
	uc, _, _ := newRoleFixture(0)
	_, err := uc.Create(testActor, dto.CreateRoleRequest{Name: "admin"})
	require.NoError(t, err)
	other, err := uc.Create(testActor, dto.CreateRoleRequest{Name: "teknisi"})
	require.NoError(t, err)

	_, err = uc.Update(testActor, other.ID, dto.UpdateRoleRequest{Name: "admin"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
