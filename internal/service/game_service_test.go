package service

import (
	"context"
	"testing"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory game/toy stubs ─────────────────────────────────────────────────

type stubGameRepo struct {
	games map[uuid.UUID]*model.Game
}

func newStubGameRepo() *stubGameRepo {
	return &stubGameRepo{games: make(map[uuid.UUID]*model.Game)}
}

func (r *stubGameRepo) Create(_ context.Context, g *model.Game) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	cloned := *g
	r.games[g.ID] = &cloned
	return nil
}

func (r *stubGameRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Game, error) {
	g, ok := r.games[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *g
	return &cloned, nil
}

func (r *stubGameRepo) List(_ context.Context, _ dto.GameFilter) ([]model.Game, error) {
	out := make([]model.Game, 0, len(r.games))
	for _, g := range r.games {
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGameRepo) Update(_ context.Context, g *model.Game) error {
	cloned := *g
	r.games[g.ID] = &cloned
	return nil
}

func (r *stubGameRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.games, id)
	return nil
}

func (r *stubGameRepo) ReplaceClauses(_ context.Context, g *model.Game, clauses []model.ToyClause) error {
	stored, ok := r.games[g.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.ToyClauses = clauses
	return nil
}

func (r *stubGameRepo) CountPackages(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

var _ repository.GameRepository = (*stubGameRepo)(nil)

type stubToyTypeRepo struct {
	types map[uuid.UUID]*model.ToyType
}

func newStubToyTypeRepo() *stubToyTypeRepo {
	return &stubToyTypeRepo{types: make(map[uuid.UUID]*model.ToyType)}
}

func (r *stubToyTypeRepo) Create(_ context.Context, tt *model.ToyType) error {
	if tt.ID == uuid.Nil {
		tt.ID = uuid.New()
	}
	cloned := *tt
	r.types[tt.ID] = &cloned
	return nil
}

func (r *stubToyTypeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ToyType, error) {
	tt, ok := r.types[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *tt
	return &cloned, nil
}

func (r *stubToyTypeRepo) FindByName(_ context.Context, name string) (*model.ToyType, error) {
	for _, tt := range r.types {
		if tt.Name == name {
			cloned := *tt
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubToyTypeRepo) List(_ context.Context, _ string) ([]model.ToyType, error) {
	out := make([]model.ToyType, 0, len(r.types))
	for _, tt := range r.types {
		out = append(out, *tt)
	}
	return out, nil
}

func (r *stubToyTypeRepo) Update(_ context.Context, tt *model.ToyType) error {
	cloned := *tt
	r.types[tt.ID] = &cloned
	return nil
}

func (r *stubToyTypeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.types, id)
	return nil
}

func (r *stubToyTypeRepo) CountGames(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

var _ repository.ToyTypeRepository = (*stubToyTypeRepo)(nil)

type stubToyClauseRepo struct {
	clauses map[uuid.UUID]*model.ToyClause
}

func newStubToyClauseRepo() *stubToyClauseRepo {
	return &stubToyClauseRepo{clauses: make(map[uuid.UUID]*model.ToyClause)}
}

func (r *stubToyClauseRepo) Create(_ context.Context, c *model.ToyClause) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cloned := *c
	r.clauses[c.ID] = &cloned
	return nil
}

func (r *stubToyClauseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ToyClause, error) {
	c, ok := r.clauses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *c
	return &cloned, nil
}

func (r *stubToyClauseRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.ToyClause, error) {
	var out []model.ToyClause
	for _, id := range ids {
		if c, ok := r.clauses[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubToyClauseRepo) List(_ context.Context, _ string) ([]model.ToyClause, error) {
	out := make([]model.ToyClause, 0, len(r.clauses))
	for _, c := range r.clauses {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubToyClauseRepo) Update(_ context.Context, c *model.ToyClause) error {
	cloned := *c
	r.clauses[c.ID] = &cloned
	return nil
}

func (r *stubToyClauseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clauses, id)
	return nil
}

var _ repository.ToyClauseRepository = (*stubToyClauseRepo)(nil)

func newTestGameService() (GameService, *stubGameRepo, *stubToyClauseRepo) {
	gameRepo := newStubGameRepo()
	clauseRepo := newStubToyClauseRepo()
	return NewGameService(gameRepo, newStubToyTypeRepo(), clauseRepo), gameRepo, clauseRepo
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCreateGameDefaultsCountersToQuantity(t *testing.T) {
	svc, _, _ := newTestGameService()

	resp, err := svc.Create(context.Background(), dto.CreateGameRequest{
		Name:      "Inflable Castillo",
		Quantity:  5,
		UnitPrice: dec("800"),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.ExcellentCount)
	assert.Equal(t, 5, resp.AvailableCount)
	assert.Equal(t, 0, resp.InUseCount)
}

func TestCreateGameRejectsInconsistentCounters(t *testing.T) {
	svc, _, _ := newTestGameService()

	_, err := svc.Create(context.Background(), dto.CreateGameRequest{
		Name:           "Inflable Castillo",
		Quantity:       5,
		ExcellentCount: 3,
		GoodCount:      1, // health sums 4, not 5
		AvailableCount: 5,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateCountersEnforcesBothSums(t *testing.T) {
	svc, _, _ := newTestGameService()

	created, err := svc.Create(context.Background(), dto.CreateGameRequest{
		Name:     "Inflable Castillo",
		Quantity: 4,
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	resp, err := svc.UpdateCounters(context.Background(), id, dto.UnitCountersRequest{
		ExcellentCount:   2,
		GoodCount:        1,
		BrokenCount:      1,
		AvailableCount:   3,
		MaintenanceCount: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.MaintenanceCount)

	_, err = svc.UpdateCounters(context.Background(), id, dto.UnitCountersRequest{
		ExcellentCount: 4,
		AvailableCount: 3, // availability sums 3, not 4
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateQuantityShiftsDeltaOntoDefaults(t *testing.T) {
	svc, _, _ := newTestGameService()

	created, err := svc.Create(context.Background(), dto.CreateGameRequest{
		Name:     "Inflable Castillo",
		Quantity: 4,
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	six := 6
	resp, err := svc.Update(context.Background(), id, dto.UpdateGameRequest{Quantity: &six})
	require.NoError(t, err)
	assert.Equal(t, 6, resp.ExcellentCount)
	assert.Equal(t, 6, resp.AvailableCount)
}

func TestAssignClausesReplacesSet(t *testing.T) {
	svc, _, clauseRepo := newTestGameService()

	c1 := &model.ToyClause{Name: "No mojar", IsActive: true}
	c2 := &model.ToyClause{Name: "Supervisión adulta", IsActive: true}
	require.NoError(t, clauseRepo.Create(context.Background(), c1))
	require.NoError(t, clauseRepo.Create(context.Background(), c2))

	created, err := svc.Create(context.Background(), dto.CreateGameRequest{
		Name:     "Inflable Castillo",
		Quantity: 1,
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.AssignClauses(context.Background(), id, dto.AssignClausesRequest{
		ClauseIDs: []string{c1.ID.String(), c2.ID.String()},
	})
	require.NoError(t, err)

	_, err = svc.AssignClauses(context.Background(), id, dto.AssignClausesRequest{
		ClauseIDs: []string{c1.ID.String(), uuid.NewString()},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
