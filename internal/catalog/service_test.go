package catalog

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	services map[string]*Service
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{services: make(map[string]*Service)}
}

func (f *fakeRepo) Create(_ context.Context, s *Service) error {
	f.nextID++
	s.ID = "svc-" + strconv.Itoa(f.nextID)
	clone := *s
	f.services[s.ID] = &clone
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeRepo) List(_ context.Context) ([]*Service, error) {
	var out []*Service
	for _, s := range f.services {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, s *Service) error {
	if _, ok := f.services[s.ID]; !ok {
		return ErrNotFound
	}
	clone := *s
	f.services[s.ID] = &clone
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.services[id]; !ok {
		return ErrNotFound
	}
	delete(f.services, id)
	return nil
}

func TestCatalogCreate(t *testing.T) {
	cat := NewCatalog(newFakeRepo())
	ctx := context.Background()

	t.Run("Success trims fields", func(t *testing.T) {
		svc, err := cat.Create(ctx, CreateRequest{
			Name:            "  Haircut  ",
			Price:           1500,
			DurationMinutes: 30,
			Description:     " Classic cut ",
		})
		require.NoError(t, err)
		assert.Equal(t, "Haircut", svc.Name)
		assert.Equal(t, "Classic cut", svc.Description)
		assert.NotEmpty(t, svc.ID)
	})

	t.Run("Empty name", func(t *testing.T) {
		_, err := cat.Create(ctx, CreateRequest{Name: "  ", Price: 1000, DurationMinutes: 30})
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("Non positive price", func(t *testing.T) {
		_, err := cat.Create(ctx, CreateRequest{Name: "Shave", Price: 0, DurationMinutes: 30})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("Off grid duration", func(t *testing.T) {
		_, err := cat.Create(ctx, CreateRequest{Name: "Shave", Price: 1000, DurationMinutes: 45})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}

func TestCatalogUpdate(t *testing.T) {
	repo := newFakeRepo()
	cat := NewCatalog(repo)
	ctx := context.Background()

	svc, err := cat.Create(ctx, CreateRequest{Name: "Haircut", Price: 1500, DurationMinutes: 30})
	require.NoError(t, err)

	t.Run("Partial update keeps other fields", func(t *testing.T) {
		price := 1800.0
		updated, err := cat.Update(ctx, svc.ID, UpdateRequest{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, 1800.0, updated.Price)
		assert.Equal(t, "Haircut", updated.Name)
		assert.Equal(t, 30, updated.DurationMinutes)
	})

	t.Run("Invalid new duration", func(t *testing.T) {
		bad := 45
		_, err := cat.Update(ctx, svc.ID, UpdateRequest{DurationMinutes: &bad})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("Unknown service", func(t *testing.T) {
		name := "Trim"
		_, err := cat.Update(ctx, "missing", UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCatalogDelete(t *testing.T) {
	repo := newFakeRepo()
	cat := NewCatalog(repo)
	ctx := context.Background()

	svc, err := cat.Create(ctx, CreateRequest{Name: "Haircut", Price: 1500, DurationMinutes: 30})
	require.NoError(t, err)

	require.NoError(t, cat.Delete(ctx, svc.ID))
	assert.ErrorIs(t, cat.Delete(ctx, svc.ID), ErrNotFound)
}

func TestDurationAllowed(t *testing.T) {
	assert.True(t, DurationAllowed(30))
	assert.True(t, DurationAllowed(60))
	assert.False(t, DurationAllowed(45))
	assert.False(t, DurationAllowed(0))
	assert.False(t, DurationAllowed(90))
}
