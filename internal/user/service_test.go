package user

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byID    map[string]*User
	byEmail map[string]*User
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
	}
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return ErrEmailAlreadyUsed
	}
	f.nextID++
	u.ID = "user-" + strconv.Itoa(f.nextID)
	u.CreatedAt = time.Now()
	clone := *u
	f.byID[u.ID] = &clone
	f.byEmail[u.Email] = &clone
	return nil
}

func (f *fakeRepo) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	if u, ok := f.byID[id]; ok {
		u.LastLoginAt = &t
	}
	return nil
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*User, int, error) {
	var out []*User
	for _, u := range f.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(_ context.Context, u *User) error {
	stored, ok := f.byID[u.ID]
	if !ok {
		return ErrNotFound
	}
	*stored = *u
	return nil
}

// fakeHasher avoids bcrypt cost in unit tests.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func newTestService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, fakeHasher{}), repo
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		u, err := svc.Register(ctx, "  Ana@Example.com ", "password123", "Ana Anic", "064 123 4567")
		require.NoError(t, err)

		assert.Equal(t, "ana@example.com", u.Email, "email is normalized")
		require.NotNil(t, u.Phone)
		assert.Equal(t, "0641234567", *u.Phone, "phone is normalized")
		assert.False(t, u.Verified, "new accounts start unverified")
		assert.False(t, u.IsAdmin)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, "ana@example.com", "password123", "Other Ana", "")
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("Short password", func(t *testing.T) {
		_, err := svc.Register(ctx, "new@example.com", "short", "New User", "")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("Missing name", func(t *testing.T) {
		_, err := svc.Register(ctx, "new@example.com", "password123", "   ", "")
		assert.ErrorIs(t, err, ErrFullNameRequired)
	})

	t.Run("Invalid phone", func(t *testing.T) {
		_, err := svc.Register(ctx, "new@example.com", "password123", "New User", "12345")
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("Phone is optional", func(t *testing.T) {
		u, err := svc.Register(ctx, "nophone@example.com", "password123", "No Phone", "")
		require.NoError(t, err)
		assert.Nil(t, u.Phone)
	})
}

func TestLogin(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "ana@example.com", "password123", "Ana Anic", "")
	require.NoError(t, err)

	t.Run("Success updates last login", func(t *testing.T) {
		u, err := svc.Login(ctx, "Ana@Example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)

		stored := repo.byID[registered.ID]
		assert.NotNil(t, stored.LastLoginAt)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "ana@example.com", "nope-nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Disabled account", func(t *testing.T) {
		repo.byEmail["ana@example.com"].Disabled = true
		_, err := svc.Login(ctx, "ana@example.com", "password123")
		assert.ErrorIs(t, err, ErrDisabledUser)
	})
}

func TestUpdate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "ana@example.com", "password123", "Ana Anic", "")
	require.NoError(t, err)

	t.Run("Verify flag", func(t *testing.T) {
		verified := true
		updated, err := svc.Update(ctx, u.ID, UpdateRequest{Verified: &verified})
		require.NoError(t, err)
		assert.True(t, updated.Verified)
	})

	t.Run("Blank name rejected", func(t *testing.T) {
		blank := "  "
		_, err := svc.Update(ctx, u.ID, UpdateRequest{FullName: &blank})
		assert.ErrorIs(t, err, ErrFullNameRequired)
	})

	t.Run("Clearing phone", func(t *testing.T) {
		empty := ""
		updated, err := svc.Update(ctx, u.ID, UpdateRequest{Phone: &empty})
		require.NoError(t, err)
		assert.Nil(t, updated.Phone)
	})

	t.Run("Unknown user", func(t *testing.T) {
		verified := true
		_, err := svc.Update(ctx, "missing", UpdateRequest{Verified: &verified})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestVerify(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "ana@example.com", "password123", "Ana Anic", "")
	require.NoError(t, err)
	require.False(t, u.Verified)

	verified, err := svc.Verify(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, verified.Verified)
}
