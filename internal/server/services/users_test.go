package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/usersrpc/internal/common"
	"github.com/dmitrijs2005/usersrpc/internal/cryptox"
	"github.com/dmitrijs2005/usersrpc/internal/server/idgen"
	"github.com/dmitrijs2005/usersrpc/internal/server/models"
	"github.com/dmitrijs2005/usersrpc/internal/server/repositories/users"
)

// --- helpers ---

func newTestService() *UserService {
	repo := users.NewInMemoryRepository(idgen.NewSequenceAllocator())
	return NewUserService(repo, cryptox.SHA256Hasher{})
}

type fakeRepo struct {
	users.Repository

	listPage, listSize int
	lastUpdate         models.UserUpdate
	err                error
}

func (f *fakeRepo) List(_ context.Context, page, pageSize int) ([]*models.User, int, error) {
	f.listPage, f.listSize = page, pageSize
	return []*models.User{}, 0, f.err
}

func (f *fakeRepo) Update(_ context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	f.lastUpdate = upd
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: id, Name: upd.Name, Email: upd.Email, PasswordHash: upd.PasswordHash}, nil
}

func (f *fakeRepo) Get(context.Context, string) (*models.User, error) {
	return nil, f.err
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("boom") }

func violatedFields(t *testing.T, err error) []string {
	t.Helper()
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	require.ErrorIs(t, err, common.ErrorInvalidArgument)
	return verr.Fields()
}

// --- tests ---

func TestCreateUser_HashesPassword(t *testing.T) {
	s := newTestService()

	u, err := s.CreateUser(context.Background(), "John Doe", "john@example.com", "password123")
	require.NoError(t, err)

	assert.Equal(t, "1", u.ID)
	assert.Equal(t, "ef92b778bafe771e89245b89ecbc08a44a4e166c06659911881f383d4473e94f", u.PasswordHash)
	assert.NotEqual(t, "password123", u.PasswordHash)
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
}

func TestCreateUser_Validation(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name               string
		uname, email, pass string
		want               []string
	}{
		{"blank name", "   ", "a@example.com", "secret1", []string{"name"}},
		{"bad email", "A", "not-an-email", "secret1", []string{"email"}},
		{"empty email", "A", "", "secret1", []string{"email"}},
		{"short password", "A", "a@example.com", "12345", []string{"password"}},
		{"everything wrong", "", "x", "", []string{"name", "email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateUser(context.Background(), tt.uname, tt.email, tt.pass)
			assert.Equal(t, tt.want, violatedFields(t, err))
		})
	}

	list, total, err := s.ListUsers(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 0, total)
}

func TestCreateUser_PasswordLengthCountsCharacters(t *testing.T) {
	s := newTestService()

	_, err := s.CreateUser(context.Background(), "A", "a@example.com", "пароль")
	require.NoError(t, err)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "A", "a@example.com", "secret1")
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, "B", "a@example.com", "secret2")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, total, err := s.ListUsers(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestCreateUser_HasherFailureIsInternal(t *testing.T) {
	s := NewUserService(users.NewInMemoryRepository(idgen.NewSequenceAllocator()), failingHasher{})

	_, err := s.CreateUser(context.Background(), "A", "a@example.com", "secret1")
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestGetUser(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, err := s.GetUser(ctx, "")
	assert.Equal(t, []string{"id"}, violatedFields(t, err))

	_, err = s.GetUser(ctx, "42")
	require.ErrorIs(t, err, common.ErrorNotFound)

	created, err := s.CreateUser(ctx, "A", "a@example.com", "secret1")
	require.NoError(t, err)

	got, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestListUsers_PagingDefaults(t *testing.T) {
	tests := []struct {
		name               string
		page, size         int
		wantPage, wantSize int
	}{
		{"zeros select defaults", 0, 0, 1, DefaultPageSize},
		{"explicit values kept", 3, 7, 3, 7},
		{"size clamped", 1, 1000, 1, MaxPageSize},
		{"max size kept", 2, MaxPageSize, 2, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			s := NewUserService(repo, cryptox.SHA256Hasher{})

			_, _, err := s.ListUsers(context.Background(), tt.page, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, repo.listPage)
			assert.Equal(t, tt.wantSize, repo.listSize)
		})
	}
}

func TestListUsers_NegativePaging(t *testing.T) {
	s := newTestService()

	_, _, err := s.ListUsers(context.Background(), -1, -5)
	assert.Equal(t, []string{"page", "page_size"}, violatedFields(t, err))
}

func TestUpdateUser_PasswordOptional(t *testing.T) {
	repo := &fakeRepo{}
	s := NewUserService(repo, cryptox.SHA256Hasher{})
	ctx := context.Background()

	_, err := s.UpdateUser(ctx, "1", "A", "a@example.com", "")
	require.NoError(t, err)
	assert.Empty(t, repo.lastUpdate.PasswordHash)

	_, err = s.UpdateUser(ctx, "1", "A", "a@example.com", "newpassword")
	require.NoError(t, err)
	assert.Len(t, repo.lastUpdate.PasswordHash, 64)

	_, err = s.UpdateUser(ctx, "1", "A", "a@example.com", "short")
	assert.Equal(t, []string{"password"}, violatedFields(t, err))
}

func TestUpdateUser_Validation(t *testing.T) {
	s := newTestService()

	_, err := s.UpdateUser(context.Background(), "", "", "bad", "")
	assert.Equal(t, []string{"id", "name", "email"}, violatedFields(t, err))
}

func TestRepositoryErrorsAreClassified(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepo{err: errors.New("disk on fire")}
	s := NewUserService(repo, cryptox.SHA256Hasher{})
	_, err := s.GetUser(ctx, "1")
	require.ErrorIs(t, err, common.ErrorInternal)

	repo.err = context.DeadlineExceeded
	_, err = s.GetUser(ctx, "1")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, common.ErrorInternal)

	repo.err = common.ErrorNotFound
	_, err = s.UpdateUser(ctx, "1", "A", "a@example.com", "")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

// The original demo client flow: two creates, list, get, update, delete, list.
func TestUserService_DemoScenario(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	john, err := s.CreateUser(ctx, "John Doe", "john@example.com", "password123")
	require.NoError(t, err)
	jane, err := s.CreateUser(ctx, "Jane Smith", "jane@example.com", "password456")
	require.NoError(t, err)

	list, total, err := s.ListUsers(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2, total)
	assert.Equal(t, []string{john.ID, jane.ID}, []string{list[0].ID, list[1].ID})

	got, err := s.GetUser(ctx, john.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)

	updated, err := s.UpdateUser(ctx, john.ID, "John Updated", "john.updated@example.com", "newpassword123")
	require.NoError(t, err)
	assert.Equal(t, john.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	assert.NotEqual(t, john.PasswordHash, updated.PasswordHash)

	require.NoError(t, s.DeleteUser(ctx, jane.ID))

	list, total, err = s.ListUsers(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "John Updated", list[0].Name)

	err = s.DeleteUser(ctx, jane.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
}
