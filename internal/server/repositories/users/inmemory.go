package users

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/usersrpc/internal/common"
	"github.com/dmitrijs2005/usersrpc/internal/server/idgen"
	"github.com/dmitrijs2005/usersrpc/internal/server/models"
)

// InMemoryRepository keeps users in process memory.
//
// Mutations hold the write lock across the uniqueness check and the write it
// guards; reads hold the read lock, so they only ever see whole mutations.
type InMemoryRepository struct {
	mu      sync.RWMutex
	users   map[string]*models.User
	byEmail map[string]string // email -> id of the live record
	order   []string          // ids in insertion order

	ids idgen.Allocator
	now func() time.Time
}

type Option func(*InMemoryRepository)

// WithClock replaces time.Now as the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *InMemoryRepository) {
		r.now = now
	}
}

func NewInMemoryRepository(ids idgen.Allocator, opts ...Option) *InMemoryRepository {
	r := &InMemoryRepository{
		users:   make(map[string]*models.User),
		byEmail: make(map[string]string),
		ids:     ids,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create allocates the id before taking the write lock, so a slow allocator
// (Redis) delays only its own request. A create rejected after allocation
// leaves a gap in the sequence.
func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if r.emailTaken(user.Email) {
		return nil, common.ErrorAlreadyExists
	}

	id, err := r.ids.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return nil, common.ErrorAlreadyExists
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, exists := r.users[id]; exists {
		return nil, fmt.Errorf("allocator returned live id %s", id)
	}

	now := r.now()
	stored := &models.User{
		ID:           id,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.users[id] = stored
	r.byEmail[stored.Email] = id
	r.order = append(r.order, id)

	return stored.Clone(), nil
}

func (r *InMemoryRepository) emailTaken(email string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, taken := r.byEmail[email]
	return taken
}

func (r *InMemoryRepository) Get(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u.Clone(), nil
}

func (r *InMemoryRepository) List(_ context.Context, page, pageSize int) ([]*models.User, int, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, common.ErrorInvalidArgument
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.order)
	result := []*models.User{}

	// page-1 past the last full page: nothing to return.
	if page-1 > (total-1)/pageSize || total == 0 {
		return result, total, nil
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	result = make([]*models.User, 0, end-start)
	for _, id := range r.order[start:end] {
		result = append(result, r.users[id].Clone())
	}
	return result, total, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if owner, taken := r.byEmail[upd.Email]; taken && owner != id {
		return nil, common.ErrorAlreadyExists
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// updated_at moves forward on every update even if the clock does not.
	now := r.now()
	if !now.After(u.UpdatedAt) {
		now = u.UpdatedAt.Add(time.Nanosecond)
	}

	if upd.Email != u.Email {
		delete(r.byEmail, u.Email)
		r.byEmail[upd.Email] = id
	}
	u.Name = upd.Name
	u.Email = upd.Email
	if upd.PasswordHash != "" {
		u.PasswordHash = upd.PasswordHash
	}
	u.UpdatedAt = now

	return u.Clone(), nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return common.ErrorNotFound
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	delete(r.users, id)
	delete(r.byEmail, u.Email)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return nil
}

// Count returns the number of live records.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
