package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
)

// UserRepository implements user.Repository over an in-process map
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int64]*user.User
	byMail map[string]int64
	nextID int64
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int64]*user.User),
		byMail: make(map[string]int64),
		nextID: 1,
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, exists := r.byMail[key]; exists {
		return errors.Conflict("Email already registered")
	}

	now := time.Now()
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = now
	u.UpdatedAt = now

	cp := *u
	r.users[u.ID] = &cp
	r.byMail[key] = u.ID
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User")
	}
	cp := *u
	return &cp, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byMail[strings.ToLower(email)]
	if !ok {
		return nil, errors.NotFound("User")
	}
	cp := *r.users[id]
	return &cp, nil
}

// Update updates a user
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.users[u.ID]
	if !ok {
		return errors.NotFound("User")
	}

	newKey := strings.ToLower(u.Email)
	oldKey := strings.ToLower(prev.Email)
	if newKey != oldKey {
		if _, taken := r.byMail[newKey]; taken {
			return errors.Conflict("Email already registered")
		}
		delete(r.byMail, oldKey)
		r.byMail[newKey] = u.ID
	}

	u.UpdatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

// Delete deletes a user
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return errors.NotFound("User")
	}
	delete(r.byMail, strings.ToLower(u.Email))
	delete(r.users, id)
	return nil
}

// List retrieves users ordered by ID with pagination
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	if offset >= len(all) {
		return []*user.User{}, total, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], total, nil
}
