package memory

import (
	"context"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

type userRecord struct {
	user domain.User
	seq  uint64
}

func (r userRecord) sortKey() (int64, uint64) { return r.user.CreatedAt.UnixNano(), r.seq }

type UserRepository struct {
	s *Store
}

func cloneUser(u domain.User) *domain.User {
	if u.Phone != nil {
		v := *u.Phone
		u.Phone = &v
	}
	if u.Location != nil {
		v := *u.Location
		u.Location = &v
	}
	return &u
}

// Create stores u. Emails are unique exactly as stored; addresses that
// differ only in case are distinct accounts.
func (r *UserRepository) Create(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.users {
		if rec.user.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	r.s.users[u.ID] = userRecord{user: *cloneUser(*u), seq: r.s.next()}
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, rec := range r.s.users {
		if rec.user.Email == email {
			return cloneUser(rec.user), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(rec.user), nil
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.s.mu.RLock()
	recs := make([]userRecord, 0, len(r.s.users))
	for _, rec := range r.s.users {
		recs = append(recs, rec)
	}
	r.s.mu.RUnlock()

	newestFirst(recs)
	out := make([]*domain.User, len(recs))
	for i, rec := range recs {
		out[i] = cloneUser(rec.user)
	}
	return out, nil
}

func (r *UserRepository) Count(_ context.Context, role domain.Role) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, rec := range r.s.users {
		if role == "" || rec.user.Role == role {
			n++
		}
	}
	return n, nil
}
