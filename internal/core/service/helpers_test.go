package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/infrastructure/db/memory"
)

var discardLogger = zerolog.Nop()

func newTestHasher() *BcryptHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

type stubMailQueue struct {
	mu   sync.Mutex
	sent []domain.MailMessage
	full bool
}

func (q *stubMailQueue) Enqueue(msg domain.MailMessage) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.full {
		return false
	}
	q.sent = append(q.sent, msg)
	return true
}

type publishedEvent struct {
	subject string
	payload any
}

type stubPublisher struct {
	events []publishedEvent
	err    error
}

func (p *stubPublisher) Publish(_ context.Context, subject string, payload any) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{subject: subject, payload: payload})
	return nil
}

// seedUser inserts a user directly and returns its actor.
func seedUser(store *memory.Store, id string, role domain.Role) domain.Actor {
	u := &domain.User{ID: id, Email: id + "@example.com", Name: "User " + id, Role: role}
	if err := store.Users().Create(context.Background(), u); err != nil {
		panic(err)
	}
	return u.Actor()
}
