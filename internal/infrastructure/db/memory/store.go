// Package memory holds process-local repositories used when
// STORE_BACKEND=memory and in tests. Records are copied on the way in and
// on the way out so callers never share memory with the store.
package memory

import (
	"sort"
	"sync"
)

// Store groups the three repositories over one lock.
type Store struct {
	mu       sync.RWMutex
	users    map[string]userRecord
	products map[string]productRecord
	orders   map[string]orderRecord
	seq      uint64
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]userRecord),
		products: make(map[string]productRecord),
		orders:   make(map[string]orderRecord),
	}
}

func (s *Store) Users() *UserRepository       { return &UserRepository{s: s} }
func (s *Store) Products() *ProductRepository { return &ProductRepository{s: s} }
func (s *Store) Orders() *OrderRepository     { return &OrderRepository{s: s} }

// next returns an insertion sequence number. It breaks CreatedAt ties so
// listings stay stable. Caller must hold the write lock.
func (s *Store) next() uint64 {
	s.seq++
	return s.seq
}

type sequenced interface {
	sortKey() (int64, uint64)
}

// newestFirst sorts records by creation time descending, then by insertion
// order descending.
func newestFirst[T sequenced](items []T) {
	sort.Slice(items, func(i, j int) bool {
		ti, si := items[i].sortKey()
		tj, sj := items[j].sortKey()
		if ti != tj {
			return ti > tj
		}
		return si > sj
	})
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
