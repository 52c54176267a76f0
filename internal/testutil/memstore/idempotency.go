package memstore

import (
	"context"
	"sync"

	"github.com/jhoicas/inventory-orders-api/internal/application/inventory"
)

var _ inventory.IdempotencyStore = (*IdempotencyStore)(nil)

// IdempotencyStore claves reservadas en memoria (sin expiración).
// Como el cliente Redis, falla con ctx.Err() si el contexto ya terminó.
type IdempotencyStore struct {
	mu   sync.Mutex
	keys map[string]bool
	// Err si no es nil lo devuelve Reserve (simula Redis caído).
	Err error
}

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{keys: make(map[string]bool)}
}

func (m *IdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if m.keys[key] {
		return false, nil
	}
	m.keys[key] = true
	return true, nil
}

func (m *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, key)
	return nil
}

// Reserved indica si la clave sigue tomada.
func (m *IdempotencyStore) Reserved(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keys[key]
}
