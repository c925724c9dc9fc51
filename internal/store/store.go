// Package store keeps boards by id for the service.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golboard/pkg/life"
)

var (
	// ErrNotFound is returned when no board is stored under an id.
	ErrNotFound = errors.New("store: board not found")
	// ErrExists is returned when creating a board under a taken id.
	ErrExists = errors.New("store: board already exists")
)

// Store is the board persistence contract used by the gateway.
type Store interface {
	Exists(ctx context.Context, id int64) (bool, error)
	Get(ctx context.Context, id int64) (*life.Board, error)
	Create(ctx context.Context, b *life.Board) (*life.Board, error)
	Put(ctx context.Context, b *life.Board) (*life.Board, error)
	// Update runs fn on the stored board with exclusive access and persists
	// the result. fn must not retain the board.
	Update(ctx context.Context, id int64, fn func(*life.Board) error) (*life.Board, error)
}

type entry struct {
	mu    sync.Mutex
	board *life.Board
}

// Memory is an in-process Store. Boards are copied on the way in and out so
// callers never share grids with the store.
type Memory struct {
	mu     sync.RWMutex
	boards map[int64]*entry
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{boards: map[int64]*entry{}}
}

func (m *Memory) lookup(id int64) (*entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.boards[id]
	return e, ok
}

// Exists reports whether a board is stored under id.
func (m *Memory) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := m.lookup(id)
	return ok, nil
}

// Get returns a copy of the board stored under id.
func (m *Memory) Get(ctx context.Context, id int64) (*life.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, ok := m.lookup(id)
	if !ok {
		return nil, fmt.Errorf("get %d: %w", id, ErrNotFound)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.Clone(), nil
}

// Create stores a new board. It fails with ErrExists if the id is taken.
func (m *Memory) Create(ctx context.Context, b *life.Board) (*life.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.boards[b.ID]; ok {
		return nil, fmt.Errorf("create %d: %w", b.ID, ErrExists)
	}
	m.boards[b.ID] = &entry{board: b.Clone()}
	return b, nil
}

// Put replaces an existing board. It fails with ErrNotFound if the id is unknown.
func (m *Memory) Put(ctx context.Context, b *life.Board) (*life.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, ok := m.lookup(b.ID)
	if !ok {
		return nil, fmt.Errorf("put %d: %w", b.ID, ErrNotFound)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.board = b.Clone()
	return b, nil
}

// Update serializes fn against all other operations on the same id. The board
// is persisted only when fn succeeds.
func (m *Memory) Update(ctx context.Context, id int64, fn func(*life.Board) error) (*life.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, ok := m.lookup(id)
	if !ok {
		return nil, fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	work := e.board.Clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	e.board = work.Clone()
	return work, nil
}
