// Package store keeps the cells hosted by one process.
package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/tracecell/internal/cell"
	apperrors "github.com/louisbranch/tracecell/internal/platform/errors"
)

var (
	// ErrCellRequired indicates a missing cell.
	ErrCellRequired = errors.New("cell is required")
	// ErrDuplicateCell indicates a cell id that is already stored.
	ErrDuplicateCell = errors.New("cell id already stored")
)

// Entry is a hosted cell and the policy name it was created with.
type Entry struct {
	Cell      *cell.Cell
	Policy    string
	CreatedAt time.Time
}

// Memory stores cells in memory. Disposed cells stay addressable so later
// calls observe the disposed state instead of NotFound.
type Memory struct {
	mu    sync.Mutex
	cells map[uuid.UUID]Entry
	now   func() time.Time
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{
		cells: make(map[uuid.UUID]Entry),
		now:   time.Now,
	}
}

// Put stores a new cell.
func (m *Memory) Put(ctx context.Context, entry Entry) (Entry, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return Entry{}, err
		}
	}
	if m == nil {
		return Entry{}, errors.New("cell store is required")
	}
	if entry.Cell == nil {
		return Entry{}, ErrCellRequired
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = m.now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := entry.Cell.ID()
	if _, ok := m.cells[id]; ok {
		return Entry{}, ErrDuplicateCell
	}
	m.cells[id] = entry
	return entry, nil
}

// Get retrieves a cell by id.
func (m *Memory) Get(ctx context.Context, id uuid.UUID) (Entry, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return Entry{}, err
		}
	}
	if m == nil {
		return Entry{}, errors.New("cell store is required")
	}

	m.mu.Lock()
	entry, ok := m.cells[id]
	m.mu.Unlock()

	if !ok {
		return Entry{}, notFound(id)
	}
	return entry, nil
}

// List returns every stored cell, oldest first.
func (m *Memory) List(ctx context.Context) ([]Entry, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if m == nil {
		return nil, errors.New("cell store is required")
	}

	m.mu.Lock()
	out := make([]Entry, 0, len(m.cells))
	for _, entry := range m.cells {
		out = append(out, entry)
	}
	m.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Cell.ID().String() < out[j].Cell.ID().String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// ParseID parses a cell id from its string form.
func ParseID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, apperrors.WithMetadata(
			apperrors.CodeCellIDInvalid,
			"invalid cell id "+raw,
			map[string]string{"CellID": raw},
		)
	}
	return id, nil
}

func notFound(id uuid.UUID) error {
	return apperrors.WithMetadata(
		apperrors.CodeNotFound,
		"cell "+id.String()+" not found",
		map[string]string{"Resource": "cell " + id.String()},
	)
}
