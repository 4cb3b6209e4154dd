package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ThreadSafeRepetitionTable wraps RepetitionTable with mutex protection for
// concurrent access, e.g. from batch validation workers.
type ThreadSafeRepetitionTable struct {
	table *RepetitionTable
	mu    sync.RWMutex
}

// NewThreadSafeRepetitionTable creates an empty concurrent table.
func NewThreadSafeRepetitionTable() *ThreadSafeRepetitionTable {
	return &ThreadSafeRepetitionTable{
		table: NewRepetitionTable(),
	}
}

// Add atomically records pos and returns its new occurrence count.
func (t *ThreadSafeRepetitionTable) Add(pos *chess.Position) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Add(pos)
}

// Count returns how many times pos has been recorded.
func (t *ThreadSafeRepetitionTable) Count(pos *chess.Position) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Count(pos)
}

// DuplicateCount returns how many additions repeated an earlier position.
func (t *ThreadSafeRepetitionTable) DuplicateCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.DuplicateCount()
}

// UniqueCount returns the number of distinct positions added.
func (t *ThreadSafeRepetitionTable) UniqueCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.UniqueCount()
}
