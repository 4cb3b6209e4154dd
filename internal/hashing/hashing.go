// Package hashing provides position hashing and repetition counting.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// RepetitionTable counts how often each position has occurred.
// Hashes only bucket the entries; two positions are counted as the same
// occurrence only when Position.RepetitionOf agrees.
type RepetitionTable struct {
	// buckets maps a Zobrist hash to the distinct positions seen with it
	buckets map[uint64][]entry
	// total is the number of positions added
	total int
}

type entry struct {
	pos   chess.Position
	count int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		buckets: make(map[uint64][]entry),
	}
}

// Add records one occurrence of pos and returns how many times it has now
// been seen, including this one.
func (t *RepetitionTable) Add(pos *chess.Position) int {
	hash := Hash(pos)
	t.total++

	bucket := t.buckets[hash]
	for i := range bucket {
		if bucket[i].pos.RepetitionOf(pos) {
			bucket[i].count++
			return bucket[i].count
		}
	}

	t.buckets[hash] = append(bucket, entry{pos: *pos, count: 1})
	return 1
}

// Count returns how many times pos has been recorded.
func (t *RepetitionTable) Count(pos *chess.Position) int {
	for _, e := range t.buckets[Hash(pos)] {
		if e.pos.RepetitionOf(pos) {
			return e.count
		}
	}
	return 0
}

// MaxCount returns the highest occurrence count of any position.
func (t *RepetitionTable) MaxCount() int {
	highest := 0
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			if e.count > highest {
				highest = e.count
			}
		}
	}
	return highest
}

// Total returns the number of positions added.
func (t *RepetitionTable) Total() int {
	return t.total
}

// UniqueCount returns the number of distinct positions added.
func (t *RepetitionTable) UniqueCount() int {
	count := 0
	for _, bucket := range t.buckets {
		count += len(bucket)
	}
	return count
}

// DuplicateCount returns how many additions repeated an earlier position.
func (t *RepetitionTable) DuplicateCount() int {
	return t.total - t.UniqueCount()
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.buckets = make(map[uint64][]entry)
	t.total = 0
}
