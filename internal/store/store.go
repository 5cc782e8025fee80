package store

import (
	"math/rand/v2"
	"time"

	"github.com/ytget/desktop-app/internal/model"
)

// Sample data constants
const (
	FirstID         = 1
	SampleBatchSize = 5
	MaxSampleValue  = 1000.0
)

// SampleNames lists the names used for generated rows
var SampleNames = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon",
	"Zeta", "Eta", "Theta", "Iota", "Kappa",
}

// Option configures a Store
type Option func(*Store)

// WithRandom sets the source of values in [0, 1)
func WithRandom(random func() float64) Option {
	return func(s *Store) {
		s.random = random
	}
}

// WithClock sets the time source for row timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store keeps rows in insertion order and assigns increasing IDs
type Store struct {
	rows      []model.Row
	nextID    int
	updatedAt time.Time

	random func() float64
	now    func() time.Time
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{
		nextID: FirstID,
		random: rand.Float64,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AppendSampleRows appends one batch of generated rows
func (s *Store) AppendSampleRows() {
	now := s.now()
	for _, name := range SampleNames[:SampleBatchSize] {
		s.rows = append(s.rows, model.Row{
			ID:    s.nextID,
			Name:  name,
			Value: s.random() * MaxSampleValue,
			Date:  now,
		})
		s.nextID++
	}
	s.updatedAt = now
}

// Clear removes all rows and resets the ID counter
func (s *Store) Clear() {
	s.rows = nil
	s.nextID = FirstID
	s.updatedAt = s.now()
}

// All returns the rows in insertion order. The slice is shared with the store.
func (s *Store) All() []model.Row {
	return s.rows
}

// Count returns the number of rows
func (s *Store) Count() int {
	return len(s.rows)
}

// NextID returns the ID the next appended row will get
func (s *Store) NextID() int {
	return s.nextID
}

// UpdatedAt returns the time of the last mutation, zero if none happened yet
func (s *Store) UpdatedAt() time.Time {
	return s.updatedAt
}
