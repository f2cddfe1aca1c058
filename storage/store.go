// Package storage owns the single in-process copy of the events and
// tickets collections: load once at startup, persist after every
// mutation, replace both collections atomically on import/restore.
package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/huyi122/Ticket-Master/model"
)

var ErrSnapshotInvalid = errors.New("snapshot document is malformed")

// SnapshotStore persists one BackupData document. Load returns (nil, nil)
// when no snapshot exists yet.
type SnapshotStore interface {
	Load(ctx context.Context) (*model.BackupData, error)
	Save(ctx context.Context, doc *model.BackupData) error
}

type Store struct {
	mu      sync.Mutex
	events  []model.Event
	tickets []model.Ticket
	snap    SnapshotStore
	log     zerolog.Logger
}

// Open rehydrates the collections from the snapshot store. A missing
// snapshot means a fresh install and yields empty collections; a malformed
// one fails Open rather than silently starting empty, so a later save
// cannot wipe data the operator still has on disk.
func Open(ctx context.Context, snap SnapshotStore, log zerolog.Logger) (*Store, error) {
	doc, err := snap.Load(ctx)
	if err != nil {
		return nil, err
	}

	s := &Store{snap: snap, log: log}
	if doc != nil {
		s.events = doc.Events
		s.tickets = doc.Tickets
	}
	log.Debug().Int("events", len(s.events)).Int("tickets", len(s.tickets)).Msg("state loaded")
	return s, nil
}

// Events returns a copy of the event collection.
func (s *Store) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Tickets returns a copy of the ticket collection.
func (s *Store) Tickets() []model.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// Snapshot builds the exportable document from the current collections.
func (s *Store) Snapshot() *model.BackupData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docLocked()
}

func (s *Store) docLocked() *model.BackupData {
	events := make([]model.Event, len(s.events))
	copy(events, s.events)
	tickets := make([]model.Ticket, len(s.tickets))
	copy(tickets, s.tickets)
	return &model.BackupData{
		Version:   model.BackupVersion,
		Timestamp: time.Now().UnixMilli(),
		Events:    events,
		Tickets:   tickets,
	}
}

// Apply runs one pure transform over both collections and persists the
// result. The transform must not retain the slices it is given.
func (s *Store) Apply(ctx context.Context, mutate func(events []model.Event, tickets []model.Ticket) ([]model.Event, []model.Ticket)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, tickets := mutate(s.events, s.tickets)
	s.events = events
	s.tickets = tickets
	return s.saveLocked(ctx)
}

// Replace swaps in both collections at once (import / restore). It is all
// or nothing: the caller validates the document first.
func (s *Store) Replace(ctx context.Context, events []model.Event, tickets []model.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = events
	s.tickets = tickets
	return s.saveLocked(ctx)
}

func (s *Store) saveLocked(ctx context.Context) error {
	if err := s.snap.Save(ctx, s.docLocked()); err != nil {
		s.log.Error().Err(err).Msg("failed to persist state")
		return err
	}
	return nil
}
