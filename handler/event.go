package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/huyi122/Ticket-Master/model"
	"github.com/huyi122/Ticket-Master/store"
	"github.com/huyi122/Ticket-Master/validate"
)

func (a *App) ListEvents(ctx context.Context, showArchived bool) error {
	events := a.Store.Events()
	tickets := a.Store.Tickets()

	n := 0
	for _, e := range events {
		if e.IsArchived != showArchived {
			continue
		}
		n++
		stats := store.EventStats(tickets, e.ID)
		fmt.Printf("%s  %-30s  %d/%d checked in\n", e.ID, e.Name, stats.Used, stats.Total)
	}
	if n == 0 {
		fmt.Println("no events")
	}
	return nil
}

func (a *App) CreateEvent(ctx context.Context, name, description string) error {
	input := model.CreateEventInput{Name: name, Description: description}
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}

	now := time.Now().UnixMilli()
	err := a.Store.Apply(ctx, func(events []model.Event, tickets []model.Ticket) ([]model.Event, []model.Ticket) {
		return store.CreateEvent(events, input, now), tickets
	})
	if err != nil {
		return err
	}
	a.Log.Info().Str("name", name).Msg("event created")
	return nil
}

func (a *App) UpdateEvent(ctx context.Context, eventID, name, description string) error {
	input := model.UpdateEventInput{EventID: eventID, Name: name, Description: description}
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("invalid event update: %w", err)
	}
	if _, ok := store.FindEvent(a.Store.Events(), eventID); !ok {
		fmt.Printf("event %s not found\n", eventID)
		return nil
	}

	return a.Store.Apply(ctx, func(events []model.Event, tickets []model.Ticket) ([]model.Event, []model.Ticket) {
		return store.UpdateEvent(events, input), tickets
	})
}

func (a *App) ArchiveEvent(ctx context.Context, eventID string) error {
	return a.Store.Apply(ctx, func(events []model.Event, tickets []model.Ticket) ([]model.Event, []model.Ticket) {
		return store.ArchiveEvent(events, eventID), tickets
	})
}

func (a *App) RestoreEvent(ctx context.Context, eventID string) error {
	return a.Store.Apply(ctx, func(events []model.Event, tickets []model.Ticket) ([]model.Event, []model.Ticket) {
		return store.RestoreEvent(events, eventID), tickets
	})
}

// DeleteEvent removes the event and every ticket it owns.
func (a *App) DeleteEvent(ctx context.Context, eventID string) error {
	before := len(a.Store.Tickets())
	err := a.Store.Apply(ctx, func(events []model.Event, tickets []model.Ticket) ([]model.Event, []model.Ticket) {
		return store.DeleteEvent(events, tickets, eventID)
	})
	if err != nil {
		return err
	}
	removed := before - len(a.Store.Tickets())
	a.Log.Info().Str("event", eventID).Int("tickets_removed", removed).Msg("event deleted")
	return nil
}
