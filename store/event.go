// Package store holds the pure collection operations behind every
// mutation: (current collection, input) -> new collection. Callers own
// the collections and persist the result; nothing in here has side
// effects or hidden state.
package store

import (
	"github.com/huyi122/Ticket-Master/model"
	"github.com/huyi122/Ticket-Master/utils"
)

// CreateEvent prepends the new event, newest first.
func CreateEvent(events []model.Event, input model.CreateEventInput, now int64) []model.Event {
	newEvent := model.Event{
		ID:          utils.NewUUID(),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		IsArchived:  false,
	}
	out := make([]model.Event, 0, len(events)+1)
	out = append(out, newEvent)
	return append(out, events...)
}

// UpdateEvent rewrites name and description only.
func UpdateEvent(events []model.Event, input model.UpdateEventInput) []model.Event {
	out := make([]model.Event, len(events))
	for i, e := range events {
		if e.ID == input.EventID {
			e.Name = input.Name
			e.Description = input.Description
		}
		out[i] = e
	}
	return out
}

func ArchiveEvent(events []model.Event, eventID string) []model.Event {
	return setArchived(events, eventID, true)
}

func RestoreEvent(events []model.Event, eventID string) []model.Event {
	return setArchived(events, eventID, false)
}

func setArchived(events []model.Event, eventID string, archived bool) []model.Event {
	out := make([]model.Event, len(events))
	for i, e := range events {
		if e.ID == eventID {
			e.IsArchived = archived
		}
		out[i] = e
	}
	return out
}

// DeleteEvent hard-deletes the event and cascades into the ticket
// collection: every ticket whose EventID matches goes with it.
func DeleteEvent(events []model.Event, tickets []model.Ticket, eventID string) ([]model.Event, []model.Ticket) {
	outEvents := make([]model.Event, 0, len(events))
	for _, e := range events {
		if e.ID != eventID {
			outEvents = append(outEvents, e)
		}
	}
	outTickets := make([]model.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.EventID != eventID {
			outTickets = append(outTickets, t)
		}
	}
	return outEvents, outTickets
}

// FindEvent returns a copy of the event with the given id.
func FindEvent(events []model.Event, eventID string) (model.Event, bool) {
	for _, e := range events {
		if e.ID == eventID {
			return e, true
		}
	}
	return model.Event{}, false
}
