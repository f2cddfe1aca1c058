// Package validation classifies ticket codes at the door and drives the
// one-way ISSUED -> USED check-in transition. Lookup is a pure function
// of (code, events, tickets); the engine keeps no state between calls.
package validation

import (
	"strings"

	"github.com/huyi122/Ticket-Master/model"
	"github.com/huyi122/Ticket-Master/store"
	"github.com/huyi122/Ticket-Master/utils"
)

type Outcome string

const (
	NotFound    Outcome = "NOT_FOUND"
	Archived    Outcome = "ARCHIVED"
	ValidUsed   Outcome = "VALID_USED"
	ValidUnused Outcome = "VALID_UNUSED"
)

// Result carries the matched ticket and event for display. Ticket and
// Event are nil for NOT_FOUND; Event may be nil for ARCHIVED when the
// owning event no longer exists.
type Result struct {
	Outcome Outcome
	Ticket  *model.Ticket
	Event   *model.Event
}

// Lookup classifies a candidate code. An archived or missing event wins
// over the ticket's own status: its tickets are never usable, used or not.
func Lookup(events []model.Event, tickets []model.Ticket, code string) Result {
	code = strings.TrimSpace(code)

	var ticket *model.Ticket
	for i := range tickets {
		if tickets[i].Code == code {
			t := tickets[i]
			ticket = &t
			break
		}
	}
	if ticket == nil {
		return Result{Outcome: NotFound}
	}

	var event *model.Event
	if e, ok := store.FindEvent(events, ticket.EventID); ok {
		event = &e
	}
	if event == nil || event.IsArchived {
		return Result{Outcome: Archived, Ticket: ticket, Event: event}
	}

	if ticket.Status == model.TicketUsed {
		return Result{Outcome: ValidUsed, Ticket: ticket, Event: event}
	}
	return Result{Outcome: ValidUnused, Ticket: ticket, Event: event}
}

// CheckIn marks the ticket USED at now. Permitted only from VALID_UNUSED;
// the engine does not re-check that here, so a caller driving it directly
// must re-derive the outcome before each call (the handlers do).
func CheckIn(tickets []model.Ticket, ticketID string, now int64) []model.Ticket {
	return store.UpdateTicket(tickets, ticketID, model.TicketPatch{
		Status: model.TicketUsed,
		UsedAt: utils.Ptr(now),
	})
}
