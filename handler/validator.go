package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huyi122/Ticket-Master/model"
	"github.com/huyi122/Ticket-Master/validation"
)

// Validate classifies a code and, when asked, checks the guest in. The
// outcome is re-derived immediately before the transition so a stale
// lookup can never double check-in a ticket.
func (a *App) Validate(ctx context.Context, code string, checkIn bool) error {
	code = strings.TrimSpace(code)
	if code == "" {
		// empty input is a no-op, the engine is not invoked
		return nil
	}

	res := validation.Lookup(a.Store.Events(), a.Store.Tickets(), code)
	a.printOutcome(code, res)

	if !checkIn || res.Outcome != validation.ValidUnused {
		return nil
	}

	now := time.Now().UnixMilli()
	ticketID := res.Ticket.ID
	err := a.Store.Apply(ctx, func(events []model.Event, tickets []model.Ticket) ([]model.Event, []model.Ticket) {
		// the single-invocation guard: only transition from VALID_UNUSED
		if validation.Lookup(events, tickets, code).Outcome != validation.ValidUnused {
			return events, tickets
		}
		return events, validation.CheckIn(tickets, ticketID, now)
	})
	if err != nil {
		return err
	}

	after := validation.Lookup(a.Store.Events(), a.Store.Tickets(), code)
	a.printOutcome(code, after)
	a.Log.Info().Str("code", code).Msg("guest checked in")
	return nil
}

func (a *App) printOutcome(code string, res validation.Result) {
	switch res.Outcome {
	case validation.NotFound:
		fmt.Printf("INVALID: %q does not exist\n", code)
	case validation.Archived:
		fmt.Printf("ARCHIVED: the event for %q has been archived\n", code)
	case validation.ValidUsed:
		usedAt := "unknown time"
		if res.Ticket.UsedAt != nil {
			usedAt = time.UnixMilli(*res.Ticket.UsedAt).Format(time.RFC1123)
		}
		fmt.Printf("ALREADY USED: %q was used on %s\n", code, usedAt)
	case validation.ValidUnused:
		fmt.Printf("VALID: %q (%s) is ready for check-in\n", code, res.Event.Name)
	}
}
