package handler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/huyi122/Ticket-Master/backup"
	"github.com/huyi122/Ticket-Master/model"
	"github.com/huyi122/Ticket-Master/store"
	"github.com/huyi122/Ticket-Master/utils"
	"github.com/huyi122/Ticket-Master/validate"
)

func (a *App) ListTickets(ctx context.Context, eventID string) error {
	tickets := store.TicketsForEvent(a.Store.Tickets(), eventID)
	for _, t := range tickets {
		mark := " "
		if t.Status == model.TicketUsed {
			mark = "*"
		}
		fmt.Printf("%s %s  %s  %s\n", mark, t.ID, t.Code, t.Status)
	}
	if len(tickets) == 0 {
		fmt.Println("no tickets")
	}
	return nil
}

// GenerateTickets issues up to count fresh codes. The generator is
// bounded-effort: on a dense code space it may produce fewer, which is
// reported, not failed.
func (a *App) GenerateTickets(ctx context.Context, eventID string, count, length int) error {
	input := model.GenerateTicketsInput{EventID: eventID, Count: count, Length: length}
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("invalid generate request: %w", err)
	}
	if _, ok := store.FindEvent(a.Store.Events(), eventID); !ok {
		fmt.Printf("event %s not found\n", eventID)
		return nil
	}

	before := len(a.Store.Tickets())
	now := time.Now().UnixMilli()
	err := a.Store.Apply(ctx, func(events []model.Event, tickets []model.Ticket) ([]model.Event, []model.Ticket) {
		return events, store.GenerateTickets(tickets, eventID, count, length, now)
	})
	if err != nil {
		return err
	}

	made := len(a.Store.Tickets()) - before
	if made < count {
		fmt.Printf("generated %d of %d tickets (code space too dense for the rest)\n", made, count)
	} else {
		fmt.Printf("generated %d tickets\n", made)
	}
	return nil
}

// AddTicketsManual takes one code per line. Duplicate validation happens
// here, at the edge; the store append trusts it.
func (a *App) AddTicketsManual(ctx context.Context, eventID, text string) error {
	codes, dups := validate.ManualCodes(a.Store.Tickets(), text)
	if len(dups) > 0 {
		for _, d := range dups {
			fmt.Println(d.Error())
		}
		fmt.Println("nothing added")
		return nil
	}
	if len(codes) == 0 {
		fmt.Println("no codes supplied")
		return nil
	}

	input := model.AddTicketsManualInput{EventID: eventID, Codes: codes}
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("invalid manual add: %w", err)
	}

	now := time.Now().UnixMilli()
	err := a.Store.Apply(ctx, func(events []model.Event, tickets []model.Ticket) ([]model.Event, []model.Ticket) {
		return events, store.AddTicketsManual(tickets, eventID, codes, now)
	})
	if err != nil {
		return err
	}
	fmt.Printf("added %d tickets\n", len(codes))
	return nil
}

// EditTicketCode corrects a code by hand. Uniqueness is re-checked here
// against the rest of the set, at edit time.
func (a *App) EditTicketCode(ctx context.Context, ticketID, code string) error {
	if validate.CodeInUse(a.Store.Tickets(), ticketID, code) {
		fmt.Printf("code %q already exists\n", code)
		return nil
	}

	return a.Store.Apply(ctx, func(events []model.Event, tickets []model.Ticket) ([]model.Event, []model.Ticket) {
		return events, store.UpdateTicket(tickets, ticketID, model.TicketPatch{Code: code})
	})
}

func (a *App) DeleteTicket(ctx context.Context, ticketID string) error {
	return a.Store.Apply(ctx, func(events []model.Event, tickets []model.Ticket) ([]model.Event, []model.Ticket) {
		return events, store.DeleteTicket(tickets, ticketID)
	})
}

// CodeSheet writes the event's codes to a printable text file.
func (a *App) CodeSheet(ctx context.Context, eventID, dir string) error {
	event, ok := store.FindEvent(a.Store.Events(), eventID)
	if !ok {
		fmt.Printf("event %s not found\n", eventID)
		return nil
	}

	path, err := backup.CodeSheet(dir, event, a.Store.Tickets())
	if err != nil {
		return err
	}
	fmt.Printf("code sheet written to %s\n", path)
	return nil
}

// TicketQR renders one ticket's code as a PNG next to the code sheets.
func (a *App) TicketQR(ctx context.Context, ticketID, dir string) error {
	var ticket *model.Ticket
	for _, t := range a.Store.Tickets() {
		if t.ID == ticketID {
			ticket = &t
			break
		}
	}
	if ticket == nil {
		fmt.Printf("ticket %s not found\n", ticketID)
		return nil
	}

	png, err := utils.GenerateQRCode(ticket.Code, 512)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, ticket.Code+".png")
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return err
	}
	fmt.Printf("qr written to %s\n", path)
	return nil
}
