package validation

import (
	"testing"

	"github.com/huyi122/Ticket-Master/model"
)

func fixtures() ([]model.Event, []model.Ticket) {
	events := []model.Event{
		{ID: "E1", Name: "Gala", IsArchived: false},
		{ID: "E2", Name: "Old Gala", IsArchived: true},
	}
	usedAt := int64(1690000000000)
	tickets := []model.Ticket{
		{ID: "T1", EventID: "E1", Code: "ABCD1234", Status: model.TicketIssued},
		{ID: "T2", EventID: "E1", Code: "USED5678", Status: model.TicketUsed, UsedAt: &usedAt},
		{ID: "T3", EventID: "E2", Code: "ARCH9999", Status: model.TicketIssued},
		{ID: "T4", EventID: "gone", Code: "ORPH0000", Status: model.TicketIssued},
	}
	return events, tickets
}

func TestLookup(t *testing.T) {
	events, tickets := fixtures()

	t.Run("unknown code", func(t *testing.T) {
		res := Lookup(events, tickets, "NOPE")
		if res.Outcome != NotFound {
			t.Fatalf("expected NOT_FOUND, got %s", res.Outcome)
		}
		if res.Ticket != nil || res.Event != nil {
			t.Fatalf("NOT_FOUND should carry nothing, got %+v", res)
		}
	})

	t.Run("unused ticket on a live event", func(t *testing.T) {
		res := Lookup(events, tickets, "ABCD1234")
		if res.Outcome != ValidUnused {
			t.Fatalf("expected VALID_UNUSED, got %s", res.Outcome)
		}
		if res.Ticket.ID != "T1" || res.Event.ID != "E1" {
			t.Fatalf("wrong match %+v", res)
		}
	})

	t.Run("used ticket carries usedAt", func(t *testing.T) {
		res := Lookup(events, tickets, "USED5678")
		if res.Outcome != ValidUsed {
			t.Fatalf("expected VALID_USED, got %s", res.Outcome)
		}
		if res.Ticket.UsedAt == nil {
			t.Fatalf("expected usedAt on the result ticket")
		}
	})

	t.Run("archived event wins over ticket status", func(t *testing.T) {
		res := Lookup(events, tickets, "ARCH9999")
		if res.Outcome != Archived {
			t.Fatalf("expected ARCHIVED, got %s", res.Outcome)
		}
	})

	t.Run("missing event is archived too", func(t *testing.T) {
		res := Lookup(events, tickets, "ORPH0000")
		if res.Outcome != Archived {
			t.Fatalf("expected ARCHIVED for an orphaned ticket, got %s", res.Outcome)
		}
		if res.Event != nil {
			t.Fatalf("no event should be attached, got %+v", res.Event)
		}
	})

	t.Run("input is trimmed", func(t *testing.T) {
		res := Lookup(events, tickets, "  ABCD1234  ")
		if res.Outcome != ValidUnused {
			t.Fatalf("expected VALID_UNUSED after trim, got %s", res.Outcome)
		}
	})

	t.Run("pure function of its inputs", func(t *testing.T) {
		first := Lookup(events, tickets, "ABCD1234")
		second := Lookup(events, tickets, "ABCD1234")
		if first.Outcome != second.Outcome {
			t.Fatalf("same inputs gave %s then %s", first.Outcome, second.Outcome)
		}
	})
}

func TestCheckInScenario(t *testing.T) {
	events := []model.Event{{ID: "E1", IsArchived: false}}
	tickets := []model.Ticket{{ID: "T1", EventID: "E1", Code: "ABCD1234", Status: model.TicketIssued}}

	if res := Lookup(events, tickets, "ABCD1234"); res.Outcome != ValidUnused {
		t.Fatalf("precondition: expected VALID_UNUSED, got %s", res.Outcome)
	}

	now := int64(1700000123456)
	tickets = CheckIn(tickets, "T1", now)

	if tickets[0].Status != model.TicketUsed {
		t.Fatalf("ticket not marked USED: %+v", tickets[0])
	}
	if tickets[0].UsedAt == nil || *tickets[0].UsedAt != now {
		t.Fatalf("usedAt should be the check-in time, got %+v", tickets[0].UsedAt)
	}

	res := Lookup(events, tickets, "ABCD1234")
	if res.Outcome != ValidUsed {
		t.Fatalf("fresh lookup after check-in should be VALID_USED, got %s", res.Outcome)
	}
	if *res.Ticket.UsedAt != now {
		t.Fatalf("result should carry the check-in time")
	}
}
