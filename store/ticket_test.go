package store

import (
	"testing"

	"github.com/huyi122/Ticket-Master/model"
	"github.com/huyi122/Ticket-Master/utils"
)

func TestGenerateTickets(t *testing.T) {
	t.Run("issues the requested batch", func(t *testing.T) {
		existing := []model.Ticket{{ID: "T0", EventID: "E0", Code: "KEEPME99"}}

		got := GenerateTickets(existing, "E1", 25, 8, testNow)

		fresh := got[len(existing):]
		if len(fresh) != 25 {
			t.Fatalf("expected 25 new tickets, got %d", len(fresh))
		}
		seen := map[string]struct{}{"KEEPME99": {}}
		for _, tk := range fresh {
			if tk.EventID != "E1" || tk.Status != model.TicketIssued || tk.GeneratedAt != testNow {
				t.Fatalf("unexpected ticket %+v", tk)
			}
			if tk.UsedAt != nil {
				t.Fatalf("fresh ticket already has UsedAt: %+v", tk)
			}
			if len(tk.Code) != 8 {
				t.Fatalf("code %q is not 8 characters", tk.Code)
			}
			if _, dup := seen[tk.Code]; dup {
				t.Fatalf("duplicate code %q", tk.Code)
			}
			seen[tk.Code] = struct{}{}
		}
	})

	t.Run("stops early on a saturated code space", func(t *testing.T) {
		// length 1 over the 32-glyph alphabet: occupy the whole space
		existing := make([]model.Ticket, 0, len(utils.CodeAlphabet))
		for i := 0; i < len(utils.CodeAlphabet); i++ {
			existing = append(existing, model.Ticket{
				ID:      utils.NewUUID(),
				EventID: "E0",
				Code:    string(utils.CodeAlphabet[i]),
			})
		}

		got := GenerateTickets(existing, "E1", 10, 1, testNow)

		if len(got) != len(existing) {
			t.Fatalf("expected zero new tickets on a full code space, got %d", len(got)-len(existing))
		}
	})

	t.Run("may return fewer than requested", func(t *testing.T) {
		// 30 of 32 single-glyph codes taken: at most 2 can be issued and
		// the attempt cap makes even those best-effort
		existing := make([]model.Ticket, 0, 30)
		for i := 0; i < 30; i++ {
			existing = append(existing, model.Ticket{Code: string(utils.CodeAlphabet[i])})
		}

		got := GenerateTickets(existing, "E1", 10, 1, testNow)

		fresh := got[len(existing):]
		if len(fresh) > 2 {
			t.Fatalf("issued %d tickets into a space with 2 free codes", len(fresh))
		}
		for _, tk := range fresh {
			for _, e := range existing {
				if tk.Code == e.Code {
					t.Fatalf("issued an already-taken code %q", tk.Code)
				}
			}
		}
	})
}

func TestAddTicketsManual(t *testing.T) {
	existing := []model.Ticket{{ID: "T0", EventID: "E0", Code: "OLD"}}

	got := AddTicketsManual(existing, "E1", []string{"VIP-A", "VIP-B"}, testNow)

	if len(got) != 3 {
		t.Fatalf("expected 3 tickets, got %d", len(got))
	}
	for _, tk := range got[1:] {
		if tk.EventID != "E1" || tk.Status != model.TicketIssued || tk.GeneratedAt != testNow || tk.ID == "" {
			t.Fatalf("unexpected ticket %+v", tk)
		}
	}
	if got[1].Code != "VIP-A" || got[2].Code != "VIP-B" {
		t.Fatalf("codes taken verbatim expected, got %+v", got[1:])
	}
	if len(existing) != 1 {
		t.Fatalf("input collection was mutated")
	}
}

func TestUpdateTicket(t *testing.T) {
	base := []model.Ticket{
		{ID: "T1", EventID: "E1", Code: "AAAA", Status: model.TicketIssued, GeneratedAt: 7},
		{ID: "T2", EventID: "E1", Code: "BBBB", Status: model.TicketIssued},
	}

	t.Run("code correction keeps everything else", func(t *testing.T) {
		got := UpdateTicket(base, "T1", model.TicketPatch{Code: "CCCC"})

		if got[0].Code != "CCCC" {
			t.Fatalf("code not updated: %+v", got[0])
		}
		if got[0].Status != model.TicketIssued || got[0].GeneratedAt != 7 || got[0].UsedAt != nil {
			t.Fatalf("merge touched unrelated fields: %+v", got[0])
		}
		if got[1].Code != "BBBB" {
			t.Fatalf("unrelated ticket changed: %+v", got[1])
		}
	})

	t.Run("check-in patch sets status and usedAt together", func(t *testing.T) {
		usedAt := testNow + 500
		got := UpdateTicket(base, "T2", model.TicketPatch{Status: model.TicketUsed, UsedAt: &usedAt})

		if got[1].Status != model.TicketUsed {
			t.Fatalf("status not updated: %+v", got[1])
		}
		if got[1].UsedAt == nil || *got[1].UsedAt != usedAt {
			t.Fatalf("usedAt not set: %+v", got[1])
		}
		if got[1].Code != "BBBB" {
			t.Fatalf("code changed by a status patch: %+v", got[1])
		}
	})

	t.Run("unknown id changes nothing", func(t *testing.T) {
		got := UpdateTicket(base, "nope", model.TicketPatch{Code: "ZZZZ"})
		if got[0].Code != "AAAA" || got[1].Code != "BBBB" {
			t.Fatalf("unexpected change: %+v", got)
		}
	})
}

func TestDeleteTicket(t *testing.T) {
	tickets := []model.Ticket{{ID: "T1"}, {ID: "T2"}}

	got := DeleteTicket(tickets, "T1")
	if len(got) != 1 || got[0].ID != "T2" {
		t.Fatalf("expected only T2 to survive, got %+v", got)
	}
}

func TestEventStats(t *testing.T) {
	tickets := []model.Ticket{
		{EventID: "E1", Status: model.TicketUsed},
		{EventID: "E1", Status: model.TicketIssued},
		{EventID: "E1", Status: model.TicketUsed},
		{EventID: "E2", Status: model.TicketIssued},
	}

	stats := EventStats(tickets, "E1")
	if stats.Total != 3 || stats.Used != 2 || stats.Remaining != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}
