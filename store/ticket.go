package store

import (
	"github.com/jinzhu/copier"

	"github.com/huyi122/Ticket-Master/model"
	"github.com/huyi122/Ticket-Master/utils"
)

// GenerateTickets draws random codes for eventID and appends the accepted
// ones as ISSUED tickets. A candidate is accepted only when its code is
// absent from every currently-known code and from the batch so far. Total
// draws are capped at count*5; on a dense code space the returned batch
// may therefore be shorter than requested. Callers must not assume they
// got count tickets back.
func GenerateTickets(tickets []model.Ticket, eventID string, count, length int, now int64) []model.Ticket {
	existing := make(map[string]struct{}, len(tickets))
	for _, t := range tickets {
		existing[t.Code] = struct{}{}
	}

	newTickets := make([]model.Ticket, 0, count)
	for attempts := 0; len(newTickets) < count && attempts < count*5; attempts++ {
		code := utils.GenerateID(length)
		if _, taken := existing[code]; taken {
			continue
		}
		newTickets = append(newTickets, model.Ticket{
			ID:          utils.NewUUID(),
			EventID:     eventID,
			Code:        code,
			Status:      model.TicketIssued,
			GeneratedAt: now,
		})
		existing[code] = struct{}{}
	}

	out := make([]model.Ticket, 0, len(tickets)+len(newTickets))
	out = append(out, tickets...)
	return append(out, newTickets...)
}

// AddTicketsManual appends caller-supplied codes as ISSUED tickets. It
// trusts its input: duplicate checking against the existing set and
// within the batch is the caller's job (see validate.ManualCodes).
func AddTicketsManual(tickets []model.Ticket, eventID string, codes []string, now int64) []model.Ticket {
	out := make([]model.Ticket, 0, len(tickets)+len(codes))
	out = append(out, tickets...)
	for _, code := range codes {
		out = append(out, model.Ticket{
			ID:          utils.NewUUID(),
			EventID:     eventID,
			Code:        code,
			Status:      model.TicketIssued,
			GeneratedAt: now,
		})
	}
	return out
}

// UpdateTicket shallow-merges patch into the ticket with the given id.
// Used both for manual code correction and for the check-in transition.
func UpdateTicket(tickets []model.Ticket, ticketID string, patch model.TicketPatch) []model.Ticket {
	out := make([]model.Ticket, len(tickets))
	for i, t := range tickets {
		if t.ID == ticketID {
			// IgnoreEmpty keeps fields the patch does not carry; copier
			// only errors on non-pointer args, both are struct pointers here
			_ = copier.CopyWithOption(&t, &patch, copier.Option{IgnoreEmpty: true})
		}
		out[i] = t
	}
	return out
}

func DeleteTicket(tickets []model.Ticket, ticketID string) []model.Ticket {
	out := make([]model.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.ID != ticketID {
			out = append(out, t)
		}
	}
	return out
}

// TicketsForEvent filters the collection down to one event.
func TicketsForEvent(tickets []model.Ticket, eventID string) []model.Ticket {
	out := make([]model.Ticket, 0)
	for _, t := range tickets {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out
}

// EventStats tallies check-ins for one event.
func EventStats(tickets []model.Ticket, eventID string) model.TicketStats {
	var stats model.TicketStats
	for _, t := range tickets {
		if t.EventID != eventID {
			continue
		}
		stats.Total++
		if t.Status == model.TicketUsed {
			stats.Used++
		}
	}
	stats.Remaining = stats.Total - stats.Used
	return stats
}
