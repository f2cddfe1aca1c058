package model

const (
	TicketIssued = "ISSUED" // printed, not yet at the door
	TicketUsed   = "USED"   // checked in
)

// Ticket references its owning Event by id. Code is the human-visible
// string used for lookup at the door, distinct from the internal ID.
// UsedAt is set if and only if Status is USED.
type Ticket struct {
	ID          string `json:"id"`
	EventID     string `json:"eventId"`
	Code        string `json:"code"`
	Status      string `json:"status"`
	GeneratedAt int64  `json:"generatedAt"`
	UsedAt      *int64 `json:"usedAt,omitempty"`
}

type GenerateTicketsInput struct {
	EventID string `json:"eventId" validate:"required"`
	Count   int    `json:"count" validate:"required,gt=0"`
	Length  int    `json:"length" validate:"required,gte=1,lte=20"`
}

type AddTicketsManualInput struct {
	EventID string   `json:"eventId" validate:"required"`
	Codes   []string `json:"codes" validate:"required,min=1,dive,required"`
}

// TicketPatch is a shallow partial update. Zero-valued fields are left
// untouched on merge; UsedAt is only ever set, never cleared.
type TicketPatch struct {
	Code   string `json:"code,omitempty"`
	Status string `json:"status,omitempty"`
	UsedAt *int64 `json:"usedAt,omitempty"`
}

// TicketStats is the per-event check-in tally shown on the dashboard.
type TicketStats struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}
