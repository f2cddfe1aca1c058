package model

// Event is a VIP event owning zero or more tickets. Only Name, Description
// and IsArchived are ever mutated in place; archiving is a reversible
// soft-delete, hard delete cascades into the ticket collection.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"createdAt"`
	IsArchived  bool   `json:"isArchived"`
}

type CreateEventInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
}

type UpdateEventInput struct {
	EventID     string `json:"eventId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
}
