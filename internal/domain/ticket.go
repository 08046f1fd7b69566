package domain

import "time"

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "open"
	TicketStatusAnswered TicketStatus = "answered"
	TicketStatusClosed   TicketStatus = "closed"
)

// Ticket is a support ticket as listed by the API.
type Ticket struct {
	ID        string       `json:"id"`
	Subject   string       `json:"subject"`
	Status    TicketStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// TicketPage is one page of the member's support tickets.
type TicketPage struct {
	Items      []Ticket `json:"items"`
	Page       int      `json:"page"`
	TotalPages int      `json:"total_pages"`
}

// Label returns a display label for the status.
func (s TicketStatus) Label() string {
	switch s {
	case TicketStatusOpen:
		return "Open"
	case TicketStatusAnswered:
		return "Answered"
	case TicketStatusClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}
