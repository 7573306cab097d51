package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ticket statuses. The status field is validated for membership only;
// any status may follow any other.
const (
	StatusOpen       = "Open"
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusClosed     = "Closed"
	StatusRejected   = "Rejected"
)

// Ticket priorities
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Ticket is a support request. Branch is the servicing location name,
// CreatedBy always resolves to a user, AssignedTo may be unset.
type Ticket struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Priority    string             `bson:"priority" json:"priority"`
	Branch      string             `bson:"branch" json:"branch"`
	Status      string             `bson:"status" json:"status"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	AssignedTo  primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserRef is a resolved user reference on an outward ticket
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// TicketResponse is the outward form of a ticket with creator and
// assignee resolved to display identities
type TicketResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Branch      string    `json:"branch"`
	Status      string    `json:"status"`
	CreatedBy   *UserRef  `json:"createdBy"`
	AssignedTo  *UserRef  `json:"assignedTo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TicketStats are the on-demand dashboard counters
type TicketStats struct {
	Pending      int64 `json:"pending"`
	CreatedToday int64 `json:"createdToday"`
	ClosedToday  int64 `json:"closedToday"`
}

// IsValidStatus reports whether status is one of the six ticket states
func IsValidStatus(status string) bool {
	switch status {
	case StatusOpen, StatusPending, StatusInProgress, StatusResolved, StatusClosed, StatusRejected:
		return true
	}
	return false
}

// IsValidPriority reports whether priority is Low, Medium or High
func IsValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
