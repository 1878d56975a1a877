package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ticket statuses, in board order.
const (
	StatusBacklog      = "backlog"
	StatusInProgress   = "in_progress"
	StatusRevisions    = "revisions"
	StatusClientReview = "client_review"
	StatusComplete     = "complete"
)

var ticketStatuses = map[string]bool{
	StatusBacklog:      true,
	StatusInProgress:   true,
	StatusRevisions:    true,
	StatusClientReview: true,
	StatusComplete:     true,
}

// ValidTicketStatus reports whether s is one of the known statuses.
func ValidTicketStatus(s string) bool {
	return ticketStatuses[s]
}

// Ticket is a work item on the board. Client holds the username of the
// owning client identity; client-role users are scoped to it.
type Ticket struct {
	Id          string    `json:"id" gorm:"primaryKey;size:36"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Status      string    `json:"status" gorm:"not null;default:backlog"`
	Client      string    `json:"client" gorm:"index"`
	AssignedTo  string    `json:"assignedTo" gorm:"default:None"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t *Ticket) BeforeCreate(_ *gorm.DB) error {
	if t.Id == "" {
		t.Id = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = StatusBacklog
	}
	if t.AssignedTo == "" {
		t.AssignedTo = "None"
	}
	return nil
}
