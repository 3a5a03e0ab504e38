package events

import (
	"time"

	"github.com/kartikay-28/lms-service/internal/models"
)

// Event types published by the auth flow.
const (
	TypeUserRegistered = "user.registered"
	TypeUserSignedIn   = "user.signed_in"
)

// Event is the envelope for every published event.
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// UserEvent carries the non-sensitive identity fields of the user the
// event is about. Password material never appears in events.
type UserEvent struct {
	UserID string          `json:"user_id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
}

func NewUserRegisteredEvent(identity models.Identity) Event {
	return Event{
		Type:       TypeUserRegistered,
		OccurredAt: time.Now().UTC(),
		Data: UserEvent{
			UserID: identity.ID,
			Name:   identity.Name,
			Email:  identity.Email,
			Role:   identity.Role,
		},
	}
}

func NewUserSignedInEvent(identity models.Identity) Event {
	return Event{
		Type:       TypeUserSignedIn,
		OccurredAt: time.Now().UTC(),
		Data: UserEvent{
			UserID: identity.ID,
			Name:   identity.Name,
			Email:  identity.Email,
			Role:   identity.Role,
		},
	}
}
