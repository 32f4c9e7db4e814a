package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event types published by the league admin server.
const (
	TypeImportCompleted = "import.completed"
	TypeSyncCompleted   = "sync.completed"
)

// DefaultSubjectPrefix is prepended to the event type to form a NATS subject.
const DefaultSubjectPrefix = "wmfl"

// Event is a domain notification.
type Event struct {
	ID           uuid.UUID
	Type         string
	TournamentID int64
	CreatedAt    time.Time
	Payload      any
}

// New returns an event with a fresh id.
func New(eventType string, tournamentID int64, payload any) Event {
	return Event{
		ID:           uuid.New(),
		Type:         eventType,
		TournamentID: tournamentID,
		CreatedAt:    time.Now().UTC(),
		Payload:      payload,
	}
}

type envelope struct {
	EventID      string          `json:"eventId"`
	EventType    string          `json:"eventType"`
	TournamentID int64           `json:"tournamentId"`
	Timestamp    time.Time       `json:"timestamp"`
	Payload      json.RawMessage `json:"payload"`
}

// Marshal encodes the wire envelope of an event.
func Marshal(e Event) ([]byte, error) {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	data, err := json.Marshal(envelope{
		EventID:      e.ID.String(),
		EventType:    e.Type,
		TournamentID: e.TournamentID,
		Timestamp:    e.CreatedAt,
		Payload:      payload,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// Publisher delivers domain events. Delivery is best effort.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }
