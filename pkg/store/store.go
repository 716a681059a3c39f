// Package store durably keeps the triage records a caller asks to save.
// The rule engine never touches this package; only the HTTP adapter does.
package store

import (
	"context"
	"time"

	"github.com/segmentio/ksuid"

	"straysense/pkg/triage"
)

// Record is the persisted subset of a report plus identifying metadata.
type Record struct {
	ID           string           `json:"id"`
	UserID       string           `json:"userId,omitempty"`
	AnimalName   string           `json:"animalName"`
	Species      string           `json:"species"`
	Description  string           `json:"description,omitempty"`
	Urgency      triage.Urgency   `json:"urgency"`
	UrgencyScore int              `json:"urgencyScore"`
	ConcernFlags []triage.Concern `json:"concernFlags"`
	Actions      []string         `json:"actions"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// Store persists records and reads them back newest-first.
type Store interface {
	// Save stores the record, assigning ID and CreatedAt when unset, and
	// returns the record id.
	Save(ctx context.Context, rec *Record) (string, error)
	// List returns up to limit records for the given user (all users when
	// userID is empty), in descending creation-time order.
	List(ctx context.Context, userID string, limit int) ([]Record, error)
	Close()
}

func (r *Record) prepare() {
	if r.ID == "" {
		r.ID = ksuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
}
