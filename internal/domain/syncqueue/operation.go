// Package syncqueue is the outbox of local changes waiting to be pushed to the
// backend. Operations are pushed oldest first.
package syncqueue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ledgerpos/ledgerpos/internal/shared/biztime"
	"github.com/ledgerpos/ledgerpos/internal/shared/id"
)

type Action string

const (
	ActionUpsert Action = "upsert"
	ActionDelete Action = "delete"
)

type Operation struct {
	id         string
	entityType string
	entityID   string
	action     Action
	payload    json.RawMessage
	attempts   int
	lastError  string
	createdAt  time.Time
}

// NewOperation snapshots payload as JSON.
func NewOperation(entityType, entityID string, action Action, payload any) (*Operation, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sync payload: %w", err)
	}
	return &Operation{
		id:         id.NewOperationID(),
		entityType: entityType,
		entityID:   entityID,
		action:     action,
		payload:    raw,
		createdAt:  biztime.NowUTC(),
	}, nil
}

// ReconstructOperation rebuilds an operation from persistence.
func ReconstructOperation(opID, entityType, entityID string, action Action, payload []byte, attempts int, lastError string, createdAt time.Time) *Operation {
	return &Operation{
		id:         opID,
		entityType: entityType,
		entityID:   entityID,
		action:     action,
		payload:    payload,
		attempts:   attempts,
		lastError:  lastError,
		createdAt:  createdAt,
	}
}

func (o *Operation) ID() string               { return o.id }
func (o *Operation) EntityType() string       { return o.entityType }
func (o *Operation) EntityID() string         { return o.entityID }
func (o *Operation) Action() Action           { return o.action }
func (o *Operation) Payload() json.RawMessage { return o.payload }
func (o *Operation) Attempts() int            { return o.attempts }
func (o *Operation) LastError() string        { return o.lastError }
func (o *Operation) CreatedAt() time.Time     { return o.createdAt }
