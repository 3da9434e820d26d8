// Package auditlog records who changed what on this device.
package auditlog

import (
	"time"

	"github.com/ledgerpos/ledgerpos/internal/shared/biztime"
	"github.com/ledgerpos/ledgerpos/internal/shared/id"
)

// Action is the verb recorded for an entry.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Entry struct {
	id         string
	businessID string
	actorID    string
	action     Action
	entityType string
	entityID   string
	details    map[string]any
	createdAt  time.Time
}

func NewEntry(businessID, actorID string, action Action, entityType, entityID string, details map[string]any) *Entry {
	if details == nil {
		details = map[string]any{}
	}
	return &Entry{
		id:         id.NewAuditLogID(),
		businessID: businessID,
		actorID:    actorID,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		details:    details,
		createdAt:  biztime.NowUTC(),
	}
}

// ReconstructEntry rebuilds an entry from persistence.
func ReconstructEntry(entryID, businessID, actorID string, action Action, entityType, entityID string, details map[string]any, createdAt time.Time) *Entry {
	return &Entry{
		id:         entryID,
		businessID: businessID,
		actorID:    actorID,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		details:    details,
		createdAt:  createdAt,
	}
}

func (e *Entry) ID() string              { return e.id }
func (e *Entry) BusinessID() string      { return e.businessID }
func (e *Entry) ActorID() string         { return e.actorID }
func (e *Entry) Action() Action          { return e.action }
func (e *Entry) EntityType() string      { return e.entityType }
func (e *Entry) EntityID() string        { return e.entityID }
func (e *Entry) Details() map[string]any { return e.details }
func (e *Entry) CreatedAt() time.Time    { return e.createdAt }
