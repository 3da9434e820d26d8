package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ledgerpos/ledgerpos/internal/domain/syncqueue"
)

type pushOperation struct {
	ID         string          `json:"id"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Action     string          `json:"action"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"created_at"`
}

type pushRequest struct {
	BusinessID string          `json:"business_id"`
	Operations []pushOperation `json:"operations"`
}

// Rejection is an operation the backend refused for good.
type Rejection struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// PushResult lists what the backend accepted and refused. Operations in
// neither list are retried on the next sync.
type PushResult struct {
	Accepted []string    `json:"accepted"`
	Rejected []Rejection `json:"rejected"`
}

func (c *Client) PushOperations(ctx context.Context, businessID string, ops []*syncqueue.Operation) (*PushResult, error) {
	body := pushRequest{
		BusinessID: businessID,
		Operations: make([]pushOperation, 0, len(ops)),
	}
	for _, op := range ops {
		body.Operations = append(body.Operations, pushOperation{
			ID:         op.ID(),
			EntityType: op.EntityType(),
			EntityID:   op.EntityID(),
			Action:     string(op.Action()),
			Payload:    op.Payload(),
			CreatedAt:  op.CreatedAt(),
		})
	}

	var result PushResult
	if err := c.do(ctx, http.MethodPost, syncPath, "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
