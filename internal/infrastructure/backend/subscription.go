package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/shared/biztime"
)

type subscriptionResponse struct {
	BusinessID string      `json:"business_id"`
	PlanName   string      `json:"plan_name"`
	Features   []string    `json:"features"`
	Limits     plan.Limits `json:"limits"`
	UpdatedAt  *time.Time  `json:"updated_at"`
}

// FetchSubscription returns plan.ErrNotFound when the business has no
// subscription record.
func (c *Client) FetchSubscription(ctx context.Context, businessID string) (*plan.Subscription, error) {
	var resp subscriptionResponse
	path := subscriptionPath + "?business_id=" + url.QueryEscape(businessID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, plan.ErrNotFound
		}
		return nil, err
	}

	sub := &plan.Subscription{
		BusinessID: businessID,
		PlanName:   resp.PlanName,
		Features:   resp.Features,
		Limits:     resp.Limits,
		UpdatedAt:  biztime.NowUTC(),
	}
	if resp.UpdatedAt != nil {
		sub.UpdatedAt = resp.UpdatedAt.UTC()
	}
	return sub, nil
}
