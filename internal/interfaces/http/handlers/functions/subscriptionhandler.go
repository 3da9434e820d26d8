package functions

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

type subscriptionReader interface {
	GetByBusinessID(ctx context.Context, businessID string) (*plan.Subscription, error)
}

type SubscriptionHandler struct {
	subscriptions subscriptionReader
	logger        logger.Interface
}

func NewSubscriptionHandler(subscriptions subscriptionReader, logger logger.Interface) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions, logger: logger}
}

type subscriptionResponse struct {
	BusinessID string      `json:"business_id"`
	PlanName   string      `json:"plan_name"`
	Features   []string    `json:"features"`
	Limits     plan.Limits `json:"limits"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Get handles GET /functions/v1/subscription?business_id=.
func (h *SubscriptionHandler) Get(c *gin.Context) {
	businessID := c.Query("business_id")
	if businessID == "" {
		respondError(c, http.StatusBadRequest, "business_id is required")
		return
	}

	sub, err := h.subscriptions.GetByBusinessID(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Subscription not found")
			return
		}
		h.logger.Errorw("failed to read subscription", "business_id", businessID, "error", err)
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	features := sub.Features
	if features == nil {
		features = []string{}
	}
	c.JSON(http.StatusOK, subscriptionResponse{
		BusinessID: sub.BusinessID,
		PlanName:   sub.PlanName,
		Features:   features,
		Limits:     sub.Limits,
		UpdatedAt:  sub.UpdatedAt,
	})
}
