package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/ledgerpos/ledgerpos/internal/application/featuregate"
	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/domain/upgrade"
	"github.com/ledgerpos/ledgerpos/internal/shared/constants"
	"github.com/ledgerpos/ledgerpos/internal/shared/errors"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/utils"
)

type AccessProvider interface {
	Access(ctx context.Context) *plan.Access
}

// PlanFeatureMiddleware guards routes with plan gates. A denied request
// answers 403 feature_locked and raises the shared upgrade prompt.
type PlanFeatureMiddleware struct {
	access AccessProvider
	opener featuregate.Opener
	logger logger.Interface
}

func NewPlanFeatureMiddleware(access AccessProvider, opener featuregate.Opener, logger logger.Interface) *PlanFeatureMiddleware {
	return &PlanFeatureMiddleware{
		access: access,
		opener: opener,
		logger: logger,
	}
}

func (m *PlanFeatureMiddleware) RequireFeature(feature plan.FeatureKey) gin.HandlerFunc {
	gate := featuregate.Gate{Feature: feature}
	return func(c *gin.Context) {
		access := m.access.Access(c.Request.Context())
		c.Set(constants.ContextKeyPlanAccess, access)

		decision := gate.Evaluate(access)
		if decision.Allowed {
			c.Next()
			return
		}

		m.logger.Infow("feature locked",
			"feature", feature,
			"current_plan", access.PlanName(),
			"required_plan", decision.Locked.RequiredPlan,
			"path", c.Request.URL.Path,
		)
		if m.opener != nil {
			decision.Upgrade(m.opener)
		}
		utils.ErrorResponseWithError(c, errors.NewFeatureLockedError(
			feature.Label()+" is not included in your plan",
			string(decision.Locked.RequiredPlan),
		))
		c.Abort()
	}
}

// RequirePlan admits callers whose plan ranks at least required.
func (m *PlanFeatureMiddleware) RequirePlan(required plan.Name) gin.HandlerFunc {
	return func(c *gin.Context) {
		access := m.access.Access(c.Request.Context())
		c.Set(constants.ContextKeyPlanAccess, access)

		if plan.MeetsPlan(required, access.PlanName()) {
			c.Next()
			return
		}

		if m.opener != nil {
			m.opener.Open(upgrade.OpenArgs{Reason: upgrade.ReasonFeature, RequiredPlan: required})
		}
		utils.ErrorResponseWithError(c, errors.NewFeatureLockedError(
			"this page requires the "+required.DisplayName()+" plan",
			string(required),
		))
		c.Abort()
	}
}
