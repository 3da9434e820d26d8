package mappers

import (
	"gorm.io/datatypes"

	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
)

func SubscriptionToDomain(m *models.SubscriptionModel) *plan.Subscription {
	if m == nil {
		return nil
	}
	return &plan.Subscription{
		BusinessID: m.BusinessID,
		PlanName:   m.PlanName,
		Features:   []string(m.Features),
		Limits: plan.Limits{
			MaxUsers:    m.MaxUsers,
			MaxProducts: m.MaxProducts,
			MaxBranches: m.MaxBranches,
			MaxDevices:  m.MaxDevices,
		},
		UpdatedAt: m.UpdatedAt,
	}
}

func SubscriptionToModel(s *plan.Subscription) *models.SubscriptionModel {
	if s == nil {
		return nil
	}
	features := s.Features
	if features == nil {
		features = []string{}
	}
	return &models.SubscriptionModel{
		BusinessID:  s.BusinessID,
		PlanName:    s.PlanName,
		Features:    datatypes.NewJSONSlice(features),
		MaxUsers:    s.Limits.MaxUsers,
		MaxProducts: s.Limits.MaxProducts,
		MaxBranches: s.Limits.MaxBranches,
		MaxDevices:  s.Limits.MaxDevices,
		UpdatedAt:   s.UpdatedAt,
	}
}
