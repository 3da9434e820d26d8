package plan

import "errors"

var (
	ErrUnknownFeature = errors.New("unknown plan feature")
	ErrUnknownPlan    = errors.New("unknown plan")
	ErrNotFound       = errors.New("subscription not found")
)
