package backend

import (
	"context"
	"net/http"
)

type adminRequest struct {
	Action string         `json:"action"`
	Params map[string]any `json:"params,omitempty"`
}

type superAdminResponse struct {
	IsSuperAdmin bool `json:"is_super_admin"`
}

// CheckSuperAdmin asks the admin function whether the bearer belongs to a
// super admin. It retries once; any remaining failure answers false.
func (c *Client) CheckSuperAdmin(ctx context.Context, bearer string) bool {
	if bearer == "" {
		return false
	}

	var lastErr error
	for attempt := 1; attempt <= 2; attempt++ {
		var resp superAdminResponse
		err := c.do(ctx, http.MethodPost, adminPath, bearer, adminRequest{Action: "check_super_admin"}, &resp)
		if err == nil {
			return resp.IsSuperAdmin
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	c.logger.Warnw("super admin check failed, denying", "error", lastErr)
	return false
}
