package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindto "github.com/ledgerpos/ledgerpos/internal/application/admin/dto"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/http/handlers/testutil"
)

type stubChecker struct {
	answer bool
	calls  int
}

func (s *stubChecker) CheckSuperAdmin(ctx context.Context, bearer string) bool {
	s.calls++
	return s.answer
}

func TestAdminHandler_GetStatus(t *testing.T) {
	checker := &stubChecker{answer: true}
	h := NewAdminHandler(checker, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/admin/status", nil)
	testutil.SetAuthContext(c, "u_root", "s_1")

	h.GetStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got admindto.SuperAdminStatusDTO
	decodeData(t, w.Body.Bytes(), &got)
	assert.True(t, got.IsSuperAdmin)
}

func TestAdminHandler_GetStatus_NoTokenIsDenied(t *testing.T) {
	checker := &stubChecker{answer: true}
	h := NewAdminHandler(checker, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/admin/status", nil)

	h.GetStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got admindto.SuperAdminStatusDTO
	decodeData(t, w.Body.Bytes(), &got)
	assert.False(t, got.IsSuperAdmin)
	assert.Zero(t, checker.calls)
}
