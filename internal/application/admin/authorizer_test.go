package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	for _, s := range []string{"check_super_admin", "list", "revoke_user", "revoke_others", "revoke_all"} {
		a, err := ParseAction(s)
		require.NoError(t, err)
		assert.Equal(t, Action(s), a)
	}

	_, err := ParseAction("drop_tables")
	assert.Error(t, err)
	_, err = ParseAction("")
	assert.Error(t, err)
}
