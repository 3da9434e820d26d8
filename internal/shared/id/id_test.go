package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithPrefix(t *testing.T) {
	a := NewCategoryID()
	b := NewCategoryID()

	assert.True(t, strings.HasPrefix(a, "cat_"))
	assert.NotEqual(t, a, b)
	require.NoError(t, ValidatePrefix(a, PrefixCategory))
}

func TestValidatePrefix(t *testing.T) {
	assert.Error(t, ValidatePrefix(NewOperationID(), PrefixCategory))
	assert.Error(t, ValidatePrefix("cat_not-a-uuid", PrefixCategory))
	assert.Error(t, ValidatePrefix("nounderscore", PrefixCategory))
	assert.Error(t, ValidatePrefix("_0b7e5d0c-2f7a-4a1e-9d55-1b2c3d4e5f60", PrefixCategory))
}

func TestParsePrefixedID(t *testing.T) {
	prefix, u, err := ParsePrefixedID("aud_0b7e5d0c-2f7a-4a1e-9d55-1b2c3d4e5f60")
	require.NoError(t, err)
	assert.Equal(t, PrefixAuditLog, prefix)
	assert.Equal(t, "0b7e5d0c-2f7a-4a1e-9d55-1b2c3d4e5f60", u.String())
}
