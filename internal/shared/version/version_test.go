package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasNewerVersion(t *testing.T) {
	tests := []struct {
		current, latest string
		want            bool
	}{
		{"1.2.0", "1.3.0", true},
		{"v1.3.0", "1.3.0", false},
		{"1.4.0", "1.3.0", false},
		{"dev", "1.0.0", true},
		{"1.0.0", "", false},
		{"1.0.0", "latest", false},
		{"garbage", "1.0.0", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HasNewerVersion(tt.current, tt.latest), "%s -> %s", tt.current, tt.latest)
	}
}
