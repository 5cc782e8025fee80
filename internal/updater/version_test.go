package updater

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"v1.2.0", "1.2.0"},
		{"V1.2.0", "1.2.0"},
		{" 1.2.0 ", "1.2.0"},
		{"1.2.0", "1.2.0"},
		{"v", "v"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeVersion(tt.in), "NormalizeVersion(%q)", tt.in)
	}
}

func TestPolicyDiffers_IsUpdate(t *testing.T) {
	tests := []struct {
		current, latest string
		want            bool
	}{
		{"1.0.0", "1.0.0", false},
		{"1.0.0", "v1.0.0", false},
		{"1.0.0", "1.2.0", true},
		// string inequality: an older release is still offered
		{"1.0.0", "0.9.0", true},
		{"1.0.0", "1.0", true},
		{"1.0.0", "", false},
		{"dev", "1.0.0", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PolicyDiffers.IsUpdate(tt.current, tt.latest), "%s -> %s", tt.current, tt.latest)
	}
}

func TestPolicyNewer_IsUpdate(t *testing.T) {
	tests := []struct {
		current, latest string
		want            bool
	}{
		{"1.0.0", "1.0.0", false},
		{"1.0.0", "1.2.0", true},
		{"1.0.0", "0.9.0", false},
		{"1.0.0", "1.0", false},
		{"1.2.0", "v1.10.0", true},
		{"1.0.0", "1.0.1-rc.1", true},
		{"dev", "1.0.0", true},
		{"1.0.0", "", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PolicyNewer.IsUpdate(tt.current, tt.latest), "%s -> %s", tt.current, tt.latest)
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("newer")
	require.NoError(t, err)
	assert.Equal(t, PolicyNewer, p)

	p, err = ParsePolicy(" Differs ")
	require.NoError(t, err)
	assert.Equal(t, PolicyDiffers, p)

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy, p)

	_, err = ParsePolicy("semver")
	assert.Error(t, err)
}
