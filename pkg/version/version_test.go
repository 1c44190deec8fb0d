package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	tests := []struct {
		set     string
		want    string
		release bool
	}{
		{"0.0.0-dev", "0.0.0-dev", false},
		{"v1.2.3", "1.2.3", true},
		{"1.4.0-rc.1", "1.4.0-rc.1", false},
		{"not-a-version", "not-a-version", false},
	}
	for _, tt := range tests {
		version = tt.set
		assert.Equal(t, tt.want, GetVersion(), tt.set)
		assert.Equal(t, tt.release, IsRelease(), tt.set)
	}

	assert.NotEmpty(t, GetGitCommit())
	assert.NotEmpty(t, GetBuildDate())
}
