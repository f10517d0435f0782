package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name                  string
		version, date, commit string
		want                  string
	}{
		{name: "stamped", version: "v1.2.0", date: "2026-10-01", commit: "a1b2c3", want: "v1.2.0 (commit: a1b2c3, built: 2026-10-01)"},
		{name: "unstamped", want: "N/A (commit: N/A, built: N/A)"},
		{name: "partial", version: "dev", want: "dev (commit: N/A, built: N/A)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)
			assert.Equal(t, tt.want, info.String())
		})
	}
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	var info AppBuildInfo
	assert.Empty(t, info.BuildVersion())
	assert.Empty(t, info.BuildDate())
	assert.Empty(t, info.BuildCommit())
}
