package models

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_BlankIsNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "N/A", AppBuildInfo{}.BuildVersion())
	assert.Equal(t, "Build version: 1.2.0\nBuild date: N/A\nBuild commit: N/A\n", info.String())
}

func TestAppBuildInfo_MarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	log.Info().Object("build", NewAppBuildInfo("1.2.0", "2026-10-01", "abc123")).Send()

	assert.JSONEq(t,
		`{"level":"info","build":{"version":"1.2.0","date":"2026-10-01","commit":"abc123"}}`,
		buf.String())
}
