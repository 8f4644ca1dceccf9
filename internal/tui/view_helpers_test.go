package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-content-admin/internal/app"
	"github.com/MKhiriev/go-content-admin/internal/mirror"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "short", 10, "short"},
		{"cut", "a long title", 8, "a lon..."},
		{"tiny limit", "abcdef", 2, "ab"},
		{"no limit", "abcdef", 0, "abcdef"},
		{"multibyte", "привет мир", 6, "при..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestHumanizeMessage(t *testing.T) {
	assert.Equal(t, app.MsgUnavailable, humanizeMessage(`Get "http://localhost:8080/api/blogs": dial tcp 127.0.0.1:8080: connect: connection refused`))
	assert.Equal(t, app.MsgNotFound, humanizeMessage(app.MsgNotFound))
}

func TestRenderErrorBanner(t *testing.T) {
	assert.Empty(t, renderErrorBanner(nil))

	out := renderErrorBanner(&mirror.ErrorRecord{Type: mirror.ErrorCategories, Message: "denied"})
	assert.Contains(t, out, "Error (categories)")
	assert.Contains(t, out, "denied")
}

func TestRenderPage(t *testing.T) {
	out := renderPage("TITLE", "line one\nline two", "enter: open")

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "  line two")
	assert.Contains(t, out, "enter: open")
	assert.Contains(t, out, "ctrl+c: quit")
	assert.Contains(t, renderPage("EMPTY", "", ""), "  -")
}

func TestValueHelpers(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
	assert.Equal(t, "-", valueOrDash("  "))
}
