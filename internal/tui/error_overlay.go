package tui

import (
	"github.com/MKhiriev/go-content-admin/internal/mirror"
)

// renderErrorBanner shows the error currently held by the mirror, if any.
func renderErrorBanner(rec *mirror.ErrorRecord) string {
	if rec == nil {
		return ""
	}
	content := errorStyle.Render("Error ("+string(rec.Type)+")") + "\n" +
		humanizeMessage(rec.Message) + "\n" +
		helpStyle.Render("ctrl+r: retry │ x: dismiss")
	return bannerStyle.Render(content)
}
