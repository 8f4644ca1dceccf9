// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-content-admin/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("Application: go-content-admin\n%-9s%s\n%-9s%s\n%-9s%s",
		"Version:", info.BuildVersion(),
		"Date:", info.BuildDate(),
		"Commit:", info.BuildCommit())
	return renderPage("ABOUT", body, "esc: back")
}
