// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/rs/zerolog"
)

const notAvailable = "N/A"

// AppBuildInfo holds the version, date and commit injected by linker flags.
// Blank values read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]; blank arguments become "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.commit) }

// String renders the three lines printed on start.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

// MarshalZerologObject lets the build info be logged with Object("build", info).
func (a AppBuildInfo) MarshalZerologObject(e *zerolog.Event) {
	e.Str("version", a.BuildVersion()).
		Str("date", a.BuildDate()).
		Str("commit", a.BuildCommit())
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
