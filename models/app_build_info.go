// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo is the build metadata injected with -ldflags -X into both
// binaries. The server falls back to it for GET /api/version and the
// client shows it in the about overlay.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// String formats the metadata as "version (commit, date)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.buildVersion, a.buildCommit, a.buildDate)
}
