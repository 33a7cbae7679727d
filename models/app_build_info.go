// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries immutable build-time metadata injected by linker flags.
// Missing values are reported as "N/A".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing empty values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

// Lines returns the three "Build ...: value" lines printed on startup and
// shown in the client's about overlay.
func (a AppBuildInfo) Lines() []string {
	return []string{
		fmt.Sprintf("Build version: %s", a.Version),
		fmt.Sprintf("Build date: %s", a.Date),
		fmt.Sprintf("Build commit: %s", a.Commit),
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
