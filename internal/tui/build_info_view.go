// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const appName = "go-notes-keeper"

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: ")
	b.WriteString(appName)
	for _, line := range info.Lines() {
		b.WriteString("\n")
		b.WriteString(line)
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}
