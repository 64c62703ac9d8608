// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package models

// BuildInfo carries immutable build-time metadata embedded into the binary.
//
// Values are injected by linker flags during release builds and shown in
// `taskdesk version` output for diagnostics.
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// NewBuildInfo constructs [BuildInfo] from the provided build metadata.
// Empty values are normalized to "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		version: orNA(version),
		date:    orNA(date),
		commit:  orNA(commit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Version returns the semantic version string of the build.
func (b BuildInfo) Version() string { return b.version }

// Date returns the build timestamp string.
func (b BuildInfo) Date() string { return b.date }

// Commit returns the source-control commit hash of the build.
func (b BuildInfo) Commit() string { return b.commit }
