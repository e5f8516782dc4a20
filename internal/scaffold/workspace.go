package scaffold

import (
	"strings"

	"github.com/buddy-build/buddy/internal/lockfile"
	"github.com/buddy-build/buddy/internal/plugins"
)

// WorkspaceName is the marker file consumed by the external build tool.
const WorkspaceName = "WORKSPACE"

// The header ends with the http_archive load that every catalogued rule
// relies on; rules follow in registry declaration order.
const workspaceHeader = `# This file is automatically @generated by Buddy.
# It is not intended for manual editing.
load("@bazel_tools//tools/build_defs/repo:http.bzl", "http_archive")
`

// renderWorkspace builds the workspace descriptor text for the given
// dependency pins: header, then each rendered rule separated by a single
// blank line, in registry declaration order.
func renderWorkspace(reg *plugins.Registry, deps map[string]string) (string, error) {
	rules, err := reg.RenderAll(deps)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(workspaceHeader)
	for _, rule := range rules {
		b.WriteString("\n")
		b.WriteString(rule.Text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// lockEntries builds the write-once lock entries for the given pins, in
// registry declaration order.
func lockEntries(reg *plugins.Registry, deps map[string]string) []lockfile.Entry {
	var entries []lockfile.Entry
	for _, p := range reg.Plugins() {
		version, ok := deps[p.Name]
		if !ok {
			continue
		}
		entries = append(entries, lockfile.Entry{
			Name:    p.Name,
			Version: version,
			Source:  p.SourceURL,
		})
	}
	return entries
}
