package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplateIncludesBuildValues(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	defer func() { Version, Commit, Date = oldVersion, oldCommit, oldDate }()

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-01"

	tmpl := Template()
	for _, want := range []string{"{{.Name}}", "v1.2.3", "abc123", "2026-01-01"} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("Template() = %q, missing %q", tmpl, want)
		}
	}

	if got := String(); got != "version: v1.2.3\ncommit: abc123\nbuilt: 2026-01-01" {
		t.Errorf("String() = %q", got)
	}
}
