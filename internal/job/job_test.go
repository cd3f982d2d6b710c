package job

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadWithRuleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "extrude.lisp", `(extrude (attr "height" 10))`)
	path := writeFile(t, dir, "job.yaml", `
rule: extrude.lisp
shapes:
  - vertices: [0, 0, 0, 10, 0, 0, 10, 10, 0, 0, 10, 0]
  - vertices: [0, 0, 0, 4, 0, 0, 4, 4, 0]
    indices: [0, 1, 2]
    face_counts: [3]
attributes:
  - height: 12
`)

	j, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !strings.Contains(j.RuleSource, "extrude") {
		t.Errorf("rule source not loaded: %q", j.RuleSource)
	}
	if len(j.Shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(j.Shapes))
	}
	if got := j.Shapes[0].FaceCounts; len(got) != 1 || got[0] != 4 {
		t.Errorf("vertex-only shape FaceCounts = %v, want [4]", got)
	}
	if got := j.Shapes[1].FaceCounts; len(got) != 1 || got[0] != 3 {
		t.Errorf("explicit shape FaceCounts = %v, want [3]", got)
	}
	if j.Attributes[0]["height"] != 12 {
		t.Errorf("height attribute = %#v, want 12", j.Attributes[0]["height"])
	}
}

func TestLoadInlineRule(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "job.yaml", `
rule_source: (extrude 3)
shapes:
  - vertices: [0, 0, 0, 1, 0, 0, 1, 1, 0]
`)
	j, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if j.RuleSource != "(extrude 3)" {
		t.Errorf("RuleSource = %q", j.RuleSource)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"no shapes", "rule_source: (extrude 1)\n"},
		{"missing rule file", "rule: nope.lisp\nshapes:\n  - vertices: [0, 0, 0]\n"},
		{"bad yaml", "shapes: [unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml", tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
	if _, err := Load(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Error("expected error for missing job file")
	}
}
