package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunPrintsReport(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.yaml")
	content := `
rule_source: |
  (def h (attr "height" 6))
  (extrude h)
  (report "height" h)
shapes:
  - vertices: [0, 0, 0, 8, 0, 0, 8, 8, 0, 0, 8, 0]
  - vertices: [0, 0]
attributes:
  - height: 6
  - height: 9
`
	if err := os.WriteFile(jobPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write job: %v", err)
	}

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-job", jobPath, "-cells", "16"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error: %v\nstderr: %s", err, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{
		"Number of generated geometries (= nber of initial shapes):\n2\n",
		"Initial Shape Index: 0",
		"Number of model vertices:",
		"Report of the generated model:\nheight: 6",
		"Error while instanciating the model generator.",
		"Initial Shape Index 1: generation failed: invalid initial shape",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "initial shape 1:") {
		t.Errorf("failure line names the shape twice:\n%s", out)
	}
}

func TestRunRequiresJob(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), nil, &stdout, &stderr); err == nil {
		t.Fatal("expected error without -job")
	}
}
