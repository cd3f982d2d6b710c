// Package job loads generation jobs: the initial shapes, the rule to run
// over them and the shape attributes.
package job

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/chazu/prtkit/pkg/geometry"
)

// Job is one generation request.
type Job struct {
	// RulePath is a rule file, relative to the job file.
	RulePath string `yaml:"rule"`
	// RuleSource is an inline rule, used when RulePath is empty.
	RuleSource string              `yaml:"rule_source"`
	Shapes     []geometry.Geometry `yaml:"shapes"`
	Attributes []map[string]any    `yaml:"attributes"`
}

// Load reads a job file and resolves its rule source.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job %s: %w", path, err)
	}
	var j Job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parsing job %s: %w", path, err)
	}

	if j.RulePath != "" {
		rulePath := j.RulePath
		if !filepath.IsAbs(rulePath) {
			rulePath = filepath.Join(filepath.Dir(path), rulePath)
		}
		src, err := os.ReadFile(rulePath)
		if err != nil {
			return nil, fmt.Errorf("reading rule %s: %w", rulePath, err)
		}
		j.RuleSource = string(src)
	}

	if len(j.Shapes) == 0 {
		return nil, fmt.Errorf("job %s: no initial shapes", path)
	}
	for i := range j.Shapes {
		s := &j.Shapes[i]
		// A shape given only as vertices is one face over all of them.
		if len(s.Indices) == 0 && len(s.FaceCounts) == 0 {
			*s = geometry.NewGeometry(s.Vertices)
		}
	}
	return &j, nil
}
