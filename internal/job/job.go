// Package job describes batches of derivative and integral tasks, decodes
// them from YAML, TOML or JSON files, runs them on a configured numeric
// backend and encodes the resulting report.
package job

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnsupportedFormat indicates a file extension or format name other
	// than yaml, yml, toml or json.
	ErrUnsupportedFormat = errors.New("job: unsupported format")

	// ErrInvalidTask indicates a task that cannot be run as written.
	ErrInvalidTask = errors.New("job: invalid task")
)

// File is a batch of tasks.
type File struct {
	Derivatives []DerivativeTask `yaml:"derivatives,omitempty" toml:"derivatives,omitempty" json:"derivatives,omitempty"`
	Integrals   []IntegralTask   `yaml:"integrals,omitempty" toml:"integrals,omitempty" json:"integrals,omitempty"`
}

// DerivativeTask differentiates sampled data at one index, or at every index
// when All is set. Ordinates come from Y, or from Fn evaluated at each X.
// Accuracy 0 uses the runner default.
type DerivativeTask struct {
	Name     string    `yaml:"name" toml:"name" json:"name"`
	X        []float64 `yaml:"x" toml:"x" json:"x"`
	Y        []float64 `yaml:"y,omitempty" toml:"y,omitempty" json:"y,omitempty"`
	Fn       string    `yaml:"fn,omitempty" toml:"fn,omitempty" json:"fn,omitempty"`
	Position int       `yaml:"position" toml:"position" json:"position"`
	All      bool      `yaml:"all,omitempty" toml:"all,omitempty" json:"all,omitempty"`
	Order    int       `yaml:"order" toml:"order" json:"order"`
	H        float64   `yaml:"h" toml:"h" json:"h"`
	Accuracy int       `yaml:"accuracy,omitempty" toml:"accuracy,omitempty" json:"accuracy,omitempty"`
}

// IntegralTask integrates Fn over [A, B] with M partitions.
// An empty Method uses the runner default.
type IntegralTask struct {
	Name   string  `yaml:"name" toml:"name" json:"name"`
	Fn     string  `yaml:"fn" toml:"fn" json:"fn"`
	A      float64 `yaml:"a" toml:"a" json:"a"`
	B      float64 `yaml:"b" toml:"b" json:"b"`
	M      int     `yaml:"m" toml:"m" json:"m"`
	Method string  `yaml:"method,omitempty" toml:"method,omitempty" json:"method,omitempty"`
}

// Validate checks the shape of t. Numeric domain checks (position, order,
// step) are left to the derivative engine.
func (t DerivativeTask) Validate() error {
	switch {
	case len(t.X) == 0:
		return fmt.Errorf("%w: %s: empty x", ErrInvalidTask, t.Name)
	case len(t.Y) == 0 && t.Fn == "":
		return fmt.Errorf("%w: %s: one of y or fn is required", ErrInvalidTask, t.Name)
	case len(t.Y) > 0 && t.Fn != "":
		return fmt.Errorf("%w: %s: y and fn are mutually exclusive", ErrInvalidTask, t.Name)
	}
	if !finite(t.H) || !finite(t.X...) || !finite(t.Y...) {
		return fmt.Errorf("%w: %s: non-finite number", ErrInvalidTask, t.Name)
	}

	return nil
}

// Validate checks the shape of t. Partition rules are left to the integrator.
func (t IntegralTask) Validate() error {
	if t.Fn == "" {
		return fmt.Errorf("%w: %s: fn is required", ErrInvalidTask, t.Name)
	}
	if !finite(t.A, t.B) {
		return fmt.Errorf("%w: %s: non-finite bound", ErrInvalidTask, t.Name)
	}

	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Report is the result of running a File.
type Report struct {
	Backend  string    `yaml:"backend" toml:"backend" json:"backend"`
	Outcomes []Outcome `yaml:"outcomes" toml:"outcomes" json:"outcomes"`
}

// Outcome is the result of one task. Value holds the full-precision backend
// rendering, Float its float64 approximation. Series is set for All tasks.
type Outcome struct {
	Name   string  `yaml:"name" toml:"name" json:"name"`
	Kind   string  `yaml:"kind" toml:"kind" json:"kind"`
	Value  string  `yaml:"value,omitempty" toml:"value,omitempty" json:"value,omitempty"`
	Float  float64 `yaml:"float" toml:"float" json:"float"`
	Error  string  `yaml:"error,omitempty" toml:"error,omitempty" json:"error,omitempty"`
	Series []Point `yaml:"series,omitempty" toml:"series,omitempty" json:"series,omitempty"`
}

// Point is one index of a derivative series.
type Point struct {
	Position int    `yaml:"position" toml:"position" json:"position"`
	Value    string `yaml:"value,omitempty" toml:"value,omitempty" json:"value,omitempty"`
	Error    string `yaml:"error,omitempty" toml:"error,omitempty" json:"error,omitempty"`
}

// Outcome kinds.
const (
	KindDerivative = "derivative"
	KindIntegral   = "integral"
)

// Failed reports whether any outcome carries an error.
func (r *Report) Failed() bool {
	for _, o := range r.Outcomes {
		if o.Error != "" {
			return true
		}
	}

	return false
}
