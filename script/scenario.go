package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrScript flags malformed scenarios.
var ErrScript = errors.New("script: malformed scenario")

// Scenario is a named sequence of steps, performed on a vector created from Init.
type Scenario struct {
	Name   string    `yaml:"name"`
	Growth float64   `yaml:"growth"` // growth factor, 0 = default
	Limit  int       `yaml:"limit"`  // allocation limit, 0 = none
	Init   []float64 `yaml:"init"`
	Steps  []Step    `yaml:"steps"`
}

// Step is a single operation on a vector.
type Step struct {
	Op       string    `yaml:"op"`
	Label    string    `yaml:"label"` // for op 'print'
	Value    float64   `yaml:"value"`
	Values   []float64 `yaml:"values"`
	Pos      int       `yaml:"pos"`
	Count    *int      `yaml:"count"` // for op 'erase', defaults to 1
	End      int       `yaml:"end"`
	Capacity int       `yaml:"capacity"`
	Error    string    `yaml:"error"` // expected error kind, see errorKinds
	Expect   *Expect   `yaml:"expect"`
}

// Expect states properties of a vector after a step has been performed.
// Unset properties are not checked.
type Expect struct {
	Values     []float64 `yaml:"values"`
	Size       *int      `yaml:"size"`
	Capacity   *int      `yaml:"capacity"`
	LoadFactor *float64  `yaml:"load_factor"`
	Index      *int      `yaml:"index"` // result of 'find'
	Value      *float64  `yaml:"value"` // result of 'get'
	Sum        *float64  `yaml:"sum"`   // result of 'sum'
}

// Parse reads one or more scenarios from YAML input. Multiple scenarios are
// separated by document markers ("---").
func Parse(r io.Reader) ([]*Scenario, error) {
	dec := yaml.NewDecoder(r)
	var scenarios []*Scenario
	for {
		sc := &Scenario{}
		err := dec.Decode(sc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScript, err)
		}
		if err = sc.validate(); err != nil {
			return nil, err
		}
		tracer().Debugf("parsed scenario %q with %d steps", sc.Name, len(sc.Steps))
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// ParseBytes is Parse for in-memory YAML.
func ParseBytes(data []byte) ([]*Scenario, error) {
	return Parse(bytes.NewReader(data))
}

// Load reads scenarios from a YAML file.
func Load(path string) ([]*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scenarios, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

func (sc *Scenario) validate() error {
	if sc.Name == "" {
		return fmt.Errorf("%w: scenario without name", ErrScript)
	}
	for i, step := range sc.Steps {
		if _, ok := operations[step.Op]; !ok {
			return fmt.Errorf("%w: %s, step %d: unknown op %q", ErrScript, sc.Name, i, step.Op)
		}
		if step.Error != "" {
			if _, ok := errorKinds[step.Error]; !ok {
				return fmt.Errorf("%w: %s, step %d: unknown error kind %q", ErrScript, sc.Name, i, step.Error)
			}
		}
		if key := misplacedResult(step); key != "" {
			return fmt.Errorf("%w: %s, step %d: op %s does not produce %s", ErrScript, sc.Name, i, step.Op, key)
		}
	}
	return nil
}

// misplacedResult returns the name of a query expectation of step which its op
// does not produce, or "".
func misplacedResult(step Step) string {
	e := step.Expect
	switch {
	case e == nil:
		return ""
	case e.Index != nil && step.Op != "find":
		return "index"
	case e.Value != nil && step.Op != "get":
		return "value"
	case e.Sum != nil && step.Op != "sum":
		return "sum"
	}
	return ""
}
