package harness

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/pythag/ptuples/internal/engine"
	"github.com/pythag/ptuples/internal/tuple"
)

// Scenario defines one conformance run: an engine plus its parameters.
type Scenario struct {
	// Name uniquely identifies this scenario; the golden file is
	// testdata/{Name}.golden.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Engine selects the strategy: "exhaustive" or "growth".
	Engine string `yaml:"engine"`

	// TupleSize is the total number of terms (a-count + 1), >= 3.
	TupleSize int `yaml:"tuple_size"`

	// BMin and BMax bound the hypotenuse, as decimal strings so
	// scenarios can exceed 64 bits.
	BMin string `yaml:"b_min"`
	BMax string `yaml:"b_max"`

	// Primitive restricts the output to primitive tuples.
	Primitive bool `yaml:"primitive,omitempty"`
}

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: missing name", path)
	}
	if s.Engine != "exhaustive" && s.Engine != "growth" {
		return nil, fmt.Errorf("scenario %s: engine must be \"exhaustive\" or \"growth\", got %q", path, s.Engine)
	}
	if _, ok := new(big.Int).SetString(s.BMin, 10); !ok {
		return nil, fmt.Errorf("scenario %s: b_min %q is not a decimal integer", path, s.BMin)
	}
	if _, ok := new(big.Int).SetString(s.BMax, 10); !ok {
		return nil, fmt.Errorf("scenario %s: b_max %q is not a decimal integer", path, s.BMax)
	}

	return &s, nil
}

// LoadScenarios reads every *.yaml scenario in dir, sorted by filename for
// a stable test order.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// Run executes the scenario's engine and returns the result table.
func (s *Scenario) Run() (*tuple.Table, error) {
	bMin, _ := new(big.Int).SetString(s.BMin, 10)
	bMax, _ := new(big.Int).SetString(s.BMax, 10)

	params := engine.Params{
		TupleSize:      s.TupleSize,
		BMin:           bMin,
		BMax:           bMax,
		PrimitivesOnly: s.Primitive,
	}

	switch s.Engine {
	case "exhaustive":
		return engine.Exhaustive(params)
	case "growth":
		return engine.Growth(params)
	default:
		return nil, fmt.Errorf("unknown engine %q", s.Engine)
	}
}
