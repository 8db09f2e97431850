package conformance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one fixture entry: feed Input to the named machine and expect
// exactly Trace.
type Scenario struct {
	Name    string   `yaml:"name"`
	Machine string   `yaml:"machine"`
	Input   string   `yaml:"input"`
	Trace   []string `yaml:"trace"`
}

// LoadScenarios reads a fixture file and checks that every scenario names a
// known machine.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}

	for _, s := range file.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("%s: scenario with empty name", path)
		}
		if _, ok := Machines[s.Machine]; !ok {
			return nil, fmt.Errorf("scenario %q: unknown machine %q", s.Name, s.Machine)
		}
	}
	return file.Scenarios, nil
}
