package compare

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scenarioFile is the on-disk shape of a comparison input.
type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads a scenario comparison file. The first scenario is the
// base.
func LoadScenarios(filename string) ([]Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios in %s", filename)
	}
	for i, sc := range file.Scenarios {
		if sc.Name == "" {
			return nil, fmt.Errorf("scenario %d has no name", i)
		}
		if sc.Return == nil {
			return nil, fmt.Errorf("scenario %s has no return", sc.Name)
		}
	}
	return file.Scenarios, nil
}
