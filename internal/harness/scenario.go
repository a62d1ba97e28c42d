package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sekaitools/chartconv/internal/chart"
)

// Scenario defines a conformance test scenario: an inline raw chart and
// assertions on the converted output.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Chart is the raw chart to convert.
	Chart ChartSpec `yaml:"chart"`

	// Assertions validate the converted entity list.
	// Supported types: entity_count, archetype_count, sorted_by_beat.
	Assertions []Assertion `yaml:"assertions"`
}

// ChartSpec is the inline raw chart of a scenario.
type ChartSpec struct {
	BGMOffset float64      `yaml:"bgm_offset"`
	Entities  []EntitySpec `yaml:"entities"`
}

// EntitySpec is one raw entity of a scenario chart.
type EntitySpec struct {
	Archetype string             `yaml:"archetype"`
	Data      map[string]float64 `yaml:"data"`
}

// Assertion validates one property of the converted output.
type Assertion struct {
	// Type selects the assertion: entity_count, archetype_count, or
	// sorted_by_beat.
	Type string `yaml:"type"`

	// Count is the expected count for entity_count and archetype_count.
	Count int `yaml:"count,omitempty"`

	// Archetype is the output archetype name for archetype_count.
	Archetype string `yaml:"archetype,omitempty"`
}

// LoadScenario reads and decodes a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	return &s, nil
}

// ToChart lowers the inline spec to the converter's input type.
func (s *Scenario) ToChart() chart.LevelData {
	entities := make([]chart.EntityData, 0, len(s.Chart.Entities))
	for _, e := range s.Chart.Entities {
		data := e.Data
		if data == nil {
			data = map[string]float64{}
		}
		entities = append(entities, chart.EntityData{Archetype: e.Archetype, Data: data})
	}
	return chart.LevelData{BGMOffset: s.Chart.BGMOffset, Entities: entities}
}
