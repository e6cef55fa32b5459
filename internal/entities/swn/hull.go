package swn

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed hulls.yaml
var defaultHullsYAML []byte

// HullTemplate holds the reference stats for a named ship class
type HullTemplate struct {
	Name       string    `yaml:"name" json:"name" validate:"required"`
	Class      HullClass `yaml:"class" json:"class" validate:"oneof=fighter frigate cruiser capital"`
	HP         int32     `yaml:"hp" json:"hp" validate:"gt=0"`
	Cost       int64     `yaml:"cost" json:"cost" validate:"gte=0"`
	Armor      int32     `yaml:"armor" json:"armor" validate:"gte=0"`
	AC         int32     `yaml:"ac" json:"ac" validate:"gte=0"`
	Speed      int32     `yaml:"speed" json:"speed" validate:"gte=0"`
	Power      int32     `yaml:"power" json:"power" validate:"gte=0"`
	Mass       int32     `yaml:"mass" json:"mass" validate:"gte=0"`
	Hardpoints int32     `yaml:"hardpoints" json:"hardpoints" validate:"gte=0"`
	Crew       CrewRange `yaml:"crew" json:"crew"`
}

// LifeSupportMax is the life-support days a fully crewed hull carries
func (h HullTemplate) LifeSupportMax() int32 {
	return LifeSupportDaysPerCrew * h.Crew.Max
}

// HullTable is the read-only hull template lookup
type HullTable struct {
	Version int32                   `yaml:"version" validate:"gt=0"`
	Hulls   map[string]HullTemplate `yaml:"hulls" validate:"required,min=1,dive"`
}

// Lookup returns the template for a hull type
func (t *HullTable) Lookup(hullType string) (HullTemplate, bool) {
	h, ok := t.Hulls[hullType]
	return h, ok
}

// Types returns every hull type key in sorted order
func (t *HullTable) Types() []string {
	keys := make([]string, 0, len(t.Hulls))
	for k := range t.Hulls {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseHullTable decodes and validates a YAML hull table
func ParseHullTable(data []byte) (*HullTable, error) {
	var table HullTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse hull table: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&table); err != nil {
		return nil, fmt.Errorf("invalid hull table: %w", err)
	}
	for key, hull := range table.Hulls {
		if hull.Crew.Max < hull.Crew.Min || hull.Crew.Max <= 0 {
			return nil, fmt.Errorf("invalid hull table: %s crew range %d-%d", key, hull.Crew.Min, hull.Crew.Max)
		}
	}

	return &table, nil
}

// DefaultHullTable returns the built-in hull table
func DefaultHullTable() *HullTable {
	table, err := ParseHullTable(defaultHullsYAML)
	if err != nil {
		// the embedded table is covered by tests
		panic(err)
	}
	return table
}
