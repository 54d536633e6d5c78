package generator

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// SchoolEntry is one school in the catalog.
type SchoolEntry struct {
	Name  string `yaml:"name"`
	City  string `yaml:"city"`
	State string `yaml:"state"`
	Type  string `yaml:"type"`
}

// Catalog holds the fixed value tables the generator samples from.
type Catalog struct {
	FirstNames           []string      `yaml:"firstNames"`
	LastNames            []string      `yaml:"lastNames"`
	Sports               []string      `yaml:"sports"`
	ExtraSpecializations []string      `yaml:"extraSpecializations"`
	EmailDomains         []string      `yaml:"emailDomains"`
	Achievements         []string      `yaml:"achievements"`
	Schools              []SchoolEntry `yaml:"schools"`
}

// Specializations returns the coach specialization pool: every sport plus
// the non-sport specialties.
func (c Catalog) Specializations() []string {
	out := make([]string, 0, len(c.Sports)+len(c.ExtraSpecializations))
	out = append(out, c.Sports...)
	out = append(out, c.ExtraSpecializations...)
	return out
}

// LoadCatalog parses the embedded catalog tables.
// POST: Returns a catalog with every table non-empty, or an error
func LoadCatalog() (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse generator catalog: %w", err)
	}
	for table, entries := range map[string]int{
		"firstNames":   len(c.FirstNames),
		"lastNames":    len(c.LastNames),
		"sports":       len(c.Sports),
		"emailDomains": len(c.EmailDomains),
		"schools":      len(c.Schools),
	} {
		if entries == 0 {
			return Catalog{}, fmt.Errorf("generator catalog table %q is empty", table)
		}
	}
	return c, nil
}
