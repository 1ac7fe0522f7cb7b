// Package data ships the static site catalog (photos, projects, roadmap) as
// embedded YAML. The catalog is read-only at runtime; editing the YAML files
// and rebuilding is the publishing workflow.
package data

import (
	"embed"
	"fmt"

	"github.com/jstrehler/portfolio-backend/types"
	"gopkg.in/yaml.v3"
)

//go:embed photos.yaml projects.yaml roadmap.yaml
var catalogFS embed.FS

// Catalog is the decoded content of the embedded data files.
type Catalog struct {
	Photos       []types.Photo
	Projects     []types.Project
	RoadmapItems []types.RoadmapItem
}

// LoadCatalog decodes all embedded data files. It is called once at startup;
// a decode failure is a build defect, not a runtime condition.
func LoadCatalog() (*Catalog, error) {
	var c Catalog

	if err := loadFile("photos.yaml", &c.Photos); err != nil {
		return nil, err
	}
	if err := loadFile("projects.yaml", &c.Projects); err != nil {
		return nil, err
	}
	if err := loadFile("roadmap.yaml", &c.RoadmapItems); err != nil {
		return nil, err
	}

	return &c, nil
}

func loadFile(name string, out interface{}) error {
	raw, err := catalogFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read embedded %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
