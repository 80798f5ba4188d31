package services

import (
	_ "embed"
	"fmt"

	"restaurant-backoffice/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Swatches []struct {
		Name string `yaml:"name"`
		PNG  string `yaml:"png"`
	} `yaml:"swatches"`
	Menu []struct {
		Name        string `yaml:"name"`
		Price       string `yaml:"price"`
		Swatch      string `yaml:"swatch"`
		Description string `yaml:"description"`
	} `yaml:"menu"`
	Services []struct {
		Name   string `yaml:"name"`
		Price  string `yaml:"price"`
		Swatch string `yaml:"swatch"`
	} `yaml:"services"`
}

// SeedCatalog is the sample data inserted into an empty store at startup.
type SeedCatalog struct {
	Menu     []models.MenuInput
	Services []models.ServiceInput
}

// LoadSeedCatalog parses the embedded sample catalog.
func LoadSeedCatalog() (*SeedCatalog, error) {
	return parseSeedCatalog(seedYAML)
}

func parseSeedCatalog(raw []byte) (*SeedCatalog, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	if len(f.Swatches) == 0 {
		return nil, fmt.Errorf("seed catalog: no swatches")
	}

	swatch := func(name string) string {
		png := f.Swatches[0].PNG
		for _, s := range f.Swatches {
			if s.Name == name {
				png = s.PNG
				break
			}
		}
		return "data:image/png;base64," + png
	}

	c := &SeedCatalog{}
	for _, m := range f.Menu {
		cents, err := ParsePrice(m.Price)
		if err != nil {
			return nil, fmt.Errorf("seed menu %q: %w", m.Name, err)
		}
		c.Menu = append(c.Menu, models.MenuInput{
			Name:        m.Name,
			PriceCents:  cents,
			Image:       swatch(m.Swatch),
			Description: m.Description,
		})
	}
	for _, sv := range f.Services {
		cents, err := ParsePrice(sv.Price)
		if err != nil {
			return nil, fmt.Errorf("seed service %q: %w", sv.Name, err)
		}
		c.Services = append(c.Services, models.ServiceInput{
			Name:       sv.Name,
			PriceCents: cents,
			Image:      swatch(sv.Swatch),
		})
	}
	return c, nil
}
