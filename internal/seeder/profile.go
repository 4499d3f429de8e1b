package seeder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is an optional YAML file overriding record counts and the
// generator's vocabulary pools. Absent fields keep their defaults.
type Profile struct {
	Counts struct {
		Users    *int `yaml:"users"`
		Listings *int `yaml:"listings"`
		Bookings *int `yaml:"bookings"`
		Reviews  *int `yaml:"reviews"`
	} `yaml:"counts"`

	Vocabulary struct {
		FirstNames      []string      `yaml:"first_names"`
		LastNames       []string      `yaml:"last_names"`
		Cities          []ProfileCity `yaml:"cities"`
		PropertyTypes   []string      `yaml:"property_types"`
		Amenities       []string      `yaml:"amenities"`
		TitleStyles     []string      `yaml:"title_styles"`
		Comments        []string      `yaml:"comments"`
		SpecialRequests []string      `yaml:"special_requests"`
	} `yaml:"vocabulary"`
}

type ProfileCity struct {
	Name      string  `yaml:"name"`
	State     string  `yaml:"state"`
	Country   string  `yaml:"country"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}

// Apply overlays the profile onto a config and vocabulary.
func (p *Profile) Apply(cfg *Config, vocab *Vocabulary) {
	if p.Counts.Users != nil {
		cfg.Users = *p.Counts.Users
	}
	if p.Counts.Listings != nil {
		cfg.Listings = *p.Counts.Listings
	}
	if p.Counts.Bookings != nil {
		cfg.Bookings = *p.Counts.Bookings
	}
	if p.Counts.Reviews != nil {
		cfg.Reviews = *p.Counts.Reviews
	}

	v := p.Vocabulary
	if len(v.FirstNames) > 0 {
		vocab.FirstNames = v.FirstNames
	}
	if len(v.LastNames) > 0 {
		vocab.LastNames = v.LastNames
	}
	if len(v.Cities) > 0 {
		cities := make([]City, 0, len(v.Cities))
		for _, c := range v.Cities {
			cities = append(cities, City{
				Name: c.Name, State: c.State, Country: c.Country,
				Latitude: c.Latitude, Longitude: c.Longitude,
			})
		}
		vocab.Cities = cities
	}
	if len(v.PropertyTypes) > 0 {
		vocab.PropertyTypes = v.PropertyTypes
	}
	if len(v.Amenities) > 0 {
		vocab.Amenities = v.Amenities
	}
	if len(v.TitleStyles) > 0 {
		vocab.TitleStyles = v.TitleStyles
	}
	if len(v.Comments) > 0 {
		vocab.Comments = v.Comments
	}
	if len(v.SpecialRequests) > 0 {
		vocab.SpecialRequests = v.SpecialRequests
	}
}
