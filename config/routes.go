package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// routeFileEntry mirrors one route object in a routes file
type routeFileEntry struct {
	Origin                      string `json:"origin" yaml:"origin" validate:"required"`
	Destination                 string `json:"destination" yaml:"destination" validate:"required"`
	DepartureDate               string `json:"departure_date" yaml:"departure_date" validate:"required"`
	PreferredDepartureTimeStart string `json:"preferred_departure_time_start" yaml:"preferred_departure_time_start"`
	PreferredDepartureTimeEnd   string `json:"preferred_departure_time_end" yaml:"preferred_departure_time_end"`
	MaxPrice                    *int   `json:"max_price" yaml:"max_price" validate:"omitempty,gte=0"`
	MinSeats                    *int   `json:"min_seats" yaml:"min_seats" validate:"omitempty,gte=0"`
}

// LoadRoutes reads a list of route preferences from a JSON or YAML file
func LoadRoutes(path string) ([]RoutePreference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading routes file: %w", err)
	}

	var entries []routeFileEntry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parsing routes file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parsing routes file: %w", err)
		}
	}

	routes := make([]RoutePreference, 0, len(entries))
	for i, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
		route, err := entry.toRoutePreference()
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
		routes = append(routes, route)
	}
	return routes, nil
}

func (e routeFileEntry) toRoutePreference() (RoutePreference, error) {
	date, err := time.Parse(dateLayout, e.DepartureDate)
	if err != nil {
		return RoutePreference{}, fmt.Errorf("parsing departure_date: %w", err)
	}
	route := RoutePreference{
		Origin:        e.Origin,
		Destination:   e.Destination,
		DepartureDate: date,
		MaxPrice:      e.MaxPrice,
		MinSeats:      e.MinSeats,
	}
	if e.PreferredDepartureTimeStart != "" {
		start, err := ParseDayTime(e.PreferredDepartureTimeStart)
		if err != nil {
			return RoutePreference{}, fmt.Errorf("parsing preferred_departure_time_start: %w", err)
		}
		route.PreferredStart = &start
	}
	if e.PreferredDepartureTimeEnd != "" {
		end, err := ParseDayTime(e.PreferredDepartureTimeEnd)
		if err != nil {
			return RoutePreference{}, fmt.Errorf("parsing preferred_departure_time_end: %w", err)
		}
		route.PreferredEnd = &end
	}
	return route, nil
}
