package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"acequia/sim"
)

// Config mirrors a scenario YAML file.
type Config struct {
	Name     string       `yaml:"name"`
	MaxHours int          `yaml:"max_hours"`
	Regions  []RegionSpec `yaml:"regions"`
	Canals   []CanalSpec  `yaml:"canals"`
	Routes   []RouteSpec  `yaml:"routes,omitempty"`
}

// RegionSpec declares one region's starting state.
type RegionSpec struct {
	Name     string  `yaml:"name"`
	Level    float64 `yaml:"level"`
	Need     float64 `yaml:"need"`
	Capacity float64 `yaml:"capacity"`
}

// CanalSpec declares one directed canal.
type CanalSpec struct {
	Name string `yaml:"name"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// RouteSpec declares one entry of an explicit priority plan, by name.
type RouteSpec struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Canal string `yaml:"canal"`
}

// Load reads a scenario from path. An empty path yields the built-in classic
// triangle. The returned Config is normalized and validated.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		cfg := Classic()
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("scenario: %s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return cfg, nil
}

// Classic returns the built-in North/South/East triangle with canals A–D,
// the scenario the balancer was originally written against.
func Classic() Config {
	return Config{
		Name:     "classic-triangle",
		MaxHours: sim.DefaultSimulationMax,
		Regions: []RegionSpec{
			{Name: "North", Level: 100, Need: 50, Capacity: 150},
			{Name: "South", Level: 10, Need: 60, Capacity: 100},
			{Name: "East", Level: 80, Need: 40, Capacity: 120},
		},
		Canals: []CanalSpec{
			{Name: "CanalA", From: "North", To: "South"},
			{Name: "CanalB", From: "South", To: "East"},
			{Name: "CanalC", From: "North", To: "East"},
			{Name: "CanalD", From: "East", To: "North"},
		},
		// Explicit routes: the classic canal names all contain the "C" of
		// "Canal", which makes the legacy letter scan collide on C and D.
		Routes: []RouteSpec{
			{From: "North", To: "South", Canal: "CanalA"},
			{From: "North", To: "East", Canal: "CanalC"},
			{From: "South", To: "East", Canal: "CanalB"},
			{From: "East", To: "North", Canal: "CanalD"},
		},
	}
}

// Normalize trims whitespace from every name and applies the default hour
// ceiling when none is set.
func (c *Config) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	if c.MaxHours == 0 {
		c.MaxHours = sim.DefaultSimulationMax
	}
	for i := range c.Regions {
		c.Regions[i].Name = strings.TrimSpace(c.Regions[i].Name)
	}
	for i := range c.Canals {
		c.Canals[i].Name = strings.TrimSpace(c.Canals[i].Name)
		c.Canals[i].From = strings.TrimSpace(c.Canals[i].From)
		c.Canals[i].To = strings.TrimSpace(c.Canals[i].To)
	}
	for i := range c.Routes {
		c.Routes[i].From = strings.TrimSpace(c.Routes[i].From)
		c.Routes[i].To = strings.TrimSpace(c.Routes[i].To)
		c.Routes[i].Canal = strings.TrimSpace(c.Routes[i].Canal)
	}
}

// Validate checks quantities, the hour ceiling, and that every canal
// endpoint and route member resolves within the scenario. Duplicate names
// are caught later by network assembly in Build.
func (c *Config) Validate() error {
	if len(c.Regions) == 0 {
		return ErrNoRegions
	}
	if c.MaxHours < 1 {
		return ErrBadMaxHours
	}

	regions := make(map[string]bool, len(c.Regions))
	for _, r := range c.Regions {
		if r.Level < 0 || r.Need < 0 || r.Capacity < 0 {
			return fmt.Errorf("%w: region %q", ErrBadQuantity, r.Name)
		}
		regions[r.Name] = true
	}

	canals := make(map[string]bool, len(c.Canals))
	for _, cn := range c.Canals {
		if !regions[cn.From] || !regions[cn.To] {
			return fmt.Errorf("%w: canal %q (%s→%s)", ErrUnknownReference, cn.Name, cn.From, cn.To)
		}
		canals[cn.Name] = true
	}

	for _, rt := range c.Routes {
		if !regions[rt.From] || !regions[rt.To] || !canals[rt.Canal] {
			return fmt.Errorf("%w: route %s→%s via %q", ErrUnknownReference, rt.From, rt.To, rt.Canal)
		}
	}
	return nil
}
