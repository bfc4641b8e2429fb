package strategy

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed strategies.yaml
var rawStrategies []byte

// Strategy is one routing flavor.
type Strategy struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Packages    []string `yaml:"packages"`
}

var (
	loadOnce   sync.Once
	strategies []Strategy
	loadErr    error
)

func load() ([]Strategy, error) {
	loadOnce.Do(func() {
		strategies, loadErr = parse(rawStrategies)
	})
	return strategies, loadErr
}

func parse(data []byte) ([]Strategy, error) {
	var list []Strategy
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing strategies: %w", err)
	}
	seen := make(map[string]bool, len(list))
	for i, s := range list {
		if s.Name == "" {
			return nil, fmt.Errorf("strategy %d has no name", i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate strategy %q", s.Name)
		}
		if len(s.Packages) == 0 {
			return nil, fmt.Errorf("strategy %q installs no packages", s.Name)
		}
		seen[s.Name] = true
	}
	return list, nil
}

// All returns every known strategy in declaration order.
func All() ([]Strategy, error) {
	list, err := load()
	if err != nil {
		return nil, err
	}
	out := make([]Strategy, len(list))
	copy(out, list)
	return out, nil
}

// Names returns the strategy names in declaration order.
func Names() []string {
	list, _ := load()
	names := make([]string, len(list))
	for i, s := range list {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the strategy with the given name.
func Lookup(name string) (*Strategy, error) {
	list, err := load()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Name == name {
			s := list[i]
			s.Packages = append([]string(nil), s.Packages...)
			return &s, nil
		}
	}
	return nil, fmt.Errorf("unknown router %q: choose one of %s", name, strings.Join(Names(), ", "))
}
