package parsers

import (
	"fmt"
	"net/http"
	"sort"
)

// Factory builds a parser from its source configuration
type Factory func(client *http.Client, cfg SourceConfig) (Parser, error)

var factories = map[Source]Factory{
	SourceHH:       NewHHParser,
	SourceSuperjob: NewSuperjobParser,
	SourceFarpost:  NewFarpostParser,
	SourceVK:       NewVKParser,
}

type entry struct {
	parser Parser
	active bool
}

// Registry holds one parser per configured source, built at startup
type Registry struct {
	entries map[string]entry
}

// NewRegistry builds every configured parser, failing on the first bad source
func NewRegistry(client *http.Client, cfg *Config) (*Registry, error) {
	r := &Registry{entries: make(map[string]entry, len(cfg.Sources))}

	for name, sc := range cfg.Sources {
		factory, ok := factories[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
		}
		p, err := factory(client, sc)
		if err != nil {
			return nil, err
		}
		r.entries[string(name)] = entry{parser: p, active: sc.IsActive}
	}

	return r, nil
}

// Select returns the active parsers among names, or every active parser when
// names is empty. A name that is not configured yields ErrUnknownSource.
func (r *Registry) Select(names []string) ([]Parser, error) {
	if len(names) == 0 {
		for name := range r.entries {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	seen := make(map[string]struct{}, len(names))
	parsers := make([]Parser, 0, len(names))
	for _, name := range names {
		e, ok := r.entries[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
		}
		if _, dup := seen[name]; dup || !e.active {
			continue
		}
		seen[name] = struct{}{}
		parsers = append(parsers, e.parser)
	}

	return parsers, nil
}
