package registry

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"tag-reviver/diagnostic"
	"tag-reviver/internal/match"
)

const (
	suggestionThreshold = 0.6
	maxSuggestions      = 3
)

// Snapshot is the read-only registry view used by a single decode pass.
type Snapshot struct {
	classes     map[string]*Class
	loadTags    map[string]*Class
	domainTypes map[string]DomainType
}

// LoadTag returns the class registered for exactly tag.
func (s *Snapshot) LoadTag(tag string) (*Class, bool) {
	if tag == "" {
		return nil, false
	}

	c, ok := s.loadTags[tag]

	return c, ok
}

// HasDomainTypes reports whether any transform is registered.
func (s *Snapshot) HasDomainTypes() bool {
	return len(s.domainTypes) > 0
}

// DomainType returns the transform registered under the normalized tag key.
func (s *Snapshot) DomainType(key string) (DomainType, bool) {
	dt, ok := s.domainTypes[key]
	return dt, ok
}

// Resolve finds the class registered under name.
//
// An empty name resolves to no class without error. A name that is not
// registered is retried once under RecordNamespace; if that also fails the
// error for the original name is returned, with suggestions of similar names.
func (s *Snapshot) Resolve(name string) (*Class, error) {
	if name == "" {
		return nil, nil
	}

	if c, ok := s.classes[name]; ok {
		return c, nil
	}

	if c, ok := s.classes[RecordNamespace+name]; ok {
		return c, nil
	}

	err := fmt.Errorf("%w: %s", diagnostic.ErrTypeResolution, name)

	return nil, diagnostic.Suggest(err, s.suggest(name)...)
}

// Names returns the registered class names in sorted order.
func (s *Snapshot) Names() []string {
	names := make([]string, 0, len(s.classes))
	for name := range s.classes {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func (s *Snapshot) suggest(name string) []string {
	type candidate struct {
		name  string
		score float64
	}

	var candidates []candidate
	for _, known := range s.Names() {
		score := match.Similarity(name, strings.TrimPrefix(known, RecordNamespace))
		if score >= suggestionThreshold {
			candidates = append(candidates, candidate{name: known, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	out := make([]string, 0, maxSuggestions)
	for i := 0; i < len(candidates) && i < maxSuggestions; i++ {
		out = append(out, candidates[i].name)
	}

	return out
}
