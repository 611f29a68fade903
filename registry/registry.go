package registry

import (
	"fmt"
	"maps"
	"sync"

	"tag-reviver/diagnostic"
)

// DomainType is a registered post-processing transform.
type DomainType struct {
	// Tag is the normalized tag the transform was registered under.
	Tag       string
	Transform Transform
}

// Registry is the host-side configuration surface. It is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	classes     map[string]*Class
	loadTags    map[string]*Class
	domainTypes map[string]DomainType
}

func New() *Registry {
	return &Registry{
		classes:     make(map[string]*Class),
		loadTags:    make(map[string]*Class),
		domainTypes: make(map[string]DomainType),
	}
}

// Register adds the type of sample to the class universe under name.
// sample may be a value or a pointer; an empty name defaults to the Go type name.
// Registering a name twice replaces the earlier class.
func (r *Registry) Register(name string, sample any, opts ...ClassOption) (*Class, error) {
	c, err := newClass(name, sample, opts...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.classes[c.Name] = c

	return c, nil
}

// RegisterType is Register for a type parameter.
func RegisterType[T any](r *Registry, name string, opts ...ClassOption) (*Class, error) {
	return r.Register(name, (*T)(nil), opts...)
}

// MustRegister is Register that panics on error, for package-level setup.
func (r *Registry) MustRegister(name string, sample any, opts ...ClassOption) *Class {
	c, err := r.Register(name, sample, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// LoadTag makes every node carrying exactly tag revive as an instance of the named class.
func (r *Registry) LoadTag(tag, className string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.classes[className]
	if !ok {
		return fmt.Errorf("load tag %s: %w: %s", tag, diagnostic.ErrTypeResolution, className)
	}

	r.loadTags[tag] = c

	return nil
}

// AddDomainType registers a transform for "tag:<domain>:<typeName>".
// fn is any function accepted by ParseTransform.
func (r *Registry) AddDomainType(domain, typeName string, fn any) error {
	return r.addTransform("tag:"+domain+":"+typeName, fn)
}

// AddPrivateType registers a transform for "x-private:<typeName>".
func (r *Registry) AddPrivateType(typeName string, fn any) error {
	return r.addTransform("x-private:"+typeName, fn)
}

// AddTag registers a transform for an arbitrary tag, normalized with NormalizeTag.
func (r *Registry) AddTag(tag string, fn any) error {
	return r.addTransform(NormalizeTag(tag), fn)
}

func (r *Registry) addTransform(key string, fn any) error {
	tr, err := ParseTransform(fn)
	if err != nil {
		return fmt.Errorf("domain type %s: %w", key, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.domainTypes[key] = DomainType{Tag: key, Transform: tr}

	return nil
}

// Snapshot returns an immutable view of the current configuration.
func (r *Registry) Snapshot() *Snapshot {
	if r == nil {
		return &Snapshot{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return &Snapshot{
		classes:     maps.Clone(r.classes),
		loadTags:    maps.Clone(r.loadTags),
		domainTypes: maps.Clone(r.domainTypes),
	}
}
