package coder

import (
	"reflect"
)

//go:generate go tool stringer -type=CapabilityEnum -output=capability_string.go

type CapabilityEnum int

const (
	_ CapabilityEnum = iota

	CapabilityCoder
	CapabilityLegacy
	CapabilityAttributes
)

var (
	initializerType       = reflect.TypeFor[Initializer]()
	legacyInitializerType = reflect.TypeFor[LegacyInitializer]()
)

// Detect picks the capability tier for instances allocated from t.
// Both t and its pointer type are considered, since instances are handed
// around as pointers.
func Detect(t reflect.Type) CapabilityEnum {
	if t == nil {
		return CapabilityAttributes
	}

	candidates := []reflect.Type{t}
	if t.Kind() != reflect.Pointer {
		candidates = append(candidates, reflect.PointerTo(t))
	}

	for _, c := range candidates {
		if c.Implements(initializerType) {
			return CapabilityCoder
		}
	}

	for _, c := range candidates {
		if c.Implements(legacyInitializerType) {
			return CapabilityLegacy
		}
	}

	return CapabilityAttributes
}
