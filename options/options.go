package options

import (
	"log/slog"
	"strings"

	"tag-reviver/primitive"
)

const (
	// DefaultNamespace prefixes the private tags of native types, e.g. "!native/range".
	DefaultNamespace = "!native/"
	// DefaultMaxDepth bounds node nesting in one document.
	DefaultMaxDepth = 1024
)

// Options configures a Decoder. The zero value is usable; WithDefaults fills
// every unset field.
type Options struct {
	// Namespace is the private tag prefix, "!native/" when empty.
	// A missing trailing "/" is added.
	Namespace string
	// Logger receives debug notes about fallbacks and deprecation warnings.
	// Nil discards.
	Logger *slog.Logger
	// MaxDepth bounds nesting; zero means DefaultMaxDepth, negative means unlimited.
	MaxDepth int
	// Families lists the permitted tag families. Zero means FamilyAll;
	// use DisableAll to permit none.
	Families FamilyEnum
	// DisableAll forbids every family, overriding Families.
	DisableAll bool
	// Scanner classifies untagged plain scalars; primitive.Scanner{} when nil.
	Scanner primitive.Classifier
}

// Safe returns options that revive plain data and aliases only.
func Safe() Options {
	return Options{Families: FamilySafe}
}

// WithDefaults returns a copy of o with unset fields filled in.
func (o Options) WithDefaults() Options {
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}

	if !strings.HasSuffix(o.Namespace, "/") {
		o.Namespace += "/"
	}

	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}

	switch {
	case o.DisableAll:
		o.Families = FamilyNone
	case o.Families == 0:
		o.Families = FamilyAll
	}

	if o.Scanner == nil {
		o.Scanner = primitive.Scanner{}
	}

	return o
}
