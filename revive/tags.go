package revive

import (
	"regexp"
	"strings"
)

const (
	yamlTagPrefix = "tag:yaml.org,2002:"

	tagYAMLStr    = yamlTagPrefix + "str"
	tagYAMLBinary = yamlTagPrefix + "binary"
	tagYAMLFloat  = yamlTagPrefix + "float"
	tagYAMLOmap   = yamlTagPrefix + "omap"
	tagYAMLSet    = yamlTagPrefix + "set"

	// mergeKey folds the entries of the associated mapping into its parent.
	mergeKey = "<<"
)

// Collection tag prefixes handled by collectionHandlers, relative to the namespace.
const (
	prefixStruct    = "struct"
	prefixArray     = "array"
	prefixObject    = "object"
	prefixException = "exception"
)

// tagSet recognizes tag shapes for one private namespace.
type tagSet struct {
	ns string

	str        *regexp.Regexp
	seqOf      *regexp.Regexp
	hashOf     *regexp.Regexp
	symbol     *regexp.Regexp
	collection *regexp.Regexp
}

func newTagSet(ns string) *tagSet {
	q := regexp.QuoteMeta(ns)

	return &tagSet{
		ns:         ns,
		str:        regexp.MustCompile(`^(?:!str|` + q + `string)(?::(.*))?$`),
		seqOf:      regexp.MustCompile(`^(?:!seq|` + q + `array):(.*)$`),
		hashOf:     regexp.MustCompile(`^(?:!map|` + q + `hash):(.*)$`),
		symbol:     regexp.MustCompile(`^` + q + `sym(?:bol)?(?::.*)?$`),
		collection: regexp.MustCompile(`^` + q + `(array|struct|object|exception)(?::(.*))?$`),
	}
}

// native returns the tag of a native type name, e.g. "!native/range".
func (t *tagSet) native(name string) string {
	return t.ns + name
}

func (t *tagSet) is(tag, name string) bool {
	return tag == t.ns+name
}

// stringClass matches string tags and returns the optional subclass name.
func (t *tagSet) stringClass(tag string) (string, bool) {
	if tag == tagYAMLStr {
		return "", true
	}

	m := t.str.FindStringSubmatch(tag)
	if m == nil {
		return "", false
	}

	return m[1], true
}

// arrayClass matches typed sequence tags and returns the element container class.
func (t *tagSet) arrayClass(tag string) (string, bool) {
	return submatch(t.seqOf, tag)
}

// hashClass matches typed mapping tags and returns the container class.
func (t *tagSet) hashClass(tag string) (string, bool) {
	return submatch(t.hashOf, tag)
}

func (t *tagSet) isSymbol(tag string) bool {
	return t.symbol.MatchString(tag)
}

// collectionClass splits struct/array/object/exception tags into prefix and class suffix.
func (t *tagSet) collectionClass(tag string) (prefix, suffix string, ok bool) {
	m := t.collection.FindStringSubmatch(tag)
	if m == nil {
		return "", "", false
	}

	return m[1], m[2], true
}

func submatch(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	return m[1], true
}

func isBinaryTag(tag string) bool {
	return tag == "!binary" || tag == tagYAMLBinary
}

func isFloatTag(tag string) bool {
	return tag == "!float" || tag == tagYAMLFloat
}

func isOmapTag(tag string) bool {
	return tag == "!omap" || tag == tagYAMLOmap
}

func isSetTag(tag string) bool {
	return tag == "!set" || tag == tagYAMLSet
}

// attributeName turns a field map key into an attribute name.
func attributeName(key string) string {
	return strings.TrimPrefix(key, "@")
}
