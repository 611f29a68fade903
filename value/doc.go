// Package value defines the native values produced by the decoder for
// shapes Go has no built-in equivalent for.
//
// Containers are always handled through pointers (*Seq, *Map, *Omap, *Set,
// *Object) so that a value can be shared by several parents, or contain
// itself, once anchors and aliases are resolved.
//
// Key types:
//   - Seq: ordered sequence, the result of an untagged sequence node
//   - Map: insertion-ordered mapping with arbitrary keys
//   - Omap, Set: the ordered-map and set collection tags
//   - Range, Symbol, Regexp: literal types with an embedded grammar
//   - Object, Exception, String: generic fallbacks for tagged values whose
//     type is not registered
package value
