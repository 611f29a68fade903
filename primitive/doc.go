// Package primitive classifies the text of untagged, unquoted scalars into
// typed values: nil, bool, int (or *big.Int), float64, time.Time,
// value.Symbol, or the text itself.
//
// The grammar follows YAML 1.1 resolution: yes/no/on/off booleans,
// sexagesimal numbers, binary/octal/hex integers, "_" digit separators, and
// ":name" symbols.
package primitive
