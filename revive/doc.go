// Package revive turns a node tree into native values.
//
// A Decoder visits the tree depth-first. Every node produces exactly one
// value; containers are registered under their anchor as soon as they are
// allocated, so aliases met while filling them (including aliases to the
// container itself) resolve to the very same value and cyclic graphs
// terminate.
//
// Tags select the revival rule. Core YAML tags (str, binary, float, omap, set)
// and their short forms are always understood; native types live under a
// private namespace ("!native/" by default): range, regexp, sym, class,
// module, object:<Class>, struct:<Class>, array:<Class>, hash:<Class>,
// exception:<Class>, string:<Class>. Types registered in a registry.Registry
// take part through the coder protocol or through field assignment.
package revive
