// Package options holds decoder configuration: the private tag namespace,
// logging, nesting limits, the scalar classifier, and the set of tag families
// a decode pass may revive.
package options
