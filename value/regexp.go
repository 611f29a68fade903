package value

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

type RegexpFlag int

const (
	RegexpIgnoreCase RegexpFlag = 1 << iota // i: case-insensitive matching
	RegexpExtended                          // x: whitespace and comments in the pattern are ignored
	RegexpMultiline                         // m: dot also matches newline
	RegexpNoEncoding                        // n: pattern is encoding-agnostic

	RegexpNone RegexpFlag = 0
)

var regexpFlagLetters = []struct {
	flag   RegexpFlag
	letter byte
}{
	{RegexpMultiline, 'm'},
	{RegexpIgnoreCase, 'i'},
	{RegexpExtended, 'x'},
	{RegexpNoEncoding, 'n'},
}

// RegexpFlagFromLetter maps a single option letter to its flag.
func RegexpFlagFromLetter(letter byte) (RegexpFlag, bool) {
	for _, fl := range regexpFlagLetters {
		if fl.letter == letter {
			return fl.flag, true
		}
	}

	return RegexpNone, false
}

// Regexp is a compiled pattern together with the literal parts it was built from.
type Regexp struct {
	Source string
	Flags  RegexpFlag
	// Lang is the language qualifier letter, empty when absent.
	Lang string

	re *regexp2.Regexp
}

// CompileRegexp compiles source with the given flags.
// Line anchors (^ and $) always match at line boundaries.
func CompileRegexp(source string, flags RegexpFlag, lang string) (*Regexp, error) {
	opts := regexp2.RegexOptions(regexp2.Multiline)
	if flags&RegexpIgnoreCase != 0 {
		opts |= regexp2.IgnoreCase
	}

	if flags&RegexpExtended != 0 {
		opts |= regexp2.IgnorePatternWhitespace
	}

	if flags&RegexpMultiline != 0 {
		opts |= regexp2.Singleline
	}

	re, err := regexp2.Compile(source, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern %q: %w", source, err)
	}

	return &Regexp{Source: source, Flags: flags, Lang: lang, re: re}, nil
}

func (r *Regexp) MatchString(s string) (bool, error) {
	return r.re.MatchString(s)
}

// Compiled exposes the underlying regexp2 pattern.
func (r *Regexp) Compiled() *regexp2.Regexp {
	return r.re
}

func (r *Regexp) String() string {
	opts := make([]byte, 0, len(regexpFlagLetters)+1)
	for _, fl := range regexpFlagLetters {
		if r.Flags&fl.flag != 0 {
			opts = append(opts, fl.letter)
		}
	}

	return "/" + r.Source + "/" + string(opts) + r.Lang
}
