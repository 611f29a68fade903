package registry

import (
	"regexp"
	"strings"
)

var versionSeparator = regexp.MustCompile(`(,\d+)/`)

// NormalizeTag turns a tag into the key domain types are registered under:
// leading "!" and "/" markers are stripped, the "/" following a ",<version>"
// becomes ":", and "tag:" is prepended unless the result already starts with
// "tag:" or the private "x-private" marker.
//
//	!example.com,2002/point   -> tag:example.com,2002:point
//	tag:example.com,2002:point -> tag:example.com,2002:point
//	!!x-private:thing         -> x-private:thing
func NormalizeTag(tag string) string {
	key := strings.TrimLeft(tag, "!/")

	if loc := versionSeparator.FindStringSubmatchIndex(key); loc != nil {
		key = key[:loc[3]] + ":" + key[loc[1]:]
	}

	if !strings.HasPrefix(key, "tag:") && !strings.HasPrefix(key, "x-private") {
		key = "tag:" + key
	}

	return key
}
