package sanitizer

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Policy selects the sanitisation strategy used by Sanitize.
type Policy string

const (
	// PolicyRegex runs the XSS regex pipeline and keeps all other markup.
	PolicyRegex Policy = "regex"
	// PolicyStrict removes every tag and keeps text only.
	PolicyStrict Policy = "strict"
	// PolicyUGC keeps the user generated content allowlist of tags and attributes.
	PolicyUGC Policy = "ugc"
)

// Policies lists every supported policy.
var Policies = []Policy{PolicyRegex, PolicyStrict, PolicyUGC}

// bluemonday policies are safe for concurrent use once configured.
var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// ParsePolicy resolves a policy name, case-insensitively.
func ParsePolicy(name string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Policies {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// String implements fmt.Stringer.
func (p Policy) String() string {
	return string(p)
}

// Sanitize cleans s with the given policy. Unknown policies fall back to the
// strict policy.
func Sanitize(p Policy, s string) string {
	switch p {
	case PolicyRegex:
		return XSS(s)
	case PolicyUGC:
		return UGC(s)
	default:
		return StripTags(s)
	}
}

// StripTags removes all HTML markup, including the contents of script and
// style elements.
func StripTags(s string) string {
	if s == "" {
		return s
	}
	return strictPolicy.Sanitize(s)
}

// UGC keeps the safe subset of HTML suitable for user generated content
// (formatting, links with rel="nofollow", images, tables) and drops the rest.
func UGC(s string) string {
	if s == "" {
		return s
	}
	return ugcPolicy.Sanitize(s)
}
