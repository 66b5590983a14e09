package sanitizer

import (
	"regexp"
	"strings"
)

// ctl matches the run of whitespace and control bytes browsers ignore inside
// tags and scheme names.
const ctl = `[\x00-\x20]*`

// quotes matches an optional run of attribute quote characters, backtick included.
const quotes = "[\\x60'\"]*"

// Pre-compiled regular expressions for the XSS pipeline, in pass order.
var (
	entityWhitespaceRegex = regexp.MustCompile(`(&#*\w+)[\x00-\x20]+;`)
	numericEntityRegex    = regexp.MustCompile(`(?i)(&#x*[0-9A-F]+);*`)

	characterReferenceRegex = regexp.MustCompile(`&(?:#[0-9]+|#[xX][0-9a-fA-F]+|[A-Za-z][A-Za-z0-9]*);`)

	eventAttributeRegex = regexp.MustCompile(`(?i)(<[^>]+?[\x00-\x20"'])(?:on|xmlns)[^>]*>`)

	javascriptSchemeRegex = regexp.MustCompile(`(?i)([a-z]*)` + ctl + `=` + ctl + `(` + quotes + `)` + ctl + spaced("javascript") + ctl + `:`)
	vbscriptSchemeRegex   = regexp.MustCompile(`(?i)([a-z]*)` + ctl + `=(['"]*)` + ctl + spaced("vbscript") + ctl + `:`)
	mozBindingRegex       = regexp.MustCompile(`(?i)([a-z]*)` + ctl + `=(['"]*)` + ctl + `-moz-binding` + ctl + `:`)

	styleExpressionRegex = regexp.MustCompile(`(?i)(<[^>]+?)style` + ctl + `=` + ctl + quotes + `.*?expression` + ctl + `\([^>]*>`)
	styleBehaviourRegex  = regexp.MustCompile(`(?i)(<[^>]+?)style` + ctl + `=` + ctl + quotes + `.*?behaviour` + ctl + `\([^>]*>`)
	styleScriptRegex     = regexp.MustCompile(`(?i)(<[^>]+?)style` + ctl + `=` + ctl + quotes + `.*?` + spaced("script") + ctl + `:*[^>]*>`)

	namespacedTagRegex = regexp.MustCompile(`(?i)</*\w+:\w[^>]*>`)

	dangerousTagRegex = regexp.MustCompile(`(?i)</*(?:applet|b(?:ase|gsound|link)|embed|frame(?:set)?|i(?:frame|layer)|l(?:ayer|ink)|meta|object|s(?:cript|tyle)|title|xml)[^>]*>`)
)

// spaced builds a pattern matching word with any run of control bytes between
// its letters, so "j a\tv a" still matches "java".
func spaced(word string) string {
	letters := make([]string, 0, len(word))
	for _, r := range word {
		letters = append(letters, regexp.QuoteMeta(string(r)))
	}
	return strings.Join(letters, ctl)
}
