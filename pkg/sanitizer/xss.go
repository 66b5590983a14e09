package sanitizer

import (
	"html"
	"strconv"
	"strings"
	"unicode"
)

var encodedEntityReplacer = strings.NewReplacer(
	"&amp;", "&amp;amp;",
	"&lt;", "&amp;lt;",
	"&gt;", "&amp;gt;",
)

// xssPasses are applied in order; later passes rely on the normalisation done
// by earlier ones.
var xssPasses = []func(string) string{
	EscapeEncodedEntities,
	NormalizeEntities,
	DecodeEntities,
	StripEventAttributes,
	NeutralizeSchemes,
	StripStyleExpressions,
	StripNamespacedTags,
	StripDangerousTags,
}

var xssPipeline = Compose(xssPasses...)

// XSSPasses returns the passes XSS applies, in order. Useful for running a
// prefix of the pipeline or inserting custom passes with Compose.
func XSSPasses() []func(string) string {
	return append([]func(string) string(nil), xssPasses...)
}

// XSS filters cross-site scripting vectors out of s: encoded and obfuscated
// entities, event handler and xmlns attributes, script schemes, IE style
// expressions, namespaced elements and a denylist of dangerous tags.
//
// Matching is regex based and tolerant of malformed markup; it is not an HTML
// parser. Empty input is returned as is.
func XSS(s string) string {
	if s == "" {
		return s
	}
	return xssPipeline(s)
}

// EscapeEncodedEntities re-escapes &amp;, &lt; and &gt; so that DecodeEntities
// restores them to their encoded form instead of producing raw markup.
func EscapeEncodedEntities(s string) string {
	return encodedEntityReplacer.Replace(s)
}

// NormalizeEntities repairs character references broken up with whitespace
// ("&#60 ;") and terminates numeric references missing their semicolon ("&#60").
func NormalizeEntities(s string) string {
	s = entityWhitespaceRegex.ReplaceAllString(s, "${1};")
	return numericEntityRegex.ReplaceAllString(s, "${1};")
}

// DecodeEntities decodes semicolon-terminated character references to UTF-8.
// References without a semicolon ("&lt") stay as text. Single quotes
// ("&#39;", "&apos;") stay encoded, as do numeric references to control
// characters, surrogates and noncharacters.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return characterReferenceRegex.ReplaceAllStringFunc(s, decodeReference)
}

func decodeReference(ref string) string {
	name := ref[1 : len(ref)-1]
	if name[0] != '#' {
		if name == "apos" {
			return ref
		}
		decoded := html.UnescapeString(ref)
		// a legacy prefix match ("&notit;" -> "¬it;") leaves the tail behind
		if name != "semi" && strings.HasSuffix(decoded, ";") {
			return ref
		}
		return decoded
	}

	digits, base := name[1:], 10
	if digits[0] == 'x' || digits[0] == 'X' {
		digits, base = digits[1:], 16
	}
	cp, err := strconv.ParseUint(digits, base, 32)
	if err != nil || !decodableCodePoint(cp) {
		return ref
	}
	return string(rune(cp))
}

func decodableCodePoint(cp uint64) bool {
	switch {
	case cp == '\'':
		return false
	case cp == '\t', cp == '\n', cp == '\r':
		return true
	case cp >= 0x20 && cp <= 0x7e:
		return true
	case cp >= 0xa0 && cp <= 0xd7ff:
		return true
	case cp >= 0xe000 && cp <= unicode.MaxRune:
		return cp&0xffff < 0xfffe && (cp < 0xfdd0 || cp > 0xfdef)
	}
	return false
}

// StripEventAttributes cuts a tag at the first attribute named on* or xmlns*.
// Everything from the attribute name up to the closing '>' is dropped, so any
// attributes following the handler are lost along with it.
func StripEventAttributes(s string) string {
	return eventAttributeRegex.ReplaceAllString(s, "${1}>")
}

// NeutralizeSchemes rewrites javascript:, vbscript: and -moz-binding: values
// in attribute assignments to inert markers, keeping the attribute name and
// opening quote. Whitespace and control bytes between the scheme letters are
// tolerated.
func NeutralizeSchemes(s string) string {
	s = javascriptSchemeRegex.ReplaceAllString(s, "${1}=${2}nojavascript...")
	s = vbscriptSchemeRegex.ReplaceAllString(s, "${1}=${2}novbscript...")
	return mozBindingRegex.ReplaceAllString(s, "${1}=${2}nomozbinding...")
}

// StripStyleExpressions cuts a tag at a style attribute carrying expression(),
// behaviour() or a script: reference. Like StripEventAttributes it drops
// everything up to the closing '>'.
func StripStyleExpressions(s string) string {
	s = styleExpressionRegex.ReplaceAllString(s, "${1}>")
	s = styleBehaviourRegex.ReplaceAllString(s, "${1}>")
	return styleScriptRegex.ReplaceAllString(s, "${1}>")
}

// StripNamespacedTags removes namespaced element tags such as <x:script>.
func StripNamespacedTags(s string) string {
	return namespacedTagRegex.ReplaceAllString(s, "")
}

// StripDangerousTags removes opening and closing tags of applet, base, bgsound,
// blink, link, embed, frame, frameset, iframe, ilayer, layer, meta, object,
// script, style, title and xml. Removal repeats until nothing changes, which
// also defeats nesting like <scr<script>ipt>.
var StripDangerousTags = UntilStable(stripDangerousTagsOnce)

func stripDangerousTagsOnce(s string) string {
	return dangerousTagRegex.ReplaceAllString(s, "")
}
