// Package sanitizer cleans untrusted text before it is stored or rendered.
//
// The centrepiece is XSS, a fixed sequence of regex passes that decodes
// obfuscated entities and strips or neutralises the usual cross-site scripting
// vectors while leaving the rest of the markup alone:
//
//  1. re-escape already encoded &amp;, &lt; and &gt;
//  2. repair broken character references
//  3. decode all entities
//  4. cut tags at on* / xmlns attributes
//  5. neutralise javascript:, vbscript: and -moz-binding: values
//  6. cut tags at style attributes with expression(), behaviour() or script:
//  7. remove namespaced tags
//  8. remove denylisted tags until a fixed point
//
// Passes 4 and 6 truncate the whole tag from the offending attribute to the
// closing '>' rather than removing a single attribute:
//
//	sanitizer.XSS(`<img src=x onerror=alert(1) alt="a">`) // `<img src=x >`
//
// Every pass is exported and XSSPasses returns them in order, so custom
// pipelines can be assembled with Apply, Compose and UntilStable.
//
// When no markup should survive at all, or only a known-safe subset, use the
// allowlist policies StripTags and UGC (backed by bluemonday) or pick one at
// run time with ParsePolicy and Sanitize:
//
//	p, err := sanitizer.ParsePolicy("ugc")
//	if err != nil {
//	    return err
//	}
//	safe := sanitizer.Sanitize(p, userInput)
//
// # Error handling
//
// None of the cleaning helpers returns an error. Input that no pass matches is
// returned unchanged and empty input is returned as is.
//
// All helpers are stateless and safe for concurrent use.
package sanitizer
