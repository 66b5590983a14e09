// Package strutil holds small string generators and transforms: shuffling,
// reversal, random strings, passwords and name based (version 5) UUIDs.
//
// Random strings and passwords are built by repeating a character set as many
// times as the requested length, shuffling the result and keeping the first
// length characters. A character therefore never appears more often than the
// requested length, and the output only contains characters of the set.
//
//	code := strutil.Random(6, "0123456789")
//	pass := strutil.Password(12, strutil.WithoutAmbiguous())
//	id, err := strutil.UUID5("example.com", "") // DNS namespace
//
// Shuffling uses math/rand/v2 and is not suitable where unpredictability
// matters for security.
//
// Empty input, non-positive lengths and empty character sets yield an empty
// string instead of an error.
package strutil
