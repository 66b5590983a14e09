package strutil

import (
	"math/rand/v2"
	"strings"
)

// Character sets.
const (
	AlphaNumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	PasswordCharset = AlphaNumeric + "!\"$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Ambiguous holds characters easily confused with one another when read
	// or typed, removed from passwords by WithoutAmbiguous.
	Ambiguous = "B8G6I1l|0OQDS5$Z2()[]{}:;,.'\"`!$-~£¢§"
)

// Default lengths.
const (
	DefaultRandomLength   = 16
	DefaultPasswordLength = 8
)

// Shuffle returns the runes of s in random order.
func Shuffle(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	shuffleRunes(runes)
	return string(runes)
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Random returns length characters drawn from charset.
// Returns an empty string if length is not positive or charset is empty.
func Random(length int, charset string) string {
	if length <= 0 || charset == "" {
		return ""
	}
	pool := []rune(strings.Repeat(charset, length))
	shuffleRunes(pool)
	return string(pool[:length])
}

// PasswordOption configures Password.
type PasswordOption func(*passwordConfig)

type passwordConfig struct {
	charset         string
	removeAmbiguous bool
}

// WithCharset replaces PasswordCharset.
func WithCharset(charset string) PasswordOption {
	return func(c *passwordConfig) {
		c.charset = charset
	}
}

// WithoutAmbiguous removes the characters in Ambiguous from the charset.
func WithoutAmbiguous() PasswordOption {
	return func(c *passwordConfig) {
		c.removeAmbiguous = true
	}
}

// Password returns a random password of length characters.
// Returns an empty string if length is not positive or the effective charset
// is empty.
func Password(length int, opts ...PasswordOption) string {
	cfg := &passwordConfig{charset: PasswordCharset}
	for _, opt := range opts {
		opt(cfg)
	}

	charset := cfg.charset
	if cfg.removeAmbiguous {
		charset = strings.Map(func(r rune) rune {
			if strings.ContainsRune(Ambiguous, r) {
				return -1
			}
			return r
		}, charset)
	}

	return Random(length, charset)
}

func shuffleRunes(runes []rune) {
	rand.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
}
