package similarity

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Metric family names reported in Candidate.Metric.
const (
	MetricSimilarText = "similar_text"
	MetricJaroWinkler = "jaro_winkler"
	MetricAlignment   = "alignment"
)

// Variant identifies the case transformation applied to both inputs.
type Variant string

const (
	VariantOriginal Variant = "original"
	VariantUpper    Variant = "upper"
	VariantLower    Variant = "lower"
)

// Candidate is a single metric evaluation considered by Score.
type Candidate struct {
	Metric  string  `json:"metric"`
	Variant Variant `json:"variant"`
	// Swapped reports whether the metric was evaluated as (b, a).
	Swapped bool    `json:"swapped"`
	Score   float64 `json:"score"`
}

// Option configures scoring.
type Option func(*options)

type options struct {
	caseSensitive bool
	foldAccents   bool
	alignment     bool
	metric        Metric
}

func defaultOptions() *options {
	return &options{
		alignment: true,
		metric:    smithWatermanGotoh,
	}
}

// WithCaseSensitive disables the upper- and lower-cased variants.
// Default: false.
func WithCaseSensitive(enabled bool) Option {
	return func(o *options) {
		o.caseSensitive = enabled
	}
}

// WithAccentFolding strips combining marks from both inputs before any
// metric runs, so "café" and "cafe" compare as equal. Default: false.
func WithAccentFolding(enabled bool) Option {
	return func(o *options) {
		o.foldAccents = enabled
	}
}

// WithAlignment toggles the alignment metric. A disabled metric still yields
// candidates, all scoring 0, so turning it off can lower a score but never
// raise it. Default: true.
func WithAlignment(enabled bool) Option {
	return func(o *options) {
		o.alignment = enabled
	}
}

// WithAlignmentMetric replaces the Smith-Waterman-Gotoh alignment metric.
// Nil is ignored.
func WithAlignmentMetric(m Metric) Option {
	return func(o *options) {
		if m != nil {
			o.metric = m
		}
	}
}

// Score returns the highest candidate similarity of a and b in [0,1].
// Either string being empty yields 0.
func Score(a, b string, opts ...Option) float64 {
	best := 0.0
	for _, c := range Candidates(a, b, opts...) {
		if c.Score > best {
			best = c.Score
		}
	}
	return best
}

// Percent is Score scaled to [0,100].
func Percent(a, b string, opts ...Option) float64 {
	return Score(a, b, opts...) * 100
}

// Candidates returns every candidate Score considers, in evaluation order:
// per variant, the metrics for (a, b) followed by the metrics for (b, a).
// It returns nil when either string is empty, after accent folding if enabled.
func Candidates(a, b string, opts ...Option) []Candidate {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.foldAccents {
		a, b = foldAccents(a), foldAccents(b)
	}
	if a == "" || b == "" {
		return nil
	}

	variants := []Variant{VariantOriginal}
	if !o.caseSensitive {
		variants = append(variants, VariantUpper, VariantLower)
	}

	result := make([]Candidate, 0, len(variants)*6)
	for _, v := range variants {
		x, y := v.apply(a), v.apply(b)
		result = o.evaluate(result, v, false, x, y)
		result = o.evaluate(result, v, true, y, x)
	}
	return result
}

func (o *options) evaluate(dst []Candidate, v Variant, swapped bool, a, b string) []Candidate {
	alignment := 0.0
	if o.alignment {
		alignment = o.metric.Compare(a, b)
	}

	return append(dst,
		Candidate{Metric: MetricSimilarText, Variant: v, Swapped: swapped, Score: SimilarText(a, b)},
		Candidate{Metric: MetricJaroWinkler, Variant: v, Swapped: swapped, Score: JaroWinkler(a, b)},
		Candidate{Metric: MetricAlignment, Variant: v, Swapped: swapped, Score: alignment},
	)
}

// apply transforms s for the variant. Casers hold state, so a new one is
// created per call.
func (v Variant) apply(s string) string {
	switch v {
	case VariantUpper:
		return cases.Upper(language.Und).String(s)
	case VariantLower:
		return cases.Lower(language.Und).String(s)
	default:
		return s
	}
}

// foldAccents decomposes s, drops nonspacing marks and recomposes the rest.
// The transformer chain is stateful, so one is built per call.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
