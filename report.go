package readability

import "errors"

// ErrNoWordList is returned by Report.DaleChall when the report was built
// without a familiar-word list.
var ErrNoWordList = errors.New("readability: no familiar-word list configured")

// Option configures a Report.
type Option func(*Report)

// WithLanguage selects the coefficient variant used by language-dependent
// metrics. Defaults to English.
func WithLanguage(lang Language) Option {
	return func(r *Report) { r.lang = lang }
}

// WithWordList supplies the familiar-word list consulted by DaleChall.
func WithWordList(list WordList) Option {
	return func(r *Report) { r.words = list }
}

// Report lazily computes and caches readability metrics for a single
// document. The document is scanned at most twice, once for the base
// statistics and once for the familiar-word count; every metric accessor
// reuses the cached counts, so repeated reads never re-walk the document
// and always yield identical values.
//
// A Report is not safe for concurrent use while the caches are cold.
// Documents are expected to be processed one per unit of work; once
// Statistics has returned, concurrent reads are fine.
type Report struct {
	doc   Document
	lang  Language
	words WordList

	stats      Statistics
	statsReady bool
	statsErr   error

	difficult      int
	difficultReady bool
}

// NewReport wraps doc for metric computation. Nothing is computed until
// the first accessor call.
func NewReport(doc Document, opts ...Option) *Report {
	r := &Report{doc: doc, lang: English}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Language returns the language the report scores with.
func (r *Report) Language() Language {
	return r.lang
}

// Statistics computes the base counters on first use and caches both the
// value and any front-end contract error.
func (r *Report) Statistics() (Statistics, error) {
	if r.statsReady {
		return r.stats, r.statsErr
	}
	r.stats, r.statsErr = Compute(r.doc)
	r.statsReady = true
	return r.stats, r.statsErr
}

// FleschReadingEase returns the Reading Ease score in the report's
// language variant. Languages without their own variant fall back to the
// English coefficients.
func (r *Report) FleschReadingEase() (float64, error) {
	st, err := r.Statistics()
	if err != nil {
		return 0, err
	}
	if score, ok := FleschReadingEaseFor(r.lang, st); ok {
		return score, nil
	}
	return FleschReadingEase(st), nil
}

// FleschKincaidGradeLevel returns the Flesch-Kincaid grade level.
func (r *Report) FleschKincaidGradeLevel() (float64, error) {
	st, err := r.Statistics()
	if err != nil {
		return 0, err
	}
	return FleschKincaidGradeLevel(st), nil
}

// SMOG returns the SMOG grade.
func (r *Report) SMOG() (float64, error) {
	st, err := r.Statistics()
	if err != nil {
		return 0, err
	}
	return SMOG(st), nil
}

// ColemanLiauIndex returns the Coleman-Liau index.
func (r *Report) ColemanLiauIndex() (float64, error) {
	st, err := r.Statistics()
	if err != nil {
		return 0, err
	}
	return ColemanLiauIndex(st), nil
}

// AutomatedReadabilityIndex returns the ARI grade level.
func (r *Report) AutomatedReadabilityIndex() (float64, error) {
	st, err := r.Statistics()
	if err != nil {
		return 0, err
	}
	return AutomatedReadabilityIndex(st), nil
}

// GunningFog returns the Gunning fog index.
func (r *Report) GunningFog() (float64, error) {
	st, err := r.Statistics()
	if err != nil {
		return 0, err
	}
	return GunningFog(st), nil
}

// DaleChall returns the Dale-Chall grade. It requires a familiar-word
// list (WithWordList); the difficult-word count is cached alongside the
// statistics.
func (r *Report) DaleChall() (float64, error) {
	if r.words == nil {
		return 0, ErrNoWordList
	}
	st, err := r.Statistics()
	if err != nil {
		return 0, err
	}
	if !r.difficultReady {
		r.difficult = DifficultWords(r.doc, r.words)
		r.difficultReady = true
	}
	return DaleChall(st, r.difficult), nil
}

// Forcast returns the FORCAST grade.
func (r *Report) Forcast() (float64, error) {
	st, err := r.Statistics()
	if err != nil {
		return 0, err
	}
	return Forcast(st), nil
}

// LinsearWrite returns the Linsear Write grade.
func (r *Report) LinsearWrite() (float64, error) {
	st, err := r.Statistics()
	if err != nil {
		return 0, err
	}
	return LinsearWrite(st), nil
}

// LIX returns the läsbarhetsindex.
func (r *Report) LIX() (float64, error) {
	st, err := r.Statistics()
	if err != nil {
		return 0, err
	}
	return LIX(st), nil
}

// RIX returns the long words per sentence ratio.
func (r *Report) RIX() (float64, error) {
	st, err := r.Statistics()
	if err != nil {
		return 0, err
	}
	return RIX(st), nil
}
