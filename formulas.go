package readability

import "math"

// Every formula is a pure function of a Statistics snapshot. When a
// required divisor (words or sentences) is zero the score is defined to be
// 0 rather than NaN or an error; empty and near-empty documents are a
// legitimate degenerate input, not a failure.

// forcastGateWords is the minimum text size for a Forcast score. The
// published procedure scores a 150-word sample.
const forcastGateWords = 150

// FleschReadingEase computes the Flesch Reading Ease score with the
// English coefficients. Higher scores read easier; plain prose lands
// around 60-70.
// Formula: 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
func FleschReadingEase(s Statistics) float64 {
	score, _ := FleschReadingEaseFor(English, s)
	return score
}

// FleschKincaidGradeLevel computes the Flesch-Kincaid grade level, the
// U.S. school grade needed to follow the text.
// Formula: 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59
func FleschKincaidGradeLevel(s Statistics) float64 {
	if s.Words == 0 || s.Sentences == 0 {
		return 0
	}
	return 0.39*s.wordsPerSentence() + 11.8*s.syllablesPerWord() - 15.59
}

// SMOG computes the SMOG grade from the complex-word density.
// Formula: 3.1291 + 1.0430*sqrt(30*complex/sentences)
// The classic procedure wants samples of thirty sentences or more; the
// score is computed unconditionally from whatever counts are available.
func SMOG(s Statistics) float64 {
	if s.Sentences == 0 {
		return 0
	}
	return 3.1291 + 1.0430*math.Sqrt(30*float64(s.ComplexWords)/float64(s.Sentences))
}

// ColemanLiauIndex computes the Coleman-Liau index, a grade level driven
// by letters rather than syllables.
// Formula: 5.89*(letters/words) - 0.3*(sentences/words) - 15.8
func ColemanLiauIndex(s Statistics) float64 {
	if s.Words == 0 {
		return 0
	}
	return 5.89*s.lettersPerWord() - 0.3*float64(s.Sentences)/float64(s.Words) - 15.8
}

// AutomatedReadabilityIndex computes the ARI grade level.
// Formula: 4.71*(letters/words) + 0.5*(words/sentences) - 21.43
func AutomatedReadabilityIndex(s Statistics) float64 {
	if s.Words == 0 || s.Sentences == 0 {
		return 0
	}
	return 4.71*s.lettersPerWord() + 0.5*s.wordsPerSentence() - 21.43
}

// GunningFog computes the Gunning fog index.
// Formula: 0.4*((words/sentences) + 100*(complex/words))
func GunningFog(s Statistics) float64 {
	if s.Words == 0 || s.Sentences == 0 {
		return 0
	}
	return 0.4 * (s.wordsPerSentence() + 100*float64(s.ComplexWords)/float64(s.Words))
}

// DaleChall computes the Dale-Chall grade from the share of words missing
// from a familiar-word list. The difficult count comes from
// DifficultWords since it depends on the list, not on Statistics alone.
// Formula: 0.1579*(100*difficult/words) + 0.0496*(words/sentences),
// plus 3.6365 when the difficult share exceeds 5%.
func DaleChall(s Statistics, difficultWords int) float64 {
	if s.Words == 0 || s.Sentences == 0 {
		return 0
	}
	percent := 100 * float64(difficultWords) / float64(s.Words)
	grade := 0.1579*percent + 0.0496*s.wordsPerSentence()
	if percent > 5 {
		grade += 3.6365
	}
	return grade
}

// Forcast computes the FORCAST grade from the monosyllabic-word share.
// The published procedure draws a 150-word sample and scores
// 20 - mono/10; its expected value over the whole text is
// 20 - 15*(mono/words), which keeps the score deterministic. Texts under
// 150 words score 0.
func Forcast(s Statistics) float64 {
	if s.Words < forcastGateWords {
		return 0
	}
	return 20 - 15*float64(s.Monosyllables)/float64(s.Words)
}

// LinsearWrite computes the Linsear Write grade. Words under three
// syllables weigh one point, complex words weigh three.
// Formula: r = (1*easy + 3*complex)/sentences; grade = r/2 when r > 20,
// otherwise (r-2)/2.
func LinsearWrite(s Statistics) float64 {
	if s.Words == 0 || s.Sentences == 0 {
		return 0
	}
	easy := s.Words - s.ComplexWords
	r := float64(easy+3*s.ComplexWords) / float64(s.Sentences)
	if r > 20 {
		return r / 2
	}
	return (r - 2) / 2
}

// LIX computes Björnsson's läsbarhetsindex from sentence length and the
// long-word share. Language-agnostic by construction.
// Formula: (words/sentences) + 100*(long/words)
func LIX(s Statistics) float64 {
	if s.Words == 0 || s.Sentences == 0 {
		return 0
	}
	return s.wordsPerSentence() + 100*float64(s.LongWords)/float64(s.Words)
}

// RIX computes Anderson's RIX, the long words per sentence ratio.
// Formula: long/sentences
func RIX(s Statistics) float64 {
	if s.Sentences == 0 {
		return 0
	}
	return float64(s.LongWords) / float64(s.Sentences)
}
