// Package langdetect identifies the language of uploaded documents so
// non-English sources can be flagged before routing. Detection is scoped to
// the languages RFPs actually arrive in; restricting the candidate set is
// what keeps short-text detection reliable.
package langdetect

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// sampleLen bounds how much document text is fed to the detector. Language
// is stable across a document, so a leading sample is enough.
const sampleLen = 2000

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// languageDetector builds the detector lazily. Model loading is expensive,
// so it happens once and only when detection is actually requested.
func languageDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Spanish,
				lingua.French,
				lingua.German,
				lingua.Portuguese,
				lingua.Dutch,
			).
			Build()
	})
	return detector
}

// Detect returns the lowercase ISO 639-1 code of the text's language, or
// the empty string when the detector has no confident answer.
func Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	lang, ok := languageDetector().DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

// DocumentLanguage detects the language of a whole document from a leading
// sample of its units.
func DocumentLanguage(units []string) string {
	var b strings.Builder
	for _, u := range units {
		if b.Len() >= sampleLen {
			break
		}
		b.WriteString(u)
		b.WriteString("\n")
	}
	sample := b.String()
	if len(sample) > sampleLen {
		sample = sample[:sampleLen]
	}
	return Detect(sample)
}
