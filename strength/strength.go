// Package strength scores a password against a small set of heuristic
// checks: length, character-class variety, and two anti-pattern matchers.
// The score is additive and deliberately unclamped; a 12-character password
// covering all four classes with no repeats or sequences scores 105.
package strength

import (
	"unicode/utf8"

	"github.com/pivotal-cf/passgen/strength/matchers"
)

const lowercasePattern = `[a-z]`
const uppercasePattern = `[A-Z]`
const digitPattern = `[0-9]`
const symbolPattern = `[!@#$%^&*()_+\-=\[\]{}|;:,.<>?]`
const sequentialDigitsPattern = `(012|123|234|345|456|567|678|789|890)`

const repeatRunLength = 3

var lowercaseMatcher = matchers.Format(lowercasePattern)
var uppercaseMatcher = matchers.Format(uppercasePattern)
var digitMatcher = matchers.Format(digitPattern)
var symbolMatcher = matchers.Format(symbolPattern)
var repeatMatcher = matchers.Runs(repeatRunLength)
var sequenceMatcher = matchers.Format(sequentialDigitsPattern)

// Labels in descending order of strength.
const (
	VeryStrong = "Very Strong"
	Strong     = "Strong"
	Moderate   = "Moderate"
	Weak       = "Weak"
	VeryWeak   = "Very Weak"
)

type Report struct {
	Score    int
	Strength string
	Feedback []string
	Length   int

	HasLowercase bool
	HasUppercase bool
	HasDigits    bool
	HasSymbols   bool
}

// Analyze is a pure function of the password; the feedback list preserves
// the order of the checks.
func Analyze(password string) Report {
	line := []byte(password)

	// Length counts characters, not bytes, so multi-byte input is not
	// rewarded for its encoding.
	report := Report{
		Length:   utf8.RuneCountInString(password),
		Feedback: []string{},
	}

	switch {
	case report.Length >= 12:
		report.Score += 25
	case report.Length >= 8:
		report.Score += 15
		report.Feedback = append(report.Feedback, "Consider using at least 12 characters")
	default:
		report.Score += 5
		report.Feedback = append(report.Feedback, "Password is too short - use at least 8 characters")
	}

	report.HasLowercase = matched(lowercaseMatcher, line)
	report.HasUppercase = matched(uppercaseMatcher, line)
	report.HasDigits = matched(digitMatcher, line)
	report.HasSymbols = matched(symbolMatcher, line)

	for _, presence := range []struct {
		present  bool
		feedback string
	}{
		{report.HasLowercase, "Add lowercase letters"},
		{report.HasUppercase, "Add uppercase letters"},
		{report.HasDigits, "Add numbers"},
		{report.HasSymbols, "Add special characters"},
	} {
		if presence.present {
			report.Score += 15
		} else {
			report.Feedback = append(report.Feedback, presence.feedback)
		}
	}

	if matched(repeatMatcher, line) {
		report.Feedback = append(report.Feedback, "Avoid repeating characters")
	} else {
		report.Score += 10
	}

	if matched(sequenceMatcher, line) {
		report.Feedback = append(report.Feedback, "Avoid sequential numbers")
	} else {
		report.Score += 10
	}

	report.Strength = label(report.Score)

	return report
}

func label(score int) string {
	switch {
	case score >= 85:
		return VeryStrong
	case score >= 70:
		return Strong
	case score >= 50:
		return Moderate
	case score >= 30:
		return Weak
	}

	return VeryWeak
}

func matched(m matchers.Matcher, line []byte) bool {
	match, _, _ := m.Match(line)
	return match
}
