package analyzer

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"passwordCheckerBackend/internal/core/domain"
)

const (
	guessesPerSecond = 1e9 // modern GPU rig

	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerMonth  = 2592000
	secondsPerYear   = 31536000
)

// grouped formats large counts with thousands separators.
var grouped = message.NewPrinter(language.English)

// StrengthAnalyzer scores passwords. It is stateless and safe for
// concurrent use; every table it consults is a process-lifetime constant.
type StrengthAnalyzer struct{}

func NewStrengthAnalyzer() *StrengthAnalyzer {
	return &StrengthAnalyzer{}
}

// Analyze produces a full strength report. It is total: every string,
// including the empty one, yields a well-formed report.
func (a *StrengthAnalyzer) Analyze(password string) domain.Report {
	length := utf8.RuneCountInString(password)
	presence := detectClasses(password)
	entropy := entropyBits(length, presence)
	unique := countUniqueRunes(password)
	common := isCommonPassword(password)
	pattern := hasPattern(password)

	report := domain.Report{
		Length:        length,
		Classes:       presence,
		EntropyBits:   entropy,
		Score:         computeScore(length, presence, entropy, unique, common, pattern),
		CrackTime:     estimateCrackTime(entropy),
		KnownCommon:   common,
		HasPattern:    pattern,
		CharVariety:   presence.Count(),
		UniqueChars:   unique,
		RepeatedChars: length - unique,
	}
	report.Strength = StrengthForScore(report.Score)
	report.Suggestions = buildSuggestions(report)
	return report
}

// MergeBreach folds a breach-lookup result into an existing report,
// returning a new one. A known breach with a positive count prepends a
// critical suggestion and costs 40 points; an unknown result (count -1)
// is recorded but changes nothing else.
func (a *StrengthAnalyzer) MergeBreach(r domain.Report, b domain.BreachStatus) domain.Report {
	out := r
	out.Suggestions = append([]string(nil), r.Suggestions...)
	status := b
	out.Breach = &status

	if b.Known && b.Count > 0 {
		warning := grouped.Sprintf("CRITICAL: Found in %d data breaches!", b.Count)
		out.Suggestions = append([]string{warning}, out.Suggestions...)
		out.Score = r.Score - 40
		if out.Score < 0 {
			out.Score = 0
		}
		out.Strength = StrengthForScore(out.Score)
	}
	return out
}

// StrengthForScore maps a score to its label band. Lower bounds are
// inclusive: 80+, 60+, 40+, 20+, else very weak.
func StrengthForScore(score int) domain.StrengthLevel {
	switch {
	case score >= 80:
		return domain.StrengthVeryStrong
	case score >= 60:
		return domain.StrengthStrong
	case score >= 40:
		return domain.StrengthModerate
	case score >= 20:
		return domain.StrengthWeak
	default:
		return domain.StrengthVeryWeak
	}
}

func detectClasses(password string) domain.ClassPresence {
	var p domain.ClassPresence
	for _, r := range password {
		switch {
		case strings.ContainsRune(domain.CharsetLower, r):
			p.Lowercase = true
		case strings.ContainsRune(domain.CharsetUpper, r):
			p.Uppercase = true
		case strings.ContainsRune(domain.CharsetDigits, r):
			p.Digit = true
		case strings.ContainsRune(domain.CharsetSymbols, r):
			p.Symbol = true
		}
	}
	return p
}

// entropyBits models the password as a uniform draw from the union of the
// present class alphabets. Dictionary structure is ignored here; the
// common-password and pattern checks compensate.
func entropyBits(length int, p domain.ClassPresence) float64 {
	charset := 0
	if p.Lowercase {
		charset += len(domain.CharsetLower)
	}
	if p.Uppercase {
		charset += len(domain.CharsetUpper)
	}
	if p.Digit {
		charset += len(domain.CharsetDigits)
	}
	if p.Symbol {
		charset += len(domain.CharsetSymbols)
	}
	if charset == 0 {
		return 0
	}
	bits := float64(length) * math.Log2(float64(charset))
	return math.Round(bits*100) / 100
}

// estimateCrackTime assumes the attacker searches half the keyspace on
// average at guessesPerSecond.
func estimateCrackTime(entropy float64) string {
	if entropy == 0 {
		return "Instantly"
	}
	seconds := math.Pow(2, entropy) / (2 * guessesPerSecond)

	switch {
	case seconds < 1:
		return "Instantly"
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%d seconds", int64(seconds))
	case seconds < secondsPerHour:
		return fmt.Sprintf("%d minutes", int64(seconds/secondsPerMinute))
	case seconds < secondsPerDay:
		return fmt.Sprintf("%d hours", int64(seconds/secondsPerHour))
	case seconds < secondsPerMonth:
		return fmt.Sprintf("%d days", int64(seconds/secondsPerDay))
	case seconds < secondsPerYear:
		return fmt.Sprintf("%d months", int64(seconds/secondsPerMonth))
	}

	years := seconds / secondsPerYear
	if math.IsInf(years, 1) || years >= math.MaxInt64 {
		return "practically uncrackable"
	}
	if years > 1_000_000 {
		return grouped.Sprintf("%d years (practically uncrackable)", int64(years))
	}
	return grouped.Sprintf("%d years", int64(years))
}

func isCommonPassword(password string) bool {
	_, ok := commonPasswords[strings.ToLower(password)]
	return ok
}

func hasPattern(password string) bool {
	lower := strings.ToLower(password)
	for _, p := range keyboardPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	if ascendingDigits.MatchString(password) {
		return true
	}
	if hasAscendingLetterRun(lower) {
		return true
	}
	return hasRepeatRun(password)
}

// computeScore sums all components as floats and truncates toward zero
// once at the end before clamping to [0,100].
func computeScore(length int, p domain.ClassPresence, entropy float64, unique int, common, pattern bool) int {
	score := 0.0

	// Length (max 30)
	switch {
	case length >= 16:
		score += 30
	case length >= 12:
		score += 25
	case length >= 8:
		score += 15
	case length >= 6:
		score += 5
	}

	// Character variety (max 30)
	score += 7.5 * float64(p.Count())

	// Entropy bonus (max 25)
	switch {
	case entropy >= 80:
		score += 25
	case entropy >= 60:
		score += 20
	case entropy >= 40:
		score += 15
	case entropy >= 20:
		score += 10
	}

	// Uniqueness (max 15)
	if length > 0 {
		score += 15 * float64(unique) / float64(length)
	}

	// Penalties
	if common {
		score -= 50
	}
	if pattern {
		score -= 20
	}

	n := int(score)
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func countUniqueRunes(password string) int {
	seen := make(map[rune]struct{}, len(password))
	for _, r := range password {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// buildSuggestions emits remediation advice in fixed presentation order:
// length, missing classes, common password, pattern, repetition, then an
// affirmative fallback when nothing else applied.
func buildSuggestions(r domain.Report) []string {
	var suggestions []string

	if r.Length < 12 {
		suggestions = append(suggestions,
			fmt.Sprintf("Increase length to at least 12 characters (current: %d)", r.Length))
	}
	if !r.Classes.Lowercase {
		suggestions = append(suggestions, "Add lowercase letters (a-z)")
	}
	if !r.Classes.Uppercase {
		suggestions = append(suggestions, "Add uppercase letters (A-Z)")
	}
	if !r.Classes.Digit {
		suggestions = append(suggestions, "Add numbers (0-9)")
	}
	if !r.Classes.Symbol {
		suggestions = append(suggestions, "Add special characters (!@#$%^&*)")
	}
	if r.KnownCommon {
		suggestions = append(suggestions, "This is a commonly used password - AVOID!")
	}
	if r.HasPattern {
		suggestions = append(suggestions, "Avoid keyboard patterns and sequences")
	}
	if float64(r.RepeatedChars) > 0.3*float64(r.Length) {
		suggestions = append(suggestions, "Reduce repeated characters")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Password meets security requirements")
	}
	return suggestions
}
