package analyzer

import (
	"reflect"
	"strings"
	"testing"

	"passwordCheckerBackend/internal/core/domain"
)

func TestAnalyze_KnownScenarios(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		wantLength   int
		wantEntropy  float64
		wantScore    int
		wantStrength domain.StrengthLevel
		wantCommon   bool
		wantPattern  bool
	}{
		{
			name:         "empty password",
			password:     "",
			wantLength:   0,
			wantEntropy:  0,
			wantScore:    0,
			wantStrength: domain.StrengthVeryWeak,
		},
		{
			name:         "common password penalized to very weak",
			password:     "password",
			wantLength:   8,
			wantEntropy:  37.6,
			wantScore:    0,
			wantStrength: domain.StrengthVeryWeak,
			wantCommon:   true,
		},
		{
			name:         "repeats and runs trigger pattern penalty",
			password:     "aaa11122",
			wantLength:   8,
			wantEntropy:  41.36,
			wantScore:    30,
			wantStrength: domain.StrengthWeak,
			wantPattern:  true,
		},
		{
			name:         "common plus sequence",
			password:     "password123",
			wantLength:   11,
			wantEntropy:  56.87,
			wantScore:    0,
			wantStrength: domain.StrengthVeryWeak,
			wantCommon:   true,
			wantPattern:  true,
		},
		{
			name:         "strong random password",
			password:     "aB3$xY9#mk2!pL7@",
			wantLength:   16,
			wantEntropy:  104.87,
			wantScore:    100,
			wantStrength: domain.StrengthVeryStrong,
		},
	}

	a := NewStrengthAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := a.Analyze(tt.password)

			if report.Length != tt.wantLength {
				t.Errorf("Length = %d, want %d", report.Length, tt.wantLength)
			}
			if report.EntropyBits != tt.wantEntropy {
				t.Errorf("EntropyBits = %v, want %v", report.EntropyBits, tt.wantEntropy)
			}
			if report.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", report.Score, tt.wantScore)
			}
			if report.Strength != tt.wantStrength {
				t.Errorf("Strength = %v, want %v", report.Strength, tt.wantStrength)
			}
			if report.KnownCommon != tt.wantCommon {
				t.Errorf("KnownCommon = %v, want %v", report.KnownCommon, tt.wantCommon)
			}
			if report.HasPattern != tt.wantPattern {
				t.Errorf("HasPattern = %v, want %v", report.HasPattern, tt.wantPattern)
			}
		})
	}
}

func TestAnalyze_EmptyPassword(t *testing.T) {
	report := NewStrengthAnalyzer().Analyze("")

	if report.CrackTime != "Instantly" {
		t.Errorf("CrackTime = %q, want Instantly", report.CrackTime)
	}
	if report.UniqueChars != 0 || report.RepeatedChars != 0 {
		t.Errorf("unique/repeated = %d/%d, want 0/0", report.UniqueChars, report.RepeatedChars)
	}
	if len(report.Suggestions) == 0 {
		t.Error("expected suggestions for empty password")
	}
}

func TestAnalyze_Invariants(t *testing.T) {
	passwords := []string{
		"", "a", "password", "P@ssw0rd", "MyS3cur3P@ssw0rd!",
		"TR0ub4dor&3", "correcthorsebatterystaple", "aB3$xY9#mk2!pL7@",
		"qwerty", "aaa11122", "日本語パスワード", "   ", "\t\n",
	}

	a := NewStrengthAnalyzer()
	for _, password := range passwords {
		report := a.Analyze(password)

		if report.Score < 0 || report.Score > 100 {
			t.Errorf("Analyze(%q).Score = %d, outside [0,100]", password, report.Score)
		}
		if report.UniqueChars+report.RepeatedChars != report.Length {
			t.Errorf("Analyze(%q): unique %d + repeated %d != length %d",
				password, report.UniqueChars, report.RepeatedChars, report.Length)
		}
		if (report.EntropyBits == 0) != (report.CharVariety == 0) {
			t.Errorf("Analyze(%q): entropy %v, want zero iff no class present", password, report.EntropyBits)
		}
		if report.Strength != StrengthForScore(report.Score) {
			t.Errorf("Analyze(%q): label %v inconsistent with score %d", password, report.Strength, report.Score)
		}
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := NewStrengthAnalyzer()
	first := a.Analyze("correcthorsebatterystaple")
	second := a.Analyze("correcthorsebatterystaple")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis differs:\n%+v\n%+v", first, second)
	}
}

func TestAnalyze_SuggestionOrder(t *testing.T) {
	report := NewStrengthAnalyzer().Analyze("aaa11122")

	want := []string{
		"Increase length to at least 12 characters (current: 8)",
		"Add uppercase letters (A-Z)",
		"Add special characters (!@#$%^&*)",
		"Avoid keyboard patterns and sequences",
		"Reduce repeated characters",
	}
	if !reflect.DeepEqual(report.Suggestions, want) {
		t.Errorf("Suggestions = %v, want %v", report.Suggestions, want)
	}
}

func TestAnalyze_AffirmativeFallback(t *testing.T) {
	report := NewStrengthAnalyzer().Analyze("aB3$xY9#mk2!pL7@")

	want := []string{"Password meets security requirements"}
	if !reflect.DeepEqual(report.Suggestions, want) {
		t.Errorf("Suggestions = %v, want %v", report.Suggestions, want)
	}
}

func TestMergeBreach(t *testing.T) {
	a := NewStrengthAnalyzer()
	base := a.Analyze("password123")

	t.Run("known breach reduces score and prepends warning", func(t *testing.T) {
		merged := a.MergeBreach(base, domain.BreachStatus{Known: true, Count: 3_000_000})

		wantScore := base.Score - 40
		if wantScore < 0 {
			wantScore = 0
		}
		if merged.Score != wantScore {
			t.Errorf("Score = %d, want %d", merged.Score, wantScore)
		}
		if merged.Strength != StrengthForScore(merged.Score) {
			t.Errorf("Strength not recomputed: %v", merged.Strength)
		}
		if len(merged.Suggestions) != len(base.Suggestions)+1 {
			t.Fatalf("suggestion count = %d, want %d", len(merged.Suggestions), len(base.Suggestions)+1)
		}
		if !strings.Contains(merged.Suggestions[0], "3,000,000") {
			t.Errorf("first suggestion %q does not mention the breach count", merged.Suggestions[0])
		}
		if merged.Breach == nil || !merged.Breach.Known {
			t.Error("breach status not attached")
		}
	})

	t.Run("unknown status leaves score and suggestions untouched", func(t *testing.T) {
		merged := a.MergeBreach(base, domain.BreachStatus{Known: false, Count: -1})

		if merged.Score != base.Score {
			t.Errorf("Score changed: %d != %d", merged.Score, base.Score)
		}
		if !reflect.DeepEqual(merged.Suggestions, base.Suggestions) {
			t.Errorf("suggestions changed: %v", merged.Suggestions)
		}
		if merged.Breach == nil || !merged.Breach.Unknown() {
			t.Error("unknown breach status not surfaced")
		}
	})

	t.Run("input report is not mutated", func(t *testing.T) {
		before := base.Suggestions[0]
		_ = a.MergeBreach(base, domain.BreachStatus{Known: true, Count: 10})
		if base.Suggestions[0] != before {
			t.Error("MergeBreach mutated its input")
		}
	})
}

func TestEstimateCrackTime_Buckets(t *testing.T) {
	tests := []struct {
		entropy float64
		want    string
	}{
		{0, "Instantly"},
		{17.1, "Instantly"},
		{37.6, "1 minutes"},
		{41.36, "23 minutes"},
		{56.87, "2 years"},
	}
	for _, tt := range tests {
		if got := estimateCrackTime(tt.entropy); got != tt.want {
			t.Errorf("estimateCrackTime(%v) = %q, want %q", tt.entropy, got, tt.want)
		}
	}
}

func TestEstimateCrackTime_PracticallyUncrackable(t *testing.T) {
	got := estimateCrackTime(104.87)
	if !strings.HasSuffix(got, "years (practically uncrackable)") {
		t.Errorf("estimateCrackTime(104.87) = %q, want practically uncrackable years", got)
	}
	if !strings.Contains(got, ",") {
		t.Errorf("year count in %q is not thousands-grouped", got)
	}
}

func TestHasPattern(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"QwErTy99x", true},   // keyboard run, case-insensitive
		{"x123x", true},       // ascending digits
		{"xabcx", true},       // ascending letters
		{"xAbCx!", true},      // ascending letters across case
		{"booook", true},      // repeated run
		{"x890x", true},       // wrapped digit row
		{"bdc", false},        // not an ascending run
		{"aB3$mk2!", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := hasPattern(tt.password); got != tt.want {
			t.Errorf("hasPattern(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestDetectClasses(t *testing.T) {
	p := detectClasses("aZ3!")
	if !p.Lowercase || !p.Uppercase || !p.Digit || !p.Symbol {
		t.Errorf("detectClasses(aZ3!) = %+v, want all classes", p)
	}
	if p.Count() != 4 {
		t.Errorf("Count() = %d, want 4", p.Count())
	}

	none := detectClasses("日本語")
	if none.Count() != 0 {
		t.Errorf("non-ASCII characters should match no class, got %+v", none)
	}
}
