package generator

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"passwordCheckerBackend/internal/core/domain"
	"passwordCheckerBackend/internal/utils/random"
)

func newTestGenerator() *SecretGenerator {
	return NewSecretGenerator(random.NewSeededSource(42))
}

func countFromAlphabet(s, alphabet string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(alphabet, r) {
			n++
		}
	}
	return n
}

func TestGenerate_Length(t *testing.T) {
	g := newTestGenerator()
	for _, length := range []int{1, 8, 16, 64} {
		c := domain.DefaultConstraints()
		c.TotalLength = length

		password, err := g.Generate(c)
		if err != nil {
			t.Fatalf("Generate(length=%d): %v", length, err)
		}
		if got := len([]rune(password)); got != length {
			t.Errorf("len = %d, want %d", got, length)
		}
	}
}

func TestGenerate_MinimumPerClass(t *testing.T) {
	g := newTestGenerator()
	c := domain.GenerationConstraints{
		TotalLength:    20,
		EnabledClasses: domain.AllClasses,
		MinPerClass: map[domain.CharacterClass]int{
			domain.ClassLowercase: 2,
			domain.ClassUppercase: 2,
			domain.ClassDigit:     3,
			domain.ClassSymbol:    2,
		},
	}

	for i := 0; i < 50; i++ {
		password, err := g.Generate(c)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		for class, minimum := range c.MinPerClass {
			if got := countFromAlphabet(password, class.Alphabet()); got < minimum {
				t.Errorf("password %q has %d %s characters, want at least %d",
					password, got, class, minimum)
			}
		}
	}
}

func TestGenerate_ExcludesAmbiguousGlyphs(t *testing.T) {
	g := newTestGenerator()
	c := domain.GenerationConstraints{
		TotalLength:      32,
		EnabledClasses:   domain.AllClasses,
		ExcludeAmbiguous: true,
		MinPerClass: map[domain.CharacterClass]int{
			domain.ClassLowercase: 8,
			domain.ClassUppercase: 8,
			domain.ClassDigit:     8,
		},
	}

	for i := 0; i < 50; i++ {
		password, err := g.Generate(c)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if strings.ContainsAny(password, domain.AmbiguousGlyphs) {
			t.Errorf("password %q contains an ambiguous glyph", password)
		}
	}
}

func TestGenerate_SingleClassOnly(t *testing.T) {
	g := newTestGenerator()
	c := domain.GenerationConstraints{
		TotalLength:    12,
		EnabledClasses: []domain.CharacterClass{domain.ClassDigit},
	}

	password, err := g.Generate(c)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if countFromAlphabet(password, domain.CharsetDigits) != 12 {
		t.Errorf("password %q contains non-digit characters", password)
	}
}

func TestGenerate_ConstraintErrors(t *testing.T) {
	tests := []struct {
		name    string
		c       domain.GenerationConstraints
		wantErr domain.ConstraintError
	}{
		{
			name: "minimums exceed length",
			c: domain.GenerationConstraints{
				TotalLength:    4,
				EnabledClasses: []domain.CharacterClass{domain.ClassLowercase},
				MinPerClass:    map[domain.CharacterClass]int{domain.ClassLowercase: 5},
			},
			wantErr: domain.ErrMinimumsExceedLength,
		},
		{
			name:    "no enabled classes",
			c:       domain.GenerationConstraints{TotalLength: 10},
			wantErr: domain.ErrEmptyCharacterPool,
		},
	}

	g := newTestGenerator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Generate(tt.c)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGeneratePassphrase(t *testing.T) {
	g := newTestGenerator()
	opts := domain.PassphraseOptions{
		WordCount:    4,
		Separator:    "-",
		Capitalize:   true,
		AppendNumber: true,
	}

	passphrase, err := g.GeneratePassphrase(opts)
	if err != nil {
		t.Fatalf("GeneratePassphrase: %v", err)
	}

	// Strip the numeric suffix before splitting.
	body := strings.TrimRight(passphrase, "0123456789")
	if body == passphrase {
		t.Errorf("passphrase %q has no numeric suffix", passphrase)
	}
	suffix := passphrase[len(body):]
	if n, err := strconv.Atoi(suffix); err != nil || n < 0 || n > 99 {
		t.Errorf("numeric suffix %q outside [0,100)", suffix)
	}

	parts := strings.Split(body, "-")
	if len(parts) != 4 {
		t.Fatalf("passphrase %q has %d words, want 4", passphrase, len(parts))
	}
	for _, word := range parts {
		if word == "" {
			t.Fatalf("passphrase %q has an empty word", passphrase)
		}
		if word[0] < 'A' || word[0] > 'Z' {
			t.Errorf("word %q is not capitalized", word)
		}
	}
}

func TestGeneratePassphrase_NoExtras(t *testing.T) {
	g := newTestGenerator()
	passphrase, err := g.GeneratePassphrase(domain.PassphraseOptions{
		WordCount: 3,
		Separator: ".",
	})
	if err != nil {
		t.Fatalf("GeneratePassphrase: %v", err)
	}

	if strings.ContainsAny(passphrase, "0123456789") {
		t.Errorf("passphrase %q has digits despite AppendNumber=false", passphrase)
	}
	if passphrase != strings.ToLower(passphrase) {
		t.Errorf("passphrase %q is capitalized despite Capitalize=false", passphrase)
	}
	if len(strings.Split(passphrase, ".")) != 3 {
		t.Errorf("passphrase %q does not have 3 words", passphrase)
	}
}

func TestGeneratePassphrase_InvalidWordCount(t *testing.T) {
	g := newTestGenerator()
	if _, err := g.GeneratePassphrase(domain.PassphraseOptions{WordCount: 0}); !errors.Is(err, domain.ErrEmptyCharacterPool) {
		t.Errorf("error = %v, want %v", err, domain.ErrEmptyCharacterPool)
	}
}

func TestGenerateMultiple(t *testing.T) {
	g := newTestGenerator()
	c := domain.DefaultConstraints()
	c.TotalLength = 12

	passwords, err := g.GenerateMultiple(5, c)
	if err != nil {
		t.Fatalf("GenerateMultiple: %v", err)
	}
	if len(passwords) != 5 {
		t.Fatalf("got %d passwords, want 5", len(passwords))
	}
	for _, password := range passwords {
		if len([]rune(password)) != 12 {
			t.Errorf("password %q has wrong length", password)
		}
	}
}

func TestGenerate_CryptoSource(t *testing.T) {
	g := NewSecretGenerator(random.NewCryptoSource())
	c := domain.DefaultConstraints()

	password, err := g.Generate(c)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len([]rune(password)) != c.TotalLength {
		t.Errorf("len = %d, want %d", len([]rune(password)), c.TotalLength)
	}
}
