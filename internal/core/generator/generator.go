package generator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"passwordCheckerBackend/internal/core/domain"
	"passwordCheckerBackend/internal/port"
)

// SecretGenerator synthesizes passwords and passphrases. Every random
// decision routes through the injected source; it holds no other state.
type SecretGenerator struct {
	src port.RandomSource
}

func NewSecretGenerator(src port.RandomSource) *SecretGenerator {
	return &SecretGenerator{src: src}
}

// Generate builds a password honoring the constraints: per-class minimums
// drawn from each class alphabet, filler drawn from the pooled alphabet,
// then a uniform shuffle so the minimum-class characters are not clustered
// at the front.
func (g *SecretGenerator) Generate(c domain.GenerationConstraints) (string, error) {
	var pool []rune
	var required []rune

	for _, class := range c.EnabledClasses {
		alphabet := effectiveAlphabet(class, c.ExcludeAmbiguous)
		if len(alphabet) == 0 {
			continue
		}
		pool = append(pool, alphabet...)
		for i := 0; i < c.MinPerClass[class]; i++ {
			required = append(required, alphabet[g.src.Intn(len(alphabet))])
		}
	}

	if len(pool) == 0 {
		return "", fmt.Errorf("%w: no usable characters remain after class selection and ambiguous-glyph filtering",
			domain.ErrEmptyCharacterPool)
	}
	if len(required) > c.TotalLength {
		return "", fmt.Errorf("%w: minimum character requirements (%d) exceed total length (%d)",
			domain.ErrMinimumsExceedLength, len(required), c.TotalLength)
	}

	chars := make([]rune, 0, c.TotalLength)
	chars = append(chars, required...)
	for len(chars) < c.TotalLength {
		chars = append(chars, pool[g.src.Intn(len(pool))])
	}

	g.src.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})

	return string(chars), nil
}

// GeneratePassphrase joins independently drawn words, e.g.
// "Copper-Thunder-Basket-Wool42".
func (g *SecretGenerator) GeneratePassphrase(opts domain.PassphraseOptions) (string, error) {
	if opts.WordCount <= 0 {
		return "", fmt.Errorf("%w: passphrase needs at least one word, got %d",
			domain.ErrEmptyCharacterPool, opts.WordCount)
	}

	words := make([]string, opts.WordCount)
	for i := range words {
		word := passphraseWords[g.src.Intn(len(passphraseWords))]
		if opts.Capitalize {
			word = capitalize(word)
		}
		words[i] = word
	}

	passphrase := strings.Join(words, opts.Separator)
	if opts.AppendNumber {
		passphrase += strconv.Itoa(g.src.Intn(100))
	}
	return passphrase, nil
}

// GenerateMultiple runs Generate count times. Invocations are independent;
// duplicate outputs are possible and not an error.
func (g *SecretGenerator) GenerateMultiple(count int, c domain.GenerationConstraints) ([]string, error) {
	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		password, err := g.Generate(c)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, password)
	}
	return passwords, nil
}

func effectiveAlphabet(class domain.CharacterClass, excludeAmbiguous bool) []rune {
	alphabet := class.Alphabet()
	out := make([]rune, 0, len(alphabet))
	for _, r := range alphabet {
		if excludeAmbiguous && strings.ContainsRune(domain.AmbiguousGlyphs, r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
