package domain

// ClassPresence records which character classes appear in a password.
type ClassPresence struct {
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Digit     bool `json:"digit"`
	Symbol    bool `json:"symbol"`
}

func (p ClassPresence) Has(c CharacterClass) bool {
	switch c {
	case ClassLowercase:
		return p.Lowercase
	case ClassUppercase:
		return p.Uppercase
	case ClassDigit:
		return p.Digit
	case ClassSymbol:
		return p.Symbol
	}
	return false
}

func (p ClassPresence) Count() int {
	n := 0
	for _, c := range AllClasses {
		if p.Has(c) {
			n++
		}
	}
	return n
}

// BreachStatus is the outcome of a breach-database lookup.
// Count of -1 means the lookup failed; that is not the same as "not found".
type BreachStatus struct {
	Known bool  `json:"known"`
	Count int64 `json:"count"`
}

func (b BreachStatus) Unknown() bool {
	return b.Count < 0
}

// Report is the immutable result of a strength analysis.
type Report struct {
	Length        int           `json:"password_length"`
	Classes       ClassPresence `json:"present_classes"`
	EntropyBits   float64       `json:"entropy_bits"`
	Score         int           `json:"score"`
	Strength      StrengthLevel `json:"strength_label"`
	CrackTime     string        `json:"crack_time"`
	KnownCommon   bool          `json:"is_known_common"`
	HasPattern    bool          `json:"has_keyboard_or_sequence_pattern"`
	CharVariety   int           `json:"char_variety"`
	UniqueChars   int           `json:"unique_char_count"`
	RepeatedChars int           `json:"repeated_char_count"`
	Suggestions   []string      `json:"suggestions"`
	Breach        *BreachStatus `json:"breach,omitempty"`
}

// GenerationConstraints shapes a single password generation.
type GenerationConstraints struct {
	TotalLength      int                    `json:"total_length"`
	EnabledClasses   []CharacterClass       `json:"enabled_classes"`
	ExcludeAmbiguous bool                   `json:"exclude_ambiguous"`
	MinPerClass      map[CharacterClass]int `json:"minimum_per_class,omitempty"`
}

func DefaultConstraints() GenerationConstraints {
	return GenerationConstraints{
		TotalLength:      16,
		EnabledClasses:   append([]CharacterClass(nil), AllClasses...),
		ExcludeAmbiguous: true,
	}
}

type PassphraseOptions struct {
	WordCount    int    `json:"word_count"`
	Separator    string `json:"separator"`
	Capitalize   bool   `json:"capitalize"`
	AppendNumber bool   `json:"append_number"`
}

func DefaultPassphraseOptions() PassphraseOptions {
	return PassphraseOptions{
		WordCount:    4,
		Separator:    "-",
		Capitalize:   true,
		AppendNumber: true,
	}
}

// GeneratedSecret pairs a generated password with its own analysis.
type GeneratedSecret struct {
	Password string `json:"password"`
	Report   Report `json:"analysis"`
}

// BatchSummary aggregates a batch analysis run.
type BatchSummary struct {
	Total          int                   `json:"total"`
	ByStrength     map[StrengthLevel]int `json:"by_strength"`
	AverageScore   float64               `json:"average_score"`
	AverageEntropy float64               `json:"average_entropy"`
}
