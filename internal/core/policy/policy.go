package policy

import (
	"encoding/json"
	"fmt"
	"os"

	"passwordCheckerBackend/internal/core/domain"
)

// Policy is a password acceptance policy, typically loaded from a JSON
// file. Zero values for require_* flags mean "not required"; reject_common
// defaults to true when the file omits it.
type Policy struct {
	MinLength        int  `json:"min_length"`
	MinScore         int  `json:"min_score"`
	RequireLowercase bool `json:"require_lowercase"`
	RequireUppercase bool `json:"require_uppercase"`
	RequireDigits    bool `json:"require_digits"`
	RequireSymbols   bool `json:"require_symbols"`
	RejectCommon     bool `json:"reject_common"`
}

func Default() Policy {
	return Policy{
		MinLength:    8,
		MinScore:     50,
		RejectCommon: true,
	}
}

// Load reads a policy file over the defaults, so absent fields keep their
// default values.
func Load(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy file: %w", err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Policy{}, fmt.Errorf("parse policy file %s: %w", path, err)
	}
	return p, nil
}

// Check evaluates a report against the policy and returns every failed
// rule, not just the first.
func (p Policy) Check(r domain.Report) (bool, []string) {
	var failures []string

	if r.Length < p.MinLength {
		failures = append(failures, fmt.Sprintf("Minimum length: %d", p.MinLength))
	}
	if r.Score < p.MinScore {
		failures = append(failures, fmt.Sprintf("Minimum score: %d", p.MinScore))
	}
	if p.RequireUppercase && !r.Classes.Uppercase {
		failures = append(failures, "Must contain uppercase")
	}
	if p.RequireLowercase && !r.Classes.Lowercase {
		failures = append(failures, "Must contain lowercase")
	}
	if p.RequireDigits && !r.Classes.Digit {
		failures = append(failures, "Must contain digits")
	}
	if p.RequireSymbols && !r.Classes.Symbol {
		failures = append(failures, "Must contain symbols")
	}
	if p.RejectCommon && r.KnownCommon {
		failures = append(failures, "Common passwords not allowed")
	}

	return len(failures) == 0, failures
}
