package port

import (
	"context"

	"passwordCheckerBackend/internal/core/domain"
)

type PasswordService interface {
	Analyze(ctx context.Context, password string, checkBreach bool) (domain.Report, error)
	AnalyzeBatch(ctx context.Context, passwords []string, checkBreach bool) ([]domain.Report, domain.BatchSummary, error)
	Generate(ctx context.Context, constraints domain.GenerationConstraints) (domain.GeneratedSecret, error)
	GenerateBatch(ctx context.Context, count int, constraints domain.GenerationConstraints) ([]domain.GeneratedSecret, error)
	GeneratePassphrase(ctx context.Context, opts domain.PassphraseOptions) (domain.GeneratedSecret, error)
}

// BreachOracle checks a password against a breach database. Implementations
// must degrade on failure: return a status with Count == -1 alongside the
// error, never a fabricated "not breached".
type BreachOracle interface {
	Lookup(ctx context.Context, password string) (domain.BreachStatus, error)
}

// RangeCache caches raw k-anonymity range responses keyed by hash prefix.
type RangeCache interface {
	Get(ctx context.Context, prefix string) (string, bool)
	Set(ctx context.Context, prefix, body string)
}

// RandomSource is the single randomness capability the generator draws
// from. Production binds a cryptographically secure source; tests may
// substitute a seeded one.
type RandomSource interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}
