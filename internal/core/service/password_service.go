package service

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"

	"passwordCheckerBackend/internal/core/analyzer"
	"passwordCheckerBackend/internal/core/domain"
	"passwordCheckerBackend/internal/core/generator"
	"passwordCheckerBackend/internal/pkg/concurrency"
	"passwordCheckerBackend/internal/pkg/metrics"
	"passwordCheckerBackend/internal/port"
)

const (
	BreachLookupTimeout = 5 * time.Second
	MaxBatchWorkers     = 8
	BatchQueueSize      = 100
)

// PasswordService composes the pure engines with the external breach
// oracle. The engines are stateless, so one service instance serves all
// callers concurrently.
type PasswordService struct {
	analyzer  *analyzer.StrengthAnalyzer
	generator *generator.SecretGenerator
	oracle    port.BreachOracle
	metrics   *metrics.Collector
	logger    *zap.Logger
}

// NewPasswordService wires the service. oracle may be nil; breach checks
// then degrade to an unknown status.
func NewPasswordService(
	oracle port.BreachOracle,
	src port.RandomSource,
	collector *metrics.Collector,
	logger *zap.Logger,
) port.PasswordService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if collector == nil {
		collector = metrics.NewCollector()
	}
	return &PasswordService{
		analyzer:  analyzer.NewStrengthAnalyzer(),
		generator: generator.NewSecretGenerator(src),
		oracle:    oracle,
		metrics:   collector,
		logger:    logger,
	}
}

func (s *PasswordService) Analyze(ctx context.Context, password string, checkBreach bool) (domain.Report, error) {
	report := s.analyzer.Analyze(password)
	s.metrics.RecordAnalysis()

	if checkBreach {
		report = s.analyzer.MergeBreach(report, s.lookupBreach(ctx, password))
	}
	return report, nil
}

// lookupBreach consults the oracle under a bounded context. Any failure
// degrades to the unknown status; it is logged, never propagated.
func (s *PasswordService) lookupBreach(ctx context.Context, password string) domain.BreachStatus {
	if s.oracle == nil {
		return domain.BreachStatus{Known: false, Count: -1}
	}

	lookupCtx, cancel := context.WithTimeout(ctx, BreachLookupTimeout)
	defer cancel()

	s.metrics.RecordBreachLookup()
	status, err := s.oracle.Lookup(lookupCtx, password)
	if err != nil {
		s.metrics.RecordBreachFailure()
		s.logger.Warn("breach lookup degraded to unknown", zap.Error(err))
	}
	return status
}

func (s *PasswordService) AnalyzeBatch(ctx context.Context, passwords []string, checkBreach bool) ([]domain.Report, domain.BatchSummary, error) {
	reports := make([]domain.Report, len(passwords))
	if len(passwords) == 0 {
		return reports, summarize(reports), nil
	}

	workers := runtime.NumCPU()
	if workers > MaxBatchWorkers {
		workers = MaxBatchWorkers
	}
	if workers > len(passwords) {
		workers = len(passwords)
	}

	pool := concurrency.NewWorkerPool(workers, BatchQueueSize)
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for i, password := range passwords {
			password := password
			pool.Submit(concurrency.Task{
				Index: i,
				Run: func(taskCtx context.Context) (domain.Report, error) {
					return s.Analyze(taskCtx, password, checkBreach)
				},
			})
		}
	}()

	for result := range pool.Results() {
		reports[result.Index] = result.Report
	}
	if err := ctx.Err(); err != nil {
		return nil, domain.BatchSummary{}, err
	}

	return reports, summarize(reports), nil
}

func (s *PasswordService) Generate(ctx context.Context, constraints domain.GenerationConstraints) (domain.GeneratedSecret, error) {
	password, err := s.generator.Generate(constraints)
	if err != nil {
		return domain.GeneratedSecret{}, err
	}
	s.metrics.RecordGeneration()

	return domain.GeneratedSecret{
		Password: password,
		Report:   s.analyzer.Analyze(password),
	}, nil
}

func (s *PasswordService) GenerateBatch(ctx context.Context, count int, constraints domain.GenerationConstraints) ([]domain.GeneratedSecret, error) {
	passwords, err := s.generator.GenerateMultiple(count, constraints)
	if err != nil {
		return nil, err
	}

	secrets := make([]domain.GeneratedSecret, len(passwords))
	for i, password := range passwords {
		s.metrics.RecordGeneration()
		secrets[i] = domain.GeneratedSecret{
			Password: password,
			Report:   s.analyzer.Analyze(password),
		}
	}
	return secrets, nil
}

func (s *PasswordService) GeneratePassphrase(ctx context.Context, opts domain.PassphraseOptions) (domain.GeneratedSecret, error) {
	passphrase, err := s.generator.GeneratePassphrase(opts)
	if err != nil {
		return domain.GeneratedSecret{}, err
	}
	s.metrics.RecordPassphrase()

	return domain.GeneratedSecret{
		Password: passphrase,
		Report:   s.analyzer.Analyze(passphrase),
	}, nil
}

func summarize(reports []domain.Report) domain.BatchSummary {
	summary := domain.BatchSummary{
		Total:      len(reports),
		ByStrength: make(map[domain.StrengthLevel]int),
	}
	if len(reports) == 0 {
		return summary
	}

	var scoreSum, entropySum float64
	for _, r := range reports {
		summary.ByStrength[r.Strength]++
		scoreSum += float64(r.Score)
		entropySum += r.EntropyBits
	}
	summary.AverageScore = scoreSum / float64(len(reports))
	summary.AverageEntropy = entropySum / float64(len(reports))
	return summary
}
