package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cacheadapter "passwordCheckerBackend/internal/adapter/cache"
	"passwordCheckerBackend/internal/adapter/hibp"
	"passwordCheckerBackend/internal/config"
	"passwordCheckerBackend/internal/core/service"
	"passwordCheckerBackend/internal/pkg/metrics"
	"passwordCheckerBackend/internal/port"
	"passwordCheckerBackend/internal/utils/random"
)

// app bundles the wired service with its config for command handlers.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	metrics *metrics.Collector
	service port.PasswordService
}

func newApp() (*app, error) {
	cfg := config.Load()

	var (
		logger *zap.Logger
		err    error
	)
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	var rangeCache port.RangeCache
	if cfg.RedisAddr != "" {
		rangeCache = cacheadapter.NewRedisRangeCache(cfg.RedisAddr, cfg.RedisCacheTTL, logger)
	}

	oracle := hibp.NewClient(cfg.HIBPBaseURL, cfg.HIBPTimeout, rangeCache, logger)
	collector := metrics.NewCollector()

	return &app{
		cfg:     cfg,
		logger:  logger,
		metrics: collector,
		service: service.NewPasswordService(oracle, random.NewCryptoSource(), collector, logger),
	}, nil
}

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pwcheck",
		Short:         "Analyze password strength and generate secure passwords",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newAnalyzeCommand(),
		newGenerateCommand(),
		newServeCommand(),
	)
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
