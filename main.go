package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rice-timer/clock"
	"rice-timer/config"
	"rice-timer/logging"
	"rice-timer/repository"
	"rice-timer/service"
)

var rootCmd = &cobra.Command{
	Use:   "ricetimer",
	Short: "Rice cooker countdown calculator",
	Long: "ricetimer recommends the delay-start countdown to program into a rice cooker " +
		"so the rice is ready at, or just before, a target time.",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newServeCmd(), newCalcCmd(), newWatchCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg     *config.Config
	logger  zerolog.Logger
	service *service.ReadyTimeService
	close   func() error
}

// newApp loads configuration and wires the service. Redis is only used when
// withRedis is set and an address is configured.
func newApp(withRedis bool, logOut io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := logging.SetupWithWriter(cfg.Environment, logOut)

	var (
		cache     repository.CacheRepository = repository.NewMemoryCache()
		closeFunc                            = func() error { return nil }
	)
	if withRedis && cfg.RedisAddr != "" {
		rc := repository.NewRedisCache(repository.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, logger)
		cache, closeFunc = rc, rc.Close
	}

	svc := service.NewReadyTimeService(
		clock.RealClock{},
		repository.NewCalculationRepositoryMemory(cfg.HistorySize),
		cache,
		logger,
		service.Defaults{
			CookMinutes: cfg.DefaultCookMinutes,
			StepHours:   cfg.DefaultStepHours,
			CacheTTL:    cfg.CacheTTL,
		},
	)

	return &app{cfg: cfg, logger: logger, service: svc, close: closeFunc}, nil
}

// shutdown releases the cache connection. Used from defer, so failures are
// logged rather than returned.
func (a *app) shutdown() {
	if err := a.close(); err != nil {
		a.logger.Warn().Err(err).Msg("closing cache")
	}
}
