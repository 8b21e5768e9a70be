package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chronicles-of-arvandor/spell-converter/internal/config"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
	"github.com/chronicles-of-arvandor/spell-converter/internal/pkg/clock"
	"github.com/chronicles-of-arvandor/spell-converter/internal/pkg/idgen"
	"github.com/chronicles-of-arvandor/spell-converter/internal/redis"
	"github.com/chronicles-of-arvandor/spell-converter/internal/repositories/spells"
	"github.com/chronicles-of-arvandor/spell-converter/internal/services/conversion"
)

type convertFlags struct {
	input           string
	output          string
	workers         int
	continueOnError bool
	dryRun          bool
	stableIDs       bool
	redisAddr       string
	logLevel        string
}

func newConvertCmd() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:          "convert",
		Short:        "Convert a 5etools spell file",
		Long:         `Convert every spell in a 5etools JSON file into a tagged YAML document. Missing paths are asked for interactively.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "5etools spell JSON file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "directory to write documents to")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", 1, "number of spells converted at once")
	cmd.Flags().BoolVar(&flags.continueOnError, "continue-on-error", false, "convert the remaining spells after a failure and report all failures at the end")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "decode and render every spell without writing anything")
	cmd.Flags().BoolVar(&flags.stableIDs, "stable-ids", false, "derive spell IDs from source, name and page instead of generating random ones")
	cmd.Flags().StringVar(&flags.redisAddr, "redis-addr", "", "publish documents to this Redis server instead of a directory")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	return cmd
}

func runConvert(cmd *cobra.Command, flags *convertFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	applyFlags(cmd, flags, cfg)

	if err := resolvePaths(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	svc, err := conversion.NewService(&conversion.Config{
		Store:           store,
		IDGenerator:     newIDGenerator(cfg),
		Logger:          logger,
		Clock:           clock.New(),
		Workers:         cfg.Workers,
		ContinueOnError: cfg.ContinueOnError,
		DryRun:          cfg.DryRun,
	})
	if err != nil {
		return err
	}

	out, err := svc.ConvertFile(ctx, &conversion.ConvertFileInput{Path: cfg.Input})
	if err != nil {
		return err
	}

	return report(cmd.OutOrStdout(), cmd.ErrOrStderr(), out)
}

// applyFlags lets explicitly set flags override the environment
func applyFlags(cmd *cobra.Command, flags *convertFlags, cfg *config.Config) {
	set := cmd.Flags().Changed

	if set("input") {
		cfg.Input = flags.input
	}
	if set("output") {
		cfg.Output = flags.output
	}
	if set("workers") {
		cfg.Workers = flags.workers
	}
	if set("stable-ids") {
		cfg.StableIDs = flags.stableIDs
	}
	if set("redis-addr") {
		cfg.Redis.Addr = flags.redisAddr
	}
	if set("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	cfg.ContinueOnError = flags.continueOnError
	cfg.DryRun = flags.dryRun
}

// resolvePaths prompts for whichever paths are still missing
func resolvePaths(cmd *cobra.Command, cfg *config.Config) error {
	needOutput := cfg.Output == "" && !cfg.UsesRedis() && !cfg.DryRun
	if cfg.Input != "" && !needOutput {
		return nil
	}

	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	if cfg.Input == "" {
		input, err := p.InputFile()
		if err != nil {
			return err
		}
		cfg.Input = input
	}
	if needOutput {
		output, err := p.OutputDir()
		if err != nil {
			return err
		}
		cfg.Output = output
	}
	return nil
}

func newStore(ctx context.Context, cfg *config.Config) (spells.Repository, func(), error) {
	noop := func() {}

	if cfg.DryRun {
		return nil, noop, nil
	}

	if cfg.UsesRedis() {
		client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, noop, err
		}
		closeClient := func() { _ = client.Close() }

		if err := redis.Ping(ctx, client); err != nil {
			closeClient()
			return nil, noop, err
		}

		repo, err := spells.NewRedis(&spells.RedisConfig{Client: client})
		if err != nil {
			closeClient()
			return nil, noop, err
		}
		return repo, closeClient, nil
	}

	repo, err := spells.NewFile(&spells.FileConfig{Dir: cfg.Output})
	if err != nil {
		return nil, noop, err
	}
	return repo, noop, nil
}

func newIDGenerator(cfg *config.Config) idgen.Generator {
	if cfg.StableIDs {
		return idgen.NewNameBased("", idgen.SpellNamespace)
	}
	return idgen.NewUUID("")
}

// report prints failures and the closing line. Any failure makes the run fail.
func report(stdout, stderr io.Writer, out *conversion.ConvertFileOutput) error {
	for _, f := range out.Failures {
		fmt.Fprintf(stderr, "Error converting %s (record %d, %s): %v\n", f.Name, f.Index, f.Stage, f.Err)
	}

	if len(out.Failures) > 0 {
		return errors.FailedPreconditionf("%d of %d spells failed to convert", len(out.Failures), out.Total)
	}

	fmt.Fprintln(stdout, "Done!")
	return nil
}
