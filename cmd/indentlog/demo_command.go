package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"

	"indentlog/internal/dump"
	"indentlog/internal/indent"
	"indentlog/internal/logging"
)

func newDemoCommand(ctx *commandContext) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print sample output covering scopes, hierarchy, colors and dumps",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 0 {
				return errors.New("--workers must be >= 0")
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), logger, workers)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Also run N concurrent workers, each with its own depth")
	return cmd
}

type demoSettings struct {
	Name    string            `dump:"name"`
	Retries int               `dump:"retries"`
	Hosts   []string          `dump:"hosts"`
	Labels  map[string]string `dump:"labels"`
	Token   string            `dump:"-"`
	Parent  *demoSettings     `dump:"parent"`
}

func runDemo(ctx context.Context, logger *slog.Logger, workers int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithContext(ctx)

	logger.InfoContext(ctx, "Starting main function")
	logger.DebugContext(ctx, "Manual depth hint", logging.Lvl(5), logging.Color("red"))

	if err := indent.Run(ctx, func(ctx context.Context) error {
		return complexOperation(ctx, logger)
	}); err != nil {
		logger.ErrorContext(ctx, "Complex operation failed", logging.Error(err))
	}

	module := logging.Named(logger, "examples.module1")
	module.InfoContext(ctx, "Module function called")
	logging.Named(logger, "examples.module1.submodule").InfoContext(ctx, "Submodule function called", logging.Color("cyan"))

	settings := &demoSettings{
		Name:    "primary",
		Retries: 3,
		Hosts:   []string{"db-1.local", "db-2.local"},
		Labels:  map[string]string{"tier": "backend", "region": "eu-west"},
		Token:   "redacted",
	}
	settings.Parent = settings
	logging.Dump(ctx, logger, slog.LevelInfo, settings, 0, dump.Options{Name: "settings"})

	if workers > 0 {
		runWorkers(ctx, logger, workers)
	}

	logger.InfoContext(ctx, "Finished main function", logging.Color("green"))
	return nil
}

func complexOperation(ctx context.Context, logger *slog.Logger) error {
	logger.InfoContext(ctx, "Starting complex operation")
	err := indent.Run(ctx, func(ctx context.Context) error {
		logger.InfoContext(ctx, "Performing sub operation step 1")
		logger.InfoContext(ctx, "Performing sub operation step 2")
		return nil
	})
	if err != nil {
		return err
	}

	count, err := indent.Call(ctx, func(ctx context.Context) (int, error) {
		logger.WarnContext(ctx, "Retrying flaky step", logging.Color("yellow"), "attempt", 2)
		return 2, nil
	})
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.New("no attempts recorded")
	}
	logger.InfoContext(ctx, "Complex operation completed", "attempts", count)
	return nil
}

func runWorkers(ctx context.Context, logger *slog.Logger, workers int) {
	var wg sync.WaitGroup
	for i := range workers {
		wctx := indent.Fork(ctx)
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			defer indent.Enter(wctx)()
			name := logging.Named(logger, fmt.Sprintf("worker.%d", id))
			name.InfoContext(wctx, "Worker started")
			_ = indent.Run(wctx, func(ctx context.Context) error {
				name.InfoContext(ctx, "Worker step")
				return nil
			})
		}(i)
	}
	wg.Wait()
}
