package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/mcavage/restdown"
	"github.com/mcavage/restdown/internal/config"
)

// CLI-level sentinel errors.
var (
	ErrNoInput   = errors.New("no input files given")
	ErrReadInput = errors.New("failed to read input file")
)

// run executes the whole CLI: flag parsing, config merge, and the
// sequential per-file conversion loop. The first failing input aborts
// the run.
func run(args []string) error {
	flags, paths, err := parseFlags(args[1:])
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Printf("restdown %s\n", Version)
		return nil
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
	}

	logger := newLogger(flags, cfg)

	if len(paths) == 0 {
		return ErrNoInput
	}

	conv, err := newConverter(flags, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, path := range paths {
		if err := convertFile(ctx, logger, conv, path, flags.mediaDest); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// newLogger builds the process logger. Flags win over config: debug under
// verbose, warnings-and-up under quiet, info otherwise.
func newLogger(flags *cliFlags, cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	switch {
	case flags.verbose || cfg.Logging.Verbose:
		logger.SetLevel(logrus.DebugLevel)
		logger.SetReportCaller(true)
	case flags.quiet || cfg.Logging.Quiet:
		logger.SetLevel(logrus.WarnLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

// newConverter assembles converter options from flags and config.
// The -b flag beats the config's brand.dir; other settings come from
// config when present.
func newConverter(flags *cliFlags, cfg *config.Config) (*restdown.Converter, error) {
	var opts []restdown.Option

	brandDir := flags.brandDir
	if brandDir == "" {
		brandDir = cfg.Brand.Dir
	}
	if brandDir != "" {
		opts = append(opts, restdown.WithBrandDir(brandDir))
	}
	if cfg.Brand.Root != "" {
		opts = append(opts, restdown.WithBrandsRoot(cfg.Brand.Root))
	}
	if cfg.Brand.Name != "" {
		opts = append(opts, restdown.WithDefaultBrand(cfg.Brand.Name))
	}
	if cfg.Highlight.Style != "" {
		opts = append(opts, restdown.WithHighlightStyle(cfg.Highlight.Style))
	}

	return restdown.NewConverter(opts...)
}

// convertFile converts one input path, writes its outputs, and optionally
// copies the resolved brand's media.
func convertFile(ctx context.Context, logger *logrus.Logger, conv *restdown.Converter, path, mediaDest string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	res, err := conv.Convert(ctx, restdown.Input{Path: path, Markdown: string(data)})
	if err != nil {
		return err
	}

	htmlPath, jsonPath, err := restdown.WriteOutputs(res, path)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"html":      htmlPath,
		"json":      jsonPath,
		"brand":     res.Brand.Name,
		"endpoints": len(res.Summary.Endpoints),
	}).Info("converted")

	if mediaDest != "" {
		if err := restdown.CopyBrandMedia(logger, res.Brand, mediaDest); err != nil {
			return err
		}
	}
	return nil
}
