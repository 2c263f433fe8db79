// Package cmd provides Cobra CLI commands for icofetch.
package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/icofetch/internal/config"
	"github.com/bnema/icofetch/internal/domain/build"
	"github.com/bnema/icofetch/internal/domain/entity"
	domainurl "github.com/bnema/icofetch/internal/domain/url"
	"github.com/bnema/icofetch/internal/infrastructure/favicon"
	"github.com/bnema/icofetch/internal/logging"
)

var (
	cfg       *config.Config
	buildInfo build.Info

	flagSize    string
	flagFormat  string
	flagOutput  string
	flagStdout  bool
	flagURLOnly bool

	rootCmd = &cobra.Command{
		Use:   "icofetch <url>",
		Short: "Fetch the favicon representing a website",
		Long: `icofetch resolves the favicon of a website: it fetches the page,
discovers candidate icon URLs declared in the document head, races the
candidates concurrently, and keeps the first one that decodes as a valid
image, optionally resized and re-encoded.

The result is written to a file (--output, defaulting to a name derived
from the domain) or to stdout (--stdout). With --url-only the resolved
icon URL is printed instead of the image.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return nil
		},
		RunE: runFetch,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&flagSize, "size", "s", "", "target size: small, medium, large, default, or <w>,<h>")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "output format: png, ico, jpeg, gif, bmp")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "path to write the favicon to")
	rootCmd.Flags().BoolVar(&flagStdout, "stdout", false, "write the favicon bytes to stdout")
	rootCmd.Flags().BoolVar(&flagURLOnly, "url-only", false, "only print the resolved favicon URL")
	rootCmd.MarkFlagsMutuallyExclusive("output", "stdout", "url-only")
}

// SetBuildInfo wires version information injected by main via ldflags.
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s, %s)",
		buildInfo.Version, buildInfo.Commit, buildInfo.BuildDate, buildInfo.GoVersion)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: time.RFC3339,
	})
	ctx := logging.WithContext(cmd.Context(), logger)

	sizeStr := flagSize
	if sizeStr == "" {
		sizeStr = cfg.Output.Size
	}
	size := entity.ParseImageSize(sizeStr)
	if size.Kind == entity.SizeInvalid {
		return fmt.Errorf("%w: %q", entity.ErrInvalidSize, sizeStr)
	}

	formatStr := flagFormat
	if formatStr == "" {
		formatStr = cfg.Output.Format
	}
	format := entity.ParseFormat(formatStr)
	if format == entity.FormatInvalid {
		return fmt.Errorf("%w: unknown format %q", entity.ErrEncode, formatStr)
	}

	svc := favicon.NewService(favicon.Options{
		Client:        &http.Client{Timeout: time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second},
		MaxConcurrent: cfg.Fetch.MaxConcurrent,
		UserAgent:     cfg.Fetch.UserAgent,
		MaxPageBytes:  cfg.Fetch.MaxPageBytes,
		MaxIconBytes:  cfg.Fetch.MaxIconBytes,
	})

	fav, err := svc.Resolve(ctx, args[0])
	if err != nil {
		return err
	}

	if flagURLOnly {
		fmt.Fprintln(cmd.OutOrStdout(), fav.URL.String())
		return nil
	}

	fav, err = fav.Resize(size)
	if err != nil {
		return err
	}

	data, err := fav.Reformat(format)
	if err != nil {
		return err
	}

	if flagStdout {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("write to stdout: %w", err)
		}
		return nil
	}

	path := flagOutput
	if path == "" {
		domain := domainurl.ExtractDomain(fav.URL)
		path = domainurl.SanitizeDomainForFilename(domain, format.Ext())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write favicon: %w", err)
	}

	logger.Info().Str("path", path).Int("bytes", len(data)).Str("source", fav.URL.String()).Msg("favicon written")
	return nil
}
