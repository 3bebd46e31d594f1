package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/concursos"
	"github.com/fwojciec/concursos/goquery"
	conhttp "github.com/fwojciec/concursos/http"
	"github.com/fwojciec/concursos/rod"
	"github.com/fwojciec/concursos/scrape"
	conslog "github.com/fwojciec/concursos/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service overrides the scraper built from flags. Used for end-to-end testing.
	Service concursos.ConcursoService

	fetcher concursos.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("concursos"),
		kong.Description("Scrape public exam listings for Brazilian states"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"base_url": concursos.DefaultBaseURL},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'concursos --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if kongCtx.Command() != "states" {
		svc, err := m.service(cli, deps.Logger, stderr)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Service = svc
	}

	return kongCtx.Run(deps)
}

// service wires the scraping pipeline from flags unless Main.Service is set.
func (m *Main) service(cli *CLI, logger *slog.Logger, stderr io.Writer) (concursos.ConcursoService, error) {
	if m.Service != nil {
		return m.Service, nil
	}

	origin, err := originOf(cli.BaseURL)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: --base-url must be an absolute URL, e.g. "+concursos.DefaultBaseURL)
		return nil, err
	}

	var fetcher concursos.Fetcher
	if cli.Browser {
		opts := []rod.Option{rod.WithFetchTimeout(cli.Timeout), rod.WithBaseURL(cli.BaseURL)}
		if cli.UserAgent != "" {
			opts = append(opts, rod.WithUserAgent(cli.UserAgent))
		}
		f, err := rod.NewFetcher(opts...)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		opts := []conhttp.Option{conhttp.WithTimeout(cli.Timeout), conhttp.WithBaseURL(cli.BaseURL)}
		if cli.UserAgent != "" {
			opts = append(opts, conhttp.WithUserAgent(cli.UserAgent))
		}
		fetcher = conhttp.NewFetcher(opts...)
	}
	m.fetcher = fetcher

	var extractor concursos.Extractor = goquery.NewExtractor(goquery.WithOrigin(origin))

	if cli.Verbose {
		fetcher = conslog.NewLoggingFetcher(fetcher, logger)
		extractor = conslog.NewLoggingExtractor(extractor, logger)
	}
	if cli.Retries > 0 {
		logf := func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		}
		fetcher = scrape.NewRetryFetcher(fetcher, retryDelays(cli.Retries), logf)
	}

	var svc concursos.ConcursoService = scrape.NewScraper(fetcher, extractor)
	if cli.Verbose {
		svc = conslog.NewLoggingService(svc, logger)
	}
	return svc, nil
}

// retryDelays returns n exponential backoff delays starting at one second.
func retryDelays(n int) []time.Duration {
	delays := make([]time.Duration, n)
	d := time.Second
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

// originOf returns the scheme and host of rawURL.
func originOf(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", concursos.Errorf(concursos.EINVALID, "invalid base URL %q: %v", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", concursos.Errorf(concursos.EINVALID, "invalid base URL %q: must be absolute", rawURL)
	}
	return u.Scheme + "://" + u.Host, nil
}
