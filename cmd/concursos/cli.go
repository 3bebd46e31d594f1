package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/concursos"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service concursos.ConcursoService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL   string        `name:"base-url" env:"CONCURSOS_BASE_URL" default:"${base_url}" help:"Listing root the state code is appended to"`
	Timeout   time.Duration `env:"CONCURSOS_TIMEOUT" default:"10s" help:"Timeout for fetching one page"`
	UserAgent string        `name:"user-agent" env:"CONCURSOS_USER_AGENT" help:"User-Agent sent to the listing site"`
	Browser   bool          `env:"CONCURSOS_BROWSER" help:"Fetch pages with headless Chrome"`
	Retries   int           `env:"CONCURSOS_RETRIES" default:"0" help:"Retries for failed fetches (backoff 1s, 2s, 4s, ...)"`
	Verbose   bool          `short:"v" help:"Log fetch and extraction details to stderr"`

	Get    GetCmd    `cmd:"" help:"Show contests for one or more states"`
	All    AllCmd    `cmd:"" help:"Show contests for every state"`
	States StatesCmd `cmd:"" help:"List supported state codes"`
	Serve  ServeCmd  `cmd:"" help:"Serve contests over HTTP"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	States []string `arg:"" name:"state" help:"State code, e.g. SP (repeatable)"`
	Format string   `short:"f" enum:"json,yaml,text,markdown" default:"json" help:"Output format (json, yaml, text, markdown)"`
}

// AllCmd is the "all" subcommand.
type AllCmd struct {
	Format      string  `short:"f" enum:"json,yaml,text,markdown" default:"json" help:"Output format (json, yaml, text, markdown)"`
	Concurrency int     `short:"c" default:"3" help:"Concurrent state limit"`
	Rate        float64 `default:"1" help:"Requests per second across all states (0 disables limiting)"`
}

// StatesCmd is the "states" subcommand.
type StatesCmd struct {
	Format string `short:"f" enum:"json,yaml,text" default:"text" help:"Output format (json, yaml, text)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `env:"CONCURSOS_ADDR" default:":8080" help:"Listen address"`
}
