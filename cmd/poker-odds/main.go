package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerodds/internal/config"
	"github.com/lox/pokerodds/internal/display"
	"github.com/lox/pokerodds/internal/server"
	"github.com/lox/pokerodds/odds"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"poker-odds.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	NoColor  bool   `help:"Disable colored output"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Calc    CalcCmd          `cmd:"" default:"withargs" help:"Calculate equity for two hole cards and an optional board"`
	Serve   ServeCmd         `cmd:"" help:"Serve odds queries over HTTP and WebSocket"`
}

// CalcCmd computes odds for one stage
type CalcCmd struct {
	Hole1     string   `arg:"" help:"First hole card, e.g. hA"`
	Hole2     string   `arg:"" help:"Second hole card, e.g. sK"`
	Community []string `arg:"" optional:"" help:"Zero or three to five community cards, e.g. h2 d3 s4"`

	Players  int  `short:"n" help:"Number of players at the table (overrides config)"`
	Workers  int  `short:"w" help:"Enumeration goroutines, 0 for one per CPU (overrides config)"`
	Progress bool `short:"p" help:"Show a spinner while enumerating"`
	Detail   bool `short:"d" help:"Show hand category breakdowns"`
	WinRate  bool `help:"Also show the heads-up win rate distribution"`
}

// ServeCmd runs the odds server
type ServeCmd struct {
	Addr string `short:"a" help:"Server address to bind to (overrides config)"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-odds"),
		kong.Description("Exhaustive Texas Hold'em odds calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// setup loads configuration, applies global overrides and creates the logger.
func setup(g *Globals) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.Server.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	display.SetColor(cfg.Color() && !g.NoColor)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.LogLevel(),
		ReportTimestamp: true,
	})
	return cfg, logger, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// calcOptions are the resolved settings for one calculation
type calcOptions struct {
	players  int
	workers  int
	progress bool
	detail   bool
	winRate  bool
}

func (c *CalcCmd) options(cfg *config.Config) calcOptions {
	opts := calcOptions{
		players:  cfg.Odds.Players,
		workers:  cfg.Odds.Workers,
		progress: cfg.Progress() || c.Progress,
		detail:   c.Detail,
		winRate:  c.WinRate,
	}
	if c.Players != 0 {
		opts.players = c.Players
	}
	if c.Workers != 0 {
		opts.workers = c.Workers
	}
	return opts
}

func (c *CalcCmd) Run(g *Globals) error {
	cfg, logger, err := setup(g)
	if err != nil {
		return err
	}

	stage, err := odds.ParseStage(c.Hole1+" "+c.Hole2, strings.Join(c.Community, " "))
	if err != nil {
		return err
	}

	opts := c.options(cfg)
	logger.Debug("Calculating odds", "stage", stage.Key(), "players", opts.players, "workers", opts.workers)

	ctx, cancel := signalContext()
	defer cancel()
	return runCalc(ctx, os.Stdout, os.Stderr, stage, opts)
}

// runCalc enumerates the stage and prints the results to out. The spinner,
// when enabled, is drawn on status.
func runCalc(ctx context.Context, out, status io.Writer, stage *odds.Stage, opts calcOptions) error {
	if opts.players < 2 {
		return fmt.Errorf("%w, got %d", odds.ErrTooFewPlayers, opts.players)
	}

	start := time.Now()
	precompute := func(ctx context.Context) error {
		return stage.Precompute(ctx, opts.workers)
	}

	var err error
	if opts.progress {
		err = display.RunWithProgress(ctx, status, "Enumerating hands", precompute)
	} else {
		err = precompute(ctx)
	}
	if errors.Is(err, context.Canceled) {
		return errors.New("interrupted")
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	o, err := stage.Odds(opts.players)
	if err != nil {
		return err
	}

	p := display.NewPrinter(out)
	if err := p.Stage(stage); err != nil {
		return err
	}
	fmt.Fprintln(out)
	if err := p.Odds(o, opts.detail); err != nil {
		return err
	}
	if opts.winRate {
		fmt.Fprintln(out)
		if err := p.WinRate(stage.WinRate(), opts.detail); err != nil {
			return err
		}
	}
	return p.Footer(stage.Populations(), elapsed)
}

func (s *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := setup(g)
	if err != nil {
		return err
	}
	if s.Addr != "" {
		cfg.Server.Address = s.Addr
	}

	srv, err := server.NewServer(cfg.Server.Address, logger,
		server.WithWorkers(cfg.Odds.Workers),
		server.WithDefaultPlayers(cfg.Odds.Players),
		server.WithQueryTimeout(cfg.QueryTimeout()),
		server.WithCacheSize(cfg.Server.CacheSize),
	)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
