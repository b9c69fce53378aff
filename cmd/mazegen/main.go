// Command mazegen generates grid mazes with any of the lvlmaze generators.
//
// On a terminal it animates generation with tcell; otherwise, or with
// -static, it runs to completion and prints the maze as text.
//
// Usage:
//
//	mazegen [flags]
//
// Settings start from MAZE_* environment variables (and a .env file in the
// working directory, see package config); flags override them.
//
// Interactive keys:
//
//	space     pause / resume
//	→ / ←     faster / slower
//	r         regenerate with a new seed
//	a         switch to the next algorithm
//	q, Esc    quit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/katalvlaran/lvlmaze/astar"
	"github.com/katalvlaran/lvlmaze/config"
	"github.com/katalvlaran/lvlmaze/generator"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/render"
	"github.com/katalvlaran/lvlmaze/runner"
	"github.com/katalvlaran/lvlmaze/verify"
)

// PNG geometry used by -png.
const (
	pngCellPixels = 12
	pngWallPixels = 3
)

// settings is config.Config plus the command-only flags.
type settings struct {
	config.Config

	static  bool
	pngPath string
	verify  bool
	list    bool
	logFile string
	start   cellFlag
	goal    cellFlag
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "mazegen: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, err := parseFlags(args, cfg, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if s.list {
		for _, l := range generator.Labels() {
			fmt.Fprintln(stdout, l)
		}
		return nil
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(s.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if s.static || !isTerminal(stdout) {
		return runStatic(s, log, stdout)
	}

	// The screen owns the terminal; logs go to -log-file or nowhere.
	log.SetOutput(io.Discard)
	if s.logFile != "" {
		f, err := os.OpenFile(s.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	return runInteractive(ctx, s, log)
}

// parseFlags layers command-line flags over cfg.
func parseFlags(args []string, cfg config.Config, stderr io.Writer) (settings, error) {
	s := settings{Config: cfg}
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	algorithm := fs.String("algorithm", cfg.Algorithm.String(), "generator: dfs, prim, growing-tree, kruskal, eller, sidewinder, recursive-division")
	level := fs.String("log-level", cfg.LogLevel.String(), "log level (trace, debug, info, warn, error)")
	seed := fs.Int64("seed", cfg.Seed, "random seed (default: time-derived)")
	fs.IntVar(&s.Width, "width", cfg.Width, "grid width in cells")
	fs.IntVar(&s.Height, "height", cfg.Height, "grid height in cells")
	fs.DurationVar(&s.Interval, "interval", cfg.Interval, "delay between animation frames")
	fs.IntVar(&s.StepsPerTick, "steps", cfg.StepsPerTick, "generator steps per frame")
	fs.BoolVar(&s.static, "static", false, "print the finished maze instead of animating")
	fs.StringVar(&s.pngPath, "png", "", "also write the finished maze to this PNG file")
	fs.BoolVar(&s.verify, "verify", false, "check the finished maze is a spanning tree")
	fs.BoolVar(&s.list, "list", false, "list generator names and exit")
	fs.StringVar(&s.logFile, "log-file", "", "log destination in interactive mode")
	fs.Var(&s.start, "start", "path start cell `x,y` (default 0,0)")
	fs.Var(&s.goal, "goal", "path goal cell `x,y` (default: north-east corner)")

	if err := fs.Parse(args); err != nil {
		return settings{}, err
	}
	if fs.NArg() > 0 {
		return settings{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	var err error
	if s.Algorithm, err = generator.ParseLabel(*algorithm); err != nil {
		return settings{}, err
	}
	if s.LogLevel, err = logrus.ParseLevel(*level); err != nil {
		return settings{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			s.Seed, s.HasSeed = *seed, true
		}
	})
	if s.Interval < 0 {
		return settings{}, fmt.Errorf("%w: interval %v", config.ErrInvalidValue, s.Interval)
	}
	return s, s.Validate()
}

// endpoints returns the path start and goal for a w×h grid.
func (s settings) endpoints() (grid.Cell, grid.Cell) {
	return s.start.or(grid.Cell{}), s.goal.or(grid.Cell{X: s.Width - 1, Y: s.Height - 1})
}

func (s settings) runnerOptions(log logrus.FieldLogger) []runner.Option {
	opts := []runner.Option{
		runner.WithInterval(s.Interval),
		runner.WithStepsPerTick(s.StepsPerTick),
		runner.WithLogger(log),
	}
	if s.HasSeed {
		opts = append(opts, runner.WithSeed(s.Seed))
	}
	return opts
}

func runStatic(s settings, log logrus.FieldLogger, stdout io.Writer) error {
	r, err := runner.New(s.Algorithm, s.Width, s.Height, s.runnerOptions(log)...)
	if err != nil {
		return err
	}
	g := r.RunToCompletion()

	ov := render.NewOverlay(nil, nil, nil)
	if s.start.set || s.goal.set {
		start, goal := s.endpoints()
		if ov, err = solve(g, start, goal, log); err != nil {
			return err
		}
	}

	fmt.Fprint(stdout, render.Text(g, render.TextOptions{Overlay: ov, Color: isTerminal(stdout)}))
	fmt.Fprintf(stdout, "%s %dx%d seed=%d steps=%d\n", r.Label(), s.Width, s.Height, r.Seed(), r.Steps())

	if s.verify {
		if err := verify.SpanningTree(g); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		log.Info("maze verified")
	}
	if s.pngPath != "" {
		if err := writePNG(s.pngPath, render.NewImage(g, ov, pngCellPixels, pngWallPixels)); err != nil {
			return err
		}
		log.WithField("file", s.pngPath).Info("png written")
	}
	return nil
}

// solve searches start→goal and returns the overlay to draw. An unreachable
// goal is drawn, not reported as an error.
func solve(g *grid.Grid, start, goal grid.Cell, log logrus.FieldLogger) (render.Overlay, error) {
	fields := logrus.Fields{"start": start.String(), "goal": goal.String()}
	path, err := astar.FindShortestPath(start, goal, g)
	switch {
	case errors.Is(err, astar.ErrNoPath):
		log.WithFields(fields).Warn("goal unreachable")
		return render.NewOverlay(&start, &goal, nil), nil
	case err != nil:
		return render.Overlay{}, err
	}
	log.WithFields(fields).WithField("cost", path.Cost).Info("path found")
	return render.NewOverlay(&start, &goal, path.Cells), nil
}

func writePNG(name string, img *render.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close png: %w", cerr)
		}
	}()
	if err = render.WritePNG(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
