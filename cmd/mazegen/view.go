package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlmaze/generator"
	"github.com/katalvlaran/lvlmaze/render"
	"github.com/katalvlaran/lvlmaze/runner"
)

// Each image pixel is drawn as two terminal columns so cells look square.
const (
	columnsPerPixel = 2
	statusRows      = 1
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionFaster
	actionSlower
	actionRegenerate
	actionNextAlgorithm
)

// keyAction maps a key press to what the view does with it.
func keyAction(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRight:
		return actionFaster
	case tcell.KeyLeft:
		return actionSlower
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return actionQuit
		case ' ':
			return actionPause
		case 'r', 'R':
			return actionRegenerate
		case 'a', 'A':
			return actionNextAlgorithm
		}
	}
	return actionNone
}

// view animates one run at a time on a tcell screen.
type view struct {
	screen tcell.Screen
	s      settings
	log    logrus.FieldLogger

	label   generator.Label
	run     *runner.Runner
	cancel  context.CancelFunc
	frames  <-chan runner.Snapshot
	last    runner.Snapshot
	overlay render.Overlay
}

func runInteractive(ctx context.Context, s settings, log logrus.FieldLogger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	v := newView(screen, s, log)
	return v.loop(ctx)
}

func newView(screen tcell.Screen, s settings, log logrus.FieldLogger) *view {
	return &view{
		screen:  screen,
		s:       s,
		log:     log,
		label:   s.Algorithm,
		overlay: render.NewOverlay(nil, nil, nil),
	}
}

func (v *view) loop(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := v.start(ctx, v.s.HasSeed); err != nil {
		return err
	}
	defer v.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			quit, err := v.handle(ctx, ev)
			if quit || err != nil {
				return err
			}
		case snap, ok := <-v.frames:
			if !ok {
				// Finished or cancelled; wait for input.
				v.frames = nil
				continue
			}
			v.show(snap)
		}
	}
}

// start replaces the current run with a new one for v.label. The configured
// seed is used only when fixedSeed is set; later runs draw a fresh one.
func (v *view) start(ctx context.Context, fixedSeed bool) error {
	s := v.s
	if !fixedSeed {
		s = s.withoutSeed()
	}
	opts := s.runnerOptions(v.log)
	if v.run != nil {
		opts = append(opts, runner.WithInterval(v.run.Interval()))
	}
	r, err := runner.New(v.label, v.s.Width, v.s.Height, opts...)
	if err != nil {
		return err
	}

	v.stop()
	runCtx, cancel := context.WithCancel(ctx)
	v.run, v.cancel = r, cancel
	v.overlay = render.NewOverlay(nil, nil, nil)
	v.frames = r.Run(runCtx)
	return nil
}

func (v *view) stop() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

// handle applies one input event and reports whether to quit.
func (v *view) handle(ctx context.Context, ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.draw()
	case *tcell.EventKey:
		switch keyAction(ev.Key(), ev.Rune()) {
		case actionQuit:
			return true, nil
		case actionPause:
			v.run.TogglePause()
		case actionFaster:
			v.run.Faster()
		case actionSlower:
			v.run.Slower()
		case actionRegenerate:
			return false, v.start(ctx, false)
		case actionNextAlgorithm:
			v.label = v.label.Next()
			return false, v.start(ctx, false)
		default:
			return false, nil
		}
		v.draw()
	}
	return false, nil
}

// show draws snap, adding the start→goal path once generation has finished.
func (v *view) show(snap runner.Snapshot) {
	v.last = snap
	if snap.Finished {
		start, goal := v.s.endpoints()
		ov, err := solve(snap.Grid, start, goal, v.log)
		if err != nil {
			v.log.WithError(err).Warn("path search failed")
			ov = render.NewOverlay(nil, nil, nil)
		}
		v.overlay = ov
	}
	v.draw()
}

func (v *view) draw() {
	v.screen.Clear()
	v.status()
	if v.last.Grid != nil {
		v.maze()
	}
	v.screen.Show()
}

func (v *view) status() {
	state := "running"
	switch {
	case v.last.Finished:
		state = "done"
	case v.run != nil && v.run.Paused():
		state = "paused"
	}
	var interval string
	if v.run != nil {
		interval = v.run.Interval().String()
	}
	line := fmt.Sprintf(" %s  seed %d  steps %d  every %s  [%s]  space:pause ←/→:speed r:new a:algorithm q:quit",
		v.last.Label, v.last.Seed, v.last.Steps, interval, state)
	for i, r := range []rune(line) {
		v.screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}
}

// maze paints the snapshot through render.Image at one pixel per unit.
func (v *view) maze() {
	img := render.NewImage(v.last.Grid, v.overlay, 2, 1)
	b := img.Bounds()
	sw, sh := v.screen.Size()
	for y := b.Min.Y; y < b.Max.Y && y+statusRows < sh; y++ {
		for x := b.Min.X; x < b.Max.X && columnsPerPixel*x < sw; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(bl>>8)))
			for c := 0; c < columnsPerPixel; c++ {
				v.screen.SetContent(columnsPerPixel*x+c, y+statusRows, ' ', nil, style)
			}
		}
	}
}

// withoutSeed drops a configured seed.
func (s settings) withoutSeed() settings {
	s.Seed, s.HasSeed = 0, false
	return s
}
