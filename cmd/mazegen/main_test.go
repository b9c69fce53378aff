package main

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/config"
	"github.com/katalvlaran/lvlmaze/generator"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/render"
	"github.com/katalvlaran/lvlmaze/runner"
)

func TestParseCell(t *testing.T) {
	c, err := parseCell("3,4")
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{X: 3, Y: 4}, c)

	c, err = parseCell(" 0 , 12 ")
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{X: 0, Y: 12}, c)

	for _, bad := range []string{"", "3", "a,1", "1,b", "1;2"} {
		_, err := parseCell(bad)
		assert.ErrorIs(t, err, errBadCell, bad)
	}
}

func TestParseFlags(t *testing.T) {
	s, err := parseFlags([]string{
		"-algorithm", "Growing_Tree", "-width", "7", "-height", "5",
		"-seed", "42", "-interval", "5ms", "-steps", "3",
		"-static", "-verify", "-start", "1,1", "-log-level", "debug",
	}, config.Default(), io.Discard)
	require.NoError(t, err)

	assert.Equal(t, generator.LabelGrowingTree, s.Algorithm)
	assert.Equal(t, 7, s.Width)
	assert.Equal(t, 5, s.Height)
	assert.True(t, s.HasSeed)
	assert.EqualValues(t, 42, s.Seed)
	assert.Equal(t, 5*time.Millisecond, s.Interval)
	assert.Equal(t, 3, s.StepsPerTick)
	assert.True(t, s.static)
	assert.True(t, s.verify)
	assert.Equal(t, logrus.DebugLevel, s.LogLevel)

	start, goal := s.endpoints()
	assert.Equal(t, grid.Cell{X: 1, Y: 1}, start)
	assert.Equal(t, grid.Cell{X: 6, Y: 4}, goal)
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg := config.Default()
	s, err := parseFlags(nil, cfg, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, cfg, s.Config)
	assert.False(t, s.HasSeed)
}

func TestParseFlags_Errors(t *testing.T) {
	cases := map[string][]string{
		"algorithm": {"-algorithm", "wilson"},
		"width":     {"-width", "0"},
		"steps":     {"-steps", "0"},
		"interval":  {"-interval", "-1s"},
		"level":     {"-log-level", "loud"},
		"cell":      {"-goal", "5"},
		"argument":  {"extra"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseFlags(args, config.Default(), io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-list"}, &out, io.Discard))
	lines := strings.Fields(out.String())
	require.Len(t, lines, len(generator.Labels()))
	assert.Equal(t, "dfs", lines[0])
	assert.Equal(t, "recursive-division", lines[len(lines)-1])
}

func TestRun_Static(t *testing.T) {
	file := filepath.Join(t.TempDir(), "maze.png")
	var out bytes.Buffer
	err := run(context.Background(), []string{
		"-static", "-algorithm", "kruskal", "-width", "6", "-height", "4",
		"-seed", "3", "-verify", "-start", "0,0", "-goal", "5,3", "-png", file,
	}, &out, io.Discard)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "S")
	assert.Contains(t, text, "G")
	assert.Contains(t, text, "kruskal 6x4 seed=3")
	// 2 lines per row plus the bottom border plus the summary.
	assert.Equal(t, 2*4+2, strings.Count(text, "\n"))

	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 6*pngCellPixels+pngWallPixels, img.Bounds().Dx())
	assert.Equal(t, 4*pngCellPixels+pngWallPixels, img.Bounds().Dy())
}

func TestRun_StaticBadGoal(t *testing.T) {
	err := run(context.Background(), []string{
		"-static", "-width", "3", "-height", "3", "-goal", "9,9",
	}, io.Discard, io.Discard)
	assert.Error(t, err)
}

func TestKeyAction(t *testing.T) {
	assert.Equal(t, actionQuit, keyAction(tcell.KeyEscape, 0))
	assert.Equal(t, actionQuit, keyAction(tcell.KeyRune, 'q'))
	assert.Equal(t, actionPause, keyAction(tcell.KeyRune, ' '))
	assert.Equal(t, actionFaster, keyAction(tcell.KeyRight, 0))
	assert.Equal(t, actionSlower, keyAction(tcell.KeyLeft, 0))
	assert.Equal(t, actionRegenerate, keyAction(tcell.KeyRune, 'r'))
	assert.Equal(t, actionNextAlgorithm, keyAction(tcell.KeyRune, 'a'))
	assert.Equal(t, actionNone, keyAction(tcell.KeyRune, 'x'))
	assert.Equal(t, actionNone, keyAction(tcell.KeyUp, 0))
}

func TestView_ShowFinished(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 24)

	log, hook := test.NewNullLogger()
	s := settings{Config: config.Default()}
	s.Width, s.Height = 5, 4
	v := newView(screen, s, log)

	r, err := runner.New(generator.LabelEller, 5, 4, runner.WithSeed(1))
	require.NoError(t, err)
	r.RunToCompletion()
	v.show(r.Snapshot())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "path found", hook.LastEntry().Message)

	// Status line starts with the label.
	for i, want := range " eller" {
		got, _, _, _ := screen.GetContent(i, 0)
		assert.Equal(t, want, got)
	}

	// Start (0,0) is the interior pixel of the bottom-left cell.
	pal := render.DefaultPalette()
	_, _, style, _ := screen.GetContent(columnsPerPixel*1, statusRows+(4-1)*2+1)
	_, bg, _ := style.Decompose()
	want := pal[render.RoleStart]
	assert.Equal(t, tcell.NewRGBColor(int32(want.R), int32(want.G), int32(want.B)), bg)

	// Top-left corner is wall.
	_, _, style, _ = screen.GetContent(0, statusRows)
	_, bg, _ = style.Decompose()
	wall := pal[render.RoleWall]
	assert.Equal(t, tcell.NewRGBColor(int32(wall.R), int32(wall.G), int32(wall.B)), bg)
}
