//go:build ebiten

// Package app hosts the optional ebiten-gated height-field viewer
// (SPEC_FULL.md §3), adapted from the teacher's Game: instead of stepping a
// single cellular-automaton grid, it steps a cftp.Run's coupled (min, max)
// pair frame by frame and colorizes cells that haven't yet coalesced.
package app

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"latticecftp/internal/render"
	"latticecftp/pkg/cftp"
	"latticecftp/pkg/core"
	"latticecftp/pkg/rng"
)

// Show opens a window that replays variant v's window-length forward pass
// against ledger, drawing scale pixels per cell at tps frames per second,
// and blocks until the window is closed. lo/hi bound the color gradient.
func Show(v core.Variant, ledger *rng.SeedLedger, window, scale, tps, lo, hi int) error {
	game := newGame(v, ledger, window, scale, tps, lo, hi)
	ebiten.SetWindowTitle("latticecftp — " + v.Name())
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(v.Cols()*scale, v.Rows()*scale)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Game adapts a cftp.Run to the ebiten.Game interface, replaying the forward
// pass that produced a sample and then holding the converged field on
// screen.
type Game struct {
	v      core.Variant
	ledger *rng.SeedLedger
	window int

	run     *cftp.Run
	painter *render.GridPainter
	timer   *FixedStep

	scale int
	lo    int
	hi    int
	done  bool
}

// newGame constructs a Game that will replay the given variant's final,
// successful window against ledger, drawing scale pixels per cell at tps
// frames per second.
func newGame(v core.Variant, ledger *rng.SeedLedger, window, scale, tps int, lo, hi int) *Game {
	gp := render.NewGridPainter(v.Cols(), v.Rows())
	return &Game{
		v:       v,
		ledger:  ledger,
		window:  window,
		run:     cftp.NewRun(v, ledger, window, 0, nil),
		painter: gp,
		timer:   NewFixedStep(tps),
		scale:   scale,
		lo:      lo,
		hi:      hi,
	}
}

// Update advances one animation frame per fixed-step tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.done {
		return nil
	}
	if g.timer.ShouldStep() {
		if err := g.run.Step(); err != nil {
			return err
		}
		if g.run.Done() {
			g.done = true
		}
	}
	return nil
}

// Draw renders the current coupled state, marking undetermined cells.
func (g *Game) Draw(screen *ebiten.Image) {
	min, max := g.run.Min(), g.run.Max()
	undetermined := make([]bool, len(max.Data()))
	for i, v := range max.Data() {
		undetermined[i] = v != min.Data()[i]
	}
	g.painter.Blit(screen, max.Data(), undetermined, g.lo, g.hi, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.v.Cols() * g.scale, g.v.Rows() * g.scale
}
