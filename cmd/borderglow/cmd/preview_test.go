package cmd

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/border/pkg/config"
	"github.com/go-drift/border/pkg/errors"
	"github.com/go-drift/border/pkg/overlay"
	drifttest "github.com/go-drift/border/pkg/testing"
)

func newTestPreviewer(t *testing.T) (*previewer, tcell.SimulationScreen, *drifttest.FakeClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 12)

	clock := drifttest.NewFakeClock()
	p, err := newPreviewer(screen, config.Default(), clock)
	if err != nil {
		t.Fatalf("newPreviewer: %v", err)
	}
	return p, screen, clock
}

func settlePreview(p *previewer, clock *drifttest.FakeClock, d time.Duration) {
	clock.Run(d, drifttest.DefaultFrame, p.border.Tick)
}

func TestPreview_ScalesMetrics(t *testing.T) {
	p, _, _ := newTestPreviewer(t)
	m := p.border.Metrics()
	if m.BorderWidth != 2.5 || m.CornerRadius != 7 {
		t.Errorf("metrics = %+v, want width 2.5 and radius 7", m)
	}
	if b := p.border.Bounds(); b.Width() != 40 || b.Height() != 24 {
		t.Errorf("bounds = %v, want 40x24 pixels", b)
	}
}

func TestPreview_ToggleShowsAndHides(t *testing.T) {
	p, _, clock := newTestPreviewer(t)

	p.key(tcell.KeyRune, ' ')
	if p.border.State() != overlay.Showing || !p.window.IsVisible() {
		t.Fatalf("after space: state %v visible %v", p.border.State(), p.window.IsVisible())
	}
	settlePreview(p, clock, 2*time.Second)
	if p.border.State() != overlay.Shown {
		t.Fatalf("state = %v, want shown", p.border.State())
	}

	p.key(tcell.KeyRune, ' ')
	if p.border.State() != overlay.Hiding {
		t.Fatalf("state = %v, want hiding", p.border.State())
	}
	settlePreview(p, clock, time.Second)
	if p.window.IsVisible() || p.status != "hidden" {
		t.Errorf("after hide: visible %v status %q", p.window.IsVisible(), p.status)
	}
}

func TestPreview_Draw(t *testing.T) {
	p, screen, clock := newTestPreviewer(t)
	p.key(tcell.KeyRune, ' ')
	settlePreview(p, clock, 2*time.Second)
	p.draw()

	bg := termColor(previewBackground)
	_, _, style, _ := screen.GetContent(20, 0)
	if fg, _, _ := style.Decompose(); fg == bg {
		t.Error("top edge cell should show the ring")
	}
	_, _, style, _ = screen.GetContent(3, 3)
	if fg, cellBg, _ := style.Decompose(); fg != bg || cellBg != bg {
		t.Error("cells inside the ring should show the background")
	}

	var status strings.Builder
	for x := range 40 {
		r, _, _, _ := screen.GetContent(x, 6)
		status.WriteRune(r)
	}
	if !strings.Contains(status.String(), "shown") {
		t.Errorf("status line = %q", status.String())
	}
}

func TestPreview_PauseAndRadius(t *testing.T) {
	p, _, _ := newTestPreviewer(t)

	p.key(tcell.KeyRune, 'p')
	if !p.border.IsPaused() {
		t.Error("p should pause")
	}
	p.key(tcell.KeyRune, 'p')
	if p.border.IsPaused() {
		t.Error("second p should resume")
	}

	p.key(tcell.KeyRune, '+')
	if got := p.window.CornerRadius(); got != 8 {
		t.Errorf("radius after + = %v, want 8", got)
	}
	for range 20 {
		p.key(tcell.KeyRune, '+')
	}
	if got := p.window.CornerRadius(); got != 12 {
		t.Errorf("radius should clamp to half the short side, got %v", got)
	}
	for range 20 {
		p.key(tcell.KeyRune, '-')
	}
	if got := p.window.CornerRadius(); got != 0 {
		t.Errorf("radius should clamp at 0, got %v", got)
	}
}

func TestPreview_Quit(t *testing.T) {
	p, _, _ := newTestPreviewer(t)
	if !p.key(tcell.KeyRune, 'x') {
		t.Error("unbound keys should keep running")
	}
	for _, k := range []struct {
		key tcell.Key
		r   rune
	}{{tcell.KeyRune, 'q'}, {tcell.KeyEscape, 0}, {tcell.KeyCtrlC, 0}} {
		if p.key(k.key, k.r) {
			t.Errorf("key %v %q should quit", k.key, k.r)
		}
	}
}

func TestPreview_ResizeMorphs(t *testing.T) {
	p, _, clock := newTestPreviewer(t)
	p.resize(60, 20)

	if b := p.border.Bounds(); b.Width() != 60 || b.Height() != 40 {
		t.Errorf("bounds = %v, want 60x40", b)
	}
	if !p.border.IsAnimating() {
		t.Error("resize should start a morph")
	}
	settlePreview(p, clock, rotateDuration+50*time.Millisecond)
	if p.border.IsAnimating() {
		t.Error("morph should finish after the rotation duration")
	}
}

func TestPreview_Reload(t *testing.T) {
	p, _, _ := newTestPreviewer(t)
	prev := errors.DefaultHandler
	errors.SetHandler(p)
	t.Cleanup(func() { errors.SetHandler(prev) })

	p.reload(nil, stderrors.New("boom"))
	if !strings.Contains(p.status, "boom") {
		t.Errorf("status = %q, want the reload error", p.status)
	}

	cfg := config.Default()
	cfg.Gradient.Gradation = 4
	p.reload(cfg, nil)
	if p.status != "reloaded" || p.border.Schedule().Len() != 16 {
		t.Errorf("status %q, stops %d", p.status, p.border.Schedule().Len())
	}
}
