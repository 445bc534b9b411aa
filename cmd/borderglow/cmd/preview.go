package cmd

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/border/pkg/animation"
	"github.com/go-drift/border/pkg/config"
	"github.com/go-drift/border/pkg/errors"
	"github.com/go-drift/border/pkg/graphics"
	"github.com/go-drift/border/pkg/overlay"
	"github.com/go-drift/border/pkg/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Preview the overlay in the terminal",
		Long: `Preview the overlay live in the terminal. Each character cell shows two
pixels, and one pixel stands for 8 points of the configured metrics.

Keys:
  space   Show or hide the overlay
  + / -   Grow or shrink the corner radius
  p       Pause or resume all animation
  q, Esc  Quit

Resizing the terminal morphs the ring to the new size. When --config is
given the file is watched and edits are applied as they are saved.

Flags:
  --config FILE   YAML or TOML configuration (default: built-in palette)`,
		Usage: "borderglow preview [--config FILE]",
		Run:   runPreview,
	})
}

const (
	// previewScale is the number of points one terminal pixel stands for.
	previewScale    = 8
	previewInterval = 16 * time.Millisecond
	rotateDuration  = 300 * time.Millisecond
	radiusStep      = 8.0
	reloadDebounce  = 100 * time.Millisecond
)

var previewBackground = color.RGBA{R: 16, G: 16, B: 24, A: 255}

type reload struct {
	cfg *config.Config
	err error
}

// previewer hosts a Window on a tcell screen. All methods run on the loop
// goroutine.
type previewer struct {
	screen tcell.Screen
	window *overlay.Window
	border *overlay.Border
	status string
}

func runPreview(args []string) error {
	var cfgFile string
	fs := flagSet{values: map[string]*string{"--config": &cfgFile}}
	if _, err := fs.parse(args); err != nil {
		return err
	}
	cfgFile = configPath(cfgFile)
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	p, err := newPreviewer(screen, cfg, nil)
	if err != nil {
		return err
	}
	prev := errors.DefaultHandler
	errors.SetHandler(p)
	defer errors.SetHandler(prev)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
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

	reloads := make(chan reload, 1)
	if cfgFile != "" {
		go func() {
			err := config.Watch(ctx, cfgFile, reloadDebounce, func(cfg *config.Config, err error) {
				select {
				case reloads <- reload{cfg, err}:
				case <-ctx.Done():
				}
			})
			if err != nil {
				select {
				case reloads <- reload{nil, err}:
				case <-ctx.Done():
				}
			}
		}()
	}

	p.window.ShowWindow()
	return p.run(ctx, events, reloads)
}

// newPreviewer sizes a border to screen. A nil clock means real time.
func newPreviewer(screen tcell.Screen, cfg *config.Config, clock animation.Clock) (*previewer, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	metrics, err := cfg.Metrics()
	if err != nil {
		return nil, err
	}
	metrics = scaleMetrics(metrics)

	cols, rows := screen.Size()
	b := overlay.New(pixelBounds(cols, rows), metrics, overlay.WithClock(clock))
	b.Configure(opts)

	p := &previewer{screen: screen, border: b, window: overlay.NewWindow(b)}
	p.window.AddListener(p)
	return p, nil
}

func scaleMetrics(m overlay.Metrics) overlay.Metrics {
	m.BorderWidth /= previewScale
	m.AntiAliasInset /= previewScale
	m.CornerRadius /= previewScale
	return m
}

// pixelBounds is the drawable surface of a cols by rows terminal, two
// pixels per cell vertically.
func pixelBounds(cols, rows int) graphics.Rect {
	return graphics.RectFromLTWH(0, 0, float64(cols), float64(rows*2))
}

// run draws and handles input until quit or ctx is done. A panic in the
// loop is reported and returned as an error so the terminal is restored
// before it is printed.
func (p *previewer) run(ctx context.Context, events <-chan tcell.Event, reloads <-chan reload) (err error) {
	defer errors.RecoverWithCallback("preview.loop", func(r any) {
		err = fmt.Errorf("preview stopped: %v", r)
	})

	ticker := time.NewTicker(previewInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !p.handle(ev) {
				return nil
			}
		case r := <-reloads:
			p.reload(r.cfg, r.err)
		case <-ticker.C:
			p.border.Tick()
			p.draw()
		}
	}
}

// handle reacts to one terminal event and reports whether to keep running.
func (p *previewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return p.key(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		cols, rows := ev.Size()
		p.resize(cols, rows)
		p.screen.Sync()
	}
	return true
}

func (p *previewer) key(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch r {
	case 'q':
		return false
	case ' ':
		p.toggle()
	case 'p':
		if p.border.IsPaused() {
			p.border.Resume()
			p.status = "resumed"
		} else {
			p.border.Pause()
			p.status = "paused"
		}
	case '+', '=':
		p.setRadius(p.window.CornerRadius() + radiusStep/previewScale)
	case '-', '_':
		p.setRadius(p.window.CornerRadius() - radiusStep/previewScale)
	}
	return true
}

func (p *previewer) toggle() {
	switch p.border.State() {
	case overlay.Showing, overlay.Shown:
		p.window.HideWindow(nil)
	default:
		p.window.ShowWindow()
	}
}

func (p *previewer) setRadius(r float64) {
	b := p.border.Bounds()
	r = max(0, min(r, math.Min(b.Width(), b.Height())/2))
	p.window.SetCornerRadius(r)
	p.status = fmt.Sprintf("radius %.0fpt", r*previewScale)
}

func (p *previewer) resize(cols, rows int) {
	p.border.Rotate(pixelBounds(cols, rows), p.border.CornerRadius(), rotateDuration, animation.EaseInOut)
}

func (p *previewer) reload(cfg *config.Config, err error) {
	if err != nil {
		errors.Report(&errors.BorderError{Op: "preview.reload", Kind: errors.KindConfig, Err: err})
		return
	}
	opts, err := cfg.Options()
	if err != nil {
		errors.Report(&errors.BorderError{Op: "preview.reload", Kind: errors.KindConfig, Err: err})
		return
	}
	p.border.Configure(opts)
	p.status = "reloaded"
}

// DidShow implements overlay.WindowListener.
func (p *previewer) DidShow(*overlay.Window) { p.status = "shown" }

// DidHide implements overlay.WindowListener.
func (p *previewer) DidHide(*overlay.Window) { p.status = "hidden" }

// HandleError implements errors.ErrorHandler by showing the error in the
// status line, since stderr is the terminal being drawn on.
func (p *previewer) HandleError(err *errors.BorderError) {
	p.status = err.Error()
}

// HandlePanic implements errors.ErrorHandler.
func (p *previewer) HandlePanic(err *errors.PanicError) {
	p.status = err.Error()
}

func (p *previewer) draw() {
	cols, rows := p.screen.Size()
	var img *image.RGBA
	if p.window.IsVisible() {
		img = raster.Render(p.border.Frame(), pixelBounds(cols, rows))
	}

	for y := range rows {
		for x := range cols {
			top, bottom := previewBackground, previewBackground
			if img != nil {
				top = over(img.RGBAAt(x, 2*y), previewBackground)
				bottom = over(img.RGBAAt(x, 2*y+1), previewBackground)
			}
			style := tcell.StyleDefault.Foreground(termColor(top)).Background(termColor(bottom))
			p.screen.SetContent(x, y, '▀', nil, style)
		}
	}

	line := fmt.Sprintf(" %s%s  %s ", p.border.State(), pausedSuffix(p.border.IsPaused()), p.status)
	hint := " space show/hide  +/- radius  p pause  q quit "
	p.text(rows/2, line)
	p.text(rows/2+1, hint)
	p.screen.Show()
}

func (p *previewer) text(y int, s string) {
	cols, _ := p.screen.Size()
	runes := []rune(s)
	x := max(0, (cols-len(runes))/2)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 210)).Background(termColor(previewBackground))
	for i, r := range runes {
		if x+i >= cols {
			break
		}
		p.screen.SetContent(x+i, y, r, nil, style)
	}
}

func pausedSuffix(paused bool) string {
	if paused {
		return " (paused)"
	}
	return ""
}

// over composites premultiplied c onto opaque bg.
func over(c, bg color.RGBA) color.RGBA {
	k := 255 - uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) + uint32(bg.R)*k/255),
		G: uint8(uint32(c.G) + uint32(bg.G)*k/255),
		B: uint8(uint32(c.B) + uint32(bg.B)*k/255),
		A: 255,
	}
}

func termColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
