package cmd

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-drift/border/pkg/config"
	"github.com/go-drift/border/pkg/graphics"
	"github.com/go-drift/border/pkg/overlay"
	"github.com/go-drift/border/pkg/raster"
	drifttest "github.com/go-drift/border/pkg/testing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render overlay frames to PNG",
		Long: `Render the overlay to a numbered sequence of PNG files on a simulated
clock, so the output is the same on every run.

States:
  shown     One full loop of the gradient sweep with the overlay shown
  showing   The show transition from the hidden pose
  hiding    The hide transition from the shown pose

Flags:
  --config FILE   YAML or TOML configuration (default: built-in palette)
  --out DIR       Output directory, created if missing (default: frames)
  --frames N      Number of frames (default: 12)
  --size WxH      Surface size in pixels (default: 640x400)
  --state STATE   shown, showing or hiding (default: shown)`,
		Usage: "borderglow render [--config FILE] [--out DIR] [--frames N] [--size WxH] [--state STATE]",
		Run:   runRender,
	})
}

// renderStep is the simulated frame interval the transitions are stepped at.
const renderStep = 10 * time.Millisecond

// settleFrames bounds how long a transition may run before frames are taken.
const settleFrames = 1000

type renderOptions struct {
	out    string
	frames int
	width  int
	height int
	state  overlay.State
}

func parseRenderArgs(args []string) (string, renderOptions, error) {
	cfgFile := ""
	out, frames, size, state := "frames", "12", "640x400", "shown"
	fs := flagSet{values: map[string]*string{
		"--config": &cfgFile,
		"--out":    &out,
		"--frames": &frames,
		"--size":   &size,
		"--state":  &state,
	}}
	if _, err := fs.parse(args); err != nil {
		return "", renderOptions{}, err
	}

	opts := renderOptions{out: out}
	n, err := strconv.Atoi(frames)
	if err != nil || n <= 0 {
		return "", renderOptions{}, fmt.Errorf("--frames must be a positive integer, got %q", frames)
	}
	opts.frames = n
	if opts.width, opts.height, err = parseSize(size); err != nil {
		return "", renderOptions{}, err
	}
	s, err := overlay.ParseState(state)
	if err != nil || s == overlay.Hidden {
		return "", renderOptions{}, fmt.Errorf("--state must be shown, showing or hiding, got %q", state)
	}
	opts.state = s
	return cfgFile, opts, nil
}

func runRender(args []string) error {
	cfgFile, opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	paths, err := renderFrames(cfg, opts)
	if err != nil {
		return err
	}
	log.Printf("wrote %d %s frames to %s", len(paths), opts.state, opts.out)
	return nil
}

// renderFrames drives a border through opts.state and writes one PNG per
// frame. It returns the written paths in order.
func renderFrames(cfg *config.Config, opts renderOptions) ([]string, error) {
	gopts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	metrics, err := cfg.Metrics()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", opts.out, err)
	}

	clock := drifttest.NewFakeClock()
	bounds := graphics.RectFromLTWH(0, 0, float64(opts.width), float64(opts.height))
	b := overlay.New(bounds, metrics, overlay.WithClock(clock))
	b.Configure(gopts)

	settle := func() {
		clock.RunWhile(renderStep, settleFrames, b.IsAnimating, b.Tick)
	}

	var span time.Duration
	switch opts.state {
	case overlay.Shown:
		b.Show()
		settle()
		span = time.Second
		if d := b.Descriptor(); d != nil {
			span = d.Duration
		}
	case overlay.Showing:
		b.Show()
		span = metrics.ShowDuration
	case overlay.Hiding:
		b.Show()
		settle()
		b.Hide(nil)
		span = metrics.HideDuration
	}
	interval := span / time.Duration(opts.frames)

	paths := make([]string, 0, opts.frames)
	for i := range opts.frames {
		if i > 0 {
			clock.Run(interval, renderStep, b.Tick)
		}
		path := filepath.Join(opts.out, fmt.Sprintf("frame_%03d.png", i))
		if err := writeFrame(path, b, bounds); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFrame(path string, b *overlay.Border, bounds graphics.Rect) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	frame := b.Frame()
	if frame.State == overlay.Hidden {
		frame.Pose.Opacity = 0
	}
	if err := png.Encode(f, raster.Render(frame, bounds)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
