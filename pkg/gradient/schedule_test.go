package gradient

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/go-drift/border/pkg/errors"
	"github.com/go-drift/border/pkg/graphics"
)

func palette(n int) Palette {
	p := make(Palette, n)
	for i := range p {
		p[i] = graphics.RGB(uint8(10*i), uint8(255-10*i), 0x40)
	}
	return p
}

func opts(n, g int) Options {
	return Options{Palette: palette(n), Gradation: g, Angle: Slope225, Cycle: 5 * time.Second}
}

func TestTotalStops(t *testing.T) {
	cases := []struct{ p, g, want int }{
		{4, 2, 10},
		{4, 4, 16},
		{2, 2, 4},
		{5, 3, 18},
		{6, 5, 35},
	}
	for _, tc := range cases {
		if got := TotalStops(tc.p, tc.g); got != tc.want {
			t.Errorf("TotalStops(%d, %d) = %d, want %d", tc.p, tc.g, got, tc.want)
		}
	}
}

func TestCompute_ScheduleLength(t *testing.T) {
	for p := 2; p <= 8; p++ {
		for g := 2; g <= p; g++ {
			s, d := Compute(opts(p, g))
			want := p*g + g%p
			if s.Len() != want {
				t.Errorf("p=%d g=%d: Len = %d, want %d", p, g, s.Len(), want)
			}
			if len(d.From) != want || len(d.To) != want {
				t.Errorf("p=%d g=%d: descriptor lengths %d/%d, want %d", p, g, len(d.From), len(d.To), want)
			}
		}
	}
}

func TestCompute_FourColorsGradationTwo(t *testing.T) {
	s, d := Compute(opts(4, 2))

	if s.Len() != 10 {
		t.Fatalf("Len = %d, want 10", s.Len())
	}
	// interval is 1.0, so start locations run -8..1 and end locations 0..9.
	for i, loc := range s.StartLocations() {
		if want := float64(i - 8); math.Abs(loc-want) > 1e-9 {
			t.Errorf("start[%d] = %v, want %v", i, loc, want)
		}
	}
	for i, loc := range s.EndLocations() {
		if want := float64(i); math.Abs(loc-want) > 1e-9 {
			t.Errorf("end[%d] = %v, want %v", i, loc, want)
		}
	}
	// 10 stops / 4 colors = 2 cycles with integer division.
	if d.Duration != 10*time.Second {
		t.Errorf("Duration = %v, want 10s", d.Duration)
	}
	if s.Duration() != d.Duration {
		t.Errorf("schedule duration %v != descriptor duration %v", s.Duration(), d.Duration)
	}
}

func TestCompute_LocationsMonotonic(t *testing.T) {
	s, _ := Compute(opts(5, 3))

	start := s.StartLocations()
	for i := 1; i < len(start); i++ {
		if start[i] <= start[i-1] {
			t.Fatalf("start locations not strictly ascending at %d: %v", i, start)
		}
	}
	if math.Abs(start[len(start)-1]-1) > 1e-9 {
		t.Errorf("last start location = %v, want 1", start[len(start)-1])
	}

	end := s.EndLocations()
	if end[0] != 0 {
		t.Errorf("first end location = %v, want 0", end[0])
	}
	for i := 1; i < len(end); i++ {
		if end[i] <= end[i-1] {
			t.Fatalf("end locations not strictly ascending at %d: %v", i, end)
		}
	}
}

func TestCompute_ColorsCyclePalette(t *testing.T) {
	o := opts(5, 4)
	s, _ := Compute(o)
	for i, c := range s.Colors() {
		if want := o.Palette[i%len(o.Palette)]; c != want {
			t.Errorf("colors[%d] = %v, want %v", i, c, want)
		}
	}
}

func TestCompute_DescriptorMatchesSchedule(t *testing.T) {
	s, d := Compute(opts(4, 3))

	if d.Key != LocationsKey {
		t.Errorf("Key = %q, want %q", d.Key, LocationsKey)
	}
	if !reflect.DeepEqual(d.From, s.StartLocations()) {
		t.Errorf("From = %v, want start locations %v", d.From, s.StartLocations())
	}
	if !reflect.DeepEqual(d.To, s.EndLocations()) {
		t.Errorf("To = %v, want end locations %v", d.To, s.EndLocations())
	}
	if !d.RepeatForever || d.FillMode != FillForwards || d.RemovedOnCompletion {
		t.Errorf("descriptor should repeat forever and hold its final value: %+v", d)
	}
}

func TestCompute_Pure(t *testing.T) {
	a, da := Compute(opts(6, 4))
	b, db := Compute(opts(6, 4))
	if !reflect.DeepEqual(a, b) {
		t.Error("identical options produced different schedules")
	}
	if !reflect.DeepEqual(da, db) {
		t.Error("identical options produced different descriptors")
	}
}

func TestCompute_AccessorsReturnCopies(t *testing.T) {
	s, _ := Compute(opts(3, 2))
	s.StartLocations()[0] = 42
	s.Stops()[0].Color = graphics.ColorWhite
	if s.StartLocations()[0] == 42 || s.Stops()[0].Color == graphics.ColorWhite {
		t.Error("mutating an accessor result changed the schedule")
	}
}

func TestCompute_ReduceMotion(t *testing.T) {
	o := opts(4, 2)
	o.ReduceMotion = true
	s, d := Compute(o)
	if d != nil {
		t.Fatalf("descriptor = %+v, want nil under reduced motion", d)
	}
	if s.Len() != 10 {
		t.Errorf("Len = %d, want 10", s.Len())
	}
	if !s.At(d, time.Hour).IsValid() {
		t.Error("static frame should still be a valid gradient")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		mod   func(*Options)
		field string
	}{
		{"empty palette", func(o *Options) { o.Palette = nil }, "palette"},
		{"gradation one", func(o *Options) { o.Gradation = 1 }, "gradation"},
		{"gradation too large", func(o *Options) { o.Gradation = 5 }, "gradation"},
		{"zero cycle", func(o *Options) { o.Cycle = 0 }, "cycle"},
		{"negative cycle", func(o *Options) { o.Cycle = -time.Second }, "cycle"},
		{"bad angle", func(o *Options) { o.Angle = Angle(99) }, "angle"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := opts(4, 2)
			tc.mod(&o)
			err := Validate(o)
			cfgErr, ok := err.(*errors.ConfigError)
			if !ok {
				t.Fatalf("Validate = %v, want *errors.ConfigError", err)
			}
			if cfgErr.Field != tc.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tc.field)
			}
		})
	}

	if err := Validate(opts(4, 4)); err != nil {
		t.Errorf("Validate(valid) = %v", err)
	}
}

func TestCompute_PanicsOnInvalidGradation(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for gradation 1")
		}
		if _, ok := r.(*errors.ConfigError); !ok {
			t.Errorf("panic value = %T, want *errors.ConfigError", r)
		}
	}()
	Compute(opts(1, 1))
}

func TestAngle_Points(t *testing.T) {
	cases := []struct {
		a          Angle
		start, end graphics.Offset
	}{
		{Slope90, graphics.Offset{X: 0.5, Y: 0}, graphics.Offset{X: 0.5, Y: 1}},
		{Slope135, graphics.Offset{X: 0, Y: 0}, graphics.Offset{X: 1, Y: 1}},
		{Slope180, graphics.Offset{X: 0, Y: 0.5}, graphics.Offset{X: 1, Y: 0.5}},
		{Slope225, graphics.Offset{X: 0, Y: 1}, graphics.Offset{X: 1, Y: 0}},
		{Slope270, graphics.Offset{X: 0.5, Y: 1}, graphics.Offset{X: 0.5, Y: 0}},
		{Slope360, graphics.Offset{X: 1, Y: 0.5}, graphics.Offset{X: 0, Y: 0.5}},
	}
	for _, tc := range cases {
		start, end := tc.a.Points()
		if start != tc.start || end != tc.end {
			t.Errorf("%v.Points() = %v-%v, want %v-%v", tc.a, start, end, tc.start, tc.end)
		}
	}
}

func TestParseAngle(t *testing.T) {
	for in, want := range map[string]Angle{
		"slope225":   Slope225,
		"225":        Slope225,
		"90deg":      Slope90,
		" Slope360 ": Slope360,
	} {
		got, err := ParseAngle(in)
		if err != nil || got != want {
			t.Errorf("ParseAngle(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseAngle("45"); err == nil {
		t.Error("ParseAngle(45) should fail")
	}
}
