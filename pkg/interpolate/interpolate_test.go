package interpolate

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/go-drift/spring/pkg/animation"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNumber(t *testing.T) {
	inQuad, _ := animation.Easing("inQuad")
	tests := []struct {
		name  string
		input float64
		cfg   Config
		want  float64
	}{
		{"linear midpoint", 0.5, Config{Range: []float64{0, 1}, Output: []float64{0, 100}}, 50},
		{"offset range", 15, Config{Range: []float64{10, 20}, Output: []float64{0, 1}}, 0.5},
		{"inverted output", 0.25, Config{Range: []float64{0, 1}, Output: []float64{1, 0}}, 0.75},
		{"multi segment rise", 0.25, Config{Range: []float64{0, 0.5, 1}, Output: []float64{0, 1, 0}}, 0.5},
		{"multi segment fall", 0.75, Config{Range: []float64{0, 0.5, 1}, Output: []float64{0, 1, 0}}, 0.5},
		{"extend right", 2, Config{Range: []float64{0, 1}, Output: []float64{0, 10}}, 20},
		{"extend left", -1, Config{Range: []float64{0, 1}, Output: []float64{0, 10}}, -10},
		{"clamp right", 2, Config{Range: []float64{0, 1}, Output: []float64{0, 10}, ExtrapolateRight: Clamp}, 10},
		{"clamp left", -1, Config{Range: []float64{0, 1}, Output: []float64{0, 10}, ExtrapolateLeft: Clamp}, 0},
		{"identity right", 7, Config{Range: []float64{0, 1}, Output: []float64{0, 10}, ExtrapolateRight: Identity}, 7},
		{"flat output", 0.3, Config{Range: []float64{0, 1}, Output: []float64{4, 4}}, 4},
		{"eased", 0.5, Config{Range: []float64{0, 1}, Output: []float64{0, 100}, Easing: inQuad}, 25},
		{"invalid passes through", 3, Config{Range: []float64{0}}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.input, tt.cfg); !approx(got, tt.want) {
				t.Errorf("Number(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMap_Validates(t *testing.T) {
	bad := []Config{
		{Range: []float64{0}, Output: []float64{0}},
		{Range: []float64{0, 1}, Output: []float64{0, 1, 2}},
		{Range: []float64{1, 0}, Output: []float64{0, 1}},
	}
	for _, cfg := range bad {
		if _, err := Map(cfg); !errors.Is(err, ErrRange) {
			t.Errorf("Map(%+v) error = %v, want ErrRange", cfg, err)
		}
	}
	fn, err := Map(Config{Range: []float64{0, 1}, Output: []float64{0, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if got := fn(0.5); got != 1 {
		t.Errorf("fn(0.5) = %v", got)
	}
}

func TestParseExtrapolate(t *testing.T) {
	for s, want := range map[string]Extrapolate{"": Extend, "extend": Extend, "clamp": Clamp, "identity": Identity} {
		got, err := ParseExtrapolate(s)
		if err != nil || got != want {
			t.Errorf("ParseExtrapolate(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseExtrapolate("wrap"); err == nil {
		t.Error("expected error for unknown extrapolation")
	}
}

func TestColors(t *testing.T) {
	tests := []struct {
		name  string
		stops []string
		space Space
		input float64
		want  string
	}{
		{"start", []string{"#000000", "#ffffff"}, RGB, 0, "#000000"},
		{"end", []string{"#000000", "#ffffff"}, RGB, 1, "#ffffff"},
		{"rgb midpoint", []string{"#000000", "#ffffff"}, RGB, 0.5, "#808080"},
		{"short hex", []string{"#000", "#f00"}, RGB, 1, "#ff0000"},
		{"named", []string{"black", "red"}, Lab, 1, "#ff0000"},
		{"clamped below", []string{"#102030", "#ffffff"}, HCL, -5, "#102030"},
		{"clamped above", []string{"#000000", "blue"}, RGB, 9, "#0000ff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := Colors([]float64{0, 1}, tt.stops, tt.space)
			if err != nil {
				t.Fatal(err)
			}
			if got := fn(tt.input); got != tt.want {
				t.Errorf("colour at %v = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestColors_ThreeStops(t *testing.T) {
	fn, err := Colors([]float64{0, 50, 100}, []string{"red", "lime", "blue"}, RGB)
	if err != nil {
		t.Fatal(err)
	}
	if got := fn(50); got != "#00ff00" {
		t.Errorf("middle stop = %s", got)
	}
	if got := fn(100); got != "#0000ff" {
		t.Errorf("last stop = %s", got)
	}
}

func TestColors_Errors(t *testing.T) {
	if _, err := Colors([]float64{0, 1}, []string{"#000000", "notacolour"}, RGB); err == nil {
		t.Error("expected error for unknown colour name")
	}
	if _, err := Colors([]float64{0, 1}, []string{"#000000"}, RGB); !errors.Is(err, ErrRange) {
		t.Errorf("expected ErrRange for a single stop, got %v", err)
	}
	if _, err := ParseSpace("cmyk"); err == nil {
		t.Error("expected error for unknown space")
	}
}

func TestUnit(t *testing.T) {
	fn := Unit(func(v float64) float64 { return v * 100 }, "%")
	if got := fn(0.125); got != "12.5%" {
		t.Errorf("Unit = %q", got)
	}
}

func TestInterpolation_TracksParent(t *testing.T) {
	value := animation.NewValue(0)
	derived, err := Range(value, Config{Range: []float64{0, 1}, Output: []float64{0, 360}})
	if err != nil {
		t.Fatal(err)
	}

	notified := 0
	remove := derived.AddListener(func() { notified++ })
	value.Set(0.5)
	if got := derived.Get(); got != 180.0 {
		t.Errorf("derived = %v, want 180", got)
	}
	if notified != 1 {
		t.Errorf("notified %d times, want 1", notified)
	}

	remove()
	value.Set(1)
	if notified != 1 {
		t.Error("listener should be removed from the parent")
	}
	if value.ListenerCount() != 0 {
		t.Errorf("parent still has %d listeners", value.ListenerCount())
	}
}

func TestInterpolation_Sequence(t *testing.T) {
	value := animation.NewArray([]float64{0, 1})
	derived, err := Range(value, Config{Range: []float64{0, 1}, Output: []float64{10, 20}})
	if err != nil {
		t.Fatal(err)
	}
	if got := derived.Get(); !reflect.DeepEqual(got, []float64{10, 20}) {
		t.Errorf("derived = %v", got)
	}
}

func TestInterpolation_Combine(t *testing.T) {
	x := animation.NewValue(3)
	y := animation.NewValue(4)
	length := New([]animation.Source{x, y}, func(v []any) any {
		return math.Hypot(v[0].(float64), v[1].(float64))
	})
	if got := length.Get(); got != 5.0 {
		t.Errorf("length = %v", got)
	}

	c, err := Color(x, []float64{0, 3}, []string{"#000000", "#ffffff"}, RGB)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Get(); got != "#ffffff" {
		t.Errorf("colour = %v", got)
	}
}
