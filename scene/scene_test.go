package scene

import (
	"bytes"
	"errors"
	"log"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/alongpath/asset"
	"github.com/lixenwraith/alongpath/curve"
	"github.com/lixenwraith/alongpath/timeline"
)

func testLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf, "", 0), &buf
}

func TestLoad_TOMLAndYAMLEquivalent(t *testing.T) {
	fromTOML, err := Load("testdata/demo.toml")
	if err != nil {
		t.Fatalf("Failed to load TOML: %v", err)
	}
	fromYAML, err := Load("testdata/demo.yaml")
	if err != nil {
		t.Fatalf("Failed to load YAML: %v", err)
	}
	if !reflect.DeepEqual(fromTOML, fromYAML) {
		t.Errorf("Expected identical documents\nTOML: %+v\nYAML: %+v", fromTOML, fromYAML)
	}
}

func TestBuild_Demo(t *testing.T) {
	doc, err := Load("testdata/demo.toml")
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	l, buf := testLogger()
	s, err := Build(doc, BuildOptions{Logger: l})
	if err != nil {
		t.Fatalf("Failed to build: %v", err)
	}

	if len(s.Curves) != 2 || s.Order[0] != "arc" || s.Order[1] != "stub" {
		t.Errorf("Unexpected curves %v", s.Order)
	}
	if s.Curves["arc"].Family() != curve.FamilySpline {
		t.Errorf("Expected Spline family, got %v", s.Curves["arc"].Family())
	}
	if s.Curves["stub"].Ready() {
		t.Error("Expected single-point curve to be unready")
	}
	if !strings.Contains(buf.String(), `curve "stub"`) {
		t.Error("Expected warning for unready curve")
	}

	walker := s.Follower("walker")
	if walker == nil {
		t.Fatal("Expected walker follower")
	}
	cfg := walker.Config()
	if cfg.Timeline.Duration != 2*time.Second || cfg.Timeline.Delay != 250*time.Millisecond {
		t.Errorf("Unexpected timeline %+v", cfg.Timeline)
	}
	if len(cfg.Triggers) != 1 || cfg.Triggers[0].Radius != 0.5 {
		t.Errorf("Expected trigger radius inherited from follower, got %+v", cfg.Triggers)
	}

	waiter := s.Follower("waiter")
	if waiter.Config().Timeline.Duration != time.Second {
		t.Errorf("Expected default duration, got %v", waiter.Config().Timeline.Duration)
	}
	if fr := waiter.Tick(time.Millisecond); !errors.Is(fr.Err, curve.ErrCurveNotReady) {
		t.Errorf("Expected waiter to skip frames, got %v", fr.Err)
	}

	if len(s.Clones) != 1 || len(s.Clones[0].Placements) < 10 {
		t.Errorf("Expected clone placements along arc, got %+v", s.Clones)
	}
}

func TestBuild_LoopAndReversibleWarnsAndReverses(t *testing.T) {
	doc := &Document{
		Curves: []CurveConfig{{Name: "c", Type: "line", Points: [][]float64{{0, 0, 0}, {1, 0, 0}}}},
		Followers: []FollowerConfig{{
			Name: "f", Curve: "c", Dur: ptr(100), Loop: true, Reversible: true,
		}},
	}
	l, buf := testLogger()
	s, err := Build(doc, BuildOptions{Logger: l})
	if err != nil {
		t.Fatalf("Failed to build: %v", err)
	}
	if !strings.Contains(buf.String(), "reversible applies") {
		t.Errorf("Expected loop+reversible warning, got %q", buf.String())
	}

	f := s.Followers[0]
	f.Tick(100 * time.Millisecond)
	fr := f.Tick(25 * time.Millisecond)
	if !fr.Reversing || fr.Phase != timeline.PhaseMoving {
		t.Errorf("Expected reversing playback, got %+v", fr)
	}
}

func TestBuild_UnknownFamilyFails(t *testing.T) {
	doc := &Document{
		Curves: []CurveConfig{{Name: "c", Type: "nurbs", Points: [][]float64{{0, 0, 0}, {1, 0, 0}}}},
	}
	_, err := Build(doc, BuildOptions{})
	if !errors.Is(err, ErrInvalidScene) || !errors.Is(err, curve.ErrUnknownFamily) {
		t.Errorf("Expected ErrInvalidScene wrapping ErrUnknownFamily, got %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{
			name: "short point",
			doc:  Document{Curves: []CurveConfig{{Name: "c", Points: [][]float64{{0, 0}}}}},
			want: "expected 3 components",
		},
		{
			name: "unknown curve",
			doc:  Document{Followers: []FollowerConfig{{Name: "f", Curve: "missing"}}},
			want: `unknown curve "missing"`,
		},
		{
			name: "unknown trigger",
			doc: Document{
				Curves:    []CurveConfig{{Name: "c"}},
				Followers: []FollowerConfig{{Name: "f", Curve: "c", Triggers: []string{"nope"}}},
			},
			want: `unknown trigger "nope"`,
		},
		{
			name: "duplicate curve",
			doc:  Document{Curves: []CurveConfig{{Name: "c"}, {Name: "c"}}},
			want: `duplicate curve "c"`,
		},
		{
			name: "zero spacing",
			doc: Document{
				Curves: []CurveConfig{{Name: "c"}},
				Clones: []CloneConfig{{Curve: "c"}},
			},
			want: "positive spacing",
		},
		{
			name: "negative delay",
			doc: Document{
				Curves:    []CurveConfig{{Name: "c"}},
				Followers: []FollowerConfig{{Name: "f", Curve: "c", Delay: -1}},
			},
			want: "invalid delay",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.doc.Validate()
			if !errors.Is(err, ErrInvalidScene) {
				t.Fatalf("Expected ErrInvalidScene, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestBuild_BoundsClonePlacements(t *testing.T) {
	doc := func(spacing float64) *Document {
		return &Document{
			Curves: []CurveConfig{{Name: "c", Type: "Line", Points: [][]float64{{0, 0, 0}, {10, 0, 0}}}},
			Clones: []CloneConfig{{Curve: "c", Spacing: spacing}},
		}
	}

	for _, spacing := range []float64{1e-13, 1e-3} {
		l, _ := testLogger()
		if _, err := Build(doc(spacing), BuildOptions{Logger: l}); !errors.Is(err, ErrInvalidScene) {
			t.Errorf("spacing %v: expected ErrInvalidScene, got %v", spacing, err)
		}
	}

	l, _ := testLogger()
	s, err := Build(doc(0.5), BuildOptions{Logger: l})
	if err != nil {
		t.Fatalf("Expected spacing 0.5 to build, got %v", err)
	}
	if got := len(s.Clones[0].Placements); got != 21 {
		t.Errorf("Expected 21 placements, got %d", got)
	}
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	if _, err := DecodeBytes([]byte("[[curves]]\nname = \"c\"\ncolour = \"red\"\n"), FormatTOML); err == nil {
		t.Error("Expected TOML unknown key to fail")
	}
	if _, err := DecodeBytes([]byte("curves:\n  - name: c\n    colour: red\n"), FormatYAML); err == nil {
		t.Error("Expected YAML unknown key to fail")
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{"a.toml": FormatTOML, "b.YAML": FormatYAML, "c.yml": FormatYAML}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Errorf("%s: expected %v, got %v (%v)", path, want, got, err)
		}
	}
	if _, err := FormatFromPath("scene.json"); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("Expected ErrInvalidScene for json, got %v", err)
	}
}

func TestLoadAuto_EmbeddedDefault(t *testing.T) {
	doc, err := LoadAuto("", asset.DefaultScene)
	if err != nil {
		t.Fatalf("Failed to decode embedded scene: %v", err)
	}
	l, _ := testLogger()
	s, err := Build(doc, BuildOptions{Logger: l})
	if err != nil {
		t.Fatalf("Failed to build embedded scene: %v", err)
	}
	if len(s.Followers) == 0 || len(s.Curves) == 0 {
		t.Errorf("Expected followers and curves in embedded scene, got %d/%d", len(s.Followers), len(s.Curves))
	}
	for _, name := range s.Order {
		if !s.Curves[name].Ready() {
			t.Errorf("Expected embedded curve %q to be ready", name)
		}
	}
}

func TestEncode_YAMLRoundTrip(t *testing.T) {
	doc, err := Load("testdata/demo.toml")
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, doc, FormatYAML); err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	back, err := Decode(&buf, FormatYAML)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if !reflect.DeepEqual(doc, back) {
		t.Errorf("Round trip changed document\nbefore: %+v\nafter: %+v", doc, back)
	}
}

func TestScene_TickAndReset(t *testing.T) {
	doc := &Document{
		Curves: []CurveConfig{{Name: "c", Type: "line", Points: [][]float64{{0, 0, 0}, {10, 0, 0}}}},
		Followers: []FollowerConfig{
			{Name: "a", Curve: "c", Dur: ptr(1000)},
			{Name: "b", Curve: "c", Dur: ptr(500)},
		},
	}
	l, _ := testLogger()
	s, err := Build(doc, BuildOptions{Logger: l})
	if err != nil {
		t.Fatalf("Failed to build: %v", err)
	}
	frames := s.Tick(500 * time.Millisecond)
	if len(frames) != 2 || frames[1].Phase != timeline.PhaseEnded {
		t.Fatalf("Unexpected frames %+v", frames)
	}
	s.Reset()
	frames = s.Tick(0)
	if frames[1].Phase != timeline.PhaseMoving {
		t.Errorf("Expected b moving after reset, got %v", frames[1].Phase)
	}
}

func ptr(f float64) *float64 { return &f }
