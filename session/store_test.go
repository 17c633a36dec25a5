package session

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/lixenwraith/alongpath/curve"
	"github.com/lixenwraith/alongpath/follower"
	"github.com/lixenwraith/alongpath/timeline"
	"github.com/lixenwraith/alongpath/trigger"
	"github.com/lixenwraith/alongpath/vmath"
)

func testLogger() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0)
}

func testFollowers(t *testing.T, l *log.Logger) []*follower.Follower {
	t.Helper()
	p, err := curve.New(curve.FamilyLine, []vmath.Vec3{{0, 0, 0}, {10, 0, 0}}, false)
	if err != nil {
		t.Fatalf("Failed to build curve: %v", err)
	}
	return []*follower.Follower{
		follower.New(follower.Config{
			Name:     "a",
			Timeline: timeline.Config{Duration: time.Second, Reversible: true},
			Triggers: []trigger.Trigger{{Label: "far", Position: vmath.Vec3{10, 0, 0}, Radius: 3.5}},
		}, p, follower.WithLogger(l)),
		follower.New(follower.Config{
			Name:     "b",
			Timeline: timeline.Config{Duration: 2 * time.Second, Delay: 100 * time.Millisecond},
		}, p, follower.WithLogger(l)),
	}
}

func advance(fs []*follower.Follower, n int, dt time.Duration) {
	for i := 0; i < n; i++ {
		for _, f := range fs {
			f.Tick(dt)
		}
	}
}

func assertSameSnapshots(t *testing.T, want, got []*follower.Follower) {
	t.Helper()
	for i := range want {
		w, g := want[i].Snapshot(), got[i].Snapshot()
		if w != g {
			t.Errorf("Follower %s: expected %+v, got %+v", want[i].Name(), w, g)
		}
	}
}

func TestStore_MemoryRoundTrip(t *testing.T) {
	l := testLogger()
	store := NewStore(nil, "demo", l)
	if store.Persistent() {
		t.Error("Expected memory-only store")
	}

	if _, ok, err := store.Load(); ok || err != nil {
		t.Fatalf("Expected empty store, got ok=%v err=%v", ok, err)
	}

	src := testFollowers(t, l)
	advance(src, 9, 100*time.Millisecond)
	if err := store.Save(src); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	dst := testFollowers(t, l)
	n, err := store.Restore(dst)
	if err != nil || n != 2 {
		t.Fatalf("Expected 2 restored, got %d (%v)", n, err)
	}
	assertSameSnapshots(t, src, dst)
}

func TestStore_GdataRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)

	m, err := OpenManager("alongpath_test")
	if err != nil {
		t.Fatalf("Failed to open gdata: %v", err)
	}
	l := testLogger()

	src := testFollowers(t, l)
	advance(src, 13, 100*time.Millisecond)
	if err := NewStore(m, "Demo Scene", l).Save(src); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	// Fresh store over the same storage
	reopened, err := OpenManager("alongpath_test")
	if err != nil {
		t.Fatalf("Failed to reopen gdata: %v", err)
	}
	store := NewStore(reopened, "Demo Scene", l)
	if !store.Persistent() {
		t.Error("Expected persistent store")
	}

	rec, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("Expected stored record, got ok=%v err=%v", ok, err)
	}
	if len(rec.Followers) != 2 {
		t.Errorf("Expected 2 followers in record, got %d", len(rec.Followers))
	}
	if rec.Followers["a"].ActiveTrigger != "far" {
		t.Errorf("Expected active trigger far, got %q", rec.Followers["a"].ActiveTrigger)
	}

	dst := testFollowers(t, l)
	if _, err := store.Restore(dst); err != nil {
		t.Fatalf("Failed to restore: %v", err)
	}
	assertSameSnapshots(t, src, dst)

	// Other scene keys stay empty
	if _, ok, _ := NewStore(reopened, "other", l).Load(); ok {
		t.Error("Expected no record for a different scene key")
	}
}

func TestStore_RestoreIgnoresUnknownFollowers(t *testing.T) {
	l := testLogger()
	store := NewStore(nil, "demo", l)
	src := testFollowers(t, l)
	advance(src, 3, 100*time.Millisecond)
	if err := store.Save(src[:1]); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	dst := testFollowers(t, l)
	n, err := store.Restore(dst)
	if err != nil || n != 1 {
		t.Errorf("Expected 1 restored, got %d (%v)", n, err)
	}
	if dst[1].Snapshot().Timeline.Elapsed != 0 {
		t.Error("Expected unsaved follower untouched")
	}
}

func TestStore_SubMillisecondElapsed(t *testing.T) {
	l := testLogger()
	store := NewStore(nil, "demo", l)
	src := testFollowers(t, l)
	advance(src, 3, 16666667*time.Nanosecond)

	want := src[0].Snapshot().Timeline.Elapsed
	if want%time.Millisecond == 0 {
		t.Fatalf("Expected sub-millisecond elapsed, got %v", want)
	}
	if err := store.Save(src); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	dst := testFollowers(t, l)
	if _, err := store.Restore(dst); err != nil {
		t.Fatalf("Failed to restore: %v", err)
	}
	if got := dst[0].Snapshot().Timeline.Elapsed; got != want {
		t.Errorf("Expected elapsed %v, got %v", want, got)
	}
	assertSameSnapshots(t, src, dst)
}

func TestPropKey(t *testing.T) {
	cases := map[string]string{
		"demo":          "demo",
		"Demo Scene":    "demo_scene",
		"scenes/a.toml": "scenes_a_toml",
		"":              "default",
	}
	for in, want := range cases {
		if got := propKey(in); got != want {
			t.Errorf("propKey(%q): expected %q, got %q", in, want, got)
		}
	}
}
