package motion

import (
	"math"
	"strings"
	"testing"
)

const introScript = `
sequence:
  - tween: {target: hero, tag: 0, to: [120], duration: 1}
  - pause: 0.25
  - parallel:
      - tween: {target: hero, tag: 0, to: [0], duration: 0.5}
      - tween: {target: badge, tag: 0, to: [2], duration: 0.75}
`

func TestLoadScriptBuildsTree(t *testing.T) {
	e := newTestEngine()
	hero := &scalar{}
	badge := &scalar{}

	tl, err := e.LoadScript([]byte(introScript), map[string]any{
		"hero":  hero,
		"badge": badge,
	})
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	if tl.Mode() != ModeSequential {
		t.Errorf("root mode = %v, want sequential", tl.Mode())
	}
	kids := tl.Children()
	if len(kids) != 3 {
		t.Fatalf("len(children) = %d, want 3", len(kids))
	}
	inner, ok := kids[2].(*Timeline)
	if !ok {
		t.Fatalf("child 2 is %T, want *Timeline", kids[2])
	}
	if inner.Mode() != ModeParallel {
		t.Errorf("inner mode = %v, want parallel", inner.Mode())
	}
	if tl.Duration() != 2.0 {
		t.Errorf("Duration = %f, want 2.0", tl.Duration())
	}
	if tl.IsStarted() {
		t.Error("loaded timeline must not be started")
	}
}

func TestLoadScriptPlays(t *testing.T) {
	e := newTestEngine()
	hero := &scalar{}
	badge := &scalar{}

	tl, err := e.LoadScript([]byte(introScript), map[string]any{
		"hero":  hero,
		"badge": badge,
	})
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	tl.Start()
	tl.Update(0.5)
	if math.Abs(hero.V-60) > 1e-5 {
		t.Errorf("hero = %f, want 60 at halfway", hero.V)
	}

	tl.Update(2.0)
	if !tl.IsFinished() {
		t.Fatal("expected finished")
	}
	if hero.V != 0 {
		t.Errorf("hero = %f, want exactly 0", hero.V)
	}
	if badge.V != 2 {
		t.Errorf("badge = %f, want exactly 2", badge.V)
	}
}

func TestLoadScriptOptions(t *testing.T) {
	e := newTestEngine()
	s := &scalar{}

	src := `
sequence:
  - tween: {target: s, tag: 0, to: [10], duration: 1, ease: out-quad, delay: 0.5, repeat: 1, repeat-delay: 0.25, yoyo: true}
repeat: 2
yoyo: true
`
	tl, err := e.LoadScript([]byte(src), map[string]any{"s": s})
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if tl.RepeatCount() != 2 || !tl.IsYoyo() {
		t.Errorf("root repeat = %d yoyo = %v, want 2 true", tl.RepeatCount(), tl.IsYoyo())
	}

	tw, ok := tl.Children()[0].(*Tween)
	if !ok {
		t.Fatalf("child is %T, want *Tween", tl.Children()[0])
	}
	if tw.StartDelay() != 0.5 || tw.RepeatCount() != 1 || !tw.IsYoyo() {
		t.Errorf("tween delay = %f repeat = %d yoyo = %v, want 0.5 1 true",
			tw.StartDelay(), tw.RepeatCount(), tw.IsYoyo())
	}
	// delay + two iterations + one repeat delay.
	if tw.FullDuration() != 2.75 {
		t.Errorf("FullDuration = %f, want 2.75", tw.FullDuration())
	}
}

func TestLoadScriptErrors(t *testing.T) {
	e := newTestEngine()
	s := &scalar{}
	targets := map[string]any{"s": s}

	cases := []struct {
		name string
		src  string
		frag string
	}{
		{"not yaml", "sequence: [", "parse"},
		{"scalar root", "tween: {target: s, tag: 0, to: [1], duration: 1}", "root"},
		{"unknown target", "sequence:\n  - tween: {target: ghost, tag: 0, to: [1], duration: 1}", "unknown target"},
		{"unknown ease", "sequence:\n  - tween: {target: s, tag: 0, to: [1], duration: 1, ease: warp}", "unknown easing"},
		{"negative pause", "sequence:\n  - pause: -0.5", "negative pause"},
		{"negative duration", "sequence:\n  - tween: {target: s, tag: 0, to: [1], duration: -1}", "negative duration"},
		{"infinite tween", "sequence:\n  - tween: {target: s, tag: 0, to: [1], duration: 1, repeat: -1}", "repeat"},
		{"infinite nested group", "sequence:\n  - sequence:\n      - tween: {target: s, tag: 0, to: [1], duration: 1}\n    repeat: -1", "repeat"},
		{"ambiguous child", "sequence:\n  - tween: {target: s, tag: 0, to: [1], duration: 1}\n    pause: 0.5", "exactly one"},
	}
	for _, tc := range cases {
		if _, err := e.LoadScript([]byte(tc.src), targets); err == nil {
			t.Errorf("%s: expected error", tc.name)
		} else if !strings.Contains(err.Error(), tc.frag) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.frag)
		}
	}
}

func TestEaseByName(t *testing.T) {
	if _, ok := EaseByName("out-cubic"); !ok {
		t.Error("out-cubic should be known")
	}
	if _, ok := EaseByName("linear"); !ok {
		t.Error("linear should be known")
	}
	if _, ok := EaseByName("warp"); ok {
		t.Error("warp should be unknown")
	}
}
