package motion

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Script files describe a timeline tree declaratively:
//
//	sequence:
//	  - tween: {target: hero, tag: 0, to: [120, 40], duration: 1, ease: out-cubic}
//	  - pause: 0.25
//	  - parallel:
//	      - tween: {target: hero, tag: 2, to: [0], duration: 0.5}
//	      - tween: {target: badge, tag: 1, to: [2, 2], duration: 0.5, yoyo: true, repeat: 1}
//	repeat: 2
//	yoyo: true
//
// Exactly one of tween/pause/sequence/parallel must be set per node.
// Targets are symbolic names resolved through the map handed to
// LoadScript. Script problems are data errors, returned as errors — the
// panicking construction surface is reserved for code-level misuse.

type scriptNode struct {
	Tween    *scriptTween `yaml:"tween"`
	Pause    *float64     `yaml:"pause"`
	Sequence []scriptNode `yaml:"sequence"`
	Parallel []scriptNode `yaml:"parallel"`

	// Group options, valid with sequence/parallel.
	Delay       float64 `yaml:"delay"`
	Repeat      int     `yaml:"repeat"`
	RepeatDelay float64 `yaml:"repeat-delay"`
	Yoyo        bool    `yaml:"yoyo"`
}

type scriptTween struct {
	Target      string    `yaml:"target"`
	Tag         int       `yaml:"tag"`
	To          []float64 `yaml:"to"`
	From        bool      `yaml:"from"`
	Relative    bool      `yaml:"relative"`
	Duration    float64   `yaml:"duration"`
	Ease        string    `yaml:"ease"`
	Delay       float64   `yaml:"delay"`
	Repeat      int       `yaml:"repeat"`
	RepeatDelay float64   `yaml:"repeat-delay"`
	Yoyo        bool      `yaml:"yoyo"`
}

// LoadScript parses a YAML timeline description and builds the tree,
// resolving symbolic target names through targets. The returned timeline
// is built but not started.
func (e *Engine) LoadScript(data []byte, targets map[string]any) (*Timeline, error) {
	var root scriptNode
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse timeline script: %w", err)
	}
	if len(root.Sequence) == 0 && len(root.Parallel) == 0 {
		return nil, fmt.Errorf("parse timeline script: root must be a sequence or parallel group")
	}
	tl, err := e.buildGroup(root, targets)
	if err != nil {
		tl.Free()
		return nil, err
	}
	return tl, nil
}

func (e *Engine) buildGroup(sn scriptNode, targets map[string]any) (*Timeline, error) {
	var tl *Timeline
	var children []scriptNode
	switch {
	case len(sn.Sequence) > 0 && len(sn.Parallel) > 0:
		return e.NewSequential(), fmt.Errorf("timeline script: a node cannot be both sequence and parallel")
	case len(sn.Sequence) > 0:
		tl = e.NewSequential()
		children = sn.Sequence
	default:
		tl = e.NewParallel()
		children = sn.Parallel
	}
	tl.Delay(sn.Delay)
	if sn.Yoyo {
		tl.RepeatYoyo(sn.Repeat, sn.RepeatDelay)
	} else if sn.Repeat != 0 {
		tl.Repeat(sn.Repeat, sn.RepeatDelay)
	}
	for i, c := range children {
		if err := e.buildChild(tl, c, targets); err != nil {
			return tl, fmt.Errorf("timeline script: child %d: %w", i, err)
		}
	}
	return tl, nil
}

func (e *Engine) buildChild(tl *Timeline, sn scriptNode, targets map[string]any) error {
	set := 0
	if sn.Tween != nil {
		set++
	}
	if sn.Pause != nil {
		set++
	}
	if len(sn.Sequence) > 0 {
		set++
	}
	if len(sn.Parallel) > 0 {
		set++
	}
	if set != 1 {
		return fmt.Errorf("exactly one of tween, pause, sequence, parallel must be set")
	}

	switch {
	case sn.Pause != nil:
		if *sn.Pause < 0 {
			return fmt.Errorf("negative pause %v", *sn.Pause)
		}
		tl.PushPause(*sn.Pause)
		return nil
	case sn.Tween != nil:
		t, err := e.buildTween(sn.Tween, targets)
		if err != nil {
			return err
		}
		tl.Push(t)
		return nil
	default:
		if sn.Repeat < 0 {
			return fmt.Errorf("nested group cannot repeat forever")
		}
		inner, err := e.buildGroup(sn, targets)
		if err != nil {
			inner.Free()
			return err
		}
		tl.Push(inner)
		return nil
	}
}

func (e *Engine) buildTween(st *scriptTween, targets map[string]any) (*Tween, error) {
	target, ok := targets[st.Target]
	if !ok {
		return nil, fmt.Errorf("unknown target %q", st.Target)
	}
	if st.Duration < 0 {
		return nil, fmt.Errorf("negative duration %v", st.Duration)
	}
	if st.Repeat < 0 {
		return nil, fmt.Errorf("repeat %d not allowed in scripts (timeline children cannot repeat forever)", st.Repeat)
	}
	fn := easings["linear"]
	if st.Ease != "" {
		var known bool
		if fn, known = EaseByName(st.Ease); !known {
			return nil, fmt.Errorf("unknown easing %q", st.Ease)
		}
	}
	var t *Tween
	if st.From {
		t = e.From(target, st.Tag, st.Duration)
	} else {
		t = e.To(target, st.Tag, st.Duration)
	}
	if st.Relative {
		t.TargetRelative(st.To...)
	} else {
		t.Target(st.To...)
	}
	t.Ease(fn).Delay(st.Delay)
	if st.Yoyo {
		t.RepeatYoyo(st.Repeat, st.RepeatDelay)
	} else if st.Repeat != 0 {
		t.Repeat(st.Repeat, st.RepeatDelay)
	}
	return t, nil
}
