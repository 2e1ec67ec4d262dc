package motion

import "sync"

// Manager drives a set of root nodes, one Update per frame. It absorbs a
// root's trailing overflow back into the root — the outermost node is the
// one that retains residue — and, unless auto-removal is disabled, frees
// finished and killed roots back to their pools.
//
// A Manager is optional: roots can be updated by hand. The manager's lock
// makes nodes built on one goroutine visible to updates on another; it
// does not make concurrent Update calls on the same tree legal. Engines
// configured Unsynchronized skip the lock entirely.
type Manager struct {
	mu     sync.Mutex
	unsync bool

	engine     *Engine
	nodes      []node
	autoRemove bool
	paused     bool
}

// Add registers a root node and starts it if it isn't started yet.
func (m *Manager) Add(n Node) {
	nn, ok := n.(node)
	if !ok {
		panic("motion: unknown node type")
	}
	m.lock()
	defer m.unlock()
	if !nn.IsStarted() {
		switch v := nn.(type) {
		case *Tween:
			v.start_()
		case *Timeline:
			v.Start()
		}
	}
	m.nodes = append(m.nodes, nn)
}

// Update advances every root by dt seconds. Finished and killed roots are
// freed and dropped unless SetAutoRemove(false) was called.
func (m *Manager) Update(dt float64) {
	m.lock()
	defer m.unlock()
	if m.paused {
		return
	}
	kept := m.nodes[:0]
	for _, n := range m.nodes {
		if over := n.Update(dt); over != 0 {
			n.base().absorb(over)
		}
		if m.autoRemove && (n.IsFinished() || n.IsKilled()) {
			n.Free()
			continue
		}
		kept = append(kept, n)
	}
	// Drop stale tails so freed nodes are not pinned.
	for i := len(kept); i < len(m.nodes); i++ {
		m.nodes[i] = nil
	}
	m.nodes = kept
}

// SetAutoRemove controls whether finished roots are freed on update.
// Disable it to keep finished roots around for reverse playback.
func (m *Manager) SetAutoRemove(remove bool) {
	m.lock()
	defer m.unlock()
	m.autoRemove = remove
}

// Count returns the number of managed roots.
func (m *Manager) Count() int {
	m.lock()
	defer m.unlock()
	return len(m.nodes)
}

// PauseAll freezes the whole manager; Update becomes a no-op.
func (m *Manager) PauseAll() {
	m.lock()
	defer m.unlock()
	m.paused = true
}

// ResumeAll lifts PauseAll.
func (m *Manager) ResumeAll() {
	m.lock()
	defer m.unlock()
	m.paused = false
}

// KillAll mutes every managed root; they are freed on the next Update.
func (m *Manager) KillAll() {
	m.lock()
	defer m.unlock()
	for _, n := range m.nodes {
		n.Kill()
	}
}

// KillTarget mutes every leaf under any managed root that animates the
// given target.
func (m *Manager) KillTarget(target any) {
	m.lock()
	defer m.unlock()
	for _, n := range m.nodes {
		n.killTarget(target)
	}
}

// ContainsTarget reports whether any managed root animates the target.
func (m *Manager) ContainsTarget(target any) bool {
	m.lock()
	defer m.unlock()
	for _, n := range m.nodes {
		if n.ContainsTarget(target) {
			return true
		}
	}
	return false
}

func (m *Manager) lock() {
	if !m.unsync {
		m.mu.Lock()
	}
}

func (m *Manager) unlock() {
	if !m.unsync {
		m.mu.Unlock()
	}
}
