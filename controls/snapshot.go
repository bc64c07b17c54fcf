package controls

// Key is a key the demo reacts to, independent of the windowing library.
type Key uint8

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyLeftControl
	KeyLeftShift
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyQ
	KeyE
	KeyZ
	KeyC
	KeyR
	KeyT
	KeyY
	KeyU
	KeyF3
	KeyEscape
	KeyCount
)

// KeySet is a bitset of Keys.
type KeySet uint32

func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

func (s KeySet) Has(k Key) bool       { return s&(1<<k) != 0 }
func (s KeySet) With(k Key) KeySet    { return s | 1<<k }
func (s KeySet) Without(k Key) KeySet { return s &^ (1 << k) }

// Snapshot is the input state sampled once per frame.
type Snapshot struct {
	Held    KeySet
	Pressed KeySet // went down since the previous snapshot

	// Cursor movement in pixels since the previous snapshot, y grows downwards.
	MouseDX, MouseDY float64
}

// NextSnapshot derives a snapshot from the previously held keys, the keys held
// now and the cursor delta.
func NextSnapshot(prevHeld, held KeySet, dx, dy float64) Snapshot {
	return Snapshot{
		Held:    held,
		Pressed: held &^ prevHeld,
		MouseDX: dx,
		MouseDY: dy,
	}
}

// Mouse tracks the cursor between polls. The first sample only records the
// position so capturing the cursor does not produce a jump.
type Mouse struct {
	lastX, lastY float64
	seen         bool
}

// Delta records the cursor position and returns the movement since the last call.
func (m *Mouse) Delta(x, y float64) (dx, dy float64) {
	if !m.seen {
		m.lastX, m.lastY = x, y
		m.seen = true
	}
	dx, dy = x-m.lastX, y-m.lastY
	m.lastX, m.lastY = x, y
	return dx, dy
}

// Reset makes the next Delta call a first sample again.
func (m *Mouse) Reset() { m.seen = false }
