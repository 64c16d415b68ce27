package paramnav

type (
	// Param is the normalized contract for a single editable quantity. A
	// Param is bound to exactly one backing value for its lifetime; it is
	// materialized when the user selects an entry from a Source and discarded
	// when the selection changes or the session ends.
	Param interface {
		Min() float64
		Max() float64
		Step() float64
		LargeStep() float64
		// Editable reports whether direct text entry is supported. When it
		// is, EditText and SetEdited round trip the value through text.
		Editable() bool

		// Value reads the current value. Providers compensate for any unit
		// inversion in the backing store, so Value and SetValue are always in
		// the true user facing sign.
		Value() float64
		// ValueText formats a value for display. The empty string means the
		// parameter has no distinct textual representation; the caller falls
		// back to a percentage of the range.
		ValueText(value float64) string
		EditText() string
		// SetValue writes through to the backing store. Clamping is the
		// caller's responsibility; the host is the final authority.
		SetValue(value float64)
		SetEdited(text string)
	}

	// info carries the bounds and step sizes shared by all Param kinds, and
	// the defaults for parameters that do not support text entry.
	info struct {
		min, max, step, largeStep float64
		editable                  bool
	}
)

func (i info) Min() float64       { return i.min }
func (i info) Max() float64       { return i.max }
func (i info) Step() float64      { return i.step }
func (i info) LargeStep() float64 { return i.largeStep }
func (i info) Editable() bool     { return i.editable }
func (i info) EditText() string   { return "" }
func (i info) SetEdited(string)   {}
