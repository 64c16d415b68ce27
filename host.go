package paramnav

// The host reaches this package nowhere; this package reaches the host only
// through the interfaces below, injected at construction. A real binding
// implements them on top of whatever API the host application offers; the
// hosttest package implements them in memory.

type (
	// Values reads and writes named scalar fields on one host object. Boolean
	// fields are represented as 0/1. The second return value of Value reports
	// whether the key is known to the object.
	Values interface {
		Value(key string) (float64, bool)
		SetValue(key string, value float64) bool
	}

	// FxChain is the effect API of one host object, track or take scoped. All
	// fx arguments are flat indices: for top level effects the plain position,
	// for input/monitoring effects the position offset by RecFxIndexOffset,
	// and for effects inside containers the address computed by FxIterator.
	FxChain interface {
		// Count returns the number of top level effects.
		Count() int
		// RecCount returns the number of top level input/monitoring effects.
		// It is always 0 for take scoped chains.
		RecCount() int
		Name(fx int) (name string, ok bool)
		ParamCount(fx int) int
		ParamName(fx, param int) (name string, ok bool)
		// Param returns the current value of a parameter along with its
		// reported range.
		Param(fx, param int) (value, min, max float64)
		// ParamStepSizes reports the step sizes of a parameter. Hosts may not
		// report them at all (ok false) or report only the small step (large
		// 0); the caller synthesizes the missing ones.
		ParamStepSizes(fx, param int) (step, largeStep float64, ok bool)
		SetParam(fx, param int, value float64) bool
		// FormatParamValue formats a value as the host specific display text.
		// ok is false when the effect does not support formatted values.
		FormatParamValue(fx, param int, value float64) (text string, ok bool)
		// NamedConfig reads a named configuration value of an effect. This is
		// the channel for settings that are not exposed as numbered
		// parameters, and for the "container_count" query that reports how
		// many effects a container holds.
		NamedConfig(fx int, key string) (value string, ok bool)
		SetNamedConfig(fx int, key, value string) bool
	}

	// SendCategory selects which kind of track routing a send index refers to.
	SendCategory int

	// Track is the capability set needed to catalog the parameters of one
	// track and to navigate its effects.
	Track interface {
		Values
		Fx() FxChain
		// IsMaster distinguishes the master bus; its rec chain holds
		// monitoring rather than input effects.
		IsMaster() bool
		SendCount(category SendCategory) int
		// Send returns the value store of one send or receive, holding the
		// D_VOL, D_PAN, B_MUTE and B_MONO fields.
		Send(category SendCategory, index int) Values
		// SendTarget identifies the other end of a send or receive for
		// display purposes.
		SendTarget(category SendCategory, index int) (number int, name string)
		// PanelFxParamCount and PanelFxParam enumerate the effect parameters
		// the user has pinned to the track control panel.
		PanelFxParamCount() int
		PanelFxParam(index int) (fx, param int)
	}

	// Item is the capability set of one media item.
	Item interface {
		Values
		// ActiveTake returns the active take, if the item has one. Empty
		// items do not.
		ActiveTake() (Take, bool)
	}

	// Take is the capability set of one take of a media item.
	Take interface {
		Values
		Fx() FxChain
	}

	// TimeFormat formats and parses lengths and positions in project time.
	TimeFormat interface {
		// FormatLength formats a length using the host's ruler settings. The
		// host deduplicates: when a call would produce the same text as the
		// previous call, it returns the empty string instead. Reset drops
		// that memory so the next call always yields text.
		Reset()
		FormatLength(value float64) string
		// FormatPosition formats a value with full precision, suitable for
		// round tripping through text entry.
		FormatPosition(value float64) string
		ParsePosition(text string) float64
	}

	// Reporter receives the announcements a Session makes, typically routed
	// to accessible output.
	Reporter interface {
		Report(message string)
	}
)

const (
	SendCategorySend    SendCategory = 0
	SendCategoryReceive SendCategory = -1
)

// Address space offsets of the host's flat effect indices.
const (
	// RecFxIndexOffset marks an index as referring to the input/monitoring
	// chain of a track.
	RecFxIndexOffset = 0x1000000
	// ContainerFxIndexOffset is the base of container addresses; see
	// FxIterator for how the rest of the address is derived.
	ContainerFxIndexOffset = 0x2000000
)
