package paramnav

// Provider supplies the display name for one predefined parameter of a
// subject and materializes its Param on demand.
type Provider struct {
	DisplayName string
	Make        func() Param
}

// fieldRef points at one named scalar field of a host object.
type fieldRef struct {
	vals Values
	key  string
}

func (f fieldRef) value() float64 {
	v, _ := f.vals.Value(f.key)
	return v
}

func (f fieldRef) setValue(v float64) {
	f.vals.SetValue(f.key, v)
}

// toggleParam

type toggleParam struct {
	info
	fieldRef
}

// ToggleParam makes a Param over a boolean field such as mute.
func ToggleParam(vals Values, key string) Param {
	return &toggleParam{
		info:     info{min: 0, max: 1, step: 1, largeStep: 1},
		fieldRef: fieldRef{vals, key},
	}
}

func (p *toggleParam) Value() float64 {
	if p.value() != 0 {
		return 1
	}
	return 0
}

func (p *toggleParam) ValueText(value float64) string {
	if value != 0 {
		return "on"
	}
	return "off"
}

func (p *toggleParam) SetValue(value float64) {
	if value != 0 {
		p.setValue(1)
	} else {
		p.setValue(0)
	}
}

// volumeParam

type volumeParam struct {
	info
	fieldRef
	flipSign bool
}

// VolumeParam makes a Param over a linear gain field.
func VolumeParam(vals Values, key string) Param {
	p := &volumeParam{
		info:     info{min: 0, max: 4, step: 0.002, largeStep: 0.1, editable: true},
		fieldRef: fieldRef{vals, key},
	}
	if p.value() < 0 {
		// Take volume raw values are negative when the polarity is flipped.
		p.flipSign = true
	}
	return p
}

func (p *volumeParam) Value() float64 {
	v := p.value()
	if p.flipSign {
		v = -v
	}
	return v
}

func (p *volumeParam) ValueText(value float64) string {
	return VolumeText(value)
}

func (p *volumeParam) EditText() string {
	return p.ValueText(p.Value())
}

func (p *volumeParam) SetValue(value float64) {
	if p.flipSign {
		value = -value
	}
	p.setValue(value)
}

func (p *volumeParam) SetEdited(text string) {
	p.SetValue(ParseVolume(text))
}

// panParam

type panParam struct {
	info
	fieldRef
}

// PanParam makes a Param over a pan field in [-1, 1].
func PanParam(vals Values, key string) Param {
	return &panParam{
		info:     info{min: -1, max: 1, step: 0.01, largeStep: 0.1, editable: true},
		fieldRef: fieldRef{vals, key},
	}
}

func (p *panParam) Value() float64 { return p.value() }

func (p *panParam) ValueText(value float64) string {
	return PanText(value)
}

func (p *panParam) EditText() string {
	return p.ValueText(p.Value())
}

func (p *panParam) SetValue(value float64) { p.setValue(value) }

func (p *panParam) SetEdited(text string) {
	p.SetValue(ParsePan(text))
}

// lengthParam

type lengthParam struct {
	info
	fieldRef
	time     TimeFormat
	lastText string
}

// LengthParam makes a Param over a length field such as a fade, formatted
// with the host's ruler settings.
func LengthParam(vals Values, key string, time TimeFormat) Param {
	time.Reset()
	return &lengthParam{
		info:     info{min: 0, max: 500, step: 0.02, largeStep: 10, editable: true},
		fieldRef: fieldRef{vals, key},
		time:     time,
	}
}

func (p *lengthParam) Value() float64 { return p.value() }

func (p *lengthParam) ValueText(value float64) string {
	text := p.time.FormatLength(value)
	if text == "" {
		// The host returned nothing because value produced the same text as
		// the previous call, so replay the cached text.
		return p.lastText
	}
	p.lastText = text
	return text
}

func (p *lengthParam) EditText() string {
	return p.time.FormatPosition(p.Value())
}

func (p *lengthParam) SetValue(value float64) { p.setValue(value) }

func (p *lengthParam) SetEdited(text string) {
	p.SetValue(p.time.ParsePosition(text))
}
