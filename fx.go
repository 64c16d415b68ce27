package paramnav

import (
	"fmt"
	"math"
	"strconv"
)

type (
	// FxParams catalogs the parameters of one effect instance. Named config
	// parameters cannot be enumerated through the host, so the known ones are
	// looked up from the plugin tables when the source is constructed; they
	// precede the numbered parameters in the catalog.
	FxParams struct {
		chain FxChain
		fx    int
		named []namedConfigParam
	}

	// fxParam is a numbered effect parameter with a host reported range.
	fxParam struct {
		info
		chain FxChain
		fx    int
		param int
	}

	// namedConfigParam is an enumerated parameter backed by the named config
	// channel: its value is the ordinal into a closed list of options,
	// translated to and from the raw host token on every read and write.
	namedConfigParam struct {
		info
		chain       FxChain
		fx          int
		displayName string
		key         string
		options     []ValueOption
	}
)

// NewFxParams makes the parameter source for one effect, identified by its
// flat index.
func NewFxParams(chain FxChain, fx int) *FxParams {
	return &FxParams{chain: chain, fx: fx, named: namedConfigParamsFor(chain, fx)}
}

func (s *FxParams) Title() string { return "FX Parameters" }

func (s *FxParams) ParamCount() int {
	return len(s.named) + s.chain.ParamCount(s.fx)
}

func (s *FxParams) ParamName(param int) string {
	var name string
	if param < len(s.named) {
		name = s.named[param].displayName
	} else {
		name, _ = s.chain.ParamName(s.fx, param-len(s.named))
	}
	// The parameter number keeps two consecutive parameters with the same
	// name distinguishable and lets the user navigate by number.
	return fmt.Sprintf("%s (%d)", name, param)
}

func (s *FxParams) Param(param int) Param {
	if param < len(s.named) {
		p := s.named[param]
		p.markTouched()
		return &p
	}
	p := newFxParam(s.chain, s.fx, param-len(s.named))
	p.markTouched()
	return p
}

func newFxParam(chain FxChain, fx, param int) *fxParam {
	p := &fxParam{chain: chain, fx: fx, param: param}
	_, p.min, p.max = chain.Param(fx, param)
	step, large, ok := chain.ParamStepSizes(fx, param)
	if ok && step > 0 {
		p.step = step
		if large > 0 {
			p.largeStep = large
		} else {
			p.largeStep = (p.max - p.min) / 50
			// The large step must stay a multiple of the step.
			p.largeStep = p.step * math.Trunc(p.largeStep/p.step)
			if p.largeStep == 0 {
				p.largeStep = p.step
			}
		}
	} else {
		p.step = (p.max - p.min) / 1000
		p.largeStep = p.step * 20
	}
	p.editable = true
	return p
}

// markTouched lets the rest of the host see this parameter as the one being
// edited: it becomes the last touched parameter and its effect the focused
// one.
func (p *fxParam) markTouched() {
	p.chain.SetNamedConfig(p.fx, "last_touched", strconv.Itoa(p.param))
	p.chain.SetNamedConfig(p.fx, "focused", "1")
}

func (p *fxParam) Value() float64 {
	v, _, _ := p.chain.Param(p.fx, p.param)
	return v
}

func (p *fxParam) ValueText(value float64) string {
	text, ok := p.chain.FormatParamValue(p.fx, p.param, value)
	if !ok {
		return ""
	}
	return text
}

func (p *fxParam) EditText() string {
	return fmt.Sprintf("%.4f", p.Value())
}

func (p *fxParam) SetValue(value float64) {
	p.chain.SetParam(p.fx, p.param, value)
}

func (p *fxParam) SetEdited(text string) {
	v, _ := parseLeadingFloat(text)
	p.SetValue(v)
}

// Named config parameters cannot be marked as last touched, so the host is
// pointed at the first numbered parameter instead.
func (p *namedConfigParam) markTouched() {
	p.chain.SetNamedConfig(p.fx, "last_touched", "0")
	p.chain.SetNamedConfig(p.fx, "focused", "1")
}

func (p *namedConfigParam) Value() float64 {
	raw, ok := p.chain.NamedConfig(p.fx, p.key)
	if !ok || raw == "" {
		return 0
	}
	for i, o := range p.options {
		if o.Token == raw {
			return float64(i)
		}
	}
	// Unrecognized token, e.g. from a newer host version.
	return 0
}

func (p *namedConfigParam) ValueText(value float64) string {
	return p.options[p.ordinal(value)].Label
}

func (p *namedConfigParam) SetValue(value float64) {
	p.chain.SetNamedConfig(p.fx, p.key, p.options[p.ordinal(value)].Token)
}

func (p *namedConfigParam) ordinal(value float64) int {
	return max(min(int(value), len(p.options)-1), 0)
}
