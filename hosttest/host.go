// Package hosttest provides an in memory implementation of the host
// interfaces, for tests and for experimenting without a live host. Fixtures
// can be built in code or loaded from YAML.
package hosttest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/almarkko/paramnav"
)

type (
	// Fields is an in memory Values store. SetValue only accepts keys the
	// store already knows, like a real host rejecting unknown fields.
	Fields map[string]float64

	// FxParam is one numbered parameter of an Fx. Decimals and Unit control
	// how FormatParamValue renders it.
	FxParam struct {
		Name      string  `yaml:"name"`
		Value     float64 `yaml:"value"`
		Min       float64 `yaml:"min"`
		Max       float64 `yaml:"max"`
		Step      float64 `yaml:"step"`
		LargeStep float64 `yaml:"largeStep"`
		Decimals  int     `yaml:"decimals"`
		Unit      string  `yaml:"unit"`
	}

	// Fx is one effect instance. An Fx with Children acts as a container.
	// Unformatted marks effects that cannot render display text, making
	// FormatParamValue report ok false.
	Fx struct {
		Name        string            `yaml:"name"`
		Params      []FxParam         `yaml:"params"`
		Children    []*Fx             `yaml:"children"`
		Config      map[string]string `yaml:"config"`
		Unformatted bool              `yaml:"unformatted"`
	}

	// Chain holds the top level effects of a track or take plus the
	// input/monitoring effects, and resolves flat indices the same way the
	// host address space works.
	Chain struct {
		Fx  []*Fx `yaml:"fx"`
		Rec []*Fx `yaml:"rec"`
	}

	// Send is one send or receive of a track.
	Send struct {
		Target     int    `yaml:"target"`
		TargetName string `yaml:"targetName"`
		Fields     Fields `yaml:"fields"`
	}

	// PanelParam pins one effect parameter to the track control panel.
	PanelParam struct {
		Fx    int `yaml:"fx"`
		Param int `yaml:"param"`
	}

	Track struct {
		Fields   Fields       `yaml:"fields"`
		Master   bool         `yaml:"master"`
		Chain    Chain        `yaml:"chain"`
		Sends    []*Send      `yaml:"sends"`
		Receives []*Send      `yaml:"receives"`
		Panel    []PanelParam `yaml:"panel"`
	}

	Item struct {
		Fields Fields `yaml:"fields"`
		Take   *Take  `yaml:"take"`
	}

	Take struct {
		Fields Fields `yaml:"fields"`
		Chain  Chain  `yaml:"chain"`
	}

	// RulerTime formats lengths as minutes:seconds, deduplicating repeats
	// the way the host ruler does.
	RulerTime struct {
		last    string
		hasLast bool
	}

	// Log collects reported messages for assertions.
	Log struct {
		Messages []string
	}
)

var (
	_ paramnav.Track      = (*Track)(nil)
	_ paramnav.Item       = (*Item)(nil)
	_ paramnav.Take       = (*Take)(nil)
	_ paramnav.FxChain    = (*Chain)(nil)
	_ paramnav.TimeFormat = (*RulerTime)(nil)
	_ paramnav.Reporter   = (*Log)(nil)
)

func (f Fields) Value(key string) (float64, bool) {
	value, ok := f[key]
	return value, ok
}

func (f Fields) SetValue(key string, value float64) bool {
	if _, ok := f[key]; !ok {
		return false
	}
	f[key] = value
	return true
}

// Chain

// resolve maps a flat effect index to the Fx it addresses. Container
// addresses are little endian mixed radix numbers on top of
// ContainerFxIndexOffset: each digit selects a child (1 based, 0 invalid)
// and the radix at each level is the sibling count plus one.
func (c *Chain) resolve(fx int) (*Fx, bool) {
	list := c.Fx
	if fx&paramnav.RecFxIndexOffset != 0 {
		list = c.Rec
		fx &^= paramnav.RecFxIndexOffset
	}
	if fx >= paramnav.ContainerFxIndexOffset {
		v := fx - paramnav.ContainerFxIndexOffset
		var node *Fx
		for v > 0 {
			radix := len(list) + 1
			digit := v % radix
			if digit == 0 {
				return nil, false
			}
			node = list[digit-1]
			list = node.Children
			v /= radix
		}
		return node, node != nil
	}
	if fx < 0 || fx >= len(list) {
		return nil, false
	}
	return list[fx], true
}

func (c *Chain) Count() int    { return len(c.Fx) }
func (c *Chain) RecCount() int { return len(c.Rec) }

func (c *Chain) Name(fx int) (string, bool) {
	f, ok := c.resolve(fx)
	if !ok {
		return "", false
	}
	return f.Name, true
}

func (c *Chain) ParamCount(fx int) int {
	f, ok := c.resolve(fx)
	if !ok {
		return 0
	}
	return len(f.Params)
}

func (c *Chain) param(fx, param int) (*FxParam, bool) {
	f, ok := c.resolve(fx)
	if !ok || param < 0 || param >= len(f.Params) {
		return nil, false
	}
	return &f.Params[param], true
}

func (c *Chain) ParamName(fx, param int) (string, bool) {
	p, ok := c.param(fx, param)
	if !ok {
		return "", false
	}
	return p.Name, true
}

func (c *Chain) Param(fx, param int) (value, min, max float64) {
	p, ok := c.param(fx, param)
	if !ok {
		return 0, 0, 0
	}
	return p.Value, p.Min, p.Max
}

func (c *Chain) ParamStepSizes(fx, param int) (step, largeStep float64, ok bool) {
	p, ok := c.param(fx, param)
	if !ok || p.Step == 0 {
		return 0, 0, false
	}
	return p.Step, p.LargeStep, true
}

func (c *Chain) SetParam(fx, param int, value float64) bool {
	p, ok := c.param(fx, param)
	if !ok {
		return false
	}
	p.Value = value
	return true
}

func (c *Chain) FormatParamValue(fx, param int, value float64) (string, bool) {
	f, ok := c.resolve(fx)
	if !ok || f.Unformatted || param < 0 || param >= len(f.Params) {
		return "", false
	}
	p := &f.Params[param]
	return fmt.Sprintf("%.*f%s", p.Decimals, value, p.Unit), true
}

func (c *Chain) NamedConfig(fx int, key string) (string, bool) {
	f, ok := c.resolve(fx)
	if !ok {
		return "", false
	}
	if key == "container_count" {
		if len(f.Children) == 0 {
			return "", false
		}
		return strconv.Itoa(len(f.Children)), true
	}
	value, ok := f.Config[key]
	return value, ok
}

func (c *Chain) SetNamedConfig(fx int, key, value string) bool {
	f, ok := c.resolve(fx)
	if !ok {
		return false
	}
	if f.Config == nil {
		f.Config = map[string]string{}
	}
	f.Config[key] = value
	return true
}

// Track

func (t *Track) Value(key string) (float64, bool)      { return t.Fields.Value(key) }
func (t *Track) SetValue(key string, value float64) bool { return t.Fields.SetValue(key, value) }
func (t *Track) Fx() paramnav.FxChain                  { return &t.Chain }
func (t *Track) IsMaster() bool                        { return t.Master }

func (t *Track) sends(category paramnav.SendCategory) []*Send {
	if category == paramnav.SendCategoryReceive {
		return t.Receives
	}
	return t.Sends
}

func (t *Track) SendCount(category paramnav.SendCategory) int {
	return len(t.sends(category))
}

func (t *Track) Send(category paramnav.SendCategory, index int) paramnav.Values {
	return t.sends(category)[index].Fields
}

func (t *Track) SendTarget(category paramnav.SendCategory, index int) (int, string) {
	s := t.sends(category)[index]
	return s.Target, s.TargetName
}

func (t *Track) PanelFxParamCount() int { return len(t.Panel) }

func (t *Track) PanelFxParam(index int) (fx, param int) {
	return t.Panel[index].Fx, t.Panel[index].Param
}

// Item & Take

func (i *Item) Value(key string) (float64, bool)        { return i.Fields.Value(key) }
func (i *Item) SetValue(key string, value float64) bool { return i.Fields.SetValue(key, value) }

func (i *Item) ActiveTake() (paramnav.Take, bool) {
	if i.Take == nil {
		return nil, false
	}
	return i.Take, true
}

func (t *Take) Value(key string) (float64, bool)        { return t.Fields.Value(key) }
func (t *Take) SetValue(key string, value float64) bool { return t.Fields.SetValue(key, value) }
func (t *Take) Fx() paramnav.FxChain                    { return &t.Chain }

// RulerTime

func (t *RulerTime) Reset() { t.hasLast = false }

func (t *RulerTime) FormatLength(value float64) string {
	minutes := int(value) / 60
	text := fmt.Sprintf("%d:%04.1f", minutes, value-float64(minutes)*60)
	if t.hasLast && text == t.last {
		return ""
	}
	t.last, t.hasLast = text, true
	return text
}

func (t *RulerTime) FormatPosition(value float64) string {
	minutes := int(value) / 60
	return fmt.Sprintf("%d:%06.3f", minutes, value-float64(minutes)*60)
}

func (t *RulerTime) ParsePosition(text string) float64 {
	if i := strings.IndexByte(text, ':'); i >= 0 {
		minutes, _ := strconv.Atoi(text[:i])
		seconds, _ := strconv.ParseFloat(text[i+1:], 64)
		return float64(minutes)*60 + seconds
	}
	value, _ := strconv.ParseFloat(text, 64)
	return value
}

// Log

func (l *Log) Report(message string) {
	l.Messages = append(l.Messages, message)
}

// Last returns the most recent message, or the empty string when nothing has
// been reported.
func (l *Log) Last() string {
	if len(l.Messages) == 0 {
		return ""
	}
	return l.Messages[len(l.Messages)-1]
}
