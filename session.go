package paramnav

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// Session drives one parameter editing dialog over a Source: it keeps the
// filtered list of visible parameters, the selection cursor and the
// materialized Param, and implements value stepping so that every step lands
// on a value whose formatted text observably differs from the previous one.
// All methods must be called from the host's UI event thread.
type Session struct {
	source   Source
	reporter Reporter
	fold     cases.Caser

	filter      string
	showUnnamed bool
	visible     []int
	selected    int

	param   Param
	val     float64
	valText string

	suppressValueReport bool
}

// Unnamed parameters have placeholder names like "P003 (7)" or "- (12)";
// they are hidden when the unnamed filter is off.
var unnamedParamRe = regexp.MustCompile(`^(?:|-|[P#]\d{3}) \(\d+\)$`)

// NewSession starts a parameter editing session over source. reporter may be
// nil when no announcements are wanted.
func NewSession(source Source, reporter Reporter) *Session {
	s := &Session{
		source:      source,
		reporter:    reporter,
		fold:        cases.Fold(),
		showUnnamed: true,
	}
	s.updateVisible()
	return s
}

func (s *Session) Title() string { return s.source.Title() }

// Count returns the number of currently visible parameters.
func (s *Session) Count() int { return len(s.visible) }

// ParamNames returns the display names of the currently visible parameters,
// in catalog order.
func (s *Session) ParamNames() []string {
	names := make([]string, len(s.visible))
	for i, p := range s.visible {
		names[i] = s.source.ParamName(p)
	}
	return names
}

// Param returns the currently materialized Param, or nil when no parameter
// is visible.
func (s *Session) Param() Param { return s.param }

func (s *Session) Value() float64    { return s.val }
func (s *Session) ValueText() string { return s.valText }

// EditText returns the text for the edit box, empty when the current
// parameter does not support text entry.
func (s *Session) EditText() string {
	if s.param == nil {
		return ""
	}
	return s.param.EditText()
}

func (s *Session) Editable() bool {
	return s.param != nil && s.param.Editable()
}

// SetFilter sets the case insensitive substring filter on parameter names.
func (s *Session) SetFilter(filter string) {
	filter = s.fold.String(filter)
	if s.filter == filter {
		return
	}
	s.filter = filter
	s.updateVisible()
}

// SetShowUnnamed toggles whether parameters with placeholder names are
// listed. They are shown by default.
func (s *Session) SetShowUnnamed(show bool) {
	if s.showUnnamed == show {
		return
	}
	s.showUnnamed = show
	s.updateVisible()
}

// Selected returns the selection cursor, an index into the visible list.
func (s *Session) Selected() int { return s.selected }

// SetSelected moves the selection cursor, clamped to the visible list, and
// materializes the Param for the new selection.
func (s *Session) SetSelected(index int) {
	if len(s.visible) == 0 {
		return
	}
	s.selected = max(min(index, len(s.visible)-1), 0)
	s.selectParam()
}

// NextParam and PrevParam move the selection cursor with wrap around at both
// ends and announce "name, value" for the new selection.
func (s *Session) NextParam() { s.cycleParam(1) }
func (s *Session) PrevParam() { s.cycleParam(-1) }

func (s *Session) cycleParam(delta int) {
	if len(s.visible) == 0 {
		return
	}
	index := s.selected + delta
	if index < 0 {
		index = len(s.visible) - 1
	} else if index >= len(s.visible) {
		index = 0
	}
	s.selected = index
	// The raw value change report would duplicate the combined one below.
	s.suppressValueReport = true
	s.selectParam()
	s.suppressValueReport = false
	s.report(fmt.Sprintf("%s, %s", s.source.ParamName(s.visible[s.selected]), s.valText))
}

// Step adjusts the current value by one logical increment. The committed
// value is the nearest one in the requested direction whose formatted text
// differs from the current text, so the user always perceives the change.
func (s *Session) Step(increase, large bool) {
	if s.param == nil {
		return
	}
	delta := s.param.Step()
	if large {
		delta = s.param.LargeStep()
	}
	if !increase {
		delta = -delta
	}
	s.adjust(delta)
}

// SetToMin and SetToMax jump to the range boundaries.
func (s *Session) SetToMin() {
	if s.param != nil {
		s.commit(s.param.Min())
	}
}

func (s *Session) SetToMax() {
	if s.param != nil {
		s.commit(s.param.Max())
	}
}

// SubmitEdit applies directly entered text. An out of range value is written
// through regardless; the host is the authority on final clamping.
func (s *Session) SubmitEdit(text string) {
	if s.param == nil || !s.param.Editable() || text == "" {
		return
	}
	if s.param.EditText() == text {
		return
	}
	s.param.SetEdited(text)
	s.val = s.param.Value()
	s.refreshText()
}

func (s *Session) adjust(delta float64) {
	if delta == 0 {
		return
	}
	low, high := s.param.Min(), s.param.Max()
	newVal := s.val + delta
	// If the value text doesn't change, the change is insignificant; snap to
	// the next change in value text. Continually adding to a float
	// accumulates inaccuracy, so multiply the step by the number of steps
	// each iteration instead.
	for steps := 1; ; steps++ {
		if newVal < low || newVal > high {
			newVal = math.Max(math.Min(newVal, high), low)
			break
		}
		text := s.param.ValueText(newVal)
		if text == "" {
			// Formatted values not supported; the first candidate is as
			// good as any.
			newVal = s.val + delta
			break
		}
		if text != s.valText {
			break
		}
		newVal = s.val + delta*float64(steps+1)
	}
	s.commit(newVal)
}

func (s *Session) commit(value float64) {
	s.val = value
	s.param.SetValue(value)
	s.refreshText()
}

func (s *Session) selectParam() {
	s.param = s.source.Param(s.visible[s.selected])
	s.val = s.param.Value()
	s.refreshText()
}

func (s *Session) refreshText() {
	s.valText = s.param.ValueText(s.val)
	if s.valText == "" {
		// Fall back to a percentage of the range.
		percent := 0.0
		if s.param.Max() > s.param.Min() {
			percent = (s.val - s.param.Min()) / (s.param.Max() - s.param.Min()) * 100
		}
		s.valText = fmt.Sprintf("%.1f%%", percent)
	}
	if !s.suppressValueReport {
		s.report(s.valText)
	}
}

func (s *Session) updateVisible() {
	prevSelected := -1
	if len(s.visible) > 0 {
		prevSelected = s.visible[s.selected]
	}
	s.visible = s.visible[:0]
	// Use the first entry if the previously selected one gets filtered out.
	selected := 0
	for p := 0; p < s.source.ParamCount(); p++ {
		if !s.includeParam(s.source.ParamName(p)) {
			continue
		}
		s.visible = append(s.visible, p)
		if p == prevSelected {
			selected = len(s.visible) - 1
		}
	}
	s.selected = selected
	if len(s.visible) == 0 {
		s.param = nil
		s.val = 0
		s.valText = ""
		return
	}
	s.suppressValueReport = true
	s.selectParam()
	s.suppressValueReport = false
}

func (s *Session) includeParam(name string) bool {
	if !s.showUnnamed && unnamedParamRe.MatchString(name) {
		return false
	}
	if s.filter == "" {
		return true
	}
	return strings.Contains(s.fold.String(name), s.filter)
}

func (s *Session) report(message string) {
	if s.reporter != nil {
		s.reporter.Report(message)
	}
}
