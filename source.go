package paramnav

import "fmt"

// Source is an ordered catalog of the editable parameters of one subject: a
// track, an item or one effect instance. The count and names are stable for
// the lifetime of the source; indices are only meaningful within one
// instance and must never be persisted.
type Source interface {
	Title() string
	ParamCount() int
	ParamName(param int) string
	Param(param int) Param
}

// providerSource implements Source over a fixed provider list. Used where
// the parameters are predefined, e.g. for tracks and items.
type providerSource struct {
	title  string
	params []Provider
}

func (s *providerSource) Title() string             { return s.title }
func (s *providerSource) ParamCount() int           { return len(s.params) }
func (s *providerSource) ParamName(param int) string { return s.params[param].DisplayName }
func (s *providerSource) Param(param int) Param     { return s.params[param].Make() }

func (s *providerSource) add(displayName string, factory func() Param) {
	s.params = append(s.params, Provider{DisplayName: displayName, Make: factory})
}

// NewTrackParams catalogs the parameters of one track: volume, pan and mute,
// the same for each send and receive, and any effect parameters pinned to
// the track control panel.
func NewTrackParams(track Track) Source {
	s := &providerSource{title: "Track Parameters"}
	s.add("volume", func() Param { return VolumeParam(track, "D_VOL") })
	s.add("pan", func() Param { return PanParam(track, "D_PAN") })
	s.add("mute", func() Param { return ToggleParam(track, "B_MUTE") })
	addSendParams(s, track, SendCategorySend, "send")
	addSendParams(s, track, SendCategoryReceive, "receive")
	if n := track.PanelFxParamCount(); n > 0 {
		chain := track.Fx()
		for i := 0; i < n; i++ {
			fx, param := track.PanelFxParam(i)
			paramName, _ := chain.ParamName(fx, param)
			fxName, _ := chain.Name(fx)
			s.add(fmt.Sprintf("%s (%s)", paramName, fxName), func() Param {
				p := newFxParam(chain, fx, param)
				p.markTouched()
				return p
			})
		}
	}
	return s
}

func addSendParams(s *providerSource, track Track, category SendCategory, categoryName string) {
	count := track.SendCount(category)
	for i := 0; i < count; i++ {
		vals := track.Send(category, i)
		number, name := track.SendTarget(category, i)
		// Example display name: "1 Drums send volume".
		prefix := fmt.Sprintf("%d ", number)
		if name != "" {
			prefix += name + " "
		}
		prefix += categoryName + " "
		s.add(prefix+"volume", func() Param { return VolumeParam(vals, "D_VOL") })
		s.add(prefix+"pan", func() Param { return PanParam(vals, "D_PAN") })
		s.add(prefix+"mute", func() Param { return ToggleParam(vals, "B_MUTE") })
		s.add(prefix+"mono", func() Param { return ToggleParam(vals, "B_MONO") })
	}
}

// NewItemParams catalogs the parameters of one media item and its active
// take, if any.
func NewItemParams(item Item, time TimeFormat) Source {
	s := &providerSource{title: "Item Parameters"}
	s.add("item volume", func() Param { return VolumeParam(item, "D_VOL") })
	if take, ok := item.ActiveTake(); ok {
		// Empty items have no take and thus no take parameters.
		s.add("take volume", func() Param { return VolumeParam(take, "D_VOL") })
		s.add("take pan", func() Param { return PanParam(take, "D_PAN") })
	}
	s.add("mute", func() Param { return ToggleParam(item, "B_MUTE") })
	s.add("fade in length", func() Param { return LengthParam(item, "D_FADEINLEN", time) })
	s.add("fade out length", func() Param { return LengthParam(item, "D_FADEOUTLEN", time) })
	return s
}
