package paramnav

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type (
	// FxIterator walks through the effects of one subject in depth first
	// order, including effects nested inside containers, one node per Next
	// call. For each visited node it exposes the flat index the host's
	// effect parameter API expects, a human readable label and the nesting
	// level. On tracks, the input/monitoring chain follows once the normal
	// chain is exhausted.
	//
	// Flat indices go stale as soon as the user restructures the effects;
	// construct a fresh iterator per navigation session instead of caching
	// them.
	FxIterator struct {
		chain   FxChain
		withRec bool
		master  bool

		rec            bool
		fxIndex        int
		containedCount int
		stack          []fxFrame
	}

	fxFrame struct {
		indexInContainer int
		containerCount   int
		containerFxIndex int
		multiplier       int
	}
)

// TrackFxIterator iterates the effects of a track, including its
// input/monitoring chain.
func TrackFxIterator(track Track) *FxIterator {
	return newFxIterator(track.Fx(), true, track.IsMaster())
}

// TakeFxIterator iterates the effects of a take.
func TakeFxIterator(take Take) *FxIterator {
	return newFxIterator(take.Fx(), false, false)
}

func newFxIterator(chain FxChain, withRec, master bool) *FxIterator {
	it := &FxIterator{chain: chain, withRec: withRec, master: master, fxIndex: -1}
	// The first Next call should move to the first effect, index 0.
	it.stack = append(it.stack, fxFrame{
		indexInContainer: -1,
		containerCount:   chain.Count(),
		multiplier:       1,
	})
	return it
}

// Next advances to the next effect, returning false when there are no more.
func (it *FxIterator) Next() bool {
	if len(it.stack) == 0 {
		return false
	}
	if it.containedCount > 0 {
		// The previous node is a container. Enter it and yield its first
		// child right away.
		current := it.stack[len(it.stack)-1]
		sub := fxFrame{containerCount: it.containedCount}
		if len(it.stack) == 1 {
			// A container entered from a root level.
			sub.containerFxIndex = ContainerFxIndexOffset + current.indexInContainer + 1
		} else {
			sub.containerFxIndex = it.fxIndex
		}
		sub.multiplier = current.multiplier * (current.containerCount + 1)
		it.stack = append(it.stack, sub)
		return it.yield()
	}
	for {
		current := &it.stack[len(it.stack)-1]
		current.indexInContainer++
		if current.indexInContainer < current.containerCount {
			return it.yield()
		}
		// The end of this container; walk out of it.
		it.stack = it.stack[:len(it.stack)-1]
		if len(it.stack) == 0 {
			break
		}
	}
	if it.withRec && !it.rec {
		// There might be input or monitoring effects.
		return it.firstRec()
	}
	return false
}

func (it *FxIterator) firstRec() bool {
	count := it.chain.RecCount()
	if count == 0 {
		return false
	}
	it.rec = true
	it.stack = append(it.stack, fxFrame{
		indexInContainer: 0,
		containerCount:   count,
		multiplier:       1,
	})
	return it.yield()
}

func (it *FxIterator) yield() bool {
	it.fxIndex = 0
	if it.rec {
		it.fxIndex = RecFxIndexOffset
	}
	item := it.stack[len(it.stack)-1]
	if len(it.stack) == 1 {
		// Not inside a container.
		it.fxIndex += item.indexInContainer
	} else {
		it.fxIndex += (item.indexInContainer+1)*item.multiplier + item.containerFxIndex
	}
	// A nonzero contained count marks this node as a container and makes the
	// next call descend into it.
	res, _ := it.chain.NamedConfig(it.fxIndex, "container_count")
	it.containedCount, _ = strconv.Atoi(res)
	return true
}

// FxIndex returns the flat index of the current effect.
func (it *FxIterator) FxIndex() int { return it.fxIndex }

// IsContainer reports whether the current effect is a container of further
// effects.
func (it *FxIterator) IsContainer() bool { return it.containedCount > 0 }

// Level returns the nesting level of the current effect, 1 for root levels.
func (it *FxIterator) Level() int { return len(it.stack) }

// Label returns the display label of the current effect: its 1 based position
// among its siblings and its shortened name, with a tag separating
// input/monitoring effects from ordinary ones.
func (it *FxIterator) Label() string {
	name, _ := it.chain.Name(it.fxIndex)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %s", it.stack[len(it.stack)-1].indexInContainer+1, ShortFxName(name))
	if it.rec && len(it.stack) == 1 {
		if it.master {
			sb.WriteString(" [monitor]")
		} else {
			sb.WriteString(" [input]")
		}
	}
	return sb.String()
}

var fxNameRe = regexp.MustCompile(`^(\w+): (.+?)( \(.*?\))?$`)

// ShortFxName strips the vendor prefix and the trailing parenthesised
// qualifier from an effect name. JS effects keep the qualifier: not all of
// them carry a vendor name there, so stripping could lose useful information.
func ShortFxName(name string) string {
	m := fxNameRe.FindStringSubmatch(name)
	if m == nil {
		return name
	}
	if m[1] == "JS" {
		return m[2] + m[3]
	}
	return m[2]
}
