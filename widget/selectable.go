// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/google/uuid"

	"seabird.dev/ui"
	"seabird.dev/ui/io/event"
	"seabird.dev/ui/layout"
)

// Selectable is one member of an exclusive selection group. A
// press selects it and deselects every other member sharing the
// group id, wherever they sit in the tree.
type Selectable struct {
	*SelectableEmitter
	body *selectableBody
}

// NewSelectableGroup allocates a fresh group id.
func NewSelectableGroup() uuid.UUID { return uuid.New() }

// NewSelectable builds a group member with default and selected
// variants.
func NewSelectable(def, selected Drawable, isSelected bool, onSelect func(*ui.Context), group uuid.UUID) *Selectable {
	start := "default"
	if isSelected {
		start = "selected"
	}
	body := &selectableBody{
		states:   NewEnum(map[string]Drawable{"default": def, "selected": selected}, start),
		onSelect: onSelect,
	}
	body.Group = Group{Layout: &layout.Stack{}, Items: []Drawable{body.states}}
	return &Selectable{
		SelectableEmitter: NewSelectableEmitter(body, group),
		body:              body,
	}
}

// Selected reports whether this member shows its selected variant.
func (s *Selectable) Selected() bool { return s.body.states.Active() == "selected" }

type selectableBody struct {
	Group
	states   *Enum
	onSelect func(*ui.Context)
}

func (s *selectableBody) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	se, ok := e.(SelectedEvent)
	if !ok {
		return nil
	}
	if se.Selected {
		s.states.Display("selected")
		ctx.HapticFeedback()
		if s.onSelect != nil {
			s.onSelect(ctx)
		}
	} else {
		s.states.Display("default")
	}
	return nil
}
