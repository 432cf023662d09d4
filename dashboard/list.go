package dashboard

// PageIncrement is the visible-row window step for the show more/less/all/min
// controls. All records are already in memory; this only windows the render.
const PageIncrement = 10

// List owns the multi-select set and the visible-row window over the ordered
// account ids the orchestrator derives from the latest snapshot.
type List struct {
	ids      []string
	selected []string
	visible  int
}

func NewList() *List {
	return &List{visible: PageIncrement}
}

// SetItems replaces the ordered id list on every fresh snapshot. Selected ids
// that no longer exist are dropped so the all-selected check stays honest.
func (l *List) SetItems(ids []string) {
	l.ids = ids
	present := make(map[string]bool, len(ids))
	for _, id := range ids {
		present[id] = true
	}
	kept := l.selected[:0]
	for _, id := range l.selected {
		if present[id] {
			kept = append(kept, id)
		}
	}
	l.selected = kept
}

func (l *List) isSelected(id string) bool {
	for _, s := range l.selected {
		if s == id {
			return true
		}
	}
	return false
}

// Toggle flips one id's membership in the selection set.
func (l *List) Toggle(id string) {
	for i, s := range l.selected {
		if s == id {
			l.selected = append(l.selected[:i], l.selected[i+1:]...)
			return
		}
	}
	l.selected = append(l.selected, id)
}

// ToggleAll is a toggle, not a strict select-all: a fully selected list is
// cleared, anything else (including a partial selection) becomes fully
// selected.
func (l *List) ToggleAll() {
	if len(l.selected) == len(l.ids) && len(l.ids) > 0 {
		l.selected = nil
		return
	}
	l.selected = append([]string(nil), l.ids...)
}

// Selected returns the selection in insertion order.
func (l *List) Selected() []string {
	return append([]string(nil), l.selected...)
}

func (l *List) SelectedCount() int { return len(l.selected) }

// Visible returns the windowed slice of ids.
func (l *List) Visible() []string {
	n := l.visible
	if n > len(l.ids) {
		n = len(l.ids)
	}
	return append([]string(nil), l.ids[:n]...)
}

func (l *List) Window() int { return l.visible }

func (l *List) ShowMore() {
	if l.visible <= len(l.ids) {
		l.visible += PageIncrement
	}
}

func (l *List) ShowLess() {
	if l.visible > PageIncrement {
		l.visible -= PageIncrement
	}
}

func (l *List) ShowMin() { l.visible = PageIncrement }

func (l *List) ShowAll() { l.visible = len(l.ids) }
