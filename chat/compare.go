package chat

// ViewMode says whether the detail panel shows one item or a side-by-side
// comparison.
type ViewMode string

const (
	ModeSingle    ViewMode = "single"
	ModeComparing ViewMode = "comparing"
)

// maxCompared bounds the comparison set so the side-by-side layout stays a
// fixed two-column grid.
const maxCompared = 2

// CompareState governs the detail panel: which recommendations are selected,
// whether the panel is open, and whether it is in comparison mode. Selection
// is a sliding window of the two most recent picks.
type CompareState struct {
	mode     ViewMode
	selected []Recommendation
	open     bool
}

// NewCompareState starts in single mode with nothing selected and the panel
// hidden.
func NewCompareState() *CompareState {
	return &CompareState{mode: ModeSingle}
}

// Mode returns the current view mode.
func (s *CompareState) Mode() ViewMode {
	return s.mode
}

// Selected returns the selected recommendations, most recently selected last.
func (s *CompareState) Selected() []Recommendation {
	out := make([]Recommendation, len(s.selected))
	copy(out, s.selected)
	return out
}

// Open reports whether the detail panel is showing.
func (s *CompareState) Open() bool {
	return s.open
}

// CanRenderSideBySide reports whether the two-column comparison layout can be
// drawn. Comparison mode with fewer than two selections renders as single.
func (s *CompareState) CanRenderSideBySide() bool {
	return s.mode == ModeComparing && len(s.selected) == maxCompared
}

// Select opens the panel on a single item's detail, replacing any previous
// selection and leaving comparison mode.
func (s *CompareState) Select(item Recommendation) {
	s.mode = ModeSingle
	s.selected = []Recommendation{item}
	s.open = true
}

// CompareWith adds an item to the comparison set, entering comparison mode.
// Selecting an item already present is a no-op (identity is brand+name, not
// reference). A third pick evicts the oldest selection so the two most recent
// remain.
func (s *CompareState) CompareWith(item Recommendation) {
	for _, sel := range s.selected {
		if sel.Key() == item.Key() {
			return
		}
	}
	s.mode = ModeComparing
	s.open = true
	s.selected = append(s.selected, item)
	if len(s.selected) > maxCompared {
		s.selected = s.selected[len(s.selected)-maxCompared:]
	}
}

// ExitComparison leaves comparison mode, collapsing the selection to its
// first element; the panel re-renders that item's single detail.
func (s *CompareState) ExitComparison() {
	s.mode = ModeSingle
	if len(s.selected) > 1 {
		s.selected = s.selected[:1]
	}
}

// ClosePanel hides the panel from either mode and clears the selection. The
// cancel key forces this transition as well.
func (s *CompareState) ClosePanel() {
	s.mode = ModeSingle
	s.selected = nil
	s.open = false
}
