package domain

import "math"

// AnchorBounds are the on-screen vertical bounds of one anchor, relative to
// the top of the viewport.
type AnchorBounds struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// ScrollEvent is one scroll notification from the browser.
type ScrollEvent struct {
	ScrollY        float64        `json:"scroll_y"`
	ViewportHeight float64        `json:"viewport_height"`
	Anchors        []AnchorBounds `json:"anchors"`
}

// ScrollTarget tells the client where to scroll after a sidebar click.
type ScrollTarget struct {
	SectionID string  `json:"section_id"`
	Top       float64 `json:"top"`
	Behavior  string  `json:"behavior"`
}

// TrackerSettings tune the active-section heuristic.
type TrackerSettings struct {
	ReferenceFraction float64
	HeaderOffset      float64
	TopThreshold      float64
}

// DefaultTrackerSettings: reference line at a third of the viewport, a 100px
// fixed header and the first section forced within 10px of the top.
var DefaultTrackerSettings = TrackerSettings{
	ReferenceFraction: 1.0 / 3.0,
	HeaderOffset:      100,
	TopThreshold:      10,
}

// TrackerState is the serializable part of a section tracker.
type TrackerState struct {
	ActiveSectionID string `json:"active_section_id"`
}

// SectionTracker decides which sidebar section is in view.
//
// Sections are scanned in listed order and the last one whose top has
// crossed the reference line wins. Near the top of the document the first
// section is forced. This is a heuristic: with very short or overlapping
// sections more than one anchor can be "in view" at once.
type SectionTracker struct {
	sections []Section
	settings TrackerSettings
	state    TrackerState
}

func NewSectionTracker(sections []Section, settings TrackerSettings) *SectionTracker {
	return &SectionTracker{sections: sections, settings: settings}
}

// RestoreSectionTracker resumes a tracker. A stored id that is no longer a
// configured section is dropped.
func RestoreSectionTracker(sections []Section, settings TrackerSettings, state TrackerState) *SectionTracker {
	t := NewSectionTracker(sections, settings)
	if t.has(state.ActiveSectionID) {
		t.state = state
	}
	return t
}

func (t *SectionTracker) State() TrackerState {
	return t.state
}

func (t *SectionTracker) Active() string {
	return t.state.ActiveSectionID
}

func (t *SectionTracker) Sections() []Section {
	return t.sections
}

func (t *SectionTracker) has(id string) bool {
	if id == "" {
		return false
	}
	for _, s := range t.sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// ReferenceLine is the viewport offset an anchor's top must reach to count as in view.
func (t *SectionTracker) ReferenceLine(viewportHeight float64) float64 {
	if viewportHeight <= 0 {
		return t.settings.HeaderOffset
	}
	return viewportHeight * t.settings.ReferenceFraction
}

// Observe recomputes the active section from a scroll notification and
// returns it. The result is empty or one of the configured section ids.
func (t *SectionTracker) Observe(ev ScrollEvent) string {
	if len(t.sections) == 0 {
		t.state.ActiveSectionID = ""
		return ""
	}
	if ev.ScrollY <= t.settings.TopThreshold {
		t.state.ActiveSectionID = t.sections[0].ID
		return t.state.ActiveSectionID
	}

	bounds := make(map[string]AnchorBounds, len(ev.Anchors))
	for _, a := range ev.Anchors {
		bounds[a.ID] = a
	}

	line := t.ReferenceLine(ev.ViewportHeight)
	active := ""
	for _, s := range t.sections {
		b, ok := bounds[s.ID]
		if !ok {
			continue
		}
		if b.Top <= line {
			active = s.ID
		}
	}
	t.state.ActiveSectionID = active
	return active
}

// Select activates a section immediately, ahead of the scroll it triggers,
// and returns where the client should scroll to.
func (t *SectionTracker) Select(id string, offsetTop float64) (ScrollTarget, error) {
	if !t.has(id) {
		return ScrollTarget{}, ErrUnknownSection
	}
	t.state.ActiveSectionID = id
	return ScrollTarget{
		SectionID: id,
		Top:       math.Max(0, offsetTop-t.settings.HeaderOffset),
		Behavior:  "smooth",
	}, nil
}
