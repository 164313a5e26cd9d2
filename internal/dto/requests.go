package dto

import "ndmedia/internal/domain"

// SelectOptionRequest is the body of POST /quiz/select.
type SelectOptionRequest struct {
	Option *int `json:"option"`
}

// JumpRequest is the body of POST /carousel/jump.
type JumpRequest struct {
	Index *int `json:"index"`
}

// ScrollRequest is one scroll notification from a mounted page.
type ScrollRequest struct {
	ScrollY        float64               `json:"scroll_y"`
	ViewportHeight float64               `json:"viewport_height"`
	Anchors        []domain.AnchorBounds `json:"anchors"`
}

// ToEvent converts the request to the tracker's input.
func (r ScrollRequest) ToEvent() domain.ScrollEvent {
	return domain.ScrollEvent{
		ScrollY:        r.ScrollY,
		ViewportHeight: r.ViewportHeight,
		Anchors:        r.Anchors,
	}
}

// SectionSelectRequest is a sidebar click.
type SectionSelectRequest struct {
	SectionID string  `json:"section_id"`
	OffsetTop float64 `json:"offset_top"`
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
