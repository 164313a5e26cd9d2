package validation

import (
	"math"
	"regexp"
	"strings"

	"ndmedia/internal/domain"
	"ndmedia/internal/dto"
	"ndmedia/internal/util"
)

const (
	maxAnchors    = 64
	maxOptionIdx  = 64
	maxScrollSize = 1e7
)

var sectionIDPattern = regexp.MustCompile(`^[a-z][a-z0-9-]{0,39}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateViewID checks that a view id is a ULID.
func (v *Validator) ValidateViewID(viewID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(viewID) == "" {
		errors = append(errors, domain.NewMissingFieldError("view_id"))
	} else if !util.IsULID(viewID) {
		errors = append(errors, domain.NewInvalidFormatError("view_id", viewID))
	}

	return errors
}

// ValidateSelectOption checks the quiz selection body. The upper bound is a
// sanity limit; the question itself decides which options exist.
func (v *Validator) ValidateSelectOption(req dto.SelectOptionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Option == nil {
		errors = append(errors, domain.NewMissingFieldError("option"))
	} else if *req.Option < 0 || *req.Option > maxOptionIdx {
		errors = append(errors, domain.NewOutOfRangeError("option", *req.Option, 0, maxOptionIdx))
	}

	return errors
}

// ValidateJump checks the carousel jump body.
func (v *Validator) ValidateJump(req dto.JumpRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Index == nil {
		errors = append(errors, domain.NewMissingFieldError("index"))
	}

	return errors
}

// ValidateScroll checks a scroll notification for values no browser would send.
func (v *Validator) ValidateScroll(req dto.ScrollRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if !finite(req.ScrollY) || req.ScrollY < 0 || req.ScrollY > maxScrollSize {
		errors = append(errors, domain.NewOutOfRangeError("scroll_y", req.ScrollY, 0, maxScrollSize))
	}
	if !finite(req.ViewportHeight) || req.ViewportHeight < 0 || req.ViewportHeight > maxScrollSize {
		errors = append(errors, domain.NewOutOfRangeError("viewport_height", req.ViewportHeight, 0, maxScrollSize))
	}
	if len(req.Anchors) > maxAnchors {
		errors = append(errors, domain.NewOutOfRangeError("anchors", len(req.Anchors), 0, maxAnchors))
		return errors
	}
	for _, a := range req.Anchors {
		if !sectionIDPattern.MatchString(a.ID) {
			errors = append(errors, domain.NewInvalidFormatError("anchors.id", a.ID))
		}
		if !finite(a.Top) || !finite(a.Bottom) {
			errors = append(errors, domain.NewInvalidFormatError("anchors.bounds", a.ID))
		}
	}

	return errors
}

// ValidateSectionSelect checks a sidebar click.
func (v *Validator) ValidateSectionSelect(req dto.SectionSelectRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.SectionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("section_id"))
	} else if !sectionIDPattern.MatchString(req.SectionID) {
		errors = append(errors, domain.NewInvalidFormatError("section_id", req.SectionID))
	}
	if !finite(req.OffsetTop) || req.OffsetTop < 0 || req.OffsetTop > maxScrollSize {
		errors = append(errors, domain.NewOutOfRangeError("offset_top", req.OffsetTop, 0, maxScrollSize))
	}

	return errors
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
