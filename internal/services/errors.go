package services

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrIncompleteTermData      = errors.New("incomplete term data")
	ErrUnattributedLeadingYear = errors.New("unattributed leading fiscal year")
	ErrDuplicateFiscalYear     = errors.New("duplicate fiscal year in deficit series")
	ErrDuplicateBoundary       = errors.New("duplicate attribution start fiscal year")
	ErrAnchorNotFound          = errors.New("anchor president not found")
	ErrTermsOutOfOrder         = errors.New("presidential terms are not ordered by took-office date")
	ErrNoAttributions          = errors.New("no fiscal attributions")
	ErrMissingAnchorStart      = errors.New("anchor term has no predecessor and no start fiscal year")
)

// IncompleteTermData reports a term in scope whose departure date is unknown.
// It matches ErrIncompleteTermData with errors.Is.
type IncompleteTermData struct {
	President  string
	TookOffice time.Time
}

func (e *IncompleteTermData) Error() string {
	return fmt.Sprintf("%s: %s (took office %s) has no resolvable left-office date",
		ErrIncompleteTermData, e.President, e.TookOffice.Format("2006-01-02"))
}

func (e *IncompleteTermData) Is(target error) bool {
	return target == ErrIncompleteTermData
}

// UnattributedLeadingYear reports a deficit series that begins before the
// earliest attribution boundary, leaving nothing to carry forward.
// It matches ErrUnattributedLeadingYear with errors.Is.
type UnattributedLeadingYear struct {
	FiscalYear       int
	EarliestBoundary int
}

func (e *UnattributedLeadingYear) Error() string {
	return fmt.Sprintf("%s: fiscal year %d precedes the earliest attribution boundary %d",
		ErrUnattributedLeadingYear, e.FiscalYear, e.EarliestBoundary)
}

func (e *UnattributedLeadingYear) Is(target error) bool {
	return target == ErrUnattributedLeadingYear
}
