package services

import (
	"fmt"

	"github.com/epeers/deficits/internal/models"
	"github.com/epeers/deficits/internal/util"
	log "github.com/sirupsen/logrus"
)

// AttributionOptions scopes the attribution to the terms starting at Anchor.
type AttributionOptions struct {
	// Anchor is the first president kept in the output. Empty keeps every term.
	Anchor string
	// AnchorStartFiscalYear overrides the anchor's start fiscal year. When zero,
	// the start is derived from the predecessor's departure.
	AnchorStartFiscalYear int
}

// BuildFiscalAttributions converts calendar terms into contiguous fiscal-year
// responsibility ranges. Terms must be ordered by took-office date. Each term's
// start is the previous term's exclusive end, so the output has no gaps and no
// overlaps. Terms before the anchor are dropped; only the anchor's immediate
// predecessor needs a departure date, to seed the first start.
func BuildFiscalAttributions(terms []models.PresidentTerm, opts AttributionOptions) ([]models.FiscalAttribution, error) {
	if len(terms) == 0 {
		return nil, ErrNoAttributions
	}

	for i := 1; i < len(terms); i++ {
		if terms[i].TookOffice.Before(terms[i-1].TookOffice) {
			return nil, fmt.Errorf("%w: %s took office before %s", ErrTermsOutOfOrder, terms[i].Name, terms[i-1].Name)
		}
	}

	anchorIdx := 0
	if opts.Anchor != "" {
		anchorIdx = -1
		for i, term := range terms {
			if term.Name == opts.Anchor {
				anchorIdx = i
				break
			}
		}
		if anchorIdx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrAnchorNotFound, opts.Anchor)
		}
	}

	start := opts.AnchorStartFiscalYear
	if start == 0 {
		if anchorIdx == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingAnchorStart, terms[0].Name)
		}
		prev := terms[anchorIdx-1]
		if prev.LeftOffice == nil {
			return nil, &IncompleteTermData{President: prev.Name, TookOffice: prev.TookOffice}
		}
		start = util.EndFiscalYearExclusive(*prev.LeftOffice)
	}

	attributions := make([]models.FiscalAttribution, 0, len(terms)-anchorIdx)
	for _, term := range terms[anchorIdx:] {
		if term.LeftOffice == nil {
			return nil, &IncompleteTermData{President: term.Name, TookOffice: term.TookOffice}
		}
		end := util.EndFiscalYearExclusive(*term.LeftOffice)
		attributions = append(attributions, models.FiscalAttribution{
			President:              term.Name,
			StartFiscalYear:        start,
			EndFiscalYearExclusive: end,
		})
		log.Debugf("attributed FY%d-FY%d to %s", start, end-1, term.Name)
		start = end
	}

	return attributions, nil
}
