package services

import (
	"errors"
	"testing"
	"time"

	"github.com/epeers/deficits/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func term(name string, took, left time.Time) models.PresidentTerm {
	return models.PresidentTerm{Name: name, TookOffice: took, LeftOffice: &left}
}

// postwarTerms mirrors the presidents source from Eisenhower to Obama, with
// Obama's departure already resolved.
func postwarTerms() []models.PresidentTerm {
	return []models.PresidentTerm{
		term("Dwight D. Eisenhower", day(1953, 1, 20), day(1961, 1, 20)),
		term("John F. Kennedy", day(1961, 1, 20), day(1963, 11, 22)),
		term("Lyndon B. Johnson", day(1963, 11, 22), day(1969, 1, 20)),
		term("Richard Nixon", day(1969, 1, 20), day(1974, 8, 9)),
		term("Gerald Ford", day(1974, 8, 9), day(1977, 1, 20)),
		term("Jimmy Carter", day(1977, 1, 20), day(1981, 1, 20)),
		term("Ronald Reagan", day(1981, 1, 20), day(1989, 1, 20)),
		term("George H. W. Bush", day(1989, 1, 20), day(1993, 1, 20)),
		term("Bill Clinton", day(1993, 1, 20), day(2001, 1, 20)),
		term("George W. Bush", day(2001, 1, 20), day(2009, 1, 20)),
		term("Barack Obama", day(2009, 1, 20), day(2017, 1, 20)),
	}
}

func TestBuildFiscalAttributions_Postwar(t *testing.T) {
	got, err := BuildFiscalAttributions(postwarTerms(), AttributionOptions{Anchor: "John F. Kennedy"})
	require.NoError(t, err)

	expected := []models.FiscalAttribution{
		{President: "John F. Kennedy", StartFiscalYear: 1963, EndFiscalYearExclusive: 1966},
		{President: "Lyndon B. Johnson", StartFiscalYear: 1966, EndFiscalYearExclusive: 1971},
		{President: "Richard Nixon", StartFiscalYear: 1971, EndFiscalYearExclusive: 1976},
		{President: "Gerald Ford", StartFiscalYear: 1976, EndFiscalYearExclusive: 1979},
		{President: "Jimmy Carter", StartFiscalYear: 1979, EndFiscalYearExclusive: 1983},
		{President: "Ronald Reagan", StartFiscalYear: 1983, EndFiscalYearExclusive: 1991},
		{President: "George H. W. Bush", StartFiscalYear: 1991, EndFiscalYearExclusive: 1995},
		{President: "Bill Clinton", StartFiscalYear: 1995, EndFiscalYearExclusive: 2003},
		{President: "George W. Bush", StartFiscalYear: 2003, EndFiscalYearExclusive: 2011},
		{President: "Barack Obama", StartFiscalYear: 2011, EndFiscalYearExclusive: 2019},
	}
	assert.Equal(t, expected, got)
}

func TestBuildFiscalAttributions_Contiguous(t *testing.T) {
	testCases := []struct {
		name string
		opts AttributionOptions
	}{
		{name: "Anchored at Kennedy", opts: AttributionOptions{Anchor: "John F. Kennedy"}},
		{name: "Anchored at Reagan", opts: AttributionOptions{Anchor: "Ronald Reagan"}},
		{name: "All terms with explicit start", opts: AttributionOptions{AnchorStartFiscalYear: 1954}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BuildFiscalAttributions(postwarTerms(), tc.opts)
			require.NoError(t, err)
			require.NotEmpty(t, got)
			for i := 0; i+1 < len(got); i++ {
				assert.Equal(t, got[i].EndFiscalYearExclusive, got[i+1].StartFiscalYear,
					"%s should end where %s starts", got[i].President, got[i+1].President)
			}
		})
	}
}

func TestBuildFiscalAttributions_ObamaBoundary(t *testing.T) {
	terms := []models.PresidentTerm{term("Barack Obama", day(2009, 1, 20), day(2017, 1, 20))}

	got, err := BuildFiscalAttributions(terms, AttributionOptions{AnchorStartFiscalYear: 2010})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2010, got[0].StartFiscalYear)
	assert.Equal(t, 2019, got[0].EndFiscalYearExclusive)
}

func TestBuildFiscalAttributions_SeptemberVersusOctober(t *testing.T) {
	build := func(left time.Time) int {
		terms := []models.PresidentTerm{term("Someone", day(1985, 1, 20), left)}
		got, err := BuildFiscalAttributions(terms, AttributionOptions{AnchorStartFiscalYear: 1986})
		require.NoError(t, err)
		return got[0].EndFiscalYearExclusive
	}

	sep := build(day(1990, time.September, 30))
	oct := build(day(1990, time.October, 1))
	assert.Equal(t, 1, oct-sep)
}

func TestBuildFiscalAttributions_DropsTermsBeforeAnchor(t *testing.T) {
	terms := append([]models.PresidentTerm{
		{Name: "William Henry Harrison", TookOffice: day(1841, 3, 4)}, // no departure date; out of scope
	}, postwarTerms()...)

	got, err := BuildFiscalAttributions(terms, AttributionOptions{Anchor: "Ronald Reagan"})
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "Ronald Reagan", got[0].President)
	assert.Equal(t, 1983, got[0].StartFiscalYear)
}

func TestBuildFiscalAttributions_AnchorStartOverride(t *testing.T) {
	got, err := BuildFiscalAttributions(postwarTerms(), AttributionOptions{Anchor: "Ronald Reagan", AnchorStartFiscalYear: 1981})
	require.NoError(t, err)
	assert.Equal(t, 1981, got[0].StartFiscalYear)
	assert.Equal(t, 1991, got[0].EndFiscalYearExclusive)
	assert.Equal(t, 1991, got[1].StartFiscalYear)
}

func TestBuildFiscalAttributions_IncompleteTermData(t *testing.T) {
	terms := postwarTerms()
	terms[len(terms)-1].LeftOffice = nil

	_, err := BuildFiscalAttributions(terms, AttributionOptions{Anchor: "John F. Kennedy"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompleteTermData))

	var incomplete *IncompleteTermData
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, "Barack Obama", incomplete.President)
}

func TestBuildFiscalAttributions_PredecessorWithoutDeparture(t *testing.T) {
	terms := postwarTerms()
	terms[0].LeftOffice = nil

	_, err := BuildFiscalAttributions(terms, AttributionOptions{Anchor: "John F. Kennedy"})
	var incomplete *IncompleteTermData
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, "Dwight D. Eisenhower", incomplete.President)
}

func TestBuildFiscalAttributions_Errors(t *testing.T) {
	outOfOrder := postwarTerms()
	outOfOrder[2], outOfOrder[3] = outOfOrder[3], outOfOrder[2]

	testCases := []struct {
		name     string
		terms    []models.PresidentTerm
		opts     AttributionOptions
		expected error
	}{
		{name: "No terms", terms: nil, opts: AttributionOptions{}, expected: ErrNoAttributions},
		{name: "Unknown anchor", terms: postwarTerms(), opts: AttributionOptions{Anchor: "Nobody"}, expected: ErrAnchorNotFound},
		{name: "Out of order", terms: outOfOrder, opts: AttributionOptions{Anchor: "John F. Kennedy"}, expected: ErrTermsOutOfOrder},
		{name: "First term without start", terms: postwarTerms(), opts: AttributionOptions{}, expected: ErrMissingAnchorStart},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildFiscalAttributions(tc.terms, tc.opts)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}
