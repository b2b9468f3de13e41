package sources

import "time"

// Source is one raw dataset: where it is published and which cache file holds it
type Source struct {
	Name      string
	URL       string
	CacheFile string
}

// DeficitFooterLines is the number of trailing notes lines in the deficit file
const DeficitFooterLines = 7

// DeficitValueColumn is the header of the deficit-as-percent-of-GDP column
const DeficitValueColumn = "Federal Deficit-fed percent GDP"

// LoaderConfig holds the fixed parameters of a Loader
type LoaderConfig struct {
	Deficit    Source
	Presidents Source

	// MaxFiscalYear is the inclusive upper bound of the deficit series.
	MaxFiscalYear int

	// LeftOfficeOverrides resolves departures the source cannot provide,
	// such as a president still in office when the file was published.
	LeftOfficeOverrides map[string]time.Time
}
