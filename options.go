package excelhandler

// Grid limits of the xlsx file format. They bound the extent scan so a
// backend that misreports a cell can never send the probe loop into the
// void.
const (
	MaxRows = 1048576
	MaxCols = 16384
)

// Options adjusts how a Handler walks and reports on a workbook.
type Options struct {
	// MaxScanRows caps how far down column 1 the extent scan probes.
	// Zero or negative means the xlsx grid limit.
	MaxScanRows int

	// MaxScanCols caps how far along row 1 the extent scan probes.
	// Zero or negative means the xlsx grid limit.
	MaxScanCols int

	// Logger receives session progress. Nil discards it.
	Logger Logger
}

// DefaultOptions returns the options a Handler runs with when the caller
// has no opinion.
func DefaultOptions() Options {
	return Options{
		MaxScanRows: MaxRows,
		MaxScanCols: MaxCols,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxScanRows <= 0 {
		o.MaxScanRows = MaxRows
	}
	if o.MaxScanCols <= 0 {
		o.MaxScanCols = MaxCols
	}
	return o
}
