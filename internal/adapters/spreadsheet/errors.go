package spreadsheet

import "errors"

// Sentinel kinds for workbook errors.
var (
	ErrNoSheets = errors.New("workbook has no sheets")
)
