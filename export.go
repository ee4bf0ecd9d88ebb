package obukhov

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"strconv"
)

// csvHeader is the fixed column order consumed by tabular displays and
// delimited-text importers.
var csvHeader = []string{"zeta", "phi_m", "phi_h", "ri_g", "ri_b"}

// WriteCSV writes a reference table, one row per line in the fixed column
// order zeta, phi_m, phi_h, ri_g, ri_b, with values formatted to the given
// decimal precision.
func WriteCSV(w io.Writer, rows iter.Seq[SampleRow], precision int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for row := range rows {
		record := []string{
			formatValue(row.Zeta, precision),
			formatValue(row.PhiM, precision),
			formatValue(row.PhiH, precision),
			formatValue(row.RiG, precision),
			formatValue(row.RiB, precision),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row for ζ=%g: %w", row.Zeta, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
