package wc

import (
	"fmt"
	"io"
	"os"
)

// TotalLabel is the label of the grand total line.
const TotalLabel = "total"

// Run counts every file in order and writes one report line per file
// to out, followed by the grand total. With no files given, in is
// scanned instead and a single unlabeled line is written. Files that
// cannot be opened are reported on errw and skipped; they contribute
// nothing to the total and do not fail the run. A read error on an
// open source aborts the whole run.
func Run(files []string, in io.Reader, out, errw io.Writer) error {
	if len(files) == 0 {
		c, err := Scan(in)
		if err != nil {
			return err
		}
		return Fprint(out, c, "")
	}
	var total Counts
	for _, f := range files {
		r, err := os.Open(f)
		if err != nil {
			fmt.Fprintln(errw, err)
			continue
		}
		c, err := Scan(r)
		r.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
		if err := Fprint(out, c, f); err != nil {
			return err
		}
		total = total.Add(c)
	}
	return Fprint(out, total, TotalLabel)
}
