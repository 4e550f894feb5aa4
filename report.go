package wc

import (
	"fmt"
	"io"
)

// FieldWidth is the width of each counter column in a report line.
const FieldWidth = 11

// Fprint writes one report line to w: the three counters right
// aligned in fixed columns and, when label is not empty, four spaces
// followed by the label.
func Fprint(w io.Writer, c Counts, label string) error {
	var err error
	if label == "" {
		_, err = fmt.Fprintf(w, "%*d%*d%*d\n", FieldWidth, c.Lines, FieldWidth, c.Words, FieldWidth, c.Bytes)
	} else {
		_, err = fmt.Fprintf(w, "%*d%*d%*d    %s\n", FieldWidth, c.Lines, FieldWidth, c.Words, FieldWidth, c.Bytes, label)
	}
	return err
}
