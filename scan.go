package wc

import (
	"errors"
	"io"
)

// BufferSize is the chunk size used by Scan for each read.
const BufferSize = 16384

// Scan consumes r until end of stream and returns its line, word and
// byte counts. The buffer is refilled until the reader reports io.EOF;
// a read returning (0, nil) is retried, short reads are not taken as
// end of stream since r may be a pipe. Any other read error aborts the
// scan and is returned together with the counts gathered so far.
func Scan(r io.Reader) (Counts, error) {
	var (
		count Counter
		buf   = make([]byte, BufferSize)
	)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			count.Write(buf[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return count.Counts(), err
		}
	}
	return count.Counts(), nil
}
