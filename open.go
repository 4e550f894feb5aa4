package wc

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
)

const ExtGZ = ".gz"

// OpenFile opens file for reading, decompressing it on the fly when it
// carries the .gz extension.
func OpenFile(file string) (io.ReadCloser, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	var r io.Reader = f
	if filepath.Ext(file) == ExtGZ {
		r, err = gzip.NewReader(r)
		if err != nil {
			f.Close()
			return nil, err
		}
	}
	rc := readcloser{
		Reader: r,
		closer: f,
	}
	return &rc, nil
}

type readcloser struct {
	io.Reader
	closer io.Closer
}

func (r *readcloser) Close() error {
	if c, ok := r.Reader.(*gzip.Reader); ok {
		c.Close()
	}
	return r.closer.Close()
}
