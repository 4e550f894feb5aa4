package wc

// Counts is the result of scanning one input source.
type Counts struct {
	Lines int64
	Words int64
	Bytes int64
}

func (c Counts) Add(other Counts) Counts {
	c.Lines += other.Lines
	c.Words += other.Words
	c.Bytes += other.Bytes
	return c
}

const (
	space    = ' '
	tab      = '\t'
	carriage = '\r'
	newline  = '\n'
)

type scanState int8

const (
	inSpace scanState = iota
	inWord
)

// Counter classifies a byte stream into lines, words and bytes. It
// implements io.Writer so it can sit behind io.Copy or a tee; the
// in-word state survives between calls, which keeps words spanning
// two writes counted once.
type Counter struct {
	lines int64
	words int64
	bytes int64

	state scanState
}

func NewCounter() *Counter {
	var c Counter
	return &c
}

func (c *Counter) Write(bs []byte) (int, error) {
	for _, b := range bs {
		c.scan(b)
	}
	c.bytes += int64(len(bs))
	return len(bs), nil
}

func (c *Counter) Counts() Counts {
	return Counts{
		Lines: c.lines,
		Words: c.words,
		Bytes: c.bytes,
	}
}

func (c *Counter) Reset() {
	*c = Counter{}
}

func (c *Counter) scan(b byte) {
	switch b {
	case newline:
		// newline ends both the line and the current word
		c.lines++
		c.state = inSpace
	case space, tab, carriage:
		c.state = inSpace
	default:
		if c.state == inSpace {
			c.words++
		}
		c.state = inWord
	}
}
