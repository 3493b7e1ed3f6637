package compress

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"

	"github.com/colcodec/columnar/errs"
)

// deflateWriterPools caches one sync.Pool of *flate.Writer per compression
// level; flate.NewWriter performs nontrivial setup that is worth reusing
// across columns, but the setup differs per level so one pool can't serve
// all of them.
var (
	deflateWriterPools   = map[int]*sync.Pool{}
	deflateWriterPoolsMu sync.Mutex
)

func deflateWriterPoolFor(level int) *sync.Pool {
	deflateWriterPoolsMu.Lock()
	defer deflateWriterPoolsMu.Unlock()

	if p, ok := deflateWriterPools[level]; ok {
		return p
	}

	p := &sync.Pool{
		New: func() any {
			w, _ := flate.NewWriter(nil, level)
			return w
		},
	}
	deflateWriterPools[level] = p

	return p
}

// DeflateCompressor implements the default column compression backend,
// using github.com/klauspost/compress/flate (a drop-in, faster
// reimplementation of compress/flate). Level follows flate's 0-9 scale
// (flate.NoCompression..flate.BestCompression); NewDeflateCompressor uses
// flate.DefaultCompression (-1).
type DeflateCompressor struct {
	level int
}

var _ Codec = (*DeflateCompressor)(nil)

// NewDeflateCompressor creates a deflate compressor at the default level.
func NewDeflateCompressor() DeflateCompressor {
	return DeflateCompressor{level: flate.DefaultCompression}
}

// NewDeflateCompressorLevel creates a deflate compressor at an explicit
// level (0-9).
func NewDeflateCompressorLevel(level int) DeflateCompressor {
	return DeflateCompressor{level: level}
}

// Compress deflates data at the configured compression level.
func (c DeflateCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer

	pool := deflateWriterPoolFor(c.level)

	w, _ := pool.Get().(*flate.Writer)
	defer pool.Put(w)

	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress inflates data produced by Compress with no bound on the
// inflated size (it is DecompressBounded with maxSize 0), so it should only
// be used on already-trusted data.
func (c DeflateCompressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressBounded(data, 0)
}

// DecompressBounded inflates data, aborting with an error if the inflated
// size would exceed maxSize (0 means unbounded). This guards against
// decompression bombs in untrusted column bodies, the same concern the LZ4
// path addresses with its adaptive-buffer cap.
func (c DeflateCompressor) DecompressBounded(data []byte, maxSize int64) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	if maxSize <= 0 {
		var out bytes.Buffer
		if _, err := out.ReadFrom(r); err != nil {
			return nil, err
		}

		return out.Bytes(), nil
	}

	limited := &limitedReader{r: r, remaining: maxSize}

	var out bytes.Buffer
	if _, err := out.ReadFrom(limited); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

type limitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		// The cap is used up: a clean end of stream here means the output
		// was exactly maxSize, while any further byte exceeds it.
		var probe [1]byte

		n, err := l.r.Read(probe[:])
		if n > 0 {
			return 0, errs.ErrIO
		}

		return 0, err
	}

	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}

	n, err := l.r.Read(p)
	l.remaining -= int64(n)

	return n, err
}
