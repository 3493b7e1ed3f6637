package table

import (
	"encoding/binary"

	"github.com/colcodec/columnar/endian"
	"github.com/colcodec/columnar/errs"
	"github.com/colcodec/columnar/internal/hash"
	"github.com/colcodec/columnar/internal/indextrack"
	"github.com/colcodec/columnar/internal/options"
	"github.com/colcodec/columnar/primitive"
)

// ReadOption configures a Reader.
type ReadOption = options.Option[*readConfig]

type readConfig struct {
	checksum bool
}

// ExpectChecksum tells NewReader to expect and verify a trailing xxhash64
// checksum, as written by a Writer constructed with table.WithChecksum.
// The wire format carries no self-describing flag for this: a checksummed
// table and a plain one are indistinguishable except by the trailing 8
// bytes, so the reader must be told out-of-band (matching how the writer
// was configured) which one it is looking at.
func ExpectChecksum() ReadOption {
	return options.NoError(func(c *readConfig) { c.checksum = true })
}

// Reader parses one table's wire form: the row-count header, the
// required-field positional prefix (read by the caller directly through
// Primitive()), and the optional-field side-channel (read through
// OptionalFields).
type Reader struct {
	r *primitive.Reader
}

// NewReader parses data as a table body encoded with engine's byte order.
// If ExpectChecksum is given, the trailing 8 bytes are verified against an
// xxhash64 of the preceding body and stripped before parsing continues;
// a mismatch returns errs.ErrColumnarDecode.
func NewReader(data []byte, engine endian.EndianEngine, opts ...ReadOption) (*Reader, error) {
	cfg := &readConfig{}
	// Options as constructed here never fail; ignore the error return.
	_ = options.Apply(cfg, opts...)

	if cfg.checksum {
		if len(data) < 8 {
			return nil, errs.DecodeErrorf("table: data too short for checksum trailer")
		}

		body, trailer := data[:len(data)-8], data[len(data)-8:]
		want := binary.LittleEndian.Uint64(trailer)
		got := hash.Checksum(body)

		if got != want {
			return nil, errs.DecodeErrorf("table: checksum mismatch: want %x, got %x", want, got)
		}

		data = body
	}

	return &Reader{r: primitive.NewReader(data, engine)}, nil
}

// Primitive returns the underlying primitive.Reader, for reading the
// required-field positional prefix directly (e.g. via rowcol.Decode*Column
// calls).
func (tr *Reader) Primitive() *primitive.Reader {
	return tr.r
}

// ReadRowCount reads the table's row count. Must be called first, before
// any required field is read.
func (tr *Reader) ReadRowCount() (int, error) {
	n, err := tr.r.ReadUvarint()
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

// OptionalFields drains the remainder of the table as optional-field
// side-channel entries, returning each stable index's raw encoded bytes. A
// repeated index is rejected; an index absent from the caller's known set
// is simply returned for the caller to ignore, which is what lets an older
// reader skip fields a newer writer added.
func (tr *Reader) OptionalFields() (map[uint64][]byte, error) {
	tracker := indextrack.NewTracker()
	out := make(map[uint64][]byte)

	for !tr.r.Done() {
		index, err := tr.r.ReadUvarint()
		if err != nil {
			return nil, err
		}

		if err := tracker.Track(index); err != nil {
			return nil, err
		}

		body, err := tr.r.ReadBytes()
		if err != nil {
			return nil, err
		}

		out[index] = body
	}

	return out, nil
}
