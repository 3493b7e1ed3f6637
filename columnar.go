// Package columnar provides a compact binary format for row-oriented data
// that benefits from column-wise compression: many rows sharing a small
// set of fields, where each field's values compress far better grouped
// together than interleaved row-by-row.
//
// # Core features
//
//   - Per-column compression strategies (raw, RLE, delta RLE, delta-of-
//     delta, bool RLE), chosen per field
//   - Optional column-body compression (deflate, zstd, s2, lz4), gated by
//     a size threshold so small columns skip the framing overhead
//   - A forward/backward-compatible optional-field side-channel, so a
//     schema can gain fields without breaking old readers or writers
//   - Lazy, lockstep row iteration over decoded columns
//   - An opt-in whole-table xxhash64 checksum for integrity verification
//
// # Basic usage
//
// This package does not generate row<->column transposition code: each
// record type hand-writes its own ToBytes/FromBytes/IterFromBytes-shaped
// functions on top of the schema, rowcol, and table packages, the way
// Event (below) does. That keeps the core free of reflection and lets
// each record type choose exactly which strategy fits which field.
//
//	events := []Event{
//	    {Timestamp: 1000, Value: 1.5, Host: "host-a"},
//	    {Timestamp: 1010, Value: 1.5, Host: "host-a"},
//	    {Timestamp: 1020, Value: 2.25, Host: "host-b", Tag: "spike"},
//	}
//
//	data, err := EventsToBytes(events, column.DefaultCompressionConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decoded, err := EventsFromBytes(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for ev, err := range IterEventsFromBytes(data) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("%+v\n", ev)
//	}
package columnar

import (
	"iter"

	"github.com/colcodec/columnar/column"
	"github.com/colcodec/columnar/endian"
	"github.com/colcodec/columnar/internal/pool"
	"github.com/colcodec/columnar/iterrow"
	"github.com/colcodec/columnar/primitive"
	"github.com/colcodec/columnar/rowcol"
	"github.com/colcodec/columnar/schema"
	"github.com/colcodec/columnar/table"
)

// tagFieldIndex is Event.Tag's stable optional-field index.
const tagFieldIndex = 0

// Event is a demonstration record: a timestamp series with a mostly-
// repeating value and host, plus an optional free-form tag. It exercises
// the delta-of-delta and RLE strategies and the optional-field
// side-channel in one record type.
type Event struct {
	Timestamp int64
	Value     float64
	Host      string
	Tag       string // empty means "no tag"; encoded only when any row has one
}

// EventSchema describes Event's wire layout: Timestamp/Value/Host as
// required fields in declaration order, Tag as optional field 0.
func EventSchema() (schema.RecordSchema, error) {
	return schema.NewRecordSchema([]schema.FieldDescriptor{
		{Name: "timestamp", Kind: schema.KindPrimitive, Strategy: schema.StrategyDeltaOfDelta},
		{Name: "value", Kind: schema.KindPrimitive, Strategy: schema.StrategyRLE},
		{Name: "host", Kind: schema.KindString, Strategy: schema.StrategyRLE},
		{Name: "tag", Kind: schema.KindString, Strategy: schema.StrategyRLE, Optional: true, Index: tagFieldIndex},
	})
}

// EventsToBytes encodes events into a table using cfg for every column's
// compression framing. The Tag column is only written (as the optional
// side-channel entry at tagFieldIndex) if at least one event has a
// non-empty tag.
func EventsToBytes(events []Event, cfg column.CompressionConfig) ([]byte, error) {
	engine := endian.GetLittleEndianEngine()

	tw := table.NewWriter(engine, table.WithChecksum())
	defer tw.Release()

	tw.WriteRowCount(len(events))

	// These four slices never escape this function: each is filled below,
	// handed to an Encode*Column call that reads it once, and discarded.
	// That transient lifetime is exactly what the row-to-column staging
	// pools are for.
	ts, putTs := pool.GetInt64Slice(len(events))
	defer putTs()
	values, putValues := pool.GetFloat64Slice(len(events))
	defer putValues()
	hosts, putHosts := pool.GetStringSlice(len(events))
	defer putHosts()
	tags, putTags := pool.GetStringSlice(len(events))
	defer putTags()
	hasTag := false

	for i, ev := range events {
		ts[i] = ev.Timestamp
		values[i] = ev.Value
		hosts[i] = ev.Host
		tags[i] = ev.Tag

		if ev.Tag != "" {
			hasTag = true
		}
	}

	if err := rowcol.EncodeInt64Column(tw.Primitive(), ts, schema.StrategyDeltaOfDelta, cfg); err != nil {
		return nil, err
	}

	if err := rowcol.EncodeFloat64Column(tw.Primitive(), values, schema.StrategyRLE, cfg); err != nil {
		return nil, err
	}

	if err := rowcol.EncodeStringColumn(tw.Primitive(), hosts, schema.StrategyRLE, cfg); err != nil {
		return nil, err
	}

	if hasTag {
		var encodeErr error
		tw.WriteOptionalField(tagFieldIndex, func(sub *primitive.Writer) {
			encodeErr = rowcol.EncodeStringColumn(sub, tags, schema.StrategyRLE, cfg)
		})

		if encodeErr != nil {
			return nil, encodeErr
		}
	}

	return tw.Bytes(), nil
}

// EventsFromBytes decodes a table produced by EventsToBytes. A table with
// no tag column (either an older writer, or hasTag was false) decodes
// every event's Tag as "".
func EventsFromBytes(data []byte) ([]Event, error) {
	engine := endian.GetLittleEndianEngine()

	tr, err := table.NewReader(data, engine, table.ExpectChecksum())
	if err != nil {
		return nil, err
	}

	n, err := tr.ReadRowCount()
	if err != nil {
		return nil, err
	}

	ts, err := rowcol.DecodeInt64Column(tr.Primitive(), schema.StrategyDeltaOfDelta)
	if err != nil {
		return nil, err
	}

	values, err := rowcol.DecodeFloat64Column(tr.Primitive(), schema.StrategyRLE)
	if err != nil {
		return nil, err
	}

	hosts, err := rowcol.DecodeStringColumn(tr.Primitive(), schema.StrategyRLE)
	if err != nil {
		return nil, err
	}

	optFields, err := tr.OptionalFields()
	if err != nil {
		return nil, err
	}

	tags := make([]string, n)
	if body, ok := optFields[tagFieldIndex]; ok {
		sub := primitive.NewReader(body, engine)

		decoded, err := rowcol.DecodeStringColumn(sub, schema.StrategyRLE)
		if err != nil {
			return nil, err
		}

		copy(tags, decoded)
	}

	events := make([]Event, n)
	for i := range events {
		events[i] = Event{Timestamp: ts[i], Value: values[i], Host: hosts[i], Tag: tags[i]}
	}

	return events, nil
}

// iterErr returns a one-shot iterator that yields only err, for reporting
// a setup failure (reading the header, opening a column) that happens
// before any row can be pulled.
func iterErr(err error) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		yield(Event{}, err)
	}
}

// IterEventsFromBytes decodes a table produced by EventsToBytes and
// returns a lazy, lockstep row iterator over it: each required column is
// opened through its rowcol streaming decoder (unframing/decompressing
// its body once, which compression makes unavoidable, but never
// collecting its values into a slice), and iterrow.Compose pulls one
// value from each column per row. No column is materialized up front.
func IterEventsFromBytes(data []byte) iter.Seq2[Event, error] {
	engine := endian.GetLittleEndianEngine()

	tr, err := table.NewReader(data, engine, table.ExpectChecksum())
	if err != nil {
		return iterErr(err)
	}

	n, err := tr.ReadRowCount()
	if err != nil {
		return iterErr(err)
	}

	tsDec, err := rowcol.NewInt64ColumnDecoder(tr.Primitive(), schema.StrategyDeltaOfDelta)
	if err != nil {
		return iterErr(err)
	}

	valueDec, err := rowcol.NewFloat64ColumnDecoder(tr.Primitive(), schema.StrategyRLE)
	if err != nil {
		return iterErr(err)
	}

	hostDec, err := rowcol.NewStringColumnDecoder(tr.Primitive(), schema.StrategyRLE)
	if err != nil {
		return iterErr(err)
	}

	// The optional-field side-channel is small (stable index + raw bytes
	// per entry) and must be fully drained to locate the tag column, if
	// any; this is not the per-row materialization the lazy contract
	// avoids, only a lookup of where the tag column's bytes start.
	optFields, err := tr.OptionalFields()
	if err != nil {
		return iterErr(err)
	}

	tagNext := func() (string, bool, error) { return "", false, nil }

	if body, ok := optFields[tagFieldIndex]; ok {
		tagDec, err := rowcol.NewStringColumnDecoder(primitive.NewReader(body, engine), schema.StrategyRLE)
		if err != nil {
			return iterErr(err)
		}

		tagNext = tagDec.Next
	} else {
		// No tag column was written (no event had a non-empty tag): every
		// row's tag is "", for exactly n rows.
		i := 0
		tagNext = func() (string, bool, error) {
			if i >= n {
				return "", false, nil
			}

			i++

			return "", true, nil
		}
	}

	var ts int64
	var value float64
	var host string
	var tag string

	build := func() Event {
		return Event{Timestamp: ts, Value: value, Host: host, Tag: tag}
	}

	return iterrow.Compose(build,
		iterrow.PullInto(tsDec.Next, &ts),
		iterrow.PullInto(valueDec.Next, &value),
		iterrow.PullInto(hostDec.Next, &host),
		iterrow.PullInto(tagNext, &tag),
	)
}
