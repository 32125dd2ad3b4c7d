package rpc

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Message is implemented by every request and response of the CRM service.
// Encoding follows the protobuf wire format so any protobuf client that
// shares the field numbers can talk to the server.
type Message interface {
	AppendWire(b []byte) []byte
	ConsumeWire(b []byte) error
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendStrings[S ~string](b []byte, num protowire.Number, ss []S) []byte {
	for _, s := range ss {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, string(s))
	}
	return b
}

func appendInt(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

// appendOptBool writes v whenever it is set, false included.
func appendOptBool(b []byte, num protowire.Number, v *bool) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(*v))
}

func appendMessage(b []byte, num protowire.Number, m Message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.AppendWire(nil))
}

// appendTime writes t as a google.protobuf.Timestamp. Zero times are omitted.
func appendTime(b []byte, num protowire.Number, t time.Time) []byte {
	if t.IsZero() {
		return b
	}
	ts := timestamppb.New(t)
	var inner []byte
	inner = appendInt(inner, 1, ts.GetSeconds())
	inner = appendInt(inner, 2, int64(ts.GetNanos()))
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

type field struct {
	num    protowire.Number
	varint uint64
	bytes  []byte
}

func (f field) str() string  { return string(f.bytes) }
func (f field) i64() int64   { return int64(f.varint) }
func (f field) flag() bool   { return protowire.DecodeBool(f.varint) }
func (f field) flagP() *bool { v := f.flag(); return &v }

func (f field) timestamp() (time.Time, error) {
	ts := &timestamppb.Timestamp{}
	err := eachField(f.bytes, func(g field) error {
		switch g.num {
		case 1:
			ts.Seconds = g.i64()
		case 2:
			ts.Nanos = int32(g.i64())
		}
		return nil
	})
	if err != nil {
		return time.Time{}, err
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, fmt.Errorf("rpc: field %d: %w", f.num, err)
	}
	return ts.AsTime(), nil
}

func (f field) message(m Message) error { return m.ConsumeWire(f.bytes) }

// eachField walks the top-level fields of b. Fixed-width and group fields
// are skipped; no message in this package uses them.
func eachField(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		f := field{num: num}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
			continue
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// List is a response carrying a repeated message in field 1.
type List[T any, P interface {
	*T
	Message
}] struct {
	Items []T
}

func (l *List[T, P]) AppendWire(b []byte) []byte {
	for i := range l.Items {
		b = appendMessage(b, 1, P(&l.Items[i]))
	}
	return b
}

func (l *List[T, P]) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		var v T
		if err := f.message(P(&v)); err != nil {
			return err
		}
		l.Items = append(l.Items, v)
		return nil
	})
}

// Empty is the request or response of calls that carry no data.
type Empty struct{}

func (*Empty) AppendWire(b []byte) []byte { return b }
func (*Empty) ConsumeWire([]byte) error   { return nil }
