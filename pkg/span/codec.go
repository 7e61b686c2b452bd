package span

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Wire tags, one per variant.
const (
	tagBounded byte = 0
	tagFrom    byte = 1
	tagUntil   byte = 2
	tagAll     byte = 3
	tagVoid    byte = 4
)

// ErrUnknownTag is returned when decoding a tag byte outside the five known
// variants.
var ErrUnknownTag = errors.New("unknown span tag")

// BinaryWriter is the byte-stream collaborator the codec writes to.
type BinaryWriter interface {
	WriteByte(c byte) error
	WriteLong(v int64) error
}

// BinaryReader is the byte-stream collaborator the codec reads from.
type BinaryReader interface {
	ReadByte() (byte, error)
	ReadLong() (int64, error)
}

// Encode writes s as a tag byte followed by its finite bounds as big-endian
// 64-bit integers.
func Encode(w BinaryWriter, s Span) error {
	switch s := s.(type) {
	case Bounded:
		if err := w.WriteByte(tagBounded); err != nil {
			return err
		}
		if err := w.WriteLong(s.start); err != nil {
			return err
		}
		return w.WriteLong(s.stop)
	case From:
		if err := w.WriteByte(tagFrom); err != nil {
			return err
		}
		return w.WriteLong(s.start)
	case Until:
		if err := w.WriteByte(tagUntil); err != nil {
			return err
		}
		return w.WriteLong(s.stop)
	case All:
		return w.WriteByte(tagAll)
	case Void:
		return w.WriteByte(tagVoid)
	}
	panic(unknownVariant(s))
}

// Decode reads one span written by Encode. A tag byte outside the known
// variants fails with ErrUnknownTag.
func Decode(r BinaryReader) (Span, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagBounded:
		start, err := r.ReadLong()
		if err != nil {
			return nil, err
		}
		stop, err := r.ReadLong()
		if err != nil {
			return nil, err
		}
		s, err := New(start, stop)
		if err != nil {
			return nil, err
		}
		return s, nil
	case tagFrom:
		start, err := r.ReadLong()
		if err != nil {
			return nil, err
		}
		return From{start: start}, nil
	case tagUntil:
		stop, err := r.ReadLong()
		if err != nil {
			return nil, err
		}
		return Until{stop: stop}, nil
	case tagAll:
		return All{}, nil
	case tagVoid:
		return Void{}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownTag, tag)
}

type writer struct {
	w io.Writer
}

// NewWriter adapts any io.Writer to the byte-stream operations the codec
// needs.
func NewWriter(w io.Writer) BinaryWriter {
	return &writer{w: w}
}

func (r *writer) WriteByte(c byte) error {
	_, err := r.w.Write([]byte{c})
	return err
}

func (r *writer) WriteLong(v int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	_, err := r.w.Write(buf[:])
	return err
}

type reader struct {
	r io.Reader
}

// NewReader adapts any io.Reader to the byte-stream operations the codec
// needs.
func NewReader(rd io.Reader) BinaryReader {
	return &reader{r: rd}
}

func (r *reader) ReadByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (r *reader) ReadLong() (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}
