// Package fields parses textual field descriptions into typed buffer writes.
//
// Accepted forms:
//
//	value          minimal width holding value
//	value:width    the low width bits of value
//	u8:value       WriteByte
//	i8:value       WriteChar
//	bool:value     WriteBool
//	i16:value      WriteShort
//	u32:value      WriteInt
//	u64:value      WriteLong
//
// Values accept any prefix understood by strconv (0x, 0b, 0o).
package fields

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spacemeshos/bitbuffer/bitbuffer"
	"github.com/spacemeshos/bitbuffer/shared"
)

type Kind int

const (
	Bits Kind = iota
	Byte
	Char
	Bool
	Short
	Int
	Long
)

var kinds = map[string]Kind{
	"u8":   Byte,
	"i8":   Char,
	"bool": Bool,
	"i16":  Short,
	"u32":  Int,
	"u64":  Long,
}

type Field struct {
	Kind  Kind
	Value uint64
	Width uint
}

func Parse(s string) (Field, error) {
	prefix, rest, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		v, err := strconv.ParseUint(prefix, 0, 64)
		if err != nil {
			return Field{}, fmt.Errorf("invalid field %q: %w", s, err)
		}
		return Field{Kind: Bits, Value: v, Width: uint(shared.NumBits(v))}, nil
	}

	if kind, ok := kinds[prefix]; ok {
		return parseTyped(s, kind, rest)
	}

	v, err := strconv.ParseUint(prefix, 0, 64)
	if err != nil {
		return Field{}, fmt.Errorf("invalid field %q: %w", s, err)
	}
	width, err := strconv.ParseUint(rest, 10, 8)
	if err != nil || width > bitbuffer.MaxWidth {
		return Field{}, fmt.Errorf("invalid field %q: width must be in [0, %d]", s, bitbuffer.MaxWidth)
	}
	return Field{Kind: Bits, Value: v, Width: uint(width)}, nil
}

func parseTyped(s string, kind Kind, rest string) (Field, error) {
	f := Field{Kind: kind}
	var err error
	switch kind {
	case Bool:
		var v bool
		v, err = strconv.ParseBool(rest)
		if v {
			f.Value = 1
		}
		f.Width = 8
	case Char:
		var v int64
		v, err = strconv.ParseInt(rest, 0, 8)
		f.Value, f.Width = uint64(uint8(v)), 8
	case Short:
		var v int64
		v, err = strconv.ParseInt(rest, 0, 16)
		f.Value, f.Width = uint64(uint16(v)), 16
	case Byte:
		f.Value, err = strconv.ParseUint(rest, 0, 8)
		f.Width = 8
	case Int:
		f.Value, err = strconv.ParseUint(rest, 0, 32)
		f.Width = 32
	case Long:
		f.Value, err = strconv.ParseUint(rest, 0, 64)
		f.Width = 64
	}
	if err != nil {
		return Field{}, fmt.Errorf("invalid field %q: %w", s, err)
	}
	return f, nil
}

func ParseAll(args []string) ([]Field, error) {
	out := make([]Field, 0, len(args))
	for _, arg := range args {
		f, err := Parse(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// Write appends f to buf through the writer matching its kind.
func (f Field) Write(buf *bitbuffer.Buffer) error {
	switch f.Kind {
	case Byte:
		return buf.WriteByte(byte(f.Value))
	case Char:
		return buf.WriteChar(int8(f.Value))
	case Bool:
		return buf.WriteBool(f.Value != 0)
	case Short:
		return buf.WriteShort(int16(f.Value))
	case Int:
		return buf.WriteInt(uint32(f.Value))
	case Long:
		return buf.WriteLong(f.Value)
	default:
		return buf.WriteBits(f.Value, f.Width)
	}
}

func (f Field) String() string {
	return fmt.Sprintf("%d:%d", f.Value, f.Width)
}
