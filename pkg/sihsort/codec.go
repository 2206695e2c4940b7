package sihsort

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/daviszhen/sihsort/pkg/common"
)

// KeyCodec makes a value type communicable across ranks by fixing its wire
// representation: Encode must always write exactly Size bytes, and
// Decode(Encode(k)) must equal k. Gather, Bcast, and the payload exchange
// all move flat byte buffers, so every type crossing the wire - keys and,
// via a separate codec, whole elements - needs one of these.
type KeyCodec[K any] struct {
	Size   int
	Encode func(k K, dst []byte)
	Decode func(src []byte) K
}

// Int64Codec builds a KeyCodec for any built-in integer key type by
// round-tripping through int64.
func Int64Codec[K Integer]() KeyCodec[K] {
	return KeyCodec[K]{
		Size: 8,
		Encode: func(k K, dst []byte) {
			binary.LittleEndian.PutUint64(dst, uint64(int64(k)))
		},
		Decode: func(src []byte) K {
			return K(int64(binary.LittleEndian.Uint64(src)))
		},
	}
}

// Float64Codec builds a KeyCodec for any built-in floating point key type.
func Float64Codec[K Float]() KeyCodec[K] {
	return KeyCodec[K]{
		Size: 8,
		Encode: func(k K, dst []byte) {
			binary.LittleEndian.PutUint64(dst, math.Float64bits(float64(k)))
		},
		Decode: func(src []byte) K {
			return K(math.Float64frombits(binary.LittleEndian.Uint64(src)))
		},
	}
}

// HugeIntCodec builds a KeyCodec for common.HugeInt: 8 bytes Lower + 8
// bytes Upper, both fixed-width, so it round-trips exactly.
func HugeIntCodec() KeyCodec[common.HugeInt] {
	return KeyCodec[common.HugeInt]{
		Size: 16,
		Encode: func(h common.HugeInt, dst []byte) {
			binary.LittleEndian.PutUint64(dst[0:8], h.Lower)
			binary.LittleEndian.PutUint64(dst[8:16], uint64(h.Upper))
		},
		Decode: func(src []byte) common.HugeInt {
			return common.HugeInt{
				Lower: binary.LittleEndian.Uint64(src[0:8]),
				Upper: int64(binary.LittleEndian.Uint64(src[8:16])),
			}
		},
	}
}

// decimalCodecWidth bounds the textual width a Decimal can round-trip
// through DecimalCodec without truncation. govalues/decimal keeps at most
// 19 digits, so the text of any value it holds, interpolated splitters
// included, fits with room to spare.
const decimalCodecWidth = 40

// DecimalCodec builds a KeyCodec for common.Decimal. Decimal values aren't
// naturally fixed-width, so this pads/truncates their decimal text to
// decimalCodecWidth bytes - sufficient for any splitter this package's
// interpolation actually produces.
func DecimalCodec() KeyCodec[common.Decimal] {
	return KeyCodec[common.Decimal]{
		Size: decimalCodecWidth,
		Encode: func(d common.Decimal, dst []byte) {
			s := d.String()
			for i := range dst {
				dst[i] = ' '
			}
			copy(dst, s)
		},
		Decode: func(src []byte) common.Decimal {
			s := strings.TrimSpace(string(src))
			d, err := common.ParseDecimal(s)
			if err != nil {
				panic("sihsort: corrupt Decimal on the wire: " + err.Error())
			}
			return d
		},
	}
}

// encodeAll encodes a slice of K into a flat, fixed-stride byte buffer
// (len(ks)*codec.Size bytes), the shape Comm.Gather/Bcast expect.
func encodeAll[K any](ks []K, codec KeyCodec[K]) []byte {
	out := make([]byte, len(ks)*codec.Size)
	for i, k := range ks {
		codec.Encode(k, out[i*codec.Size:(i+1)*codec.Size])
	}
	return out
}

func decodeAll[K any](buf []byte, codec KeyCodec[K]) []K {
	n := len(buf) / codec.Size
	out := make([]K, n)
	for i := 0; i < n; i++ {
		out[i] = codec.Decode(buf[i*codec.Size : (i+1)*codec.Size])
	}
	return out
}
