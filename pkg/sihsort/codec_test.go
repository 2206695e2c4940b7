package sihsort

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daviszhen/sihsort/pkg/common"
)

func TestInt64Codec_RoundTrips(t *testing.T) {
	codec := Int64Codec[int]()
	buf := make([]byte, codec.Size)
	codec.Encode(-42, buf)
	assert.Equal(t, -42, codec.Decode(buf))
}

func TestFloat64Codec_RoundTrips(t *testing.T) {
	codec := Float64Codec[float64]()
	buf := make([]byte, codec.Size)
	codec.Encode(3.14159, buf)
	assert.Equal(t, 3.14159, codec.Decode(buf))
}

func TestHugeIntCodec_RoundTrips(t *testing.T) {
	codec := HugeIntCodec()
	h := common.HugeIntFromInt64(-12345)
	buf := make([]byte, codec.Size)
	codec.Encode(h, buf)
	assert.True(t, h.Equal(codec.Decode(buf)))
}

func TestDecimalCodec_RoundTrips(t *testing.T) {
	codec := DecimalCodec()
	d := common.DecimalFromInt64(12345)
	buf := make([]byte, codec.Size)
	codec.Encode(d, buf)
	assert.True(t, d.Equal(codec.Decode(buf)))
}

func TestEncodeDecodeAll(t *testing.T) {
	codec := Int64Codec[int]()
	ks := []int{1, -2, 3, -4, 5}
	buf := encodeAll(ks, codec)
	assert.Equal(t, len(ks)*codec.Size, len(buf))
	assert.Equal(t, ks, decodeAll(buf, codec))
}
