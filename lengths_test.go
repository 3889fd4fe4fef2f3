package parse4880

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLengthNew(t *testing.T) {
	for _, test := range []struct {
		name         string
		data         []byte
		allowPartial bool
		length       int64
		fieldWidth   int
	}{
		{"one-octet", []byte{0x64}, true, 100, 1},
		{"two-octet", []byte{0xC5, 0xFB}, true, 1723, 2},
		{"five-octet", []byte{0xFF, 0x00, 0x01, 0x86, 0xA0}, true, 100000, 5},
		{"two-octet-boundary-low", []byte{0xC0, 0x00}, true, 192, 2},
		{"one-octet-boundary", []byte{0xBF}, true, 191, 1},
		{"no-partial-two-octet", []byte{0xE0, 0x14}, false, 8404, 2},
		{"no-partial-upper", []byte{0xFE, 0xFF}, false, 16319, 2},
	} {
		t.Run(test.name, func(t *testing.T) {
			field, err := findLengthNew(test.data, 0, test.allowPartial)
			require.NoError(t, err)
			assert.Equal(t, test.length, field.length)
			assert.Equal(t, test.fieldWidth, field.fieldWidth)
		})
	}
}

func TestFindLengthNewPartialUnsupported(t *testing.T) {
	for _, first := range []byte{0xE0, 0xF0, 0xFE} {
		_, err := findLengthNew([]byte{first, 0x00}, 0, true)
		var unsupported *UnsupportedFeatureError
		require.ErrorAs(t, err, &unsupported, "first octet %#x", first)
		assert.Equal(t, "partial body lengths", unsupported.Feature)
	}
}

func TestFindLengthNewTruncated(t *testing.T) {
	for _, test := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"two-octet-cut", []byte{0xC5}},
		{"five-octet-cut", []byte{0xFF, 0x00, 0x01}},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := findLengthNew(test.data, 0, true)
			var truncated *PacketHeaderLengthError
			require.ErrorAs(t, err, &truncated)
		})
	}
}

func TestFindLengthOld(t *testing.T) {
	for _, test := range []struct {
		name       string
		data       []byte
		lengthType uint8
		length     int64
		fieldWidth int
	}{
		{"one-octet", []byte{0x0A}, 0, 10, 1},
		{"two-octet", []byte{0x01, 0x02}, 1, 258, 2},
		{"four-octet", []byte{0x00, 0x01, 0x86, 0xA0}, 2, 100000, 4},
		{"indeterminate", []byte{0xAA, 0xBB, 0xCC}, 3, 3, 0},
	} {
		t.Run(test.name, func(t *testing.T) {
			field, err := findLengthOld(test.data, 0, test.lengthType)
			require.NoError(t, err)
			assert.Equal(t, test.length, field.length)
			assert.Equal(t, test.fieldWidth, field.fieldWidth)
		})
	}
}

func TestFindLengthOldTruncated(t *testing.T) {
	_, err := findLengthOld([]byte{0x01}, 0, 1)
	var truncated *PacketHeaderLengthError
	require.ErrorAs(t, err, &truncated)

	_, err = findLengthOld([]byte{0x01, 0x02}, 0, 2)
	require.ErrorAs(t, err, &truncated)
}

func TestFindLengthOldIndeterminateFromOffset(t *testing.T) {
	field, err := findLengthOld([]byte{0x00, 0xAA, 0xBB}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), field.length)
	assert.Equal(t, 0, field.fieldWidth)
}
