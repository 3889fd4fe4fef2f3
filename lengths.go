package parse4880

// lengthField is a decoded packet length: the body length it announces
// and the number of octets the field itself occupied.
type lengthField struct {
	length     int64
	fieldWidth int
}

// findLengthNew decodes a new-format length field starting at position.
//
// The first octet determines the shape of the field: below 192 it is
// the length itself, from 192 it opens a two-octet length, and 255
// opens a five-octet length. Octets from 224 to 254 introduce a partial
// body length; those only exist where allowPartial is set (top-level
// packets), and are rejected as unsupported. Where partial lengths
// cannot occur (signature subpackets), the two-octet form extends up to
// a first octet of 254.
func findLengthNew(data []byte, position int64, allowPartial bool) (lengthField, error) {
	if position >= int64(len(data)) {
		return lengthField{}, &PacketHeaderLengthError{Pos: position}
	}

	first := int64(data[position])
	switch {
	case first < 192:
		return lengthField{length: first, fieldWidth: 1}, nil
	case (allowPartial && first < 224) || (!allowPartial && first < 255):
		if position+2 > int64(len(data)) {
			return lengthField{}, &PacketHeaderLengthError{Pos: position}
		}
		// RFC 4880 4.2.2.2
		length := (first-192)<<8 + int64(data[position+1]) + 192
		return lengthField{length: length, fieldWidth: 2}, nil
	case first < 255:
		return lengthField{}, &UnsupportedFeatureError{
			Pos:     position,
			Feature: "partial body lengths",
		}
	default:
		if position+5 > int64(len(data)) {
			return lengthField{}, &PacketHeaderLengthError{Pos: position}
		}
		// RFC 4880 4.2.2.3
		length := int64(ReadInteger(data[position+1 : position+5]))
		return lengthField{length: length, fieldWidth: 5}, nil
	}
}

// findLengthOld decodes an old-format length field starting at
// position. The two low bits of the packet header give lengthType: a
// 1, 2, or 4 octet big-endian length, or for type 3 an indeterminate
// length running to the end of the buffer.
func findLengthOld(data []byte, position int64, lengthType uint8) (lengthField, error) {
	if lengthType == 3 {
		return lengthField{
			length:     int64(len(data)) - position,
			fieldWidth: 0,
		}, nil
	}

	width := int64(1) << lengthType
	if position+width > int64(len(data)) {
		return lengthField{}, &PacketHeaderLengthError{Pos: position}
	}
	return lengthField{
		length:     int64(ReadInteger(data[position : position+width])),
		fieldWidth: int(width),
	}, nil
}
