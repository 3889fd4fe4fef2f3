package parse4880

// Parse decodes a concatenation of binary OpenPGP packets, returning
// them in wire order. An empty input yields no packets.
func Parse(data []byte) ([]Packet, error) {
	var packets []Packet
	err := ParseFunc(data, func(packet Packet) bool {
		packets = append(packets, packet)
		return true
	})
	if err != nil {
		return nil, err
	}
	return packets, nil
}

// ParseFunc walks a concatenation of binary OpenPGP packets, handing
// each decoded packet to sink. Returning false from sink stops the walk
// after the current packet.
func ParseFunc(data []byte, sink func(Packet) bool) error {
	for position := int64(0); position < int64(len(data)); {
		// A packet header octet looks like:
		//
		//       ---------------
		//       1|x|x|x|x|x|x|x
		//   -------------------
		//   Bit 7|6|5|4|3|2|1|0
		//
		// Bit seven is always one; bit six distinguishes the
		// old (zero) and new (one) framing forms. RFC 4880 4.2.
		header := data[position]
		if header&0x80 == 0 {
			return &InvalidHeaderError{Pos: position}
		}

		var tag uint8
		var field lengthField
		var err error
		if header&0x40 != 0 {
			// New format: the tag fills bits [5:0] and the
			// length field describes its own shape.
			tag = header & 0x3F
			field, err = findLengthNew(data, position+1, true)
		} else {
			// Old format: the tag sits in bits [5:2] and
			// bits [1:0] give the length type.
			tag = (header & 0x3C) >> 2
			field, err = findLengthOld(data, position+1, header&0x03)
		}
		if err != nil {
			return err
		}

		total := 1 + int64(field.fieldWidth) + field.length
		if int64(len(data))-position < total {
			return &PacketLengthError{
				Pos:     position,
				Claimed: total,
				Actual:  int64(len(data)) - position,
			}
		}

		bodyStart := position + 1 + int64(field.fieldWidth)
		packet := parsePacket(tag, data[bodyStart:bodyStart+field.length])
		if !sink(packet) {
			return nil
		}
		position += total
	}
	return nil
}

// parsePacket dispatches a packet body to the decoder for its tag. A
// failed body decode demotes the packet to UnknownPacket so that one
// unsupported body does not abort the stream.
func parsePacket(tag uint8, body []byte) Packet {
	var packet Packet
	var err error
	switch tag {
	case TagSignature:
		packet, err = NewSignaturePacket(body)
	case TagPublicKey:
		packet, err = NewPublicKeyPacket(body)
	case TagUserID:
		packet = NewUserIDPacket(body)
	case TagPublicSubkey:
		packet, err = NewPublicSubkeyPacket(body)
	default:
		packet = NewUnknownPacket(tag, body)
	}
	if err != nil {
		return NewUnknownPacket(tag, body)
	}
	return packet
}

// ParseSubpackets decodes a signature subpacket region. Subpackets use
// new-format lengths without the partial form; the first body octet is
// the subpacket type, so every record must be at least one octet long.
// Offsets in errors are relative to the start of the region where they
// are known at all.
func ParseSubpackets(data []byte) ([]Packet, error) {
	var subpackets []Packet
	for position := int64(0); position < int64(len(data)); {
		field, err := findLengthNew(data, position, false)
		if err != nil {
			return nil, err
		}

		total := int64(field.fieldWidth) + field.length
		if int64(len(data))-position < total || field.length == 0 {
			return nil, &PacketLengthError{
				Pos:     PositionUnknown,
				Claimed: total,
				Actual:  int64(len(data)) - position,
			}
		}

		tag := data[position+int64(field.fieldWidth)]
		body := data[position+int64(field.fieldWidth)+1 : position+total]
		subpackets = append(subpackets, NewUnknownPacket(tag, body))
		position += total
	}
	return subpackets, nil
}
