package parse4880

import "fmt"

// UnknownPacket carries a packet this library has no decoder for: a
// tag and its raw body. Signature subpackets are also represented this
// way, since they are not promoted to typed variants.
type UnknownPacket struct {
	tag      uint8
	contents []byte
}

// NewUnknownPacket wraps an undecoded packet body.
func NewUnknownPacket(tag uint8, contents []byte) *UnknownPacket {
	return &UnknownPacket{tag: tag, contents: contents}
}

// Tag returns the on-the-wire packet type code.
func (p *UnknownPacket) Tag() uint8 { return p.tag }

// Contents returns the raw packet body.
func (p *UnknownPacket) Contents() []byte { return p.contents }

// Subpackets returns nil.
func (p *UnknownPacket) Subpackets() []Packet { return nil }

func (p *UnknownPacket) String() string {
	return fmt.Sprintf("Type %d", p.tag)
}
