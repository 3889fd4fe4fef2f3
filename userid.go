package parse4880

import "fmt"

// UserIDPacket is a decoded user-ID packet (tag 13): a UTF-8 textual
// identity, carried verbatim.
type UserIDPacket struct {
	contents []byte
}

// NewUserIDPacket wraps a user-ID packet body.
func NewUserIDPacket(contents []byte) *UserIDPacket {
	return &UserIDPacket{contents: contents}
}

// Tag returns the user-ID packet tag.
func (p *UserIDPacket) Tag() uint8 { return TagUserID }

// Contents returns the raw packet body.
func (p *UserIDPacket) Contents() []byte { return p.contents }

// Subpackets returns nil; user-ID packets have no subpackets.
func (p *UserIDPacket) Subpackets() []Packet { return nil }

// UserID returns the identity string.
func (p *UserIDPacket) UserID() string { return string(p.contents) }

func (p *UserIDPacket) String() string {
	return fmt.Sprintf("User ID: %s", p.contents)
}
