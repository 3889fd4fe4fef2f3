package parse4880

import (
	"crypto/sha1"
	"fmt"
)

// PublicKeyPacket is a decoded public-key packet (tag 6). Only version
// four keys are supported.
type PublicKeyPacket struct {
	contents []byte

	version            uint8
	creationTime       int64
	publicKeyAlgorithm uint8
	keyMaterial        []byte
	fingerprint        []byte
}

// NewPublicKeyPacket decodes a public-key packet body:
//
//	[1] Version
//	[4] Creation time
//	[1] Public-key algorithm
//	[?] Key material
func NewPublicKeyPacket(contents []byte) (*PublicKeyPacket, error) {
	if len(contents) < 1 {
		return nil, &InvalidHeaderError{Pos: PositionUnknown}
	}
	if contents[0] != 4 {
		return nil, &UnsupportedFeatureError{
			Pos:     PositionUnknown,
			Feature: "non-v4 keys",
		}
	}
	if len(contents) < 6 {
		return nil, &InvalidHeaderError{Pos: PositionUnknown}
	}

	packet := &PublicKeyPacket{
		contents:           contents,
		version:            contents[0],
		creationTime:       int64(ReadInteger(contents[1:5])),
		publicKeyAlgorithm: contents[5],
		keyMaterial:        contents[6:],
	}

	// The fingerprint is the SHA-1 hash of the octet 0x99, a
	// two-octet body length, and the body itself. RFC 4880 12.2.
	digest := sha1.New()
	digest.Write([]byte{0x99})
	digest.Write(WriteInteger(uint64(len(contents)), 2))
	digest.Write(contents)
	packet.fingerprint = digest.Sum(nil)

	return packet, nil
}

// Tag returns the public-key packet tag.
func (p *PublicKeyPacket) Tag() uint8 { return TagPublicKey }

// Contents returns the raw packet body.
func (p *PublicKeyPacket) Contents() []byte { return p.contents }

// Subpackets returns nil; key packets have no subpackets.
func (p *PublicKeyPacket) Subpackets() []Packet { return nil }

// Version returns the key packet version, always four.
func (p *PublicKeyPacket) Version() uint8 { return p.version }

// CreationTime returns the key's creation time in unix epoch seconds.
func (p *PublicKeyPacket) CreationTime() int64 { return p.creationTime }

// PublicKeyAlgorithm returns the public-key algorithm code.
func (p *PublicKeyPacket) PublicKeyAlgorithm() uint8 { return p.publicKeyAlgorithm }

// KeyMaterial returns the algorithm-specific key material bytes.
func (p *PublicKeyPacket) KeyMaterial() []byte { return p.keyMaterial }

// Fingerprint returns the twenty-byte SHA-1 key fingerprint.
func (p *PublicKeyPacket) Fingerprint() []byte { return p.fingerprint }

// KeyID returns the low eight bytes of the fingerprint.
func (p *PublicKeyPacket) KeyID() []byte { return p.fingerprint[12:] }

func (p *PublicKeyPacket) String() string {
	return fmt.Sprintf("Public key: %X", p.fingerprint)
}

// PublicSubkeyPacket is a decoded public-subkey packet (tag 14). Its
// body is identical to a public-key packet; only the tag differs.
type PublicSubkeyPacket struct {
	PublicKeyPacket
}

// NewPublicSubkeyPacket decodes a public-subkey packet body.
func NewPublicSubkeyPacket(contents []byte) (*PublicSubkeyPacket, error) {
	key, err := NewPublicKeyPacket(contents)
	if err != nil {
		return nil, err
	}
	return &PublicSubkeyPacket{PublicKeyPacket: *key}, nil
}

// Tag returns the public-subkey packet tag.
func (p *PublicSubkeyPacket) Tag() uint8 { return TagPublicSubkey }

func (p *PublicSubkeyPacket) String() string {
	return fmt.Sprintf("Public subkey: %X", p.fingerprint)
}
