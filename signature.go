package parse4880

import (
	"encoding/hex"
	"fmt"
)

// SignaturePacket is a decoded signature packet (tag 2). Versions 3 and
// 4 are understood, and both can be verified.
type SignaturePacket struct {
	contents []byte

	version            uint8
	signatureType      uint8
	publicKeyAlgorithm uint8
	hashAlgorithm      uint8
	creationTime       int64
	keyID              []byte
	quickCheck         []byte
	signature          []byte
	hashedData         []byte

	hashedSubpacketData   []byte
	unhashedSubpacketData []byte
	subpackets            []Packet
}

// NewSignaturePacket decodes a signature packet body.
func NewSignaturePacket(contents []byte) (*SignaturePacket, error) {
	if len(contents) < 1 {
		return nil, &InvalidHeaderError{Pos: PositionUnknown}
	}

	packet := &SignaturePacket{
		contents: contents,
		version:  contents[0],
	}

	var err error
	switch packet.version {
	case 3:
		err = packet.parseV3()
	case 4:
		err = packet.parseV4()
	default:
		return nil, &UnsupportedFeatureError{
			Pos:     PositionUnknown,
			Feature: "non-v3/v4 signatures",
		}
	}
	if err != nil {
		return nil, err
	}

	if err := packet.applySubpackets(); err != nil {
		return nil, err
	}
	return packet, nil
}

// parseV3 decodes a version three signature body:
//
//	[1] Version
//	[1] Length of hashed material (always five)
//	[1]   Signature type
//	[4]   Creation time
//	[8] Key ID
//	[1] Public-key algorithm
//	[1] Hash algorithm
//	[2] Left sixteen bits of hash value
//	[?] Signature
func (p *SignaturePacket) parseV3() error {
	if len(p.contents) < 19 {
		return &InvalidHeaderError{Pos: PositionUnknown}
	}
	if p.contents[1] != 5 {
		return &InvalidHeaderError{Pos: PositionUnknown}
	}

	p.signatureType = p.contents[2]
	p.creationTime = int64(ReadInteger(p.contents[3:7]))
	p.keyID = p.contents[7:15]
	p.publicKeyAlgorithm = p.contents[15]
	p.hashAlgorithm = p.contents[16]
	p.quickCheck = p.contents[17:19]
	p.signature = p.contents[19:]

	// The hashed material is the signature type and creation time.
	p.hashedData = p.contents[2:7]
	return nil
}

// parseV4 decodes a version four signature body:
//
//	[1] Version
//	[1] Signature type
//	[1] Public-key algorithm
//	[1] Hash algorithm
//	[2] Hashed subpacket data count
//	[?]   Hashed subpacket data
//	[2] Unhashed subpacket data count
//	[?]   Unhashed subpacket data
//	[2] Left sixteen bits of hash value
//	[?] Signature
func (p *SignaturePacket) parseV4() error {
	if len(p.contents) < 10 {
		return &InvalidHeaderError{Pos: PositionUnknown}
	}

	p.signatureType = p.contents[1]
	p.publicKeyAlgorithm = p.contents[2]
	p.hashAlgorithm = p.contents[3]

	hashedCount := int(ReadInteger(p.contents[4:6]))
	if len(p.contents) < 10+hashedCount {
		return &InvalidHeaderError{Pos: PositionUnknown}
	}
	p.hashedSubpacketData = p.contents[6 : 6+hashedCount]

	// Everything through the end of the hashed subpackets is fed
	// into the signature hash.
	p.hashedData = p.contents[:6+hashedCount]

	unhashedCount := int(ReadInteger(p.contents[6+hashedCount : 8+hashedCount]))
	if len(p.contents) < 10+hashedCount+unhashedCount {
		return &InvalidHeaderError{Pos: PositionUnknown}
	}
	p.unhashedSubpacketData = p.contents[8+hashedCount : 8+hashedCount+unhashedCount]

	p.quickCheck = p.contents[8+hashedCount+unhashedCount : 10+hashedCount+unhashedCount]
	p.signature = p.contents[10+hashedCount+unhashedCount:]

	hashed, err := ParseSubpackets(p.hashedSubpacketData)
	if err != nil {
		return err
	}
	unhashed, err := ParseSubpackets(p.unhashedSubpacketData)
	if err != nil {
		return err
	}
	p.subpackets = append(hashed, unhashed...)
	return nil
}

// applySubpackets copies signature properties out of the subpacket
// list. An issuer subpacket overrides the on-the-wire key ID; with
// several present the last one wins, hashed region first.
func (p *SignaturePacket) applySubpackets() error {
	for _, subpacket := range p.subpackets {
		if subpacket.Tag() != SubpacketIssuer {
			continue
		}
		keyID := subpacket.Contents()
		if len(keyID) != 8 {
			return &InvalidPacketError{
				Problem: "signature issuer subpacket has wrong length",
			}
		}
		p.keyID = keyID
	}
	return nil
}

// Tag returns the signature packet tag.
func (p *SignaturePacket) Tag() uint8 { return TagSignature }

// Contents returns the raw packet body.
func (p *SignaturePacket) Contents() []byte { return p.contents }

// Subpackets returns the signature's subpackets, hashed region first,
// wire order preserved within each region.
func (p *SignaturePacket) Subpackets() []Packet { return p.subpackets }

// Version returns the signature version, 3 or 4.
func (p *SignaturePacket) Version() uint8 { return p.version }

// SignatureType returns the signature type code.
func (p *SignaturePacket) SignatureType() uint8 { return p.signatureType }

// PublicKeyAlgorithm returns the public-key algorithm code.
func (p *SignaturePacket) PublicKeyAlgorithm() uint8 { return p.publicKeyAlgorithm }

// HashAlgorithm returns the hash algorithm code.
func (p *SignaturePacket) HashAlgorithm() uint8 { return p.hashAlgorithm }

// CreationTime returns the creation time of a v3 signature in unix
// epoch seconds. Version four signatures carry it in a subpacket
// instead, and report zero here.
func (p *SignaturePacket) CreationTime() int64 { return p.creationTime }

// KeyID returns the eight-byte key ID of the issuing key. For a v4
// signature without an issuer subpacket it is empty.
func (p *SignaturePacket) KeyID() []byte { return p.keyID }

// QuickCheck returns the left sixteen bits of the signed hash.
func (p *SignaturePacket) QuickCheck() []byte { return p.quickCheck }

// Signature returns the signature value as a raw multiprecision
// integer, including its two-octet bit count.
func (p *SignaturePacket) Signature() []byte { return p.signature }

// HashedData returns the prefix of the packet body that is fed into the
// signature hash after the caller-supplied material.
func (p *SignaturePacket) HashedData() []byte { return p.hashedData }

// HashedSubpacketData returns the raw hashed subpacket region.
func (p *SignaturePacket) HashedSubpacketData() []byte { return p.hashedSubpacketData }

// UnhashedSubpacketData returns the raw unhashed subpacket region.
func (p *SignaturePacket) UnhashedSubpacketData() []byte { return p.unhashedSubpacketData }

func (p *SignaturePacket) String() string {
	return fmt.Sprintf("Signature, version %d, type 0x%02x, uid %s",
		p.version, p.signatureType, hex.EncodeToString(p.keyID))
}
