package parse4880

import "github.com/pkg/errors"

// updateWithKey hashes a key packet the way RFC 4880 frames it inside
// certification signatures: the octet 0x99, a two-octet body length,
// then the body.
func updateWithKey(ctx VerificationContext, key *PublicKeyPacket) {
	ctx.Update([]byte{0x99})
	ctx.Update(WriteInteger(uint64(len(key.Contents())), 2))
	ctx.Update(key.Contents())
}

// VerifyUIDBinding checks a certification signature binding uid to key,
// made by the attesting key. Cryptographic mismatch is reported as
// false, not as an error.
func VerifyUIDBinding(key *PublicKeyPacket, uid *UserIDPacket, attester Key, signature *SignaturePacket) (bool, error) {
	ctx, err := attester.VerificationContext(signature)
	if err != nil {
		return false, errors.Wrap(err, "preparing verification context")
	}

	updateWithKey(ctx, key)

	// User IDs are framed with 0xB4 and a four-octet length.
	ctx.Update([]byte{0xB4})
	ctx.Update(WriteInteger(uint64(len(uid.Contents())), 4))
	ctx.Update(uid.Contents())

	return ctx.Verify(), nil
}

// VerifySubkeyBinding checks a subkey-binding signature made by key
// over subkey. The result counts the checks that passed: 0 if the
// primary signature fails, 1 if only the primary signature verifies,
// and 2 if an embedded cross-signature by the subkey verifies as well.
// A malformed embedded signature falls back to the primary result
// rather than failing the call.
func VerifySubkeyBinding(key *PublicKeyPacket, subkey *PublicSubkeyPacket, signature *SignaturePacket) (int, error) {
	primary, err := ParseKey(key)
	if err != nil {
		return 0, errors.Wrap(err, "parsing primary key")
	}

	ctx, err := primary.VerificationContext(signature)
	if err != nil {
		return 0, errors.Wrap(err, "preparing verification context")
	}
	updateWithKey(ctx, key)
	updateWithKey(ctx, &subkey.PublicKeyPacket)
	if !ctx.Verify() {
		return 0, nil
	}

	embedded := findSubpacket(signature.Subpackets(), SubpacketEmbeddedSignature)
	if embedded == nil {
		return 1, nil
	}
	return 1 + verifyCrossSignature(key, subkey, embedded), nil
}

// verifyCrossSignature checks a tag-32 embedded signature: the subkey
// certifying the primary key over the same binding message. Any error
// while handling the embedded signature counts as an unverified
// cross-signature.
func verifyCrossSignature(key *PublicKeyPacket, subkey *PublicSubkeyPacket, embedded Packet) int {
	subkeyKey, err := ParseKey(&subkey.PublicKeyPacket)
	if err != nil {
		return 0
	}
	crossSignature, err := NewSignaturePacket(embedded.Contents())
	if err != nil {
		return 0
	}
	ctx, err := subkeyKey.VerificationContext(crossSignature)
	if err != nil {
		return 0
	}

	updateWithKey(ctx, key)
	updateWithKey(ctx, &subkey.PublicKeyPacket)
	if ctx.Verify() {
		return 1
	}
	return 0
}

// findSubpacket returns the first subpacket carrying tag, or nil.
func findSubpacket(subpackets []Packet, tag uint8) Packet {
	for _, subpacket := range subpackets {
		if subpacket.Tag() == tag {
			return subpacket
		}
	}
	return nil
}
