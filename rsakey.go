package parse4880

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"math/big"
)

// RSAKey verifies RSA PKCS#1 v1.5 signatures made with a public-key
// packet's key.
type RSAKey struct {
	publicKey rsa.PublicKey
}

// NewRSAKey extracts an RSA public key from a public-key packet. Only
// the RSA encrypt-or-sign algorithm code is accepted for verification
// keys.
func NewRSAKey(packet *PublicKeyPacket) (*RSAKey, error) {
	if packet.PublicKeyAlgorithm() != PublicKeyRSAEncryptOrSign {
		return nil, &WrongAlgorithmError{}
	}

	publicKey, err := readRSAPublicKey(packet.KeyMaterial())
	if err != nil {
		return nil, err
	}
	return &RSAKey{publicKey: publicKey}, nil
}

// readRSAPublicKey decodes RSA key material: the modulus and then the
// exponent, each an OpenPGP multiprecision integer.
func readRSAPublicKey(material []byte) (rsa.PublicKey, error) {
	modulus, rest, err := readMPI(material)
	if err != nil {
		return rsa.PublicKey{}, err
	}
	exponent, _, err := readMPI(rest)
	if err != nil {
		return rsa.PublicKey{}, err
	}
	return rsa.PublicKey{
		N: new(big.Int).SetBytes(modulus),
		E: int(ReadInteger(exponent)),
	}, nil
}

// readMPI splits one multiprecision integer off the front of data: a
// two-octet big-endian bit count followed by the bytes holding those
// bits.
func readMPI(data []byte) (value []byte, rest []byte, err error) {
	if len(data) < 2 {
		return nil, nil, &InvalidHeaderError{Pos: PositionUnknown}
	}
	byteCount := (int(ReadInteger(data[:2])) + 7) / 8
	if len(data) < 2+byteCount {
		return nil, nil, &InvalidHeaderError{Pos: PositionUnknown}
	}
	return data[2 : 2+byteCount], data[2+byteCount:], nil
}

// VerificationContext returns a PKCS#1 v1.5 verification context using
// the hash algorithm named by the signature.
func (k *RSAKey) VerificationContext(signature *SignaturePacket) (VerificationContext, error) {
	var hashID crypto.Hash
	var digest hash.Hash
	switch signature.HashAlgorithm() {
	case HashSHA1:
		hashID, digest = crypto.SHA1, sha1.New()
	case HashSHA224:
		hashID, digest = crypto.SHA224, sha256.New224()
	case HashSHA256:
		hashID, digest = crypto.SHA256, sha256.New()
	case HashSHA384:
		hashID, digest = crypto.SHA384, sha512.New384()
	case HashSHA512:
		hashID, digest = crypto.SHA512, sha512.New()
	default:
		return nil, &UnsupportedFeatureError{
			Pos:     PositionUnknown,
			Feature: "unsupported hash function",
		}
	}

	return &rsaVerificationContext{
		publicKey: k.publicKey,
		signature: signature,
		hashID:    hashID,
		digest:    digest,
	}, nil
}

type rsaVerificationContext struct {
	publicKey rsa.PublicKey
	signature *SignaturePacket
	hashID    crypto.Hash
	digest    hash.Hash
	done      bool
}

func (c *rsaVerificationContext) Update(data []byte) {
	c.digest.Write(data)
}

func (c *rsaVerificationContext) Verify() bool {
	if c.done {
		panic("parse4880: Verify called twice on a verification context")
	}
	c.done = true

	// The hash covers the signature's own hashed data and, for v4
	// signatures, a trailer of 0x04 0xFF and a four-octet count of
	// that hashed data. RFC 4880 5.2.4.
	hashedData := c.signature.HashedData()
	c.digest.Write(hashedData)
	if c.signature.Version() == 4 {
		c.digest.Write([]byte{0x04, 0xFF})
		c.digest.Write(WriteInteger(uint64(len(hashedData)), 4))
	}

	// The signature value is a single MPI. Strip the bit count and
	// left-pad with zeros to the modulus size.
	mpi := c.signature.Signature()
	if len(mpi) < 2 {
		return false
	}
	value := mpi[2:]
	modulusSize := (c.publicKey.N.BitLen() + 7) / 8
	if len(value) > modulusSize {
		return false
	}
	padded := make([]byte, modulusSize)
	copy(padded[modulusSize-len(value):], value)

	err := rsa.VerifyPKCS1v15(&c.publicKey, c.hashID, c.digest.Sum(nil), padded)
	return err == nil
}
