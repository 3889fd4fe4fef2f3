package parse4880

// Packet tags, RFC 4880 4.3.
const (
	TagSignature    uint8 = 2
	TagPublicKey    uint8 = 6
	TagUserID       uint8 = 13
	TagPublicSubkey uint8 = 14
)

// Signature type codes, RFC 4880 5.2.1.
const (
	SignatureBinary                uint8 = 0x00
	SignatureText                  uint8 = 0x01
	SignatureCertificationGeneric  uint8 = 0x10
	SignatureCertificationPersona  uint8 = 0x11
	SignatureCertificationCasual   uint8 = 0x12
	SignatureCertificationPositive uint8 = 0x13
	SignatureSubkeyBinding         uint8 = 0x18
	SignaturePrimaryKeyBinding     uint8 = 0x19
)

// Public-key algorithm codes, RFC 4880 9.1.
const (
	PublicKeyRSAEncryptOrSign uint8 = 1
	PublicKeyRSAEncryptOnly   uint8 = 2
	PublicKeyRSASignOnly      uint8 = 3
	PublicKeyElGamal          uint8 = 16
	PublicKeyDSA              uint8 = 17
)

// Hash algorithm codes, RFC 4880 9.4.
const (
	HashMD5       uint8 = 1
	HashSHA1      uint8 = 2
	HashRIPEMD160 uint8 = 3
	HashSHA256    uint8 = 8
	HashSHA384    uint8 = 9
	HashSHA512    uint8 = 10
	HashSHA224    uint8 = 11
)

// Signature subpacket types, RFC 4880 5.2.3.1.
const (
	SubpacketCreationTime      uint8 = 2
	SubpacketIssuer            uint8 = 16
	SubpacketEmbeddedSignature uint8 = 32
)
