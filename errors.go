package parse4880

import "fmt"

// PositionUnknown marks errors that cannot be tied to an offset in the
// input, such as failures inside an already-extracted subpacket region.
const PositionUnknown int64 = -1

// ParseError is implemented by every error produced while decoding
// packet structure. Position reports the offset from the start of the
// buffer at which the problem was found, or PositionUnknown.
type ParseError interface {
	error
	Position() int64
}

func positionMessage(position int64, detail string) string {
	if position == PositionUnknown {
		return fmt.Sprintf("packet error: %s", detail)
	}
	return fmt.Sprintf("packet error at position %d: %s", position, detail)
}

// InvalidHeaderError reports an ill-formed packet header or framed
// field.
type InvalidHeaderError struct {
	Pos int64
}

func (e *InvalidHeaderError) Error() string {
	return positionMessage(e.Pos, "invalid packet header")
}

// Position returns the offset at which the error was found.
func (e *InvalidHeaderError) Position() int64 { return e.Pos }

// PacketHeaderLengthError reports a buffer that was truncated inside a
// length field.
type PacketHeaderLengthError struct {
	Pos int64
}

func (e *PacketHeaderLengthError) Error() string {
	return positionMessage(e.Pos, "buffer truncated inside a length field")
}

// Position returns the offset at which the error was found.
func (e *PacketHeaderLengthError) Position() int64 { return e.Pos }

// PacketLengthError reports a packet that claims more bytes than the
// buffer has left.
type PacketLengthError struct {
	Pos     int64
	Claimed int64
	Actual  int64
}

func (e *PacketLengthError) Error() string {
	return positionMessage(e.Pos, fmt.Sprintf(
		"expected %d bytes, but only %d remain", e.Claimed, e.Actual))
}

// Position returns the offset at which the error was found.
func (e *PacketLengthError) Position() int64 { return e.Pos }

// UnsupportedFeatureError reports use of an OpenPGP feature that this
// library does not implement, such as partial body lengths.
type UnsupportedFeatureError struct {
	Pos     int64
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return positionMessage(e.Pos, fmt.Sprintf("%s not supported", e.Feature))
}

// Position returns the offset at which the error was found.
func (e *UnsupportedFeatureError) Position() int64 { return e.Pos }

// OldPacketError reports an obsolete packet form.
type OldPacketError struct {
	Pos int64
}

func (e *OldPacketError) Error() string {
	return positionMessage(e.Pos, "unsupported old-format packet found")
}

// Position returns the offset at which the error was found.
func (e *OldPacketError) Position() int64 { return e.Pos }

// InvalidPacketError reports a packet body that is structurally sound
// but semantically malformed.
type InvalidPacketError struct {
	Problem string
}

func (e *InvalidPacketError) Error() string {
	return positionMessage(PositionUnknown, e.Problem)
}

// Position always returns PositionUnknown; the problem is with a whole
// body, not a single offset.
func (e *InvalidPacketError) Position() int64 { return PositionUnknown }

// WrongAlgorithmError reports a key being asked to verify a signature
// made with a different public-key algorithm.
type WrongAlgorithmError struct{}

func (e *WrongAlgorithmError) Error() string {
	return "key and signature algorithms do not match"
}

// Position always returns PositionUnknown.
func (e *WrongAlgorithmError) Position() int64 { return PositionUnknown }
