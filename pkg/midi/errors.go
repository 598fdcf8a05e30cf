package midi

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrFmtNotSupported is a generic error reporting an unknown format.
	ErrFmtNotSupported = errors.New("format not supported")
	// ErrUnexpectedData is a generic error reporting that the parser encountered unexpected data.
	ErrUnexpectedData = errors.New("unexpected data content")
)

// EOFError is returned when a read runs past the end of the buffer.
type EOFError struct {
	Position   int
	Requested  int
	BufferSize int
}

func (e *EOFError) Error() string {
	return fmt.Sprintf("unexpected end of data at offset %d: tried to read %dB, buffer size %dB, %dB left",
		e.Position, e.Requested, e.BufferSize, e.BufferSize-e.Position)
}

func (e *EOFError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// UndefinedMessageCodeError reports a status byte that maps to no message.
// Position is the offset of the status byte.
type UndefinedMessageCodeError struct {
	Position int
	Code     byte
}

func (e *UndefinedMessageCodeError) Error() string {
	return fmt.Sprintf("%s - midi message code %#02x (%08b) not defined at offset %d",
		ErrUnexpectedData, e.Code, e.Code, e.Position)
}

func (e *UndefinedMessageCodeError) Unwrap() error {
	return ErrUnexpectedData
}

type UndefinedFileFormatError struct {
	Found uint16
}

func (e *UndefinedFileFormatError) Error() string {
	return fmt.Sprintf("%s - file format %d, expected 0, 1 or 2", ErrFmtNotSupported, e.Found)
}

func (e *UndefinedFileFormatError) Unwrap() error {
	return ErrFmtNotSupported
}

type WrongHeaderLengthError struct {
	Expected uint32
	Found    uint32
}

func (e *WrongHeaderLengthError) Error() string {
	return fmt.Sprintf("%s - expected header size to be %d, was %d", ErrFmtNotSupported, e.Expected, e.Found)
}

func (e *WrongHeaderLengthError) Unwrap() error {
	return ErrFmtNotSupported
}

// UnsupportedDivisionError is returned for SMPTE time code divisions.
type UnsupportedDivisionError struct {
	Division Division
}

func (e *UnsupportedDivisionError) Error() string {
	return fmt.Sprintf("%s - SMPTE division %#04x", ErrFmtNotSupported, uint16(e.Division))
}

func (e *UnsupportedDivisionError) Unwrap() error {
	return ErrFmtNotSupported
}
