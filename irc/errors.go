// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package irc

import (
	"errors"
	"fmt"
)

// Connection state errors
var (
	ErrAlreadyConnected = errors.New("Client is already connected")
	ErrNotConnected     = errors.New("Client is not connected")
	ErrAlreadyListening = errors.New("Client is already listening")
)

// Socket errors
var (
	// ErrLineTooLong is returned, and nothing is written, when an outbound
	// line (including CRLF) exceeds the configured maximum.
	ErrLineTooLong = errors.New("Line exceeds the maximum line length")
	// ErrInvalidUTF8 is returned, and nothing is written, when a line
	// can't be carried in a websocket text frame.
	ErrInvalidUTF8 = errors.New("Line is not valid UTF-8")
	errReadQ       = errors.New("ReadQ Exceeded")
)

// Config errors
var (
	ErrServerHostMissing     = errors.New("Server host missing")
	ErrServerHostNotHostname = errors.New("Server host must match the format of a hostname")
	ErrServerPortInvalid     = errors.New("Server port must be between 1 and 65535")
	ErrNickMissing           = errors.New("Nick missing")
	ErrInvalidCertKeyPair    = errors.New("tls cert+key: invalid pair")
	ErrLineLengthsTooSmall   = errors.New("Line lengths must be 512 or greater (check max-line-len under limits)")
	ErrLoggerExcludeEmpty    = errors.New("Encountered logging type '-' with no type to exclude")
	ErrLoggerFilenameMissing = errors.New("Logging configuration specifies 'file' method but 'filename' is empty")
	ErrLoggerHasNoTypes      = errors.New("Logger has no types to log")
)

// IOError is a transport failure: dialing, reading or writing.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// TLSError is a failure of the TLS handshake, kept apart from IOError so
// that certificate problems aren't mistaken for network ones.
type TLSError struct {
	Err error
}

func (e *TLSError) Error() string {
	return fmt.Sprintf("tls: %v", e.Err)
}

func (e *TLSError) Unwrap() error {
	return e.Err
}
