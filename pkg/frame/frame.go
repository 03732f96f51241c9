// Package frame implements the wire codec of the QOSST control protocol.
//
// Wire Format:
//
// Every frame has the structure
//
//	+--------------+--------------+-----------+-----------------+---------+
//	| header_len H | sig_len S    | signature | variable header | payload |
//	| u16 BE       | u16 BE       | S bytes   | H bytes         |         |
//	+--------------+--------------+-----------+-----------------+---------+
//
// The variable header is a JSON object with exactly four required keys:
//
//	code           int    message code (pkg/codes)
//	content_length int    byte length of the serialized payload
//	challenge      string challenge the sender was asked to present
//	next_challenge string challenge to present in the next frame
//
// The payload is a JSON object, absent when content_length is zero. The
// signature covers the SHA-256 digest of the raw variable header bytes
// concatenated with the raw payload bytes; the fixed header is not digested.
package frame

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"io"

	"github.com/qosst/qosst-go/internal/constants"
	qerrors "github.com/qosst/qosst-go/internal/errors"
	"github.com/qosst/qosst-go/pkg/auth"
	"github.com/qosst/qosst-go/pkg/codes"
)

// Payload is the string-keyed content of a frame.
type Payload map[string]any

// header is the wire representation of the variable header. Pointer fields
// distinguish a missing key from a zero value during decoding.
type header struct {
	Code          *int    `json:"code"`
	ContentLength *int    `json:"content_length"`
	Challenge     *string `json:"challenge"`
	NextChallenge *string `json:"next_challenge"`
}

// Encode serializes a frame: variable header and payload are marshaled, the
// digest over the two is signed, and the fixed header prepended. The
// challenge fields are supplied by the caller's Ledger (see Ledger.Stamp).
func Encode(code codes.Code, payload Payload, challenge, nextChallenge string, signer auth.Authenticator) ([]byte, error) {
	var payloadBytes []byte
	if len(payload) > 0 {
		var err error
		payloadBytes, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}

	c := int(code)
	contentLength := len(payloadBytes)
	headerBytes, err := json.Marshal(header{
		Code:          &c,
		ContentLength: &contentLength,
		Challenge:     &challenge,
		NextChallenge: &nextChallenge,
	})
	if err != nil {
		return nil, err
	}
	if len(headerBytes) > constants.MaxVariableHeaderSize {
		return nil, qerrors.ErrHeaderTooLarge
	}

	digest := sha256.Sum256(append(append([]byte{}, headerBytes...), payloadBytes...))
	signature, err := signer.SignDigest(digest[:])
	if err != nil {
		return nil, err
	}
	if len(signature) > constants.MaxSignatureSize {
		return nil, qerrors.ErrSignatureTooLarge
	}

	buf := make([]byte, 0, constants.FixedHeaderSize+len(signature)+len(headerBytes)+len(payloadBytes))
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(headerBytes)))
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(signature)))
	buf = append(buf, signature...)
	buf = append(buf, headerBytes...)
	buf = append(buf, payloadBytes...)
	return buf, nil
}

// Decode reads exactly one frame from r, verifies its signature and its
// challenge against the ledger, and returns the message code and payload.
//
// Faults are reported as local error codes with a nil payload, never as an
// error value, so callers can pattern-match on the code:
//
//	SOCKET_DISCONNECTION   the peer closed before the frame started
//	FRAME_ERROR            truncated frame, bad JSON, or missing header keys
//	UNKNOWN_CODE           the code is not in the QOSST enumeration
//	AUTHENTICATION_FAILURE digest or challenge mismatch
//
// The digest is recomputed over the raw bytes actually read, not over a
// re-serialization. Decode never retries: every fault is terminal for this
// read attempt.
func Decode(r io.Reader, verifier auth.Authenticator, ledger *Ledger) (codes.Code, Payload) {
	fixed := make([]byte, constants.FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		// A zero-byte read at a frame boundary is the peer leaving.
		return codes.SocketDisconnection, nil
	}
	headerLen := int(binary.BigEndian.Uint16(fixed[0:2]))
	sigLen := int(binary.BigEndian.Uint16(fixed[2:4]))

	signature := make([]byte, sigLen)
	if _, err := io.ReadFull(r, signature); err != nil {
		return codes.FrameError, nil
	}

	headerBytes := make([]byte, headerLen)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return codes.FrameError, nil
	}

	var h header
	if err := json.Unmarshal(headerBytes, &h); err != nil {
		return codes.FrameError, nil
	}
	if h.Code == nil || h.ContentLength == nil || h.Challenge == nil || h.NextChallenge == nil {
		return codes.FrameError, nil
	}
	contentLength := *h.ContentLength
	if contentLength < 0 || contentLength > constants.MaxContentLength {
		return codes.FrameError, nil
	}

	var payloadBytes []byte
	var payload Payload
	if contentLength > 0 {
		payloadBytes = make([]byte, contentLength)
		if _, err := io.ReadFull(r, payloadBytes); err != nil {
			return codes.FrameError, nil
		}
		if err := json.Unmarshal(payloadBytes, &payload); err != nil {
			return codes.FrameError, nil
		}
	}

	code := codes.Code(*h.Code)
	if !code.IsValid() {
		return codes.UnknownCode, nil
	}

	digest := sha256.Sum256(append(append([]byte{}, headerBytes...), payloadBytes...))
	if !verifier.CheckDigest(digest[:], signature) {
		return codes.AuthenticationFailure, nil
	}

	if !ledger.Validate(code, *h.Challenge, *h.NextChallenge) {
		return codes.AuthenticationFailure, nil
	}

	return code, payload
}
