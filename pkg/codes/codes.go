// Package codes defines the closed message code enumeration of the QOSST/0.2
// control protocol.
//
// Codes are partitioned into semantic bands:
//
//	 10- 49  generic errors
//	 50- 69  parameter negotiation
//	 70- 79  polarisation recovery
//	100-119  identification
//	120-139  initialization
//	140-159  quantum information exchange
//	160-179  parameter estimation
//	180-199  error correction
//	200-219  privacy amplification
//	220-229  end of frame and disconnection
//
// Negative codes are local error codes: they are produced by the receiving
// side to describe a failed receive and are never sent on the wire.
package codes

// Code identifies the semantic purpose of a control protocol frame.
type Code int

// Generic codes (10-49)
const (
	// UnknownCommand signals the peer's command was not recognized.
	UnknownCommand Code = 10
	// UnexpectedCommand signals a command arrived in the wrong phase.
	UnexpectedCommand Code = 11
	// InvalidContent signals the payload content was invalid.
	InvalidContent Code = 12
	// InvalidResponse signals the response was invalid.
	InvalidResponse Code = 13
	// InvalidResponseAck acknowledges an invalid response message.
	InvalidResponseAck Code = 14
	// Abort aborts the current exchange.
	Abort Code = 15
	// AbortAck acknowledges an abort.
	AbortAck Code = 16
	// AuthenticationInvalid signals an invalid authentication message.
	AuthenticationInvalid Code = 17
)

// Parameter change (50-69)
const (
	// ChangeParameterRequest requests a parameter change.
	ChangeParameterRequest Code = 50
	// ParameterChanged confirms a parameter change.
	ParameterChanged Code = 51
	// ParameterUnknown rejects a change of an unknown parameter.
	ParameterUnknown Code = 52
	// ParameterInvalidValue rejects an invalid parameter value.
	ParameterInvalidValue Code = 53
	// ParameterUnchanged reports the parameter was not changed.
	ParameterUnchanged Code = 54
)

// Polarisation recovery (70-79)
const (
	// RequestPolarisationRecovery asks for the polarisation recovery sequence.
	RequestPolarisationRecovery Code = 70
	// PolarisationRecoveryAck acknowledges the recovery sequence start.
	PolarisationRecoveryAck Code = 71
	// EndPolarisationRecovery asks to stop the recovery sequence.
	EndPolarisationRecovery Code = 72
	// PolarisationRecoveryEnded acknowledges the recovery sequence stop.
	PolarisationRecoveryEnded Code = 73
)

// Authentication and identification (100-119)
const (
	// IdentificationRequest starts (or restarts) the identification
	// process. It is the only code exempt from challenge validation, since
	// it bootstraps the rolling challenge.
	IdentificationRequest Code = 100
	// IdentificationResponse answers an identification request.
	IdentificationResponse Code = 101
	// InvalidQOSSTVersion rejects identification on version mismatch.
	InvalidQOSSTVersion Code = 102
)

// Initialization (120-139)
const (
	// InitializationRequest starts the initialization process.
	InitializationRequest Code = 120
	// InitializationAccepted accepts the proposed configuration.
	InitializationAccepted Code = 121
	// InitializationDenied denies the proposed configuration.
	InitializationDenied Code = 122
	// InitializationProposal proposes a configuration.
	InitializationProposal Code = 123
	// InitializationRequestConfig requests a configuration.
	InitializationRequestConfig Code = 124
	// InitializationConfig carries the configuration.
	InitializationConfig Code = 125
)

// Quantum information exchange (140-159)
const (
	// QIERequest starts the quantum information exchange.
	QIERequest Code = 140
	// QIEReady notifies the quantum information is ready to send.
	QIEReady Code = 141
	// QIETrigger starts the emission.
	QIETrigger Code = 142
	// QIEEmissionStarted notifies that the emission has started.
	QIEEmissionStarted Code = 143
	// QIEAcquisitionEnded notifies that the acquisition has ended.
	QIEAcquisitionEnded Code = 144
	// QIEEnded ends the quantum information exchange.
	QIEEnded Code = 145
)

// Parameters estimation (160-179)
const (
	// PESymbolsRequest asks Alice for a subset of symbols.
	PESymbolsRequest Code = 160
	// PESymbolsResponse carries the requested symbols.
	PESymbolsResponse Code = 161
	// PESymbolsError rejects a symbols request (e.g. bad indices).
	PESymbolsError Code = 162
	// PENPhotonRequest asks for Alice's average photon number.
	PENPhotonRequest Code = 163
	// PENPhotonResponse carries the average photon number.
	PENPhotonResponse Code = 164
	// PEFinished carries the estimated parameters.
	PEFinished Code = 165
	// PEApproved accepts the estimated parameters.
	PEApproved Code = 166
	// PEDenied rejects the estimated parameters and aborts.
	PEDenied Code = 167
)

// Error correction (180-199)
const (
	ECInitialization      Code = 180
	ECReady               Code = 181
	ECDenied              Code = 182
	ECBlock               Code = 183
	ECBlockAck            Code = 184
	ECBlockError          Code = 185
	ECRemaining           Code = 186
	ECRemainingAck        Code = 187
	ECRemainingError      Code = 188
	ECVerification        Code = 189
	ECVerificationSuccess Code = 190
	ECVerificationFail    Code = 191
)

// Privacy amplification (200-219)
const (
	PARequest Code = 200
	PASuccess Code = 201
	PAError   Code = 202
)

// End of frame and end of communication (220-229)
const (
	// FrameEnded ends a frame.
	FrameEnded Code = 220
	// FrameEndedAck acknowledges a frame end.
	FrameEndedAck Code = 221
	// Disconnection notifies the peer of a disconnection.
	Disconnection Code = 222
	// DisconnectionAck acknowledges a disconnection.
	DisconnectionAck Code = 223
)

// Local error codes. Negative, disjoint from the wire code space, never
// transmitted.
const (
	// SocketDisconnection indicates the peer has disconnected.
	SocketDisconnection Code = -1
	// FrameError indicates the frame was malformed or incomplete.
	FrameError Code = -2
	// AuthenticationFailure indicates a digest or challenge mismatch.
	AuthenticationFailure Code = -3
	// UnknownCode indicates the received code is not a QOSST code.
	UnknownCode Code = -4
)

var names = map[Code]string{
	UnknownCommand:              "UNKNOWN_COMMAND",
	UnexpectedCommand:           "UNEXPECTED_COMMAND",
	InvalidContent:              "INVALID_CONTENT",
	InvalidResponse:             "INVALID_RESPONSE",
	InvalidResponseAck:          "INVALID_RESPONSE_ACK",
	Abort:                       "ABORT",
	AbortAck:                    "ABORT_ACK",
	AuthenticationInvalid:       "AUTHENTICATION_INVALID",
	ChangeParameterRequest:      "CHANGE_PARAMETER_REQUEST",
	ParameterChanged:            "PARAMETER_CHANGED",
	ParameterUnknown:            "PARAMETER_UNKNOWN",
	ParameterInvalidValue:       "PARAMETER_INVALID_VALUE",
	ParameterUnchanged:          "PARAMETER_UNCHANGED",
	RequestPolarisationRecovery: "REQUEST_POLARISATION_RECOVERY",
	PolarisationRecoveryAck:     "POLARISATION_RECOVERY_ACK",
	EndPolarisationRecovery:     "END_POLARISATION_RECOVERY",
	PolarisationRecoveryEnded:   "POLARISATION_RECOVERY_ENDED",
	IdentificationRequest:       "IDENTIFICATION_REQUEST",
	IdentificationResponse:      "IDENTIFICATION_RESPONSE",
	InvalidQOSSTVersion:         "INVALID_QOSST_VERSION",
	InitializationRequest:       "INITIALIZATION_REQUEST",
	InitializationAccepted:      "INITIALIZATION_ACCEPTED",
	InitializationDenied:        "INITIALIZATION_DENIED",
	InitializationProposal:      "INITIALIZATION_PROPOSAL",
	InitializationRequestConfig: "INITIALIZATION_REQUEST_CONFIG",
	InitializationConfig:        "INITIALIZATION_CONFIG",
	QIERequest:                  "QIE_REQUEST",
	QIEReady:                    "QIE_READY",
	QIETrigger:                  "QIE_TRIGGER",
	QIEEmissionStarted:          "QIE_EMISSION_STARTED",
	QIEAcquisitionEnded:         "QIE_ACQUISITION_ENDED",
	QIEEnded:                    "QIE_ENDED",
	PESymbolsRequest:            "PE_SYMBOLS_REQUEST",
	PESymbolsResponse:           "PE_SYMBOLS_RESPONSE",
	PESymbolsError:              "PE_SYMBOLS_ERROR",
	PENPhotonRequest:            "PE_NPHOTON_REQUEST",
	PENPhotonResponse:           "PE_NPHOTON_RESPONSE",
	PEFinished:                  "PE_FINISHED",
	PEApproved:                  "PE_APPROVED",
	PEDenied:                    "PE_DENIED",
	ECInitialization:            "EC_INITIALIZATION",
	ECReady:                     "EC_READY",
	ECDenied:                    "EC_DENIED",
	ECBlock:                     "EC_BLOCK",
	ECBlockAck:                  "EC_BLOCK_ACK",
	ECBlockError:                "EC_BLOCK_ERROR",
	ECRemaining:                 "EC_REMAINING",
	ECRemainingAck:              "EC_REMAINING_ACK",
	ECRemainingError:            "EC_REMAINING_ERROR",
	ECVerification:              "EC_VERIFICATION",
	ECVerificationSuccess:       "EC_VERIFICATION_SUCCESS",
	ECVerificationFail:          "EC_VERIFICATION_FAIL",
	PARequest:                   "PA_REQUEST",
	PASuccess:                   "PA_SUCCESS",
	PAError:                     "PA_ERROR",
	FrameEnded:                  "FRAME_ENDED",
	FrameEndedAck:               "FRAME_ENDED_ACK",
	Disconnection:               "DISCONNECTION",
	DisconnectionAck:            "DISCONNECTION_ACK",
	SocketDisconnection:         "SOCKET_DISCONNECTION",
	FrameError:                  "FRAME_ERROR",
	AuthenticationFailure:       "AUTHENTICATION_FAILURE",
	UnknownCode:                 "UNKNOWN_CODE",
}

// String returns the protocol name of the code, or "Unknown" for values
// outside the enumeration.
func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "Unknown"
}

// IsValid reports whether c is a wire code of the QOSST/0.2 enumeration.
// Local error codes are not valid wire codes.
func (c Code) IsValid() bool {
	_, ok := names[c]
	return ok && c > 0
}

// IsLocalError reports whether c is a local (never transmitted) error code.
func (c Code) IsLocalError() bool {
	return c < 0
}

// IsError reports whether c signals a fault, either a local error code or a
// generic protocol error code.
func (c Code) IsError() bool {
	return c.IsLocalError() || (c >= UnknownCommand && c <= AuthenticationInvalid)
}
