// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

// StatusCode is the result of a service or operation.
// Bad codes implement the error interface so they can be returned directly.
type StatusCode uint32

const (
	// Good - The operation completed successfully.
	Good StatusCode = 0x00000000
	// BadUnexpectedError - An unexpected error occurred.
	BadUnexpectedError StatusCode = 0x80010000
	// BadInternalError - An internal error occurred as a result of a programming or configuration error.
	BadInternalError StatusCode = 0x80020000
	// BadEncodingError - Encoding halted because of invalid data in the objects being serialized.
	BadEncodingError StatusCode = 0x80060000
	// BadDecodingError - Decoding halted because of invalid data in the stream.
	BadDecodingError StatusCode = 0x80070000
	// BadEncodingLimitsExceeded - The message encoding/decoding limits imposed by the stack have been exceeded.
	BadEncodingLimitsExceeded StatusCode = 0x80080000
	// BadUnknownResponse - An unrecognized response was received from the server.
	BadUnknownResponse StatusCode = 0x80090000
	// BadTimeout - The operation timed out.
	BadTimeout StatusCode = 0x800A0000
	// BadServiceUnsupported - The server does not support the requested service.
	BadServiceUnsupported StatusCode = 0x800B0000
	// BadNothingToDo - There was nothing to do because the client passed a list of operations with no elements.
	BadNothingToDo StatusCode = 0x800F0000
	// BadTooManyOperations - The request could not be processed because it specified too many operations.
	BadTooManyOperations StatusCode = 0x80100000
	// BadCertificateInvalid - The certificate provided as a parameter is not valid.
	BadCertificateInvalid StatusCode = 0x80120000
	// BadSubscriptionIDInvalid - The subscription id is not valid.
	BadSubscriptionIDInvalid StatusCode = 0x80280000
	// BadNodeIDUnknown - The node id refers to a node that does not exist in the server address space.
	BadNodeIDUnknown StatusCode = 0x80340000
	// BadDataEncodingInvalid - The data encoding is invalid.
	BadDataEncodingInvalid StatusCode = 0x80380000
	// BadDataEncodingUnsupported - The server does not support the requested data encoding for the node.
	BadDataEncodingUnsupported StatusCode = 0x80390000
	// BadTypeMismatch - The value supplied for the attribute is not of the same type as the attribute's value.
	BadTypeMismatch StatusCode = 0x80740000
	// BadNoSubscription - There is no subscription available for this session.
	BadNoSubscription StatusCode = 0x80790000
	// BadSequenceNumberUnknown - The sequence number is unknown to the server.
	BadSequenceNumberUnknown StatusCode = 0x807A0000
	// BadMessageNotAvailable - The requested notification message is no longer available.
	BadMessageNotAvailable StatusCode = 0x807B0000
	// BadRequestTimeout - The request timed out before it was processed.
	BadRequestTimeout StatusCode = 0x80850000
	// BadSecureChannelClosed - The secure channel has been closed.
	BadSecureChannelClosed StatusCode = 0x80860000
	// BadConfigurationError - There is a problem with the configuration that affects the usefulness of the value.
	BadConfigurationError StatusCode = 0x80890000
	// BadInvalidArgument - One or more arguments are invalid.
	BadInvalidArgument StatusCode = 0x80AB0000
)

// IsGood returns true if the StatusCode is good.
func (c StatusCode) IsGood() bool {
	return (uint32(c) & 0xC0000000) == 0
}

// IsBad returns true if the StatusCode is bad.
func (c StatusCode) IsBad() bool {
	return (uint32(c) & 0x80000000) != 0
}

// IsUncertain returns true if the StatusCode is uncertain.
func (c StatusCode) IsUncertain() bool {
	return (uint32(c) & 0x40000000) != 0
}

// Error returns the StatusCode message.
func (c StatusCode) Error() string {
	switch c {
	case Good:
		return "The operation completed successfully."
	case BadUnexpectedError:
		return "An unexpected error occurred."
	case BadInternalError:
		return "An internal error occurred as a result of a programming or configuration error."
	case BadEncodingError:
		return "Encoding halted because of invalid data in the objects being serialized."
	case BadDecodingError:
		return "Decoding halted because of invalid data in the stream."
	case BadEncodingLimitsExceeded:
		return "The message encoding/decoding limits imposed by the stack have been exceeded."
	case BadUnknownResponse:
		return "An unrecognized response was received from the server."
	case BadTimeout:
		return "The operation timed out."
	case BadServiceUnsupported:
		return "The server does not support the requested service."
	case BadNothingToDo:
		return "There was nothing to do because the client passed a list of operations with no elements."
	case BadTooManyOperations:
		return "The request could not be processed because it specified too many operations."
	case BadCertificateInvalid:
		return "The certificate provided as a parameter is not valid."
	case BadSubscriptionIDInvalid:
		return "The subscription id is not valid."
	case BadNodeIDUnknown:
		return "The node id refers to a node that does not exist in the server address space."
	case BadDataEncodingInvalid:
		return "The data encoding is invalid."
	case BadDataEncodingUnsupported:
		return "The server does not support the requested data encoding for the node."
	case BadTypeMismatch:
		return "The value supplied for the attribute is not of the same type as the attribute's value."
	case BadNoSubscription:
		return "There is no subscription available for this session."
	case BadSequenceNumberUnknown:
		return "The sequence number is unknown to the server."
	case BadMessageNotAvailable:
		return "The requested notification message is no longer available."
	case BadRequestTimeout:
		return "The request timed out before it was processed."
	case BadSecureChannelClosed:
		return "The secure channel has been closed."
	case BadConfigurationError:
		return "There is a problem with the configuration that affects the usefulness of the value."
	case BadInvalidArgument:
		return "One or more arguments are invalid."
	default:
		return "An unknown error occurred."
	}
}
