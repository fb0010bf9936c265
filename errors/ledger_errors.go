package errors

import (
	"github.com/chalkcoin/chalkcoin/jsonx"
)

// LedgerErrorCode represents standardized error codes for ledger operations
type LedgerErrorCode string

const (
	// General errors
	ErrCodeInternal LedgerErrorCode = "internal_error"

	// Validation errors
	ErrCodeInvalidAmount  LedgerErrorCode = "invalid_amount"
	ErrCodeInvalidAddress LedgerErrorCode = "invalid_address"

	// Chain mutation errors
	ErrCodeInvalidIndex   LedgerErrorCode = "invalid_index"
	ErrCodeMalformedInput LedgerErrorCode = "malformed_input"

	// Mining errors
	ErrCodeProofSearchExhausted LedgerErrorCode = "proof_search_exhausted"
)

// LedgerError represents a standardized ledger error
type LedgerError struct {
	Code    LedgerErrorCode `json:"code"`
	Message string          `json:"message"`
}

// Error implements the error interface
func (e *LedgerError) Error() string {
	err, _ := jsonx.Marshal(LedgerError{
		Code:    e.Code,
		Message: e.Message,
	})
	return string(err)
}

// Error message constants - user-friendly and concise
const (
	ErrMsgInvalidAmount        = "Amount is negative or not a finite number"
	ErrMsgInvalidAddress       = "Sender or recipient address is empty"
	ErrMsgInvalidIndex         = "Block index is out of range"
	ErrMsgGenesisImmutable     = "Genesis block cannot be modified"
	ErrMsgMalformedInput       = "Input is not an ordered sequence of block records"
	ErrMsgProofSearchExhausted = "Proof search exceeded the configured iteration cap"
	ErrMsgInternal             = "Internal ledger error"
)

// NewError creates a new LedgerError and returns it as error interface
func NewError(code LedgerErrorCode, message string) error {
	return &LedgerError{
		Code:    code,
		Message: message,
	}
}

// CodeOf extracts the ledger error code from err, or ErrCodeInternal for
// errors that did not originate in the ledger.
func CodeOf(err error) LedgerErrorCode {
	if le, ok := err.(*LedgerError); ok {
		return le.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err is a LedgerError carrying the given code.
func IsCode(err error, code LedgerErrorCode) bool {
	le, ok := err.(*LedgerError)
	return ok && le.Code == code
}
