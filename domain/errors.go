package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// royalty schedule shape errors, detected before any transfer
	ErrNoCreators               = errors.New("royalty schedule has no creators")
	ErrTooManyCreators          = errors.New("royalty schedule has more than 10 creators")
	ErrInvalidCreatorPercentage = errors.New("creator percentage must be between 1 and 99")
	ErrInvalidSplitPercentage   = errors.New("royalty percentages must sum to 100")

	// account identity errors, detected before the corresponding transfer
	ErrPlatformWalletMismatch = errors.New("platform account does not match configured platform wallet")
	ErrMissingCreatorAccount  = errors.New("missing creator account for royalty share")
	ErrCreatorAccountMismatch = errors.New("creator account does not match schedule recipient")

	// ledger transfer errors
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// errorCodes maps sentinel errors to the string codes surfaced to callers.
var errorCodes = map[string]error{
	"NoCreators":               ErrNoCreators,
	"TooManyCreators":          ErrTooManyCreators,
	"InvalidCreatorPercentage": ErrInvalidCreatorPercentage,
	"InvalidSplitPercentage":   ErrInvalidSplitPercentage,
	"PlatformWalletMismatch":   ErrPlatformWalletMismatch,
	"MissingCreatorAccount":    ErrMissingCreatorAccount,
	"CreatorAccountMismatch":   ErrCreatorAccountMismatch,
	"InsufficientFunds":        ErrInsufficientFunds,
}

// ErrorCode returns the caller facing code for a settlement error.
func ErrorCode(err error) (string, bool) {
	for code, sentinel := range errorCodes {
		if errors.Is(err, sentinel) {
			return code, true
		}
	}
	return "", false
}
