package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrMintFailed wraps transaction rejection or rpc errors during
	// submission or confirmation, the batch never reaches confirmed
	ErrMintFailed = errors.New("mint transaction failed")
	// ErrWrongNetwork is returned when the configured chain is not a supported testnet
	ErrWrongNetwork = errors.New("unsupported network")
	// ErrInvalidQuantity is returned for mint quantities outside [1, MaxQuantity]
	ErrInvalidQuantity = errors.New("invalid mint quantity")
	// ErrMintInProgress is returned when a mint is still pending or awaiting confirmation
	ErrMintInProgress = errors.New("mint already in progress")

	ErrInvalidAddress    = errors.New("Invalid address")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnsupportedSchema = errors.New("Unsupported schema")
)
