package model

import "errors"

// ValidationKind identifies a caller-fixable request or configuration
// problem. Kinds double as stable error codes at the API boundary.
type ValidationKind string

const (
	KindAllocationSumMismatch    ValidationKind = "ALLOCATION_SUM_MISMATCH"
	KindTooFewSimulations        ValidationKind = "TOO_FEW_SIMULATIONS"
	KindTimeHorizonTooLong       ValidationKind = "TIME_HORIZON_TOO_LONG"
	KindTimeHorizonTooShort      ValidationKind = "TIME_HORIZON_TOO_SHORT"
	KindInvalidInitialInvestment ValidationKind = "INVALID_INITIAL_INVESTMENT"
	KindInvalidAssetClass        ValidationKind = "INVALID_ASSET_CLASS"
	KindInvalidDrawdown          ValidationKind = "INVALID_DRAWDOWN"
	KindInvalidTaxSettings       ValidationKind = "INVALID_TAX_SETTINGS"
	KindTaxRateTooHigh           ValidationKind = "TAX_RATE_TOO_HIGH"
)

// ValidationError reports why a request was rejected before simulation.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// AsValidationError unwraps err into a *ValidationError, if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
