package domain

// NotAvailable is shown when the provider does not know the carrier.
const NotAvailable = "Not Available"

// LookupResult is the interpreted provider answer for one number.
// Empty strings mean the provider returned nothing for that field.
type LookupResult struct {
	Valid           bool   `json:"valid"`
	Carrier         string `json:"carrier,omitempty"`
	CountryOfOrigin string `json:"country_of_origin,omitempty"`
	PhoneType       string `json:"phone_type,omitempty"`
}

// OutcomeKind tags an Outcome.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeTransportError
	OutcomeInvalidInput
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Outcome is what a lookup attempt produced. Result is only meaningful for
// OutcomeSuccess; Err carries the cause for the failure kinds.
type Outcome struct {
	Kind   OutcomeKind
	Result LookupResult
	Err    error
}

// Success wraps a provider result.
func Success(result LookupResult) Outcome {
	return Outcome{Kind: OutcomeSuccess, Result: result}
}

// TransportFailure wraps a network or provider failure.
func TransportFailure(err error) Outcome {
	return Outcome{Kind: OutcomeTransportError, Err: err}
}

// InvalidInput wraps a locally rejected number.
func InvalidInput(err error) Outcome {
	return Outcome{Kind: OutcomeInvalidInput, Err: err}
}

// OutcomeOf maps a LookupClient return pair onto an Outcome.
// Validation errors become InvalidInput, every other error is a transport failure.
func OutcomeOf(result LookupResult, err error) Outcome {
	if err == nil {
		return Success(result)
	}
	if IsKind(err, KindValidation) {
		return InvalidInput(err)
	}
	return TransportFailure(err)
}

// Recordable reports whether the outcome must produce a history record.
func (o Outcome) Recordable() bool {
	return o.Kind == OutcomeSuccess && o.Result.Valid
}
