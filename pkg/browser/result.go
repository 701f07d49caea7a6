package browser

// ResultKind classifies the outcome of a browser action.
type ResultKind int

const (
	// ResultSuccess indicates the action completed and produced a payload.
	ResultSuccess ResultKind = iota

	// ResultEmpty indicates the action completed but matched nothing
	// (e.g. a selector query with zero matches). Not a failure.
	ResultEmpty

	// ResultFailure indicates the action failed; the message carries the
	// engine's error description.
	ResultFailure
)

// Result is the outcome of a browser action. The Kind allows structured
// dispatch; Message preserves the human-readable string an agent sees.
type Result struct {
	Kind    ResultKind
	Message string

	// Err holds the underlying engine error for Failure results, nil otherwise.
	Err error
}

// String returns the human-readable message for this result.
func (r *Result) String() string {
	return r.Message
}

// OK reports whether the action succeeded (Empty counts as success:
// a query that matches nothing is a valid outcome, not an error).
func (r *Result) OK() bool {
	return r.Kind != ResultFailure
}

func success(message string) *Result {
	return &Result{Kind: ResultSuccess, Message: message}
}

func empty(message string) *Result {
	return &Result{Kind: ResultEmpty, Message: message}
}

func failure(message string, err error) *Result {
	return &Result{Kind: ResultFailure, Message: message, Err: err}
}
