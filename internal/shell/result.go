package shell

// Outcome classifies the result of one dispatched command.
type Outcome int

const (
	// Success means the handler completed and printed its own output.
	Success Outcome = iota

	// InvalidInput means the request was malformed or a precondition failed
	// before any mutating I/O.
	InvalidInput

	// OperationFailed means the collaborator I/O failed at execution time.
	OperationFailed
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case InvalidInput:
		return "invalid_input"
	case OperationFailed:
		return "operation_failed"
	default:
		return "unknown"
	}
}
