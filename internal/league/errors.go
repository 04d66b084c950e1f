package league

// Error is the kind of failure returned while parsing match records.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrMalformedRecord  Error = "malformed match record"
	ErrMalformedOutcome Error = "malformed match outcome"
)
