package domain

import "fmt"

// MalformedRecordError reports a line that must carry record structure but
// does not match any known pattern, e.g. a "VIP exists:" line without an
// extractable network number. The offending raw line and the source command
// are preserved for diagnosis.
type MalformedRecordError struct {
	Command string
	Line    string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record from %q: %q", e.Command, e.Line)
}

// PreconditionError reports a failure that aborts collection before any
// parsing is attempted, such as an unresolvable Grid Infrastructure home or a
// missing administrative tool.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}
