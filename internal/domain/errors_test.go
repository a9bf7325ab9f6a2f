package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMalformedRecordError(t *testing.T) {
	err := &MalformedRecordError{
		Command: "srvctl config vip",
		Line:    "VIP exists: hosting node rac01",
	}

	msg := err.Error()
	if !strings.Contains(msg, "srvctl config vip") {
		t.Errorf("message %q does not name the source command", msg)
	}
	if !strings.Contains(msg, "VIP exists: hosting node rac01") {
		t.Errorf("message %q does not carry the offending line", msg)
	}

	wrapped := fmt.Errorf("resolve vips: %w", err)
	var target *MalformedRecordError
	if !errors.As(wrapped, &target) {
		t.Error("errors.As failed to unwrap MalformedRecordError")
	}
}

func TestPreconditionError(t *testing.T) {
	err := &PreconditionError{Reason: "could not find Grid Infrastructure home"}
	if err.Error() != "could not find Grid Infrastructure home" {
		t.Errorf("Error() = %q", err.Error())
	}
}
