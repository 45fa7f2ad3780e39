package errors

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(errors.New("disk full")); got != "Error: disk full" {
		t.Errorf("Format() = %q", got)
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("entry %s has empty text", "abc")
	if got != "Error: entry abc has empty text" {
		t.Errorf("Formatf() = %q", got)
	}
}
