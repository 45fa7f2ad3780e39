package validation

import (
	"errors"
	"testing"
)

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name    string
		in      EntryInput
		wantErr error
	}{
		{"valid", EntryInput{Text: "did the thing"}, nil},
		{"valid with extras", EntryInput{Text: "ran 5k", ImageURL: "https://example.com/a.png", Channel: "running"}, nil},
		{"empty", EntryInput{Text: ""}, ErrEmptyText},
		{"spaces only", EntryInput{Text: "   "}, ErrEmptyText},
		{"tabs and newlines", EntryInput{Text: "\t\n "}, ErrEmptyText},
		{"whitespace padded text is fine", EntryInput{Text: "  ok  "}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEntry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2024-01-10"); err != nil {
		t.Errorf("ValidateDate() error = %v, want nil", err)
	}
	for _, bad := range []string{"", "2024/01/10", "10-01-2024", "2024-00-10"} {
		if err := ValidateDate(bad); err == nil {
			t.Errorf("ValidateDate(%q) = nil, want error", bad)
		}
	}
}
