package session

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr error
	}{
		{name: "missing", raw: "", wantErr: ErrMissingArgument},
		{name: "whitespace only", raw: "   ", wantErr: ErrMissingArgument},
		{name: "not numeric", raw: "abc", wantErr: ErrNotANumber},
		{name: "float", raw: "1.5", wantErr: ErrNotANumber},
		{name: "trailing garbage", raw: "7x", wantErr: ErrNotANumber},
		{name: "valid", raw: "7", want: 7},
		{name: "valid with spaces", raw: "  42  ", want: 42},
		{name: "negative parses", raw: "-3", want: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseID(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
