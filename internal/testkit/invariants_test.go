package testkit

import (
	"strings"
	"testing"
)

func TestCheckOutputInvariants(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		wantErr string
	}{
		{"empty", "", ""},
		{"clean", "struct S {\n    a: A,\n}\n", ""},
		{"blank line", "fn a() {\n}\n\nfn b() {\n}\n", ""},
		{"missing newline", "struct S;", "does not end"},
		{"double newline", "struct S;\n\n", "more than one"},
		{"trailing space", "struct S; \n", "trailing whitespace"},
		{"odd indent", "struct S {\n   a: A,\n}\n", "not a multiple"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckOutputInvariants([]byte(tt.out), 4)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("want error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
