package repository

import (
	"reflect"
	"testing"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, "?"},
		{3, "?, ?, ?"},
	}
	for _, tt := range tests {
		if got := placeholders(tt.n); got != tt.want {
			t.Errorf("placeholders(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestIDArgs(t *testing.T) {
	got := idArgs([]string{"a", "b"}, "show-1", "available")
	want := []any{"a", "b", "show-1", "available"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("idArgs() = %v, want %v", got, want)
	}
}
