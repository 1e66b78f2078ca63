package labels

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  KITCHEN  ", "KITCHEN"},
		{"BED\n ROOM", "BED ROOM"},
		{"|LIVING|", "LIVING"},
		{"_~- -~_", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := clean(tt.in); got != tt.want {
			t.Errorf("clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
