package endpoint

import (
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		port    int
		want    Endpoint
		wantErr bool
	}{
		{"valid", "10.0.0.5", 11111, Endpoint{"10.0.0.5", 11111}, false},
		{"host trimmed", "  render-pc  ", 7000, Endpoint{"render-pc", 7000}, false},
		{"empty host", "", 11111, Endpoint{}, true},
		{"whitespace host", "   ", 11111, Endpoint{}, true},
		{"port zero", "host", 0, Endpoint{}, true},
		{"port negative", "host", -1, Endpoint{}, true},
		{"port too high", "host", 65536, Endpoint{}, true},
		{"port lower bound", "host", 1, Endpoint{"host", 1}, false},
		{"port upper bound", "host", 65535, Endpoint{"host", 65535}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.host, tt.port)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q, %d) error = %v, wantErr %v", tt.host, tt.port, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("New(%q, %d) = %v, want %v", tt.host, tt.port, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"10.0.0.5", 7000, "10.0.0.5:7000"},
		{"render-pc", 11111, "render-pc:11111"},
		{"::1", 7000, "[::1]:7000"},
		{"fe80::1", 11111, "[fe80::1]:11111"},
		{"[::1]", 7000, "[::1]:7000"},
		{"", 80, "(none):80"},
		{"   ", 80, "(none):80"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Format(tt.host, tt.port); got != tt.want {
				t.Errorf("Format(%q, %d) = %q, want %q", tt.host, tt.port, got, tt.want)
			}
		})
	}
}

func TestSuggestAlternatePorts(t *testing.T) {
	tests := []struct {
		name string
		base int
		want []int
	}{
		{"from default port", 11111, []int{11112, 11121, 11211, 11112, 54321}},
		{"from custom port", 9000, []int{9001, 9010, 9100, 11111, 54321}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestAlternatePorts(tt.base)
			if len(got) != 5 {
				t.Fatalf("len = %d, want 5", len(got))
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestAlternatePorts(%d) = %v, want %v", tt.base, got, tt.want)
			}
		})
	}
}

func TestSuggestAlternatePortsDeterministic(t *testing.T) {
	first := SuggestAlternatePorts(9000)
	second := SuggestAlternatePorts(9000)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}
