package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTarget(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{"plain", "localhost:11111", "localhost", 11111, false},
		{"ip", "10.0.0.5:7000", "10.0.0.5", 7000, false},
		{"bracketed ipv6", "[::1]:11111", "::1", 11111, false},
		{"missing port", "localhost", "", 0, true},
		{"empty host", ":11111", "", 0, true},
		{"port not a number", "localhost:abc", "", 0, true},
		{"port zero", "localhost:0", "", 0, true},
		{"port too high", "localhost:65536", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port, err := splitTarget(tt.target)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantPort, port)
		})
	}
}

func TestFormatPorts(t *testing.T) {
	assert.Equal(t, "11112, 11121, 11211, 11112, 54321",
		formatPorts([]int{11112, 11121, 11211, 11112, 54321}))
	assert.Equal(t, "", formatPorts(nil))
}
