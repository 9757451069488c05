package version

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"5.3.2", Version{5, 3, 2}, false},
		{"v5.1.0", Version{5, 1, 0}, false},
		{"4.27", Version{4, 27, 0}, false},
		{"5.3", Version{5, 3, 0}, false},
		{"5", Version{5, 0, 0}, false},
		{"", Version{}, true},
		{"Source", Version{}, true},
		{"5.3.2.1", Version{}, true},
		{"5.0EA", Version{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	v := Version{5, 3, 2}
	if v.String() != "5.3.2" {
		t.Errorf("String() = %q, want %q", v.String(), "5.3.2")
	}
}
