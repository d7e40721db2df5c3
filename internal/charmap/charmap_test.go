package charmap

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{
			name: "uppercase and lowercase",
			in:   []byte{0xBB, 0xD5, 0xEE},
			want: "Aaz",
		},
		{
			name: "digits",
			in:   []byte{0xA1, 0xAA},
			want: "09",
		},
		{
			name: "stops at terminator",
			in:   []byte{0xBC, 0xFF, 0xBD, 0xBE},
			want: "B",
		},
		{
			name: "space",
			in:   []byte{0xBB, 0x00, 0xBC},
			want: "A B",
		},
		{
			name: "unmapped byte becomes question mark",
			in:   []byte{0x01, 0xBB},
			want: "?A",
		},
		{
			name: "empty field",
			in:   []byte{0xFF, 0xFF, 0xFF},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.in); got != tt.want {
				t.Errorf("Decode(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecode_FullWidthField(t *testing.T) {
	// A 10-byte nickname field with terminator padding, the way the game
	// stores names shorter than the field.
	field := []byte{0xC7, 0xDD, 0xE1, 0xDD, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if got := Decode(field); got != "Mimi" {
		t.Errorf("Decode() = %q, want %q", got, "Mimi")
	}
}
