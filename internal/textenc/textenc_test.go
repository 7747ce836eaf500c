package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"empty", "", []byte{}},
		{"ascii", "a.txt", []byte("a.txt")},
		{"two byte", "é", []byte{0xC3, 0xA9}},
		{"three byte", "€", []byte{0xE2, 0x82, 0xAC}},
		{"three byte cjk", "日", []byte{0xE6, 0x97, 0xA5}},
		{"four byte", "🙂", []byte{0xF0, 0x9F, 0x99, 0x82}},
		{"replacement char literal", "�", []byte{0xEF, 0xBF, 0xBD}},
		{"mixed", "aé€🙂", []byte{'a', 0xC3, 0xA9, 0xE2, 0x82, 0xAC, 0xF0, 0x9F, 0x99, 0x82}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeStringInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"stray continuation byte", "a\xffb"},
		{"truncated sequence", "caf\xc3"},
		{"encoded surrogate", "\xed\xa0\x80"},
		{"overlong form", "\xc0\xaf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeString(tt.input)
			require.ErrorIs(t, err, ErrUnsupportedCharacter)
			assert.Nil(t, got)
		})
	}
}
