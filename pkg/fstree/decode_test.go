package fstree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    string
		wantErr bool
	}{
		{name: "empty", data: nil, want: ""},
		{name: "plain utf-8", data: []byte("héllo\nworld\n"), want: "héllo\nworld\n"},
		{name: "utf-8 bom stripped", data: append([]byte{0xEF, 0xBB, 0xBF}, "hi"...), want: "hi"},
		{name: "utf-16le", data: []byte{0xFF, 0xFE, 'o', 0, 'k', 0}, want: "ok"},
		{name: "utf-16be", data: []byte{0xFE, 0xFF, 0, 'o', 0, 'k'}, want: "ok"},
		{name: "utf-16le replacement char kept", data: []byte{0xFF, 0xFE, 0xFD, 0xFF}, want: "\uFFFD"},
		{name: "nul byte", data: []byte("ab\x00cd"), wantErr: true},
		{name: "utf-8 bom then invalid byte", data: []byte{0xEF, 0xBB, 0xBF, 'h', 0xFF}, wantErr: true},
		{name: "utf-16le odd length", data: []byte{0xFF, 0xFE, 'o', 0, 'k'}, wantErr: true},
		{name: "utf-16le lone surrogate", data: []byte{0xFF, 0xFE, 0x00, 0xD8, 'a', 0}, wantErr: true},
		{name: "utf-16be lone low surrogate", data: []byte{0xFE, 0xFF, 0xDC, 0x00}, wantErr: true},
		{name: "invalid utf-8", data: []byte{0xC3, 0x28}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(tt.data)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotText)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeTextSniffsOnlyPrefixForNul(t *testing.T) {
	data := append(bytes.Repeat([]byte("a"), binarySniffLen), 0x00)

	got, err := DecodeText(data)
	require.NoError(t, err)
	assert.Len(t, got, binarySniffLen+1)
}
