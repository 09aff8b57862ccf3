package cli

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/grovetools/fbrowse/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandlerMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "access",
			err:  errors.AccessError("/root", os.ErrPermission),
			want: []string{"Cannot open directory /root", "permission denied"},
		},
		{
			name: "read with limit",
			err:  errors.ReadError("/big.bin", fmt.Errorf("too large")).WithDetail("limit", int64(4096)),
			want: []string{"Cannot read file /big.bin", "max_file_size (currently 4096 bytes)"},
		},
		{
			name: "not found",
			err:  errors.NotFound("/missing", os.ErrNotExist),
			want: []string{"No such file or directory: /missing"},
		},
		{
			name: "config not found",
			err:  errors.ConfigNotFound("/etc/x.yml"),
			want: []string{"Configuration file not found: /etc/x.yml"},
		},
		{
			name: "config invalid",
			err:  errors.ConfigInvalid("theme is unknown").WithDetail("path", ".fbrowse.yml"),
			want: []string{"invalid configuration: theme is unknown", "Check .fbrowse.yml"},
		},
		{
			name: "not a terminal",
			err:  errors.NotATerminal("browse"),
			want: []string{"'browse' needs an interactive terminal", "fbrowse ls"},
		},
		{
			name: "wrapped",
			err:  fmt.Errorf("listing: %w", errors.AccessError("/srv", os.ErrPermission)),
			want: []string{"Cannot open directory /srv"},
		},
		{
			name: "plain",
			err:  fmt.Errorf("boom"),
			want: []string{"Error: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &ErrorHandler{Out: &buf}

			returned := h.Handle(tt.err)
			assert.Equal(t, tt.err, returned)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
			assert.NotContains(t, buf.String(), "Error details")
		})
	}
}

func TestErrorHandlerVerbosePrintsDetails(t *testing.T) {
	var buf bytes.Buffer
	h := &ErrorHandler{Verbose: true, Out: &buf}

	h.Handle(errors.ReadError("/a.txt", os.ErrPermission))

	assert.Contains(t, buf.String(), "Error details:")
	assert.Contains(t, buf.String(), `"code": "READ_ERROR"`)
	assert.Contains(t, buf.String(), `"cause": "permission denied"`)
}

func TestErrorHandlerNil(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, (&ErrorHandler{Out: &buf}).Handle(nil))
	assert.Empty(t, buf.String())
}
