package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ReportError
		expected string
	}{
		{
			name:     "with cause",
			err:      NewStorageError("write workbook", fs.ErrPermission),
			expected: "[STORAGE] write workbook: permission denied",
		},
		{
			name:     "without cause",
			err:      NewValidationError("order 3 has no hospital", nil),
			expected: "[VALIDATION] order 3 has no hospital",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestReportError_Unwrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := NewStorageError("open output dir", cause)

	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestKindOf(t *testing.T) {
	err := NewRenderError("encode pie chart", nil)
	wrapped := fmt.Errorf("charts: %w", err)

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindRender, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}
