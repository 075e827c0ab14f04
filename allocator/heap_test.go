package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Heap_Alloc(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr error
	}{
		{"zero size", 0, nil},
		{"small size", 8, nil},
		{"odd size", 517, nil},
		{"negative size", -1, ErrInvalidSize},
	}

	h := NewHeap()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf, err := h.Alloc(tc.size)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, buf)
				return
			}
			require.NoError(t, err)
			assert.Len(t, buf, tc.size)
			for _, b := range buf {
				assert.Zero(t, b, "fresh memory must be zeroed")
			}
			h.Free(buf)
		})
	}
}
