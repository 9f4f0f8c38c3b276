package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingColumnError(t *testing.T) {
	tests := []struct {
		name string
		err  *MissingColumnError
		want string
	}{
		{
			name: "with candidates",
			err:  NewMissingColumn("supply chain report", "name", "Publisher Name", "Name"),
			want: `supply chain report: missing required column "name" (tried headers: Publisher Name, Name)`,
		},
		{
			name: "without candidates",
			err:  NewMissingColumn("lines referential", "Line"),
			want: `lines referential: missing required column "Line"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsMissingColumn(t *testing.T) {
	base := NewMissingColumn("report", "Domain")
	wrapped := fmt.Errorf("loading inputs: %w", base)

	assert.True(t, IsMissingColumn(base))
	assert.True(t, IsMissingColumn(wrapped))
	assert.False(t, IsMissingColumn(errors.New("other")))
	assert.False(t, IsMissingColumn(nil))
}

func TestRowError(t *testing.T) {
	cause := errors.New("boom")
	err := NewRowError(7, "foo.com", cause)

	assert.Equal(t, "row 7 (foo.com): boom", err.Error())
	require.ErrorIs(t, err, cause)

	noDomain := NewRowError(3, "", cause)
	assert.Equal(t, "row 3: boom", noDomain.Error())
}
