package kernel_test

import (
	"testing"

	"pizza/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	require.NoError(t, id1.Validate())
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id1.String())
	assert.False(t, id1.IsEqual(id2))
	assert.True(t, id1.IsEqual(id1))
}

func TestUUIDFromString(t *testing.T) {
	const valid = "550e8400-e29b-41d4-a716-446655440000"

	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "canonical", input: valid},
		{name: "braces", input: "{" + valid + "}"},
		{name: "urn prefix", input: "urn:uuid:" + valid},
		{name: "garbage", input: "not-a-uuid", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "nil uuid", input: "00000000-0000-0000-0000-000000000000", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, valid, id.String())
		})
	}
}

func TestUUIDFromGoogle(t *testing.T) {
	raw := uuid.New()

	id, err := kernel.UUIDFromGoogle(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, id.Google())

	_, err = kernel.UUIDFromGoogle(uuid.Nil)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_ZeroValue(t *testing.T) {
	var id kernel.UUID
	require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
}
