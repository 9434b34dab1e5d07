package kernel_test

import (
	"testing"

	"commerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActorID(t *testing.T) {
	id := kernel.NewActorID()

	require.NoError(t, id.Validate())
	assert.Len(t, id.String(), 36)
}

func TestActorIDFromString(t *testing.T) {
	t.Run("valid_uuid", func(t *testing.T) {
		id, err := kernel.ActorIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("invalid_uuid", func(t *testing.T) {
		_, err := kernel.ActorIDFromString("not-a-uuid")

		require.Error(t, err)
	})
}

func TestActorIDFromBytes(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		original := kernel.NewActorID()
		raw := original.Bytes()

		restored, err := kernel.ActorIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("nil_uuid_bytes_rejected", func(t *testing.T) {
		_, err := kernel.ActorIDFromBytes(make([]byte, 16))

		require.ErrorIs(t, err, kernel.ErrActorIDIsNotConstructed)
	})

	t.Run("wrong_length_rejected", func(t *testing.T) {
		_, err := kernel.ActorIDFromBytes([]byte{0x01, 0x02})

		require.Error(t, err)
	})
}

func TestActorID_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id kernel.ActorID

		require.ErrorIs(t, id.Validate(), kernel.ErrActorIDIsNotConstructed)
	})
}

func TestActorID_IsEqual(t *testing.T) {
	a := kernel.NewActorID()
	b := kernel.NewActorID()

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
}
