package order_test

import (
	"testing"

	"commerce/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	t.Run("custom_status_set", func(t *testing.T) {
		catalog, err := order.NewCatalog(
			[]order.Status{"draft", "confirmed", "archived"},
			[]order.Status{order.StatusUnset, "draft"},
			"WEB",
		)

		require.NoError(t, err)
		require.NoError(t, catalog.Validate())
		assert.Equal(t, order.Status("draft"), catalog.DefaultStatus())
		assert.Equal(t, "WEB", catalog.NumberPrefix())
		assert.True(t, catalog.Contains("archived"))
		assert.False(t, catalog.Contains(order.StatusPaid))
		assert.True(t, catalog.IsEditable("draft"))
		assert.True(t, catalog.IsEditable(order.StatusUnset))
		assert.False(t, catalog.IsEditable("confirmed"))
	})

	t.Run("empty_status_set_rejected", func(t *testing.T) {
		_, err := order.NewCatalog(nil, nil, "")

		require.Error(t, err)
	})

	t.Run("unset_status_in_set_rejected", func(t *testing.T) {
		_, err := order.NewCatalog([]order.Status{order.StatusUnset, "draft"}, nil, "")

		require.Error(t, err)
	})

	t.Run("editable_status_outside_set_rejected", func(t *testing.T) {
		_, err := order.NewCatalog([]order.Status{"draft"}, []order.Status{"confirmed"}, "")

		require.Error(t, err)
	})
}

func TestDefaultCatalog(t *testing.T) {
	catalog := order.DefaultCatalog()

	require.NoError(t, catalog.Validate())
	assert.Equal(t, order.StatusIncomplete, catalog.DefaultStatus())
	assert.Empty(t, catalog.NumberPrefix())
	assert.Equal(t, order.DefaultStatuses(), catalog.Statuses())

	for _, s := range []order.Status{
		order.StatusUnset,
		order.StatusIncomplete,
		order.StatusPending,
		order.StatusPaid,
		order.StatusFailed,
		order.StatusCancelled,
	} {
		assert.True(t, catalog.IsEditable(s), "expected %q to be editable", s)
	}
	for _, s := range []order.Status{
		order.StatusProcessing,
		order.StatusDispatched,
		order.StatusRefunded,
	} {
		assert.False(t, catalog.IsEditable(s), "expected %q to be frozen", s)
	}
}

func TestCatalog_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var catalog order.Catalog

		require.ErrorIs(t, catalog.Validate(), order.ErrCatalogIsNotConstructed)
	})

	t.Run("nil_is_invalid", func(t *testing.T) {
		var catalog *order.Catalog

		require.ErrorIs(t, catalog.Validate(), order.ErrCatalogIsNotConstructed)
	})
}
