package order_test

import (
	"testing"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLineItem(t *testing.T, title string, price string, quantity int, taxRate string) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(title, decimal.RequireFromString(price), quantity, decimal.RequireFromString(taxRate))
	require.NoError(t, err)
	return item
}

func TestNewLineItem(t *testing.T) {
	t.Run("valid_item", func(t *testing.T) {
		item := mustLineItem(t, "Widget", "9.99", 3, "20")

		require.NoError(t, item.Validate())
		assert.Equal(t, "Widget", item.Title())
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, item.Price().Equal(decimal.RequireFromString("9.99")))
		assert.True(t, item.TaxRate().Equal(decimal.NewFromInt(20)))
	})

	t.Run("zero_price_allowed", func(t *testing.T) {
		_, err := order.NewLineItem("Freebie", decimal.Zero, 1, decimal.Zero)

		require.NoError(t, err)
	})

	t.Run("negative_price_rejected", func(t *testing.T) {
		_, err := order.NewLineItem("Widget", decimal.NewFromInt(-1), 1, decimal.Zero)

		require.Error(t, err)
	})

	t.Run("non_positive_quantity_rejected", func(t *testing.T) {
		_, err := order.NewLineItem("Widget", decimal.NewFromInt(1), 0, decimal.Zero)
		require.Error(t, err)

		_, err = order.NewLineItem("Widget", decimal.NewFromInt(1), -2, decimal.Zero)
		require.Error(t, err)
	})

	t.Run("empty_title_rejected", func(t *testing.T) {
		_, err := order.NewLineItem("", decimal.NewFromInt(1), 1, decimal.Zero)

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var item order.LineItem

		require.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	catalog := order.DefaultCatalog()

	t.Run("guest_order_with_items", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, "Widget", "100", 2, "10")}

		o, err := order.NewOrder(catalog, nil, items,
			decimal.Zero, decimal.NewFromInt(5), decimal.Zero, "1 Bill St", "2 Ship Rd")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusIncomplete, o.Status())
		assert.Zero(t, o.ID())
		assert.Empty(t, o.Number())
		assert.Nil(t, o.CustomerID())
		assert.Len(t, o.Items(), 1)
		assert.Equal(t, "1 Bill St", o.BillingAddress())
		assert.Equal(t, "2 Ship Rd", o.DeliveryAddress())
	})

	t.Run("zero_item_order_allowed", func(t *testing.T) {
		o, err := order.NewOrder(catalog, nil, nil,
			decimal.Zero, decimal.Zero, decimal.Zero, "", "")

		require.NoError(t, err)
		assert.Empty(t, o.Items())
	})

	t.Run("negative_discount_rejected", func(t *testing.T) {
		_, err := order.NewOrder(catalog, nil, nil,
			decimal.NewFromInt(-5), decimal.Zero, decimal.Zero, "", "")

		require.Error(t, err)
	})

	t.Run("zero_value_customer_id_rejected", func(t *testing.T) {
		var customer kernel.ActorID

		_, err := order.NewOrder(catalog, &customer, nil,
			decimal.Zero, decimal.Zero, decimal.Zero, "", "")

		require.ErrorIs(t, err, kernel.ErrActorIDIsNotConstructed)
	})

	t.Run("unconstructed_item_rejected", func(t *testing.T) {
		_, err := order.NewOrder(catalog, nil, []order.LineItem{{}},
			decimal.Zero, decimal.Zero, decimal.Zero, "", "")

		require.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	catalog := order.DefaultCatalog()

	t.Run("restores_identity_number_and_status", func(t *testing.T) {
		customer := kernel.NewActorID()

		o, err := order.RestoreOrder(catalog, 42, "0000-0042-1234", order.StatusPaid,
			&customer, nil, decimal.Zero, decimal.Zero, decimal.Zero, "", "")

		require.NoError(t, err)
		assert.Equal(t, int64(42), o.ID())
		assert.Equal(t, "0000-0042-1234", o.Number())
		assert.Equal(t, order.StatusPaid, o.Status())
		assert.True(t, o.IsOwnedBy(customer))
	})

	t.Run("unset_status_accepted", func(t *testing.T) {
		o, err := order.RestoreOrder(catalog, 7, "", order.StatusUnset,
			nil, nil, decimal.Zero, decimal.Zero, decimal.Zero, "", "")

		require.NoError(t, err)
		assert.Equal(t, order.StatusUnset, o.Status())
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(catalog, 7, "", "shredded",
			nil, nil, decimal.Zero, decimal.Zero, decimal.Zero, "", "")

		require.Error(t, err)
	})

	t.Run("non_positive_id_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(catalog, 0, "", order.StatusPending,
			nil, nil, decimal.Zero, decimal.Zero, decimal.Zero, "", "")

		require.Error(t, err)
	})
}

func TestOrder_AttachID(t *testing.T) {
	catalog := order.DefaultCatalog()
	o, err := order.NewOrder(catalog, nil, nil, decimal.Zero, decimal.Zero, decimal.Zero, "", "")
	require.NoError(t, err)

	require.NoError(t, o.AttachID(11))
	assert.Equal(t, int64(11), o.ID())

	require.ErrorIs(t, o.AttachID(12), order.ErrIDAlreadyAssigned)
	assert.Equal(t, int64(11), o.ID())
}

func TestOrder_AssignNumber(t *testing.T) {
	catalog := order.DefaultCatalog()
	o, err := order.NewOrder(catalog, nil, nil, decimal.Zero, decimal.Zero, decimal.Zero, "", "")
	require.NoError(t, err)

	t.Run("assigned_exactly_once", func(t *testing.T) {
		require.NoError(t, o.AssignNumber("0000-0011-4242"))
		assert.Equal(t, "0000-0011-4242", o.Number())

		require.ErrorIs(t, o.AssignNumber("0000-0011-9999"), order.ErrNumberAlreadyAssigned)
		assert.Equal(t, "0000-0011-4242", o.Number())
	})

	t.Run("empty_number_rejected", func(t *testing.T) {
		fresh, freshErr := order.NewOrder(catalog, nil, nil, decimal.Zero, decimal.Zero, decimal.Zero, "", "")
		require.NoError(t, freshErr)

		require.Error(t, fresh.AssignNumber(""))
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	catalog := order.DefaultCatalog()
	o, err := order.NewOrder(catalog, nil, nil, decimal.Zero, decimal.Zero, decimal.Zero, "", "")
	require.NoError(t, err)

	t.Run("any_catalog_status_reachable", func(t *testing.T) {
		require.NoError(t, o.ChangeStatus(order.StatusDispatched))
		assert.Equal(t, order.StatusDispatched, o.Status())

		// Backward moves are not constrained by this core.
		require.NoError(t, o.ChangeStatus(order.StatusPending))
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		require.Error(t, o.ChangeStatus("imaginary"))
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_IsEditable(t *testing.T) {
	catalog := order.DefaultCatalog()
	o, err := order.NewOrder(catalog, nil, nil, decimal.Zero, decimal.Zero, decimal.Zero, "", "")
	require.NoError(t, err)

	assert.True(t, o.IsEditable())

	require.NoError(t, o.ChangeStatus(order.StatusDispatched))
	assert.False(t, o.IsEditable())

	require.NoError(t, o.ChangeStatus(order.StatusCancelled))
	assert.True(t, o.IsEditable())
}

func TestOrder_IsOwnedBy(t *testing.T) {
	catalog := order.DefaultCatalog()
	customer := kernel.NewActorID()
	stranger := kernel.NewActorID()

	owned, err := order.NewOrder(catalog, &customer, nil, decimal.Zero, decimal.Zero, decimal.Zero, "", "")
	require.NoError(t, err)
	guest, err := order.NewOrder(catalog, nil, nil, decimal.Zero, decimal.Zero, decimal.Zero, "", "")
	require.NoError(t, err)

	assert.True(t, owned.IsOwnedBy(customer))
	assert.False(t, owned.IsOwnedBy(stranger))
	assert.False(t, guest.IsOwnedBy(customer))
}

func TestOrder_ReplaceItems(t *testing.T) {
	catalog := order.DefaultCatalog()
	o, err := order.NewOrder(catalog, nil,
		[]order.LineItem{mustLineItem(t, "Widget", "10", 1, "0")},
		decimal.Zero, decimal.Zero, decimal.Zero, "", "")
	require.NoError(t, err)

	items := []order.LineItem{
		mustLineItem(t, "Gadget", "5", 2, "20"),
		mustLineItem(t, "Gizmo", "3", 1, "20"),
	}
	require.NoError(t, o.ReplaceItems(items))
	assert.Len(t, o.Items(), 2)
	assert.Equal(t, "Gadget", o.Items()[0].Title())

	require.Error(t, o.ReplaceItems([]order.LineItem{{}}))
}
