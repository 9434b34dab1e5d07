package commands_test

import (
	"context"
	"errors"
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, id int64, number string, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		order.DefaultCatalog(), id, number, status, nil, nil,
		decimal.Zero, decimal.Zero, decimal.Zero, "", "",
	)
	require.NoError(t, err)
	return o
}

func TestLifecycle_EnsureNumber_AssignsAndPersistsOnce(t *testing.T) {
	ctx := context.Background()
	o := restoredOrder(t, 42, "", order.StatusIncomplete)

	orders := new(MockOrderRepository)
	orders.On("Update", ctx, o).Return(order.StatusIncomplete, nil).Once()

	lifecycle := commands.NewLifecycle(order.DefaultCatalog(), new(MockNotificationSender), discardLogger())

	require.NoError(t, lifecycle.EnsureNumber(ctx, orders, o))
	assert.Regexp(t, `^\d{4}-\d{4,}-\d{4}$`, o.Number())

	// Second call sees the number and must not write again.
	require.NoError(t, lifecycle.EnsureNumber(ctx, orders, o))
	orders.AssertNumberOfCalls(t, "Update", 1)
}

func TestLifecycle_EnsureNumber_SkipsNumberedOrder(t *testing.T) {
	ctx := context.Background()
	o := restoredOrder(t, 42, "0000-0042-1234", order.StatusPending)

	orders := new(MockOrderRepository)
	lifecycle := commands.NewLifecycle(order.DefaultCatalog(), new(MockNotificationSender), discardLogger())

	require.NoError(t, lifecycle.EnsureNumber(ctx, orders, o))
	assert.Equal(t, "0000-0042-1234", o.Number())
	orders.AssertNotCalled(t, "Update")
}

func TestLifecycle_AfterWrite_DispatchesEachRuleOnStatusChange(t *testing.T) {
	ctx := context.Background()
	o := restoredOrder(t, 7, "0000-0007-5555", order.StatusPaid)

	matched := []ports.NotificationRule{
		{ID: 1, Status: order.StatusPaid, Channel: "email", Template: "order_paid"},
		{ID: 2, Status: order.StatusPaid, Channel: "sms", Template: "order_paid_sms"},
	}

	orders := new(MockOrderRepository)
	rules := new(MockNotificationRuleRepository)
	sender := new(MockNotificationSender)

	rules.On("FindByStatus", ctx, order.StatusPaid).Return(matched, nil).Once()
	sender.On("Send", ctx, matched[0], o).Return(nil).Once()
	sender.On("Send", ctx, matched[1], o).Return(nil).Once()

	lifecycle := commands.NewLifecycle(order.DefaultCatalog(), sender, discardLogger())

	require.NoError(t, lifecycle.AfterWrite(ctx, orders, rules, o, order.StatusPending))
	mock.AssertExpectationsForObjects(t, orders, rules, sender)
}

func TestLifecycle_AfterWrite_UnchangedStatusDispatchesNothing(t *testing.T) {
	ctx := context.Background()
	o := restoredOrder(t, 7, "0000-0007-5555", order.StatusPending)

	orders := new(MockOrderRepository)
	rules := new(MockNotificationRuleRepository)
	sender := new(MockNotificationSender)

	lifecycle := commands.NewLifecycle(order.DefaultCatalog(), sender, discardLogger())

	require.NoError(t, lifecycle.AfterWrite(ctx, orders, rules, o, order.StatusPending))
	rules.AssertNotCalled(t, "FindByStatus")
	sender.AssertNotCalled(t, "Send")
}

func TestLifecycle_AfterWrite_FailingRuleDoesNotBlockTheRest(t *testing.T) {
	ctx := context.Background()
	o := restoredOrder(t, 7, "0000-0007-5555", order.StatusDispatched)

	matched := []ports.NotificationRule{
		{ID: 1, Status: order.StatusDispatched, Channel: "email", Template: "dispatched"},
		{ID: 2, Status: order.StatusDispatched, Channel: "webhook", Template: "dispatched_hook"},
	}

	orders := new(MockOrderRepository)
	rules := new(MockNotificationRuleRepository)
	sender := new(MockNotificationSender)

	rules.On("FindByStatus", ctx, order.StatusDispatched).Return(matched, nil).Once()
	sender.On("Send", ctx, matched[0], o).Return(errors.New("smtp unavailable")).Once()
	sender.On("Send", ctx, matched[1], o).Return(nil).Once()

	lifecycle := commands.NewLifecycle(order.DefaultCatalog(), sender, discardLogger())

	require.NoError(t, lifecycle.AfterWrite(ctx, orders, rules, o, order.StatusPaid))
	mock.AssertExpectationsForObjects(t, rules, sender)
}

func TestLifecycle_AfterWrite_NumbersBeforeDispatching(t *testing.T) {
	ctx := context.Background()
	o := restoredOrder(t, 9, "", order.StatusPaid)

	matched := []ports.NotificationRule{
		{ID: 1, Status: order.StatusPaid, Channel: "email", Template: "order_paid"},
	}

	orders := new(MockOrderRepository)
	rules := new(MockNotificationRuleRepository)
	sender := new(MockNotificationSender)

	numberingWrite := orders.On("Update", ctx, o).Return(order.StatusPending, nil).Once()
	findRules := rules.On("FindByStatus", ctx, order.StatusPaid).Return(matched, nil).Once()
	dispatch := sender.On("Send", ctx, matched[0], mock.MatchedBy(func(got *order.Order) bool {
		return got.Number() != ""
	})).Return(nil).Once()
	mock.InOrder(numberingWrite, findRules, dispatch)

	lifecycle := commands.NewLifecycle(order.DefaultCatalog(), sender, discardLogger())

	require.NoError(t, lifecycle.AfterWrite(ctx, orders, rules, o, order.StatusPending))
	mock.AssertExpectationsForObjects(t, orders, rules, sender)
}

func TestLifecycle_AfterWrite_RuleLookupFailureAborts(t *testing.T) {
	ctx := context.Background()
	o := restoredOrder(t, 9, "0000-0009-1111", order.StatusPaid)

	orders := new(MockOrderRepository)
	rules := new(MockNotificationRuleRepository)
	sender := new(MockNotificationSender)

	lookupErr := errors.New("rules table unavailable")
	rules.On("FindByStatus", ctx, order.StatusPaid).Return(nil, lookupErr).Once()

	lifecycle := commands.NewLifecycle(order.DefaultCatalog(), sender, discardLogger())

	err := lifecycle.AfterWrite(ctx, orders, rules, o, order.StatusPending)
	require.ErrorIs(t, err, lookupErr)
	sender.AssertNotCalled(t, "Send")
}

func TestLifecycle_BeforeDelete_CascadesLineItems(t *testing.T) {
	ctx := context.Background()
	o := restoredOrder(t, 11, "0000-0011-2222", order.StatusCancelled)

	orders := new(MockOrderRepository)
	orders.On("DeleteLineItems", ctx, int64(11)).Return(nil).Once()

	lifecycle := commands.NewLifecycle(order.DefaultCatalog(), new(MockNotificationSender), discardLogger())

	require.NoError(t, lifecycle.BeforeDelete(ctx, orders, o))
	orders.AssertExpectations(t)
}

func TestLifecycle_BeforeDelete_PropagatesCascadeFailure(t *testing.T) {
	ctx := context.Background()
	o := restoredOrder(t, 11, "0000-0011-2222", order.StatusCancelled)

	cascadeErr := errors.New("line items locked")
	orders := new(MockOrderRepository)
	orders.On("DeleteLineItems", ctx, int64(11)).Return(cascadeErr).Once()

	lifecycle := commands.NewLifecycle(order.DefaultCatalog(), new(MockNotificationSender), discardLogger())

	require.ErrorIs(t, lifecycle.BeforeDelete(ctx, orders, o), cascadeErr)
}
