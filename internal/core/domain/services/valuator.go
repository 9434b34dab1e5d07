package services

import (
	"fmt"
	"iter"

	"commerce/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// AmountHook adjusts an in-flight monetary amount for an order. Hooks let
// collaborators (promotions, surcharges, rounding policies) participate in
// valuation without the engine knowing about them. Hooks run in registration
// order, each receiving the previous hook's result.
type AmountHook func(o *order.Order, amount decimal.Decimal) decimal.Decimal

// Totals bundles the four authoritative monetary figures of an order.
type Totals struct {
	Subtotal decimal.Decimal
	Postage  decimal.Decimal
	TaxTotal decimal.Decimal
	Total    decimal.Decimal
}

// Valuator computes an order's monetary totals from its line items, discount,
// and postage. All arithmetic uses decimals so repeated additions stay exact
// and totals are reproducible.
//
// The valuator itself is stateless apart from its registered hooks; it never
// mutates the order. Register hooks at composition time, before concurrent use.
type Valuator struct {
	postageHooks []AmountHook
	totalHooks   []AmountHook
}

// NewValuator creates a valuator with no adjustment hooks registered.
func NewValuator() *Valuator {
	return &Valuator{}
}

// OnPostage registers a hook applied to the postage amount before it is
// returned from Postage (and folded into Total).
func (v *Valuator) OnPostage(hook AmountHook) {
	v.postageHooks = append(v.postageHooks, hook)
}

// OnTotal registers a hook applied to the grand total before it is returned.
func (v *Valuator) OnTotal(hook AmountHook) {
	v.totalHooks = append(v.totalHooks, hook)
}

// Subtotal returns the sum of price times quantity over all line items.
// Zero-priced items contribute nothing; the result is never negative.
func (v *Valuator) Subtotal(o *order.Order) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range o.Items() {
		subtotal = subtotal.Add(item.Price().Mul(decimal.NewFromInt(int64(item.Quantity()))))
	}
	return subtotal
}

// Postage returns the order's shipping cost after running the registered
// postage hooks.
func (v *Valuator) Postage(o *order.Order) decimal.Decimal {
	return runHooks(v.postageHooks, o, o.PostageCost())
}

// TaxTotal computes the order's tax. The aggregate discount is apportioned
// equally across the line items: each item's tax base is its unit price minus
// discount/n, so the sum of per-item tax reductions equals the discount's
// intended aggregate effect. Postage tax is added once at the end.
//
// The result may be negative when the discount share exceeds an item's price;
// that is accepted input-dependent behavior and is not clamped.
func (v *Valuator) TaxTotal(o *order.Order) decimal.Decimal {
	items := o.Items()

	share := decimal.Zero
	if n := len(items); n > 0 {
		share = o.DiscountAmount().Div(decimal.NewFromInt(int64(n)))
	}

	taxTotal := decimal.Zero
	hundred := decimal.NewFromInt(100)
	for _, item := range items {
		itemTax := item.Price().Sub(share).Div(hundred).Mul(item.TaxRate())
		taxTotal = taxTotal.Add(itemTax.Mul(decimal.NewFromInt(int64(item.Quantity()))))
	}

	return taxTotal.Add(o.PostageTax())
}

// Total returns the grand total: subtotal plus postage minus the aggregate
// discount plus tax, after running the registered total hooks. The discount is
// subtracted here exactly once; TaxTotal has already apportioned it into the
// tax bases, not into the subtotal.
func (v *Valuator) Total(o *order.Order) decimal.Decimal {
	return v.Totals(o).Total
}

// Totals computes all four figures in one pass over the order.
func (v *Valuator) Totals(o *order.Order) Totals {
	subtotal := v.Subtotal(o)
	postage := v.Postage(o)
	taxTotal := v.TaxTotal(o)
	total := subtotal.Add(postage).Sub(o.DiscountAmount()).Add(taxTotal)
	total = runHooks(v.totalHooks, o, total)

	return Totals{
		Subtotal: subtotal,
		Postage:  postage,
		TaxTotal: taxTotal,
		Total:    total,
	}
}

// ItemSummary returns a lazy, restartable sequence of "quantity x title" lines,
// one per line item, in item order.
func (v *Valuator) ItemSummary(o *order.Order) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range o.Items() {
			if !yield(fmt.Sprintf("%d x %s", item.Quantity(), item.Title())) {
				return
			}
		}
	}
}

func runHooks(hooks []AmountHook, o *order.Order, amount decimal.Decimal) decimal.Decimal {
	for _, hook := range hooks {
		amount = hook(o, amount)
	}
	return amount
}
