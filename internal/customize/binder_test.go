package customize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adapter-customizer/internal/diagnostic"
	"adapter-customizer/internal/model"
)

func specFor(adapter, wire string) *model.AdapterSpec {
	return &model.AdapterSpec{DefaultType: wire, AdapterType: adapter, ValueType: "test/money.Money"}
}

func TestBinder_DirectMatchSetsAdapter(t *testing.T) {
	f := newPriceFixture(t)
	reporter := newTestReporter()
	b := NewBinder(DefaultTag, reporter)

	spec := specFor(amountAdapter, "Amount")
	require.NoError(t, b.BindElement(f.price, spec))

	assert.Same(t, spec, f.price.Adapter())
	assert.False(t, f.value.Type().IsAdapted())

	d := reporter.Diagnostics()
	assert.False(t, d.HasErrors())
	applied := d.ByCode(diagnostic.CodeAdapterApplied)
	require.Len(t, applied, 1)
	assert.Contains(t, applied[0].Message, "modified Book.price element with adapter "+amountAdapter)
	assert.Empty(t, d.ByCode(diagnostic.CodeAdapterOverridden))
}

func TestBinder_DirectMatchOverridesExistingAdapter(t *testing.T) {
	f := newPriceFixture(t)
	reporter := newTestReporter()
	b := NewBinder(DefaultTag, reporter)

	first := specFor(amountAdapter, "Amount")
	second := specFor(otherAmountAdapter, "Amount")

	require.NoError(t, b.BindElement(f.price, first))
	require.NoError(t, b.BindElement(f.price, second))

	assert.Same(t, second, f.price.Adapter())

	overridden := reporter.Diagnostics().ByCode(diagnostic.CodeAdapterOverridden)
	require.Len(t, overridden, 1)
	assert.Contains(t, overridden[0].Message, "replaced adapter "+amountAdapter)
	assert.Contains(t, overridden[0].Message, otherAmountAdapter)
	assert.Len(t, reporter.Diagnostics().ByCode(diagnostic.CodeAdapterApplied), 2)
}

func TestBinder_NestedValueMember(t *testing.T) {
	f := newPriceFixture(t)
	reporter := newTestReporter()
	b := NewBinder(DefaultTag, reporter)

	spec := specFor(decimalAdapter, "decimal")
	require.NoError(t, b.BindElement(f.price, spec))

	assert.Nil(t, f.price.Adapter(), "outer element must stay unadapted")

	valueType := f.value.Type()
	assert.Same(t, f.decimal, valueType.Type)
	assert.Same(t, spec, valueType.Adapter)

	currency := f.amount.Properties[1]
	assert.False(t, currency.Type().IsAdapted())

	applied := reporter.Diagnostics().ByCode(diagnostic.CodeAdapterApplied)
	require.Len(t, applied, 1)
	assert.Contains(t, applied[0].Message, "type extension Amount.value")
	assert.False(t, reporter.Diagnostics().HasErrors())
}

func TestBinder_NestedValueStopsAtFirstMatch(t *testing.T) {
	f := newPriceFixture(t)
	second := f.amount.AddProperty(model.NewValue("other", f.decimal))

	spec := specFor(decimalAdapter, "decimal")
	require.NoError(t, NewBinder(DefaultTag, nil).BindElement(f.price, spec))

	assert.True(t, f.value.Type().IsAdapted())
	assert.False(t, second.Type().IsAdapted())
}

func TestBinder_NoMatchReportsOncePerReference(t *testing.T) {
	f := newPriceFixture(t)
	reporter := newTestReporter()
	b := NewBinder(DefaultTag, reporter)

	spec := specFor(codeAdapter, "token")
	require.NoError(t, b.BindElement(f.price, spec))

	assert.Nil(t, f.price.Adapter())
	assert.False(t, f.value.Type().IsAdapted())

	d := reporter.Diagnostics()
	require.Len(t, d.Errors, 1)
	assert.Equal(t, diagnostic.CodeAdapterNotAttached, d.Errors[0].Code)
	assert.Equal(t, "Book.price", d.Errors[0].Property)
	assert.Contains(t, d.Errors[0].Message, "was not attached to Book.price")
	assert.Empty(t, d.ByCode(diagnostic.CodeAdapterApplied))
}

func TestBinder_SimpleReferenceWithoutMatch(t *testing.T) {
	reporter := newTestReporter()
	prop := model.NewElement("title", model.NewSimple("string"))

	require.NoError(t, NewBinder(DefaultTag, reporter).BindElement(prop, specFor(amountAdapter, "Amount")))

	assert.Nil(t, prop.Adapter())
	assert.Len(t, reporter.Diagnostics().Errors, 1)
}

func TestBinder_MixedReferencesContinuePastMismatch(t *testing.T) {
	reporter := newTestReporter()
	amount := model.NewClass("Amount")
	prop := model.NewElement("choice", model.NewSimple("string"), amount)

	spec := specFor(amountAdapter, "Amount")
	require.NoError(t, NewBinder(DefaultTag, reporter).BindElement(prop, spec))

	assert.Same(t, spec, prop.Adapter())
	assert.Len(t, reporter.Diagnostics().Errors, 1)
	assert.Len(t, reporter.Diagnostics().ByCode(diagnostic.CodeAdapterApplied), 1)
}

func TestBinder_AttributeAlwaysReplacesType(t *testing.T) {
	f := newPriceFixture(t)
	reporter := newTestReporter()
	b := NewBinder(DefaultTag, reporter)
	currency := f.amount.Properties[1]

	first := specFor(codeAdapter, "string")
	require.NoError(t, b.BindAttribute(currency, first))
	assert.Same(t, first, currency.Type().Adapter)
	assert.Equal(t, "string", currency.Type().Name())

	// no write-once guard, and no type check against the declared type
	second := specFor(amountAdapter, "Amount")
	require.NoError(t, b.BindAttribute(currency, second))
	assert.Same(t, second, currency.Type().Adapter)
	assert.Equal(t, "string", currency.Type().Name())

	applied := reporter.Diagnostics().ByCode(diagnostic.CodeAdapterApplied)
	require.Len(t, applied, 2)
	assert.Contains(t, applied[0].Message, "modified Amount.currency attribute")
}

func TestBinder_InvariantErrorOnMissingSlot(t *testing.T) {
	f := newPriceFixture(t)
	b := NewBinder(DefaultTag, nil)

	err := b.BindAttribute(f.price, specFor(codeAdapter, "string"))
	require.Error(t, err)

	var ierr *InvariantError
	require.ErrorAs(t, err, &ierr)
	require.ErrorIs(t, err, model.ErrNoSlot)
	assert.Equal(t, "Book.price", ierr.Property)
	assert.Contains(t, err.Error(), DefaultTag.String())
	assert.Contains(t, err.Error(), "Book.price")

	ref := model.NewReference("any", f.decimal)
	err = b.BindValueMember(ref, specFor(decimalAdapter, "decimal"))
	require.ErrorAs(t, err, &ierr)
}
