package customize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"adapter-customizer/internal/analyze"
	"adapter-customizer/internal/diagnostic"
	"adapter-customizer/internal/model"
)

const (
	amountAdapter      = "test/adapters.AmountXMLAdapter"
	otherAmountAdapter = "test/adapters.OtherAmountAdapter"
	decimalAdapter     = "test/adapters.DecimalAdapter"
	codeAdapter        = "test/adapters.CodeAdapter"
	notAnAdapter       = "test/adapters.NotAnAdapter"
)

// testLoader declares the adapters used across the package tests.
func testLoader(t *testing.T) *analyze.StaticLoader {
	t.Helper()

	loader := analyze.NewStaticLoader(&analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "test/adapters", Name: "NotAnAdapter"},
		Kind: analyze.TypeKindStruct,
	})

	for _, decl := range []struct{ name, wire, value string }{
		{amountAdapter, "Amount", "test/money.Money"},
		{otherAmountAdapter, "*Amount", "test/money.Money"},
		{decimalAdapter, "decimal", "*math/big.Rat"},
		{codeAdapter, "string", "test/codes.Code"},
	} {
		info, err := DeclaredAdapter(decl.name, decl.wire, decl.value)
		require.NoError(t, err)
		loader.Register(info)
	}

	return loader
}

func adapterNode(name string) *model.Customization {
	return &model.Customization{Tag: DefaultTag, Attrs: map[string]string{NameAttr: name}}
}

// priceFixture builds Book.price referencing the complex type Amount, which
// wraps a decimal value and carries a currency attribute.
type priceFixture struct {
	amount  *model.TypeInfo
	decimal *model.TypeInfo
	book    *model.TypeInfo
	price   *model.Property
	value   *model.Property
	model   *model.Model
}

func newPriceFixture(t *testing.T) *priceFixture {
	t.Helper()

	f := &priceFixture{
		amount:  model.NewClass("Amount"),
		decimal: model.NewSimple("decimal"),
		book:    model.NewClass("Book"),
		model:   model.NewModel(),
	}

	str := model.NewSimple("string")
	f.value = f.amount.AddProperty(model.NewValue("value", f.decimal))
	f.amount.AddProperty(model.NewAttribute("currency", str))
	f.price = f.book.AddProperty(model.NewElement("price", f.amount))

	for _, typ := range []*model.TypeInfo{str, f.decimal, f.amount, f.book} {
		require.NoError(t, f.model.AddType(typ))
	}

	return f
}

func newTestReporter() *diagnostic.Reporter {
	return diagnostic.NewReporter(nil)
}
