package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"adapter-customizer/internal/model"
)

const bookFixture = "../../internal/bindings/testdata/book.yaml"

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	color.NoColor = true

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestApply_WritesPatchedModel(t *testing.T) {
	out := filepath.Join(t.TempDir(), "model.yaml")

	_, _, err := execute(t, "apply", bookFixture, "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc model.Document
	require.NoError(t, yaml.Unmarshal(data, &doc))

	var price *model.PropertyDoc
	for _, td := range doc.Types {
		for i := range td.Properties {
			if td.Name == "Book" && td.Properties[i].Name == "price" {
				price = &td.Properties[i]
			}
		}
	}

	require.NotNil(t, price)
	require.NotNil(t, price.Adapter)
	assert.Equal(t, "example.com/gen/adapters.PriceAdapter", price.Adapter.Type)
	assert.Equal(t, "Amount", price.Adapter.Wire)
}

func TestApply_JSONToStdout(t *testing.T) {
	stdout, _, err := execute(t, "apply", bookFixture, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"type": "example.com/gen/adapters.PriceAdapter"`)
}

func TestApply_TagFlagAppliesToBindingsFile(t *testing.T) {
	stdout, stderr, err := execute(t, "apply", bookFixture, "--tag", "{urn:other}xmlAdapter")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	var doc model.Document
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))

	adapters := map[string]string{}
	for _, td := range doc.Types {
		for _, p := range td.Properties {
			if p.Adapter != nil {
				adapters[td.Name+"."+p.Name] = p.Adapter.Type
			}
		}
	}

	assert.Equal(t, map[string]string{
		"Book.price":      "example.com/gen/adapters.PriceAdapter",
		"Amount.currency": "example.com/gen/adapters.CodeAdapter",
	}, adapters)
}

func TestApply_VerbosePrintsInfos(t *testing.T) {
	_, stderr, err := execute(t, "apply", bookFixture, "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "info: Book.price: [adapter_applied]")
}

func TestApply_UnsupportedFormat(t *testing.T) {
	_, _, err := execute(t, "apply", bookFixture, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestCheck(t *testing.T) {
	stdout, _, err := execute(t, "check", bookFixture)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", stdout)
}

const unattachedFixture = `
adapters:
  - name: example.com/gen/adapters.CodeAdapter
    wire: token
    value: example.com/codes.Code
types:
  - name: Book
    kind: class
    properties:
      - name: title
        kind: element
        refs: string
        customizations: [example.com/gen/adapters.CodeAdapter]
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bindings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestCheck_ReportsUnattachedAdapter(t *testing.T) {
	path := writeFixture(t, unattachedFixture)

	_, stderr, err := execute(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 adapter(s) could not be attached")
	assert.Contains(t, stderr, "error: Book.title: [adapter_not_attached]")
}

func TestCheck_StrictFlag(t *testing.T) {
	path := writeFixture(t, unattachedFixture)

	_, _, err := execute(t, "check", path, "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict mode")
}

func TestCheck_ConfigurationError(t *testing.T) {
	path := writeFixture(t, `
types:
  - name: Book
    kind: class
    properties:
      - name: title
        kind: element
        refs: string
        customizations: [example.com/gen/adapters.Missing]
`)

	_, _, err := execute(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process customization {urn:adapter-customizer:extras}xmlAdapter on Book.title")
}

func TestCheck_ConfigFile(t *testing.T) {
	path := writeFixture(t, unattachedFixture)
	cfgPath := filepath.Join(t.TempDir(), "adapter-customizer.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("strict: true\n"), 0o600))

	_, _, err := execute(t, "check", path, "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict mode")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "adapter-customizer dev")
}
