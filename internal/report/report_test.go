package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/syssam/faktorgen/delta"
	"github.com/syssam/faktorgen/model"
	"github.com/syssam/faktorgen/model/value"
)

func noColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

// deltas returns the deltas of three components: A stores a value and a link
// its type does not declare, B has an unknown type and C is up to date.
func deltas(t *testing.T) []*delta.Delta {
	t.Helper()
	p := model.NewProject("p", language.English)
	require.NoError(t, p.AddProductCmptType(&model.ProductCmptType{QName: "T"}))

	a := model.NewProductCmpt("A", "T")
	a.AddValue(&model.PropertyValue{ID: "v1", Property: "ghost", Type: model.AttributeValue, Holder: value.NewSingleString("x")})
	a.AddLink(&model.Link{ID: "l1", Association: "gone", Target: "C"})
	b := model.NewProductCmpt("B", "Missing")
	c := model.NewProductCmpt("C", "T")
	for _, cmpt := range []*model.ProductCmpt{a, b, c} {
		require.NoError(t, p.AddProductCmpt(cmpt))
	}

	sp := model.NewSearchPath(p)
	return []*delta.Delta{delta.Compute(a, sp), delta.Compute(b, sp), delta.Compute(c, sp)}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("xml")
	assert.EqualError(t, err, `report: unknown format "xml"`)
}

func TestRecords(t *testing.T) {
	records := Records(deltas(t), delta.NewPrinter(language.English))
	assert.Equal(t, []Record{
		{
			Component:   "A",
			Location:    "A",
			Type:        "VALUE_WITHOUT_PROPERTY",
			Kind:        "removed",
			Description: "A: the AttributeValue ghost has no corresponding property.",
		},
		{
			Component:   "A",
			Location:    "A",
			Type:        "LINK_WITHOUT_ASSOCIATION",
			Kind:        "removed",
			Description: "A: the link to C refers to association gone, which no longer exists.",
		},
		{
			Component:   "B",
			Location:    "B",
			Type:        "MISSING_TYPE",
			Kind:        "changed",
			Description: "The type Missing cannot be found.",
		},
	}, records)

	german := Records(deltas(t), delta.NewPrinter(language.German))
	require.Len(t, german, 3)
	assert.Equal(t, "Der Typ Missing kann nicht gefunden werden.", german[2].Description)

	assert.NotNil(t, Records(nil, delta.NewPrinter(language.English)))
}

func TestWrite(t *testing.T) {
	noColor(t)
	p := delta.NewPrinter(language.English)
	want := Records(deltas(t), p)

	t.Run("Text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, Text, deltas(t), p))
		assert.Equal(t, `A
  removed (2)
    VALUE_WITHOUT_PROPERTY: A: the AttributeValue ghost has no corresponding property.
    LINK_WITHOUT_ASSOCIATION: A: the link to C refers to association gone, which no longer exists.
B
  changed (1)
    MISSING_TYPE: The type Missing cannot be found.
C: up to date
`, buf.String())
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, JSON, deltas(t), p))
		var got []Record
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, want, got)
		assert.Contains(t, buf.String(), `"type": "MISSING_TYPE"`)
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, YAML, deltas(t), p))
		var got []Record
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, want, got)
	})

	t.Run("MsgPack", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, MsgPack, deltas(t), p))
		var got []Record
		require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, want, got)
	})

	t.Run("Unknown", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, Write(&buf, Format("xml"), deltas(t), p))
	})
}
