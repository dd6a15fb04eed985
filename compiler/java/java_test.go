package java

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderImports(t *testing.T) {
	b := NewBuilder()
	b.AnnotationLn("javax.persistence.Entity")
	b.Annotation("javax.persistence.Table", `name = "POLICY"`).AppendLn("")
	b.AppendClassName("java.lang.String").AppendLn("")

	f := b.Fragment()
	assert.Equal(t, "@Entity\n@Table(name = \"POLICY\")\nString\n", f.Source)
	assert.Equal(t, []string{"javax.persistence.Entity", "javax.persistence.Table"}, f.Imports)
}

func TestBuilderSimpleNameClash(t *testing.T) {
	b := NewBuilder("org.acme.Index")
	b.Annotation("org.eclipse.persistence.annotations.Index")
	b.Append(" ")
	b.Annotation("org.eclipse.persistence.annotations.Convert")
	b.Append(" ")
	b.AppendClassName("org.acme.other.Convert")

	f := b.Fragment()
	assert.Equal(t, "@org.eclipse.persistence.annotations.Index @Convert org.acme.other.Convert", f.Source)
	assert.Equal(t, []string{"org.eclipse.persistence.annotations.Convert"}, f.Imports)
}

func TestConcat(t *testing.T) {
	got := Concat(
		NewFragment("@A", "x.A"),
		Fragment{},
		NewFragment("  \n"),
		NewFragment("@B\n", "x.B", "x.A", "java.lang.Deprecated"),
	)
	assert.Equal(t, "@A\n@B\n", got.Source)
	assert.Equal(t, []string{"x.A", "x.B"}, got.Imports)
	assert.True(t, Concat().IsEmpty())
}

func TestMerge(t *testing.T) {
	b := NewBuilder()
	b.Merge(NewFragment("@A\n", "x.A")).AnnotationLn("y.A")
	f := b.Fragment()
	assert.Equal(t, "@A\n@y.A\n", f.Source)
	assert.Equal(t, []string{"x.A"}, f.Imports)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Foo", SimpleName("com.acme.Foo"))
	assert.Equal(t, "Foo", SimpleName("Foo"))
	assert.Equal(t, "com.acme", PackageName("com.acme.Foo"))
	assert.False(t, NeedsImport("java.lang.Integer"))
	assert.False(t, NeedsImport("int"))
	assert.True(t, NeedsImport("java.util.List"))
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`a"b`, `"a\"b"`},
		{`C:\tmp`, `"C:\\tmp"`},
		{"line\nnext\ttab\r", `"line\nnext\ttab\r"`},
		{"\b\f", `"\b\f"`},
		{"bell\a vt\v", `"bell\u0007 vt\u000b"`},
		{"\x01\x7f", `"\u0001\u007f"`},
		{"Gebäude €", `"Gebäude €"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Quote(tt.in), "%q", tt.in)
	}
}
