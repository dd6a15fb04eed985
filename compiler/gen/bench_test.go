package gen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/faktorgen/persistence"
)

func BenchmarkBuild(b *testing.B) {
	f := newFixture(b)
	ctx := f.context(b, persistence.EclipseLink25)
	builder := NewBuilder(ctx)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx.Purge()
		_, err := builder.Build(f.project)
		require.NoError(b, err)
	}
}

func BenchmarkGenerate(b *testing.B) {
	f := newFixture(b)
	c := MustNewConfig(
		WithTarget(b.TempDir()),
		WithBasePackage("org.acme"),
		WithProvider(persistence.EclipseLink25),
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Generate(context.Background(), f.sp, f.project, c)
		require.NoError(b, err)
	}
}
