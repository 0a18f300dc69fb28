package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() (*TypeRegistry, *fakeTypeRepo) {
	repo := newFakeTypeRepo()
	return NewTypeRegistry(repo, DefaultTypeTranslations(), testLogger()), repo
}

func TestNormalizeTypeName(t *testing.T) {
	assert.Equal(t, "eletrico", NormalizeTypeName("  Elétrico "))
	assert.Equal(t, "fire", NormalizeTypeName("FIRE"))
	assert.Equal(t, "agua", NormalizeTypeName("Água"))
	assert.Equal(t, "aco", NormalizeTypeName("a-ço"))
	assert.Equal(t, "", NormalizeTypeName("   "))
}

func TestResolveSameConceptAcrossLanguages(t *testing.T) {
	ctx := context.Background()
	registry, repo := newTestRegistry()

	first, err := registry.Resolve(ctx, "Fogo")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "Fogo", first.NamePt)
	assert.Equal(t, "fire", first.NameEn)

	second, err := registry.Resolve(ctx, "fire")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	third, err := registry.Resolve(ctx, "  FOGO  ")
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)

	assert.Len(t, repo.types, 1)
}

func TestResolveAccentInsensitive(t *testing.T) {
	ctx := context.Background()
	registry, repo := newTestRegistry()

	a, err := registry.Resolve(ctx, "Elétrico")
	require.NoError(t, err)
	b, err := registry.Resolve(ctx, "ELETRICO")
	require.NoError(t, err)
	c, err := registry.Resolve(ctx, "electric")
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, a.ID, c.ID)
	assert.Len(t, repo.types, 1)
}

func TestResolveBlankDefaultsToNormal(t *testing.T) {
	ctx := context.Background()
	registry, _ := newTestRegistry()

	got, err := registry.Resolve(ctx, "   ")
	require.NoError(t, err)
	assert.Equal(t, "Normal", got.NamePt)
	assert.Equal(t, "normal", got.NameEn)
}

func TestResolveMetalSynonym(t *testing.T) {
	ctx := context.Background()
	registry, repo := newTestRegistry()

	metal, err := registry.Resolve(ctx, "metal")
	require.NoError(t, err)
	assert.Equal(t, "Aço", metal.NamePt)

	steel, err := registry.Resolve(ctx, "steel")
	require.NoError(t, err)
	assert.Equal(t, metal.ID, steel.ID)

	pt, err := registry.Resolve(ctx, "Aço")
	require.NoError(t, err)
	assert.Equal(t, metal.ID, pt.ID)
	assert.Len(t, repo.types, 1)
}

func TestResolveUnknownFiledUnderSentinel(t *testing.T) {
	ctx := context.Background()
	registry, repo := newTestRegistry()

	got, err := registry.Resolve(ctx, "plasma")
	require.NoError(t, err)
	assert.Equal(t, UnknownTypeName, got.NamePt)

	again, err := registry.Resolve(ctx, "goo")
	require.NoError(t, err)
	assert.Equal(t, got.ID, again.ID)
	assert.Len(t, repo.types, 1)
}

func TestResolveAllPreservesOrderAndDedups(t *testing.T) {
	ctx := context.Background()
	registry, _ := newTestRegistry()

	types, err := registry.ResolveAll(ctx, []string{"fire", "water", "Fogo"})
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Fogo", types[0].NamePt)
	assert.Equal(t, "Água", types[1].NamePt)
}
