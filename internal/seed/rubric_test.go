package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supermanager/interview-eval/internal/repository"
	"github.com/supermanager/interview-eval/internal/scoring"
	"github.com/supermanager/interview-eval/internal/seed"
	"github.com/supermanager/interview-eval/internal/testutil"
)

func TestRubricIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)

	first, err := seed.Rubric(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 4, first.Categories)
	assert.Zero(t, first.Skipped)
	assert.Positive(t, first.Checkpoints)
	assert.Positive(t, first.RedFlags)

	second, err := seed.Rubric(ctx, store)
	require.NoError(t, err)
	assert.Zero(t, second.Categories)
	assert.Equal(t, 4, second.Skipped)

	categories, total, err := store.Categories.List(ctx, repository.CategoryListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	for i, c := range categories {
		assert.Equal(t, i+1, c.Order)
		assert.Equal(t, scoring.MaxCategoryScore, c.MaxScore)
	}

	tree, err := store.Categories.FindAllWithItems(ctx)
	require.NoError(t, err)
	for _, c := range tree {
		for _, rf := range c.RedFlags {
			assert.True(t, rf.Severity.Valid(), rf.FlagText)
		}
	}
}

func TestDemoFreelancer(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)

	a, err := seed.DemoFreelancer(ctx, store)
	require.NoError(t, err)
	b, err := seed.DemoFreelancer(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
}
