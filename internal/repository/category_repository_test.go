package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/supermanager/interview-eval/internal/model"
	"github.com/supermanager/interview-eval/internal/repository"
	"github.com/supermanager/interview-eval/internal/scoring"
	"github.com/supermanager/interview-eval/internal/testutil"
)

type CategoryRepositorySuite struct {
	suite.Suite
	ctx   context.Context
	store *repository.Store
	fx    testutil.Fixtures
}

func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.store = testutil.NewStore(s.T())
	s.fx = testutil.Fixtures{T: s.T(), Store: s.store}
}

func (s *CategoryRepositorySuite) TestNameIsUnique() {
	s.fx.Category("Communication")

	err := s.store.Categories.Create(s.ctx, &model.Category{
		ID:       uuid.NewString(),
		Name:     "Communication",
		Weight:   1,
		MaxScore: scoring.MaxCategoryScore,
	})
	s.Require().ErrorIs(err, repository.ErrDuplicate)
}

func (s *CategoryRepositorySuite) TestFindByID() {
	s.Run("existing", func() {
		c := s.fx.Category("Delivery")
		found, err := s.store.Categories.FindByID(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Equal("Delivery", found.Name)
	})

	s.Run("unknown", func() {
		_, err := s.store.Categories.FindByID(s.ctx, uuid.NewString())
		s.ErrorIs(err, repository.ErrNotFound)
	})
}

func (s *CategoryRepositorySuite) TestListSearchSortAndPaginate() {
	desc := "Talks about TEAMWORK"
	for i, name := range []string{"Alpha", "Bravo", "Charlie"} {
		c := &model.Category{ID: uuid.NewString(), Name: name, Weight: 1, MaxScore: 5, Order: 3 - i}
		if name == "Bravo" {
			c.Description = &desc
		}
		s.Require().NoError(s.store.Categories.Create(s.ctx, c))
	}

	s.Run("default order is display order", func() {
		got, total, err := s.store.Categories.List(s.ctx, repository.CategoryListQuery{})
		s.Require().NoError(err)
		s.EqualValues(3, total)
		s.Equal([]string{"Charlie", "Bravo", "Alpha"}, names(got))
	})

	s.Run("search matches description case-insensitively", func() {
		got, total, err := s.store.Categories.List(s.ctx, repository.CategoryListQuery{Search: "teamwork"})
		s.Require().NoError(err)
		s.EqualValues(1, total)
		s.Equal([]string{"Bravo"}, names(got))
	})

	s.Run("sort by name descending with paging", func() {
		got, total, err := s.store.Categories.List(s.ctx, repository.CategoryListQuery{
			Page:      repository.Page{Page: 2, Limit: 2},
			SortBy:    "name",
			SortOrder: "desc",
		})
		s.Require().NoError(err)
		s.EqualValues(3, total)
		s.Equal([]string{"Alpha"}, names(got))
	})
}

func (s *CategoryRepositorySuite) TestFindAllWithItemsOrdersChildren() {
	c := s.fx.Category("Ownership")
	s.fx.Question(c.ID, "second", 2)
	s.fx.Question(c.ID, "first", 1)
	s.fx.Checkpoint(c.ID, "cp", 1)
	s.fx.RedFlag(c.ID, "rf", 1)

	got, err := s.store.Categories.FindAllWithItems(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Require().Len(got[0].Questions, 2)
	s.Equal("first", got[0].Questions[0].QuestionText)
	s.Len(got[0].Checkpoints, 1)
	s.Len(got[0].RedFlags, 1)
}

func (s *CategoryRepositorySuite) TestDeleteCascadesIntoEvaluations() {
	c := s.fx.Category("Technical")
	other := s.fx.Category("Soft skills")
	s.fx.Question(c.ID, "q", 1)
	cp := s.fx.Checkpoint(c.ID, "cp", 1)
	rf := s.fx.RedFlag(c.ID, "rf", 1)
	otherCp := s.fx.Checkpoint(other.ID, "kept", 1)

	f := s.fx.Freelancer("cascade@example.com")
	e := s.fx.Evaluation(f.ID)
	s.Require().NoError(s.store.CategoryScores.Create(s.ctx, &model.CategoryScore{
		ID: uuid.NewString(), EvaluationID: e.ID, CategoryID: c.ID, Score: 5, ScoreLabel: scoring.LabelHigh,
	}))
	s.Require().NoError(s.store.CheckpointResults.Create(s.ctx, &model.CheckpointResult{
		ID: uuid.NewString(), EvaluationID: e.ID, CheckpointID: cp.ID, IsChecked: true,
	}))
	s.Require().NoError(s.store.CheckpointResults.Create(s.ctx, &model.CheckpointResult{
		ID: uuid.NewString(), EvaluationID: e.ID, CheckpointID: otherCp.ID, IsChecked: true,
	}))
	s.Require().NoError(s.store.RedFlagFindings.Create(s.ctx, &model.RedFlagFinding{
		ID: uuid.NewString(), EvaluationID: e.ID, RedFlagID: rf.ID, IsFound: true,
	}))

	impact, err := s.store.Categories.DeletionImpact(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(repository.DeletionImpact{
		Questions:         1,
		Checkpoints:       1,
		RedFlags:          1,
		CategoryScores:    1,
		CheckpointResults: 1,
		RedFlagFindings:   1,
	}, impact)

	err = s.store.Transaction(s.ctx, func(tx *repository.Store) error {
		return tx.Categories.Delete(s.ctx, c.ID)
	})
	s.Require().NoError(err)

	_, err = s.store.Categories.FindByID(s.ctx, c.ID)
	s.ErrorIs(err, repository.ErrNotFound)
	_, err = s.store.Checkpoints.FindByID(s.ctx, cp.ID)
	s.ErrorIs(err, repository.ErrNotFound)
	_, err = s.store.CheckpointResults.FindByPair(s.ctx, e.ID, cp.ID)
	s.ErrorIs(err, repository.ErrNotFound)
	_, err = s.store.RedFlagFindings.FindByPair(s.ctx, e.ID, rf.ID)
	s.ErrorIs(err, repository.ErrNotFound)

	kept, err := s.store.CheckpointResults.FindByPair(s.ctx, e.ID, otherCp.ID)
	s.Require().NoError(err)
	s.True(kept.IsChecked)
	_, err = s.store.Evaluations.FindByID(s.ctx, e.ID)
	s.NoError(err)
}

func (s *CategoryRepositorySuite) TestDeleteUnknown() {
	err := s.store.Categories.Delete(s.ctx, uuid.NewString())
	s.ErrorIs(err, repository.ErrNotFound)
}

func names(categories []model.Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.Name)
	}
	return out
}
