package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/supermanager/interview-eval/internal/model"
	"github.com/supermanager/interview-eval/internal/repository"
	"github.com/supermanager/interview-eval/internal/scoring"
	"github.com/supermanager/interview-eval/internal/testutil"
)

type EvaluationRepositorySuite struct {
	suite.Suite
	ctx   context.Context
	store *repository.Store
	fx    testutil.Fixtures
}

func TestEvaluationRepositorySuite(t *testing.T) {
	suite.Run(t, new(EvaluationRepositorySuite))
}

func (s *EvaluationRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.store = testutil.NewStore(s.T())
	s.fx = testutil.Fixtures{T: s.T(), Store: s.store}
}

func (s *EvaluationRepositorySuite) TestPairsAreUnique() {
	c := s.fx.Category("Technical")
	cp := s.fx.Checkpoint(c.ID, "cp", 1)
	rf := s.fx.RedFlag(c.ID, "rf", 1)
	e := s.fx.Evaluation(s.fx.Freelancer("pairs@example.com").ID)

	score := func() *model.CategoryScore {
		return &model.CategoryScore{ID: uuid.NewString(), EvaluationID: e.ID, CategoryID: c.ID, Score: 3, ScoreLabel: scoring.LabelMedium}
	}
	s.Require().NoError(s.store.CategoryScores.Create(s.ctx, score()))
	s.ErrorIs(s.store.CategoryScores.Create(s.ctx, score()), repository.ErrDuplicate)

	result := func() *model.CheckpointResult {
		return &model.CheckpointResult{ID: uuid.NewString(), EvaluationID: e.ID, CheckpointID: cp.ID}
	}
	s.Require().NoError(s.store.CheckpointResults.Create(s.ctx, result()))
	s.ErrorIs(s.store.CheckpointResults.Create(s.ctx, result()), repository.ErrDuplicate)

	finding := func() *model.RedFlagFinding {
		return &model.RedFlagFinding{ID: uuid.NewString(), EvaluationID: e.ID, RedFlagID: rf.ID}
	}
	s.Require().NoError(s.store.RedFlagFindings.Create(s.ctx, finding()))
	s.ErrorIs(s.store.RedFlagFindings.Create(s.ctx, finding()), repository.ErrDuplicate)
}

func (s *EvaluationRepositorySuite) TestFindByIDWithDetailsJoinsRubric() {
	c := s.fx.Category("Communication")
	cp := s.fx.Checkpoint(c.ID, "Explains trade-offs", 1)
	rf := s.fx.RedFlag(c.ID, "Blames others", 1)
	e := s.fx.Evaluation(s.fx.Freelancer("details@example.com").ID)

	s.Require().NoError(s.store.CategoryScores.Create(s.ctx, &model.CategoryScore{
		ID: uuid.NewString(), EvaluationID: e.ID, CategoryID: c.ID, Score: 5, ScoreLabel: scoring.LabelHigh, CheckedCount: 1,
	}))
	s.Require().NoError(s.store.CheckpointResults.Create(s.ctx, &model.CheckpointResult{
		ID: uuid.NewString(), EvaluationID: e.ID, CheckpointID: cp.ID, IsChecked: true,
	}))
	s.Require().NoError(s.store.RedFlagFindings.Create(s.ctx, &model.RedFlagFinding{
		ID: uuid.NewString(), EvaluationID: e.ID, RedFlagID: rf.ID, IsFound: true,
	}))

	got, err := s.store.Evaluations.FindByIDWithDetails(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Require().Len(got.CategoryScores, 1)
	s.Require().NotNil(got.CategoryScores[0].Category)
	s.Equal("Communication", got.CategoryScores[0].Category.Name)
	s.Require().Len(got.CheckpointResults, 1)
	s.Equal("Explains trade-offs", got.CheckpointResults[0].Checkpoint.CheckpointText)
	s.Require().Len(got.RedFlagFindings, 1)
	s.Equal("Blames others", got.RedFlagFindings[0].RedFlag.FlagText)
}

func (s *EvaluationRepositorySuite) TestListFilters() {
	alice := s.fx.Freelancer("alice@example.com")
	bob := s.fx.Freelancer("bob@example.com")
	recommend := scoring.RecommendationRecommend
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mk := func(freelancerID string, score *float64, rec *scoring.Recommendation, day int) *model.Evaluation {
		e := &model.Evaluation{
			ID:             uuid.NewString(),
			FreelancerID:   freelancerID,
			TotalScore:     score,
			Recommendation: rec,
			EvaluatedAt:    base.AddDate(0, 0, day),
		}
		s.Require().NoError(s.store.Evaluations.Create(s.ctx, e))
		return e
	}
	high, low := 18.0, 8.0
	first := mk(alice.ID, &high, &recommend, 0)
	second := mk(alice.ID, &low, nil, 1)
	third := mk(bob.ID, nil, nil, 2)

	s.Run("newest first by default", func() {
		got, total, err := s.store.Evaluations.List(s.ctx, repository.EvaluationListQuery{})
		s.Require().NoError(err)
		s.EqualValues(3, total)
		s.Equal([]string{third.ID, second.ID, first.ID}, ids(got))
	})

	s.Run("by freelancer", func() {
		got, total, err := s.store.Evaluations.List(s.ctx, repository.EvaluationListQuery{FreelancerID: alice.ID})
		s.Require().NoError(err)
		s.EqualValues(2, total)
		s.ElementsMatch([]string{first.ID, second.ID}, ids(got))
	})

	s.Run("by recommendation", func() {
		got, _, err := s.store.Evaluations.List(s.ctx, repository.EvaluationListQuery{Recommendation: &recommend})
		s.Require().NoError(err)
		s.Equal([]string{first.ID}, ids(got))
	})

	s.Run("minimum score skips unscored", func() {
		minScore := 10.0
		got, _, err := s.store.Evaluations.List(s.ctx, repository.EvaluationListQuery{MinScore: &minScore})
		s.Require().NoError(err)
		s.Equal([]string{first.ID}, ids(got))
	})

	s.Run("sort by total score ascending", func() {
		got, _, err := s.store.Evaluations.List(s.ctx, repository.EvaluationListQuery{
			FreelancerID: alice.ID,
			SortBy:       "totalScore",
			SortOrder:    "asc",
		})
		s.Require().NoError(err)
		s.Equal([]string{second.ID, first.ID}, ids(got))
	})
}

func (s *EvaluationRepositorySuite) TestDeleteRemovesChildren() {
	c := s.fx.Category("Technical")
	cp := s.fx.Checkpoint(c.ID, "cp", 1)
	e := s.fx.Evaluation(s.fx.Freelancer("delete@example.com").ID)
	s.Require().NoError(s.store.CategoryScores.Create(s.ctx, &model.CategoryScore{
		ID: uuid.NewString(), EvaluationID: e.ID, CategoryID: c.ID, Score: 1, ScoreLabel: scoring.LabelLow,
	}))
	s.Require().NoError(s.store.CheckpointResults.Create(s.ctx, &model.CheckpointResult{
		ID: uuid.NewString(), EvaluationID: e.ID, CheckpointID: cp.ID,
	}))

	s.Require().NoError(s.store.Evaluations.Delete(s.ctx, e.ID))

	scores, err := s.store.CategoryScores.ListByEvaluation(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Empty(scores)
	_, err = s.store.CheckpointResults.FindByPair(s.ctx, e.ID, cp.ID)
	s.ErrorIs(err, repository.ErrNotFound)

	_, err = s.store.Categories.FindByID(s.ctx, c.ID)
	s.NoError(err, "rubric rows survive an evaluation delete")

	s.ErrorIs(s.store.Evaluations.Delete(s.ctx, e.ID), repository.ErrNotFound)
}

func (s *EvaluationRepositorySuite) TestTransactionRollsBack() {
	f := s.fx.Freelancer("rollback@example.com")
	id := uuid.NewString()

	err := s.store.Transaction(s.ctx, func(tx *repository.Store) error {
		if err := tx.Evaluations.Create(s.ctx, &model.Evaluation{ID: id, FreelancerID: f.ID, EvaluatedAt: time.Now()}); err != nil {
			return err
		}
		return repository.ErrDuplicate
	})
	s.Require().ErrorIs(err, repository.ErrDuplicate)

	_, err = s.store.Evaluations.FindByID(s.ctx, id)
	s.ErrorIs(err, repository.ErrNotFound)
}

func ids(evaluations []model.Evaluation) []string {
	out := make([]string, 0, len(evaluations))
	for _, e := range evaluations {
		out = append(out, e.ID)
	}
	return out
}
