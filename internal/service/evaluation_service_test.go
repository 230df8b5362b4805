package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/supermanager/interview-eval/internal/metrics"
	"github.com/supermanager/interview-eval/internal/model"
	"github.com/supermanager/interview-eval/internal/repository"
	"github.com/supermanager/interview-eval/internal/scoring"
	"github.com/supermanager/interview-eval/internal/service"
	"github.com/supermanager/interview-eval/internal/testutil"
)

type EvaluationServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *repository.Store
	fx      testutil.Fixtures
	metrics *metrics.Metrics
	svc     service.EvaluationService

	freelancer *model.Freelancer
	category   *model.Category
	checkpoint *model.Checkpoint
	redFlag    *model.RedFlag
}

func TestEvaluationServiceSuite(t *testing.T) {
	suite.Run(t, new(EvaluationServiceSuite))
}

func (s *EvaluationServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = testutil.NewStore(s.T())
	s.fx = testutil.Fixtures{T: s.T(), Store: s.store}
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.svc = service.NewEvaluationService(s.store, s.metrics)

	s.freelancer = s.fx.Freelancer("candidate@example.com")
	s.category = s.fx.Category("기술 역량 & 문제해결")
	s.checkpoint = s.fx.Checkpoint(s.category.ID, "설계·테스트·배포 흐름 이해", 1)
	s.redFlag = s.fx.RedFlag(s.category.ID, "추상적 답변만 함", 1)
}

func (s *EvaluationServiceSuite) newEvaluation() *dto.EvaluationResponse {
	interviewer := "Lee"
	e, err := s.svc.CreateEvaluation(s.ctx, dto.CreateEvaluationRequest{
		FreelancerID:    s.freelancer.ID,
		InterviewerName: &interviewer,
	})
	s.Require().NoError(err)
	return e
}

func (s *EvaluationServiceSuite) score(evaluationID, categoryID string, value float64) {
	label, ok := scoring.LabelFor(value)
	s.Require().True(ok)
	_, err := s.svc.AddCategoryScore(s.ctx, evaluationID, dto.AddCategoryScoreRequest{
		CategoryID: categoryID,
		Score:      value,
		ScoreLabel: label,
	})
	s.Require().NoError(err)
}

func (s *EvaluationServiceSuite) TestCreateEvaluation() {
	s.Run("defaults evaluatedAt and starts unscored", func() {
		before := time.Now().UTC().Add(-time.Second)
		e := s.newEvaluation()
		s.Equal(s.freelancer.ID, e.FreelancerID)
		s.Nil(e.TotalScore)
		s.Nil(e.Recommendation)
		s.True(e.EvaluatedAt.After(before))
	})

	s.Run("unknown freelancer is not found", func() {
		_, err := s.svc.CreateEvaluation(s.ctx, dto.CreateEvaluationRequest{FreelancerID: uuid.NewString()})
		s.ErrorIs(err, service.ErrNotFound)
	})
}

func (s *EvaluationServiceSuite) TestCalculateTotalScore() {
	s.Run("mean of four categories", func() {
		e := s.newEvaluation()
		categories := []*model.Category{s.category, s.fx.Category("커뮤니케이션"), s.fx.Category("일정 관리"), s.fx.Category("협업")}
		for i, v := range []float64{5, 3, 5, 3} {
			s.score(e.ID, categories[i].ID, v)
		}

		total, err := s.svc.CalculateTotalScore(s.ctx, e.ID)
		s.Require().NoError(err)
		s.InDelta(80.0, total, 1e-9)

		stored, err := s.svc.GetEvaluation(s.ctx, e.ID)
		s.Require().NoError(err)
		s.Require().NotNil(stored.TotalScore)
		s.InDelta(80.0, *stored.TotalScore, 1e-9)

		again, err := s.svc.CalculateTotalScore(s.ctx, e.ID)
		s.Require().NoError(err)
		s.Equal(total, again)
	})

	s.Run("single top score is 100", func() {
		e := s.newEvaluation()
		s.score(e.ID, s.category.ID, 5)

		total, err := s.svc.CalculateTotalScore(s.ctx, e.ID)
		s.Require().NoError(err)
		s.InDelta(100.0, total, 1e-9)
	})

	s.Run("no scores is zero, not an error", func() {
		e := s.newEvaluation()
		total, err := s.svc.CalculateTotalScore(s.ctx, e.ID)
		s.Require().NoError(err)
		s.Zero(total)

		stored, err := s.svc.GetEvaluation(s.ctx, e.ID)
		s.Require().NoError(err)
		s.Require().NotNil(stored.TotalScore)
		s.Zero(*stored.TotalScore)
	})

	s.Run("unknown evaluation", func() {
		_, err := s.svc.CalculateTotalScore(s.ctx, uuid.NewString())
		s.ErrorIs(err, service.ErrNotFound)
	})

	s.Equal(4.0, promtest.ToFloat64(s.metrics.EvaluationEvents.WithLabelValues("scored")))
}

func (s *EvaluationServiceSuite) TestAddCategoryScoreValidation() {
	e := s.newEvaluation()

	cases := []struct {
		name string
		req  dto.AddCategoryScoreRequest
		want error
	}{
		{"score outside the set", dto.AddCategoryScoreRequest{CategoryID: s.category.ID, Score: 4, ScoreLabel: scoring.LabelHigh}, service.ErrInvalidScore},
		{"unknown label", dto.AddCategoryScoreRequest{CategoryID: s.category.ID, Score: 5, ScoreLabel: "최상"}, service.ErrInvalidLabel},
		{"label of another score", dto.AddCategoryScoreRequest{CategoryID: s.category.ID, Score: 5, ScoreLabel: scoring.LabelLow}, service.ErrInvalidLabel},
		{"negative checked count", dto.AddCategoryScoreRequest{CategoryID: s.category.ID, Score: 5, ScoreLabel: scoring.LabelHigh, CheckedCount: -1}, service.ErrValidation},
		{"unknown category", dto.AddCategoryScoreRequest{CategoryID: uuid.NewString(), Score: 5, ScoreLabel: scoring.LabelHigh}, service.ErrNotFound},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.svc.AddCategoryScore(s.ctx, e.ID, tc.req)
			s.ErrorIs(err, tc.want)
		})
	}

	s.Run("unknown evaluation", func() {
		_, err := s.svc.AddCategoryScore(s.ctx, uuid.NewString(), dto.AddCategoryScoreRequest{
			CategoryID: s.category.ID, Score: 5, ScoreLabel: scoring.LabelHigh,
		})
		s.ErrorIs(err, service.ErrNotFound)
	})
}

func (s *EvaluationServiceSuite) TestCategoryScoreAddThenUpsert() {
	e := s.newEvaluation()

	added, err := s.svc.AddCategoryScore(s.ctx, e.ID, dto.AddCategoryScoreRequest{
		CategoryID: s.category.ID, Score: 3, ScoreLabel: scoring.LabelMedium, CheckedCount: 2,
	})
	s.Require().NoError(err)
	s.Require().NotNil(added.CategoryName)
	s.Equal(s.category.Name, *added.CategoryName)

	_, err = s.svc.AddCategoryScore(s.ctx, e.ID, dto.AddCategoryScoreRequest{
		CategoryID: s.category.ID, Score: 5, ScoreLabel: scoring.LabelHigh,
	})
	s.ErrorIs(err, service.ErrAlreadyExists)

	_, err = s.svc.UpsertCategoryScore(s.ctx, e.ID, s.category.ID, dto.UpsertCategoryScoreRequest{Score: 2, ScoreLabel: scoring.LabelMedium})
	s.ErrorIs(err, service.ErrInvalidScore)

	updated, err := s.svc.UpsertCategoryScore(s.ctx, e.ID, s.category.ID, dto.UpsertCategoryScoreRequest{
		Score: 5, ScoreLabel: scoring.LabelHigh, CheckedCount: 3,
	})
	s.Require().NoError(err)
	s.Equal(added.ID, updated.ID)
	s.Equal(5.0, updated.Score)
	s.Equal(3, updated.CheckedCount)

	rows, err := s.store.CategoryScores.ListByEvaluation(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Len(rows, 1)
}

func (s *EvaluationServiceSuite) TestUpsertCategoryScoreCreatesWhenAbsent() {
	e := s.newEvaluation()

	_, err := s.svc.UpsertCategoryScore(s.ctx, e.ID, s.category.ID, dto.UpsertCategoryScoreRequest{Score: 1, ScoreLabel: scoring.LabelHigh})
	s.ErrorIs(err, service.ErrInvalidLabel, "creating through upsert applies the add rules")

	created, err := s.svc.UpsertCategoryScore(s.ctx, e.ID, s.category.ID, dto.UpsertCategoryScoreRequest{Score: 1, ScoreLabel: scoring.LabelLow})
	s.Require().NoError(err)
	s.Equal(1.0, created.Score)

	_, err = s.svc.UpsertCategoryScore(s.ctx, uuid.NewString(), s.category.ID, dto.UpsertCategoryScoreRequest{Score: 1, ScoreLabel: scoring.LabelLow})
	s.ErrorIs(err, service.ErrNotFound)
}

func (s *EvaluationServiceSuite) TestCheckpointResults() {
	e := s.newEvaluation()
	checked := true
	notes := "walked through the CI pipeline"

	first, err := s.svc.AddCheckpointResult(s.ctx, e.ID, dto.AddCheckpointResultRequest{
		CheckpointID: s.checkpoint.ID, IsChecked: &checked, Notes: &notes,
	})
	s.Require().NoError(err)
	s.True(first.IsChecked)
	s.Require().NotNil(first.CheckpointText)
	s.Equal(s.checkpoint.CheckpointText, *first.CheckpointText)

	_, err = s.svc.AddCheckpointResult(s.ctx, e.ID, dto.AddCheckpointResultRequest{CheckpointID: s.checkpoint.ID})
	s.ErrorIs(err, service.ErrAlreadyExists)

	s.Run("upsert leaves absent fields alone", func() {
		newNotes := "follow up on rollback strategy"
		got, err := s.svc.UpsertCheckpointResult(s.ctx, e.ID, s.checkpoint.ID, dto.UpsertCheckpointResultRequest{Notes: &newNotes})
		s.Require().NoError(err)
		s.Equal(first.ID, got.ID)
		s.True(got.IsChecked)
		s.Equal(newNotes, *got.Notes)
	})

	s.Run("upsert on a never-added pair creates it", func() {
		other := s.fx.Checkpoint(s.category.ID, "성능/보안/확장성 고려", 2)
		unchecked := false
		memo := "did not mention load testing"
		got, err := s.svc.UpsertCheckpointResult(s.ctx, e.ID, other.ID, dto.UpsertCheckpointResultRequest{IsChecked: &unchecked, Notes: &memo})
		s.Require().NoError(err)
		s.False(got.IsChecked)
		s.Equal(memo, *got.Notes)

		stored, err := s.store.CheckpointResults.FindByPair(s.ctx, e.ID, other.ID)
		s.Require().NoError(err)
		s.Equal(got.ID, stored.ID)
	})

	s.Run("absent isChecked on create means false", func() {
		other := s.fx.Checkpoint(s.category.ID, "사용 스택의 선택 이유", 3)
		got, err := s.svc.AddCheckpointResult(s.ctx, e.ID, dto.AddCheckpointResultRequest{CheckpointID: other.ID})
		s.Require().NoError(err)
		s.False(got.IsChecked)
	})

	s.Run("unknown checkpoint", func() {
		_, err := s.svc.AddCheckpointResult(s.ctx, e.ID, dto.AddCheckpointResultRequest{CheckpointID: uuid.NewString()})
		s.ErrorIs(err, service.ErrNotFound)
	})
}

func (s *EvaluationServiceSuite) TestRedFlagFindings() {
	e := s.newEvaluation()
	found := true

	s.Run("invalid severity", func() {
		bad := "catastrophic"
		_, err := s.svc.AddRedFlagFinding(s.ctx, e.ID, dto.AddRedFlagFindingRequest{RedFlagID: s.redFlag.ID, SeverityActual: &bad})
		s.ErrorIs(err, service.ErrInvalidEnum)
	})

	high := string(scoring.SeverityHigh)
	evidence := "could not name a single metric"
	added, err := s.svc.AddRedFlagFinding(s.ctx, e.ID, dto.AddRedFlagFindingRequest{
		RedFlagID: s.redFlag.ID, IsFound: &found, SeverityActual: &high, Evidence: &evidence,
	})
	s.Require().NoError(err)
	s.True(added.IsFound)
	s.Equal(scoring.SeverityHigh, *added.SeverityActual)
	s.Equal(s.redFlag.FlagText, *added.FlagText)

	_, err = s.svc.AddRedFlagFinding(s.ctx, e.ID, dto.AddRedFlagFindingRequest{RedFlagID: s.redFlag.ID})
	s.ErrorIs(err, service.ErrAlreadyExists)

	critical := string(scoring.SeverityCritical)
	updated, err := s.svc.UpsertRedFlagFinding(s.ctx, e.ID, s.redFlag.ID, dto.UpsertRedFlagFindingRequest{SeverityActual: &critical})
	s.Require().NoError(err)
	s.Equal(added.ID, updated.ID)
	s.True(updated.IsFound)
	s.Equal(scoring.SeverityCritical, *updated.SeverityActual)
	s.Equal(evidence, *updated.Evidence)
}

func (s *EvaluationServiceSuite) TestSetRecommendation() {
	e := s.newEvaluation()
	notes := "strong on delivery"

	got, err := s.svc.SetRecommendation(s.ctx, e.ID, dto.SetRecommendationRequest{Recommendation: "recommend", Notes: &notes})
	s.Require().NoError(err)
	s.Equal(scoring.RecommendationRecommend, *got.Recommendation)
	s.Equal(notes, *got.Notes)
	s.Nil(got.TotalScore, "recommendation does not require a total score")

	got, err = s.svc.SetRecommendation(s.ctx, e.ID, dto.SetRecommendationRequest{Recommendation: "not_recommend"})
	s.Require().NoError(err)
	s.Equal(scoring.RecommendationNotRecommend, *got.Recommendation)
	s.Equal(notes, *got.Notes, "notes are kept when not provided")

	got, err = s.svc.SetRecommendation(s.ctx, e.ID, dto.SetRecommendationRequest{Recommendation: "pending"})
	s.Require().NoError(err, "a final decision can be reopened")
	s.Equal(scoring.RecommendationPending, *got.Recommendation)

	for _, bad := range []string{"maybe", "RECOMMEND", ""} {
		_, err = s.svc.SetRecommendation(s.ctx, e.ID, dto.SetRecommendationRequest{Recommendation: bad})
		s.ErrorIs(err, service.ErrInvalidEnum, bad)
	}

	_, err = s.svc.SetRecommendation(s.ctx, uuid.NewString(), dto.SetRecommendationRequest{Recommendation: "pending"})
	s.ErrorIs(err, service.ErrNotFound)

	s.Equal(1.0, promtest.ToFloat64(s.metrics.Recommendations.WithLabelValues("recommend")))
}

func (s *EvaluationServiceSuite) TestUpdateEvaluation() {
	e := s.newEvaluation()
	project := "Payments revamp"

	got, err := s.svc.UpdateEvaluation(s.ctx, e.ID, dto.UpdateEvaluationRequest{ProjectName: &project})
	s.Require().NoError(err)
	s.Equal(project, *got.ProjectName)
	s.Equal("Lee", *got.InterviewerName)

	bad := "hire"
	_, err = s.svc.UpdateEvaluation(s.ctx, e.ID, dto.UpdateEvaluationRequest{Recommendation: &bad})
	s.ErrorIs(err, service.ErrInvalidEnum)
}

func (s *EvaluationServiceSuite) TestGetEvaluationDetails() {
	e := s.newEvaluation()
	s.score(e.ID, s.category.ID, 3)
	_, err := s.svc.AddCheckpointResult(s.ctx, e.ID, dto.AddCheckpointResultRequest{CheckpointID: s.checkpoint.ID})
	s.Require().NoError(err)

	got, err := s.svc.GetEvaluationDetails(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(e.ID, got.ID)
	s.Require().Len(got.CategoryScores, 1)
	s.Equal(s.category.Name, *got.CategoryScores[0].CategoryName)
	s.Require().Len(got.CheckpointResults, 1)
	s.Equal(s.checkpoint.CheckpointText, *got.CheckpointResults[0].CheckpointText)
	s.NotNil(got.RedFlagFindings)
	s.Empty(got.RedFlagFindings)

	_, err = s.svc.GetEvaluationDetails(s.ctx, uuid.NewString())
	s.ErrorIs(err, service.ErrNotFound)
}

func (s *EvaluationServiceSuite) TestDeleteEvaluationCascades() {
	e := s.newEvaluation()
	s.score(e.ID, s.category.ID, 5)
	_, err := s.svc.AddCheckpointResult(s.ctx, e.ID, dto.AddCheckpointResultRequest{CheckpointID: s.checkpoint.ID})
	s.Require().NoError(err)
	_, err = s.svc.AddRedFlagFinding(s.ctx, e.ID, dto.AddRedFlagFindingRequest{RedFlagID: s.redFlag.ID})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.DeleteEvaluation(s.ctx, e.ID))

	scores, err := s.store.CategoryScores.ListByEvaluation(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Empty(scores)
	_, err = s.store.CheckpointResults.FindByPair(s.ctx, e.ID, s.checkpoint.ID)
	s.ErrorIs(err, repository.ErrNotFound)
	_, err = s.store.RedFlagFindings.FindByPair(s.ctx, e.ID, s.redFlag.ID)
	s.ErrorIs(err, repository.ErrNotFound)

	s.ErrorIs(s.svc.DeleteEvaluation(s.ctx, e.ID), service.ErrNotFound)
}

func (s *EvaluationServiceSuite) TestListEvaluations() {
	for i := 0; i < 3; i++ {
		s.newEvaluation()
	}

	page, err := s.svc.ListEvaluations(s.ctx, dto.EvaluationListQuery{
		PageQuery:    dto.PageQuery{Page: 1, Limit: 2},
		FreelancerID: s.freelancer.ID,
	})
	s.Require().NoError(err)
	s.EqualValues(3, page.Total)
	s.Len(page.Data, 2)
	s.Equal(2, page.TotalPages)

	_, err = s.svc.ListEvaluations(s.ctx, dto.EvaluationListQuery{Recommendation: "later"})
	s.ErrorIs(err, service.ErrInvalidEnum)
}
