package seed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/supermanager/interview-eval/internal/model"
	"github.com/supermanager/interview-eval/internal/repository"
	"github.com/supermanager/interview-eval/internal/scoring"
)

type redFlag struct {
	text     string
	severity scoring.Severity
}

type category struct {
	name        string
	description string
	questions   []string
	checkpoints []string
	redFlags    []redFlag
}

// defaultRubric is the standard freelancer interview form. Every category
// weighs 20 and is graded out of 5.
var defaultRubric = []category{
	{
		name:        "기술 역량 & 문제해결",
		description: "최근 프로젝트에서 가장 어려웠던 기술 문제와 해결 과정",
		questions:   []string{"최근 프로젝트에서 가장 어려웠던 기술 문제와 해결 과정은?"},
		checkpoints: []string{
			"사용 스택의 선택 이유와 대안 설명",
			"설계·테스트·배포 흐름 이해",
			"성능/보안/확장성 고려",
		},
		redFlags: []redFlag{
			{"추상적 답변만 함", scoring.SeverityHigh},
			{"테스트/모듈화 부재", scoring.SeverityHigh},
			{"도구/버전 이해 부족", scoring.SeverityMedium},
		},
	},
	{
		name:        "포트폴리오/기여 검증",
		description: "포트폴리오에서 직접 구현한 부분과 기여도 검증",
		questions:   []string{"이 포트폴리오에서 직접 구현한 부분과 기여도(%)는?"},
		checkpoints: []string{
			"코드/리포지터리/커밋 증빙",
			"데모 또는 산출물 제공",
			"재사용 가능한 구조/문서화",
		},
		redFlags: []redFlag{
			{"기여 범위 모호", scoring.SeverityCritical},
			{"NDA만으로 모든 증빙 거부", scoring.SeverityCritical},
			{"데모 미제공", scoring.SeverityHigh},
		},
	},
	{
		name:        "커뮤니케이션 & 일정관리",
		description: "불명확한 요구사항 명확화와 일정 공유 능력",
		questions:   []string{"불명확한 요구를 어떻게 명확화하나요? 지연 시 어떻게 공유하나요?"},
		checkpoints: []string{
			"요구사항 정리 습관(메모/PRD)",
			"리스크 조기 공유 주기 합의",
			"이슈트래커/문서 도구 활용",
		},
		redFlags: []redFlag{
			{"과도한 낙관 일정", scoring.SeverityHigh},
			{"피드백 방어적", scoring.SeverityMedium},
			{"기록/회의록 회피", scoring.SeverityMedium},
		},
	},
	{
		name:        "계약/업무 방식 & 품질보증",
		description: "범위/마일스톤/소유권/보안/하자보수 합의 능력",
		questions:   []string{"범위/마일스톤/소유권/보안/하자보수는 어떻게 합의하나요?"},
		checkpoints: []string{
			"명확한 SOW(범위·산출물)",
			"마일스톤-지불 연동",
			"테스트/리뷰/문서 기준",
			"IP/보안·SLA 합의",
		},
		redFlags: []redFlag{
			{"선지급 과다 요구", scoring.SeverityHigh},
			{"소스코드 전달/소유권 거부", scoring.SeverityCritical},
			{"유지보수 불가", scoring.SeverityCritical},
			{"SLA 부재", scoring.SeverityHigh},
		},
	},
}

const defaultWeight = 20

// Result counts the rows a seed run inserted.
type Result struct {
	Categories  int
	Questions   int
	Checkpoints int
	RedFlags    int
	Skipped     int
}

// Rubric inserts the default rubric in one transaction. Categories that
// already exist by name are skipped along with their items, so running it
// twice is harmless.
func Rubric(ctx context.Context, store *repository.Store) (Result, error) {
	var res Result
	err := store.Transaction(ctx, func(tx *repository.Store) error {
		for i, c := range defaultRubric {
			if _, err := tx.Categories.FindByName(ctx, c.name); err == nil {
				res.Skipped++
				continue
			} else if !errors.Is(err, repository.ErrNotFound) {
				return err
			}

			description := c.description
			cat := &model.Category{
				ID:          uuid.NewString(),
				Name:        c.name,
				Description: &description,
				Weight:      defaultWeight,
				MaxScore:    scoring.MaxCategoryScore,
				Order:       i + 1,
			}
			if err := tx.Categories.Create(ctx, cat); err != nil {
				return err
			}
			res.Categories++

			for j, text := range c.questions {
				q := &model.Question{ID: uuid.NewString(), CategoryID: cat.ID, QuestionText: text, Order: j + 1}
				if err := tx.Questions.Create(ctx, q); err != nil {
					return err
				}
				res.Questions++
			}
			for j, text := range c.checkpoints {
				cp := &model.Checkpoint{ID: uuid.NewString(), CategoryID: cat.ID, CheckpointText: text, Order: j + 1}
				if err := tx.Checkpoints.Create(ctx, cp); err != nil {
					return err
				}
				res.Checkpoints++
			}
			for j, rf := range c.redFlags {
				flag := &model.RedFlag{ID: uuid.NewString(), CategoryID: cat.ID, FlagText: rf.text, Severity: rf.severity, Order: j + 1}
				if err := tx.RedFlags.Create(ctx, flag); err != nil {
					return err
				}
				res.RedFlags++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Info().
		Int("categories", res.Categories).
		Int("questions", res.Questions).
		Int("checkpoints", res.Checkpoints).
		Int("redFlags", res.RedFlags).
		Int("skipped", res.Skipped).
		Msg("Rubric seed finished")
	return res, nil
}

// DemoFreelancer registers a sample candidate unless the email is taken.
func DemoFreelancer(ctx context.Context, store *repository.Store) (*model.Freelancer, error) {
	const email = "demo.freelancer@example.com"
	if existing, err := store.Freelancers.FindByEmail(ctx, email); err == nil {
		return existing, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	f := &model.Freelancer{
		ID:    uuid.NewString(),
		Name:  "Demo Freelancer",
		Email: email,
		Phone: "010-0000-0000",
	}
	if err := store.Freelancers.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}
