package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/supermanager/interview-eval/internal/model"
	"github.com/supermanager/interview-eval/internal/repository"
)

// FreelancerService is the minimal directory evaluations hang off: enough to
// register a candidate and resolve one by id.
type FreelancerService interface {
	CreateFreelancer(ctx context.Context, req dto.CreateFreelancerRequest) (*dto.FreelancerResponse, error)
	GetFreelancer(ctx context.Context, id string) (*dto.FreelancerResponse, error)
}

type freelancerService struct {
	store *repository.Store
}

func NewFreelancerService(store *repository.Store) FreelancerService {
	return &freelancerService{store: store}
}

func (s *freelancerService) CreateFreelancer(ctx context.Context, req dto.CreateFreelancerRequest) (*dto.FreelancerResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	freelancer := &model.Freelancer{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(req.Name),
		Email: email,
		Phone: strings.TrimSpace(req.Phone),
	}
	if freelancer.Name == "" || email == "" || freelancer.Phone == "" {
		return nil, fmt.Errorf("%w: name, email and phone are required", ErrValidation)
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Freelancers.FindByEmail(ctx, email); err == nil {
			return fmt.Errorf("%w: freelancer with email %s", ErrAlreadyExists, email)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		err := tx.Freelancers.Create(ctx, freelancer)
		if errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("%w: freelancer with email %s", ErrAlreadyExists, email)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("freelancerID", freelancer.ID).Msg("Freelancer registered")
	return toFreelancerResponse(freelancer), nil
}

func (s *freelancerService) GetFreelancer(ctx context.Context, id string) (*dto.FreelancerResponse, error) {
	freelancer, err := s.store.Freelancers.FindByID(ctx, id)
	if err != nil {
		return nil, lookup(err, "freelancer", id)
	}
	return toFreelancerResponse(freelancer), nil
}
