package repository

import (
	"context"

	"github.com/supermanager/interview-eval/internal/model"
	"gorm.io/gorm"
)

type FreelancerRepository interface {
	Create(ctx context.Context, freelancer *model.Freelancer) error
	FindByID(ctx context.Context, id string) (*model.Freelancer, error)
	FindByEmail(ctx context.Context, email string) (*model.Freelancer, error)
}

type freelancerRepository struct {
	db *gorm.DB
}

func NewFreelancerRepository(db *gorm.DB) FreelancerRepository {
	return &freelancerRepository{db: db}
}

func (r *freelancerRepository) Create(ctx context.Context, freelancer *model.Freelancer) error {
	return translate(r.db.WithContext(ctx).Create(freelancer).Error)
}

func (r *freelancerRepository) FindByID(ctx context.Context, id string) (*model.Freelancer, error) {
	var freelancer model.Freelancer
	if err := r.db.WithContext(ctx).First(&freelancer, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &freelancer, nil
}

func (r *freelancerRepository) FindByEmail(ctx context.Context, email string) (*model.Freelancer, error) {
	var freelancer model.Freelancer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&freelancer).Error; err != nil {
		return nil, translate(err)
	}
	return &freelancer, nil
}
