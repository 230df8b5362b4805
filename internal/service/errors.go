package service

import (
	"errors"
	"fmt"

	"github.com/supermanager/interview-eval/internal/repository"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("duplicate name")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidScore  = errors.New("invalid score")
	ErrInvalidLabel  = errors.New("invalid score label")
	ErrInvalidEnum   = errors.New("invalid enum value")
	ErrValidation    = errors.New("validation failed")
)

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
}

// lookup converts a repository miss into ErrNotFound naming the entity.
func lookup(err error, kind, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(kind, id)
	}
	return err
}
