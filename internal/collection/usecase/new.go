package usecase

import (
	"todo-sync/internal/collection"
	"todo-sync/internal/collection/repository"
	"todo-sync/pkg/log"
)

// implUseCase is the private implementation of collection.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new collection UseCase implementation.
func New(repo repository.Repository, l log.Logger) collection.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
