package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/scout-market/internal/domain/problem"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	idgen "github.com/riskibarqy/scout-market/internal/platform/id"
)

type ProblemInput struct {
	Title       string
	Description string
}

type ProblemService struct {
	repo  problem.Repository
	idGen idgen.Generator
	now   func() time.Time
}

func NewProblemService(repo problem.Repository, idGen idgen.Generator) *ProblemService {
	return &ProblemService{
		repo:  repo,
		idGen: idGen,
		now:   time.Now,
	}
}

func (s *ProblemService) Create(ctx context.Context, actor user.Principal, input ProblemInput) (problem.Problem, error) {
	ctx, span := startActorSpan(ctx, "usecase.ProblemService.Create", actor)
	defer span.End()

	if err := requireActor(actor); err != nil {
		return problem.Problem{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return problem.Problem{}, fmt.Errorf("generate problem id: %w", err)
	}

	item := problem.Problem{
		ID:           id,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		CreationDate: s.now().UTC(),
		RequesterID:  actor.UserID,
	}
	if err := item.Validate(); err != nil {
		return problem.Problem{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return problem.Problem{}, wrapStoreError("create problem", err)
	}

	return item, nil
}

func (s *ProblemService) Update(ctx context.Context, actor user.Principal, id string, input ProblemInput) (problem.Problem, error) {
	ctx, span := startActorSpan(ctx, "usecase.ProblemService.Update", actor)
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return problem.Problem{}, err
	}
	if err := requireOwnerOrAdmin(actor, item.RequesterID, "problem"); err != nil {
		return problem.Problem{}, err
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Description = strings.TrimSpace(input.Description)
	if err := item.Validate(); err != nil {
		return problem.Problem{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return problem.Problem{}, wrapStoreError("update problem", err)
	}

	return item, nil
}

// Solve marks the problem solved. Solving twice is a no-op.
func (s *ProblemService) Solve(ctx context.Context, actor user.Principal, id string) (problem.Problem, error) {
	ctx, span := startActorSpan(ctx, "usecase.ProblemService.Solve", actor)
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return problem.Problem{}, err
	}

	item, err := s.Get(ctx, id)
	if err != nil {
		return problem.Problem{}, err
	}
	if item.IsSolved {
		return item, nil
	}

	item.IsSolved = true
	if err := s.repo.Update(ctx, item); err != nil {
		return problem.Problem{}, wrapStoreError("solve problem", err)
	}
	return item, nil
}

func (s *ProblemService) Delete(ctx context.Context, actor user.Principal, id string) error {
	ctx, span := startActorSpan(ctx, "usecase.ProblemService.Delete", actor)
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(actor, item.RequesterID, "problem"); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("delete problem: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: problem=%s", ErrNotFound, item.ID)
	}
	return nil
}

func (s *ProblemService) Get(ctx context.Context, id string) (problem.Problem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return problem.Problem{}, fmt.Errorf("%w: problem id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return problem.Problem{}, fmt.Errorf("get problem: %w", err)
	}
	if !exists {
		return problem.Problem{}, fmt.Errorf("%w: problem=%s", ErrNotFound, id)
	}
	return item, nil
}

func (s *ProblemService) List(ctx context.Context, state problem.State) ([]problem.Problem, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProblemService.List")
	defer span.End()

	items, err := s.repo.List(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	return items, nil
}

func (s *ProblemService) Count(ctx context.Context, state problem.State) (int, error) {
	n, err := s.repo.Count(ctx, state)
	if err != nil {
		return 0, fmt.Errorf("count problems: %w", err)
	}
	return n, nil
}
