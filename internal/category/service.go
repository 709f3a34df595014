package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CategoryExists(ctx context.Context, name string) (bool, error)
	CountCategories(ctx context.Context) (int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name  string
	Color string
	Icon  string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Category, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	c := &Category{
		Name:  name,
		Color: params.Color,
		Icon:  params.Icon,
	}

	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

// Update renames or restyles a category. A rename stays subject to the
// case-insensitive uniqueness rule.
func (s *Service) Update(ctx context.Context, c *Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("category name is required")
	}

	return s.repo.UpdateCategory(ctx, c)
}

// Delete removes the category label only. Expenses reference categories
// by name and keep theirs.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, id)
}

// Exists is case-insensitive, matching the uniqueness rule.
func (s *Service) Exists(ctx context.Context, name string) (bool, error) {
	return s.repo.CategoryExists(ctx, name)
}

// InitializeDefaults seeds the default taxonomy on an empty database.
// A non-empty taxonomy is left alone.
func (s *Service) InitializeDefaults(ctx context.Context) error {
	n, err := s.repo.CountCategories(ctx)
	if err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}

	if n > 0 {
		return nil
	}

	for _, def := range Defaults() {
		c := def

		if err := s.repo.CreateCategory(ctx, &c); err != nil {
			return fmt.Errorf("seeding category %q: %w", c.Name, err)
		}
	}

	return nil
}
