package paycheck

import (
	"context"

	"github.com/MrJamesThe3rd/payday/internal/dates"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=paycheck
type Repository interface {
	GetSettings(ctx context.Context) (Settings, error)
	SaveSettings(ctx context.Context, s Settings) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Settings(ctx context.Context) (Settings, error) {
	return s.repo.GetSettings(ctx)
}

// SetLastPaycheckDate records the reference paycheck the biweekly
// projection is anchored to.
func (s *Service) SetLastPaycheckDate(ctx context.Context, d dates.Date) error {
	return s.repo.SaveSettings(ctx, Settings{LastPaycheckDate: &d})
}

// Project reads the stored settings and projects pay dates for today.
// A nil projection means no reference paycheck has been recorded yet.
func (s *Service) Project(ctx context.Context, today dates.Date) (*Projection, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	return Project(settings, today), nil
}
