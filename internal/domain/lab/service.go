package lab

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// DashboardView is the lab page payload: the tech directory plus the
// selected tech's results. No selection means no results, not an error.
type DashboardView struct {
	Techs          []Tech      `json:"lab_techs"`
	SelectedTechID *int        `json:"selected_tech_id"`
	Results        []ResultRow `json:"lab_results"`
}

func (s *Service) Dashboard(ctx context.Context, techID *int) (*DashboardView, error) {
	techs, err := s.repo.ListTechs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lab techs: %w", err)
	}

	view := &DashboardView{Techs: techs, SelectedTechID: techID, Results: []ResultRow{}}
	if techID != nil {
		results, err := s.repo.Results(ctx, *techID)
		if err != nil {
			return nil, fmt.Errorf("lab results: %w", err)
		}
		if results != nil {
			view.Results = results
		}
	}
	return view, nil
}
