package service

import (
	"errors"
	"fmt"

	"dora-eats/internal/models"
	"dora-eats/internal/repository"
)

func (s *Service) Menu(category string) ([]models.MenuItem, error) {
	items, err := s.repo.MenuRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	return models.FilterByCategory(items, category), nil
}

func (s *Service) Categories() ([]string, error) {
	items, err := s.repo.MenuRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	return models.Categories(items), nil
}

func (s *Service) Bestsellers() ([]models.MenuItem, error) {
	items, err := s.repo.MenuRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	out := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		if it.Bestseller {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *Service) MenuItem(id string) (models.MenuItem, error) {
	it, err := s.repo.MenuRepo.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.MenuItem{}, ErrNotFound
	}
	return it, err
}

func (s *Service) FormatPrice(amount int) string {
	return s.money.Format(amount)
}
