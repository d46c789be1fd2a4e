// Package static serves the catalog from a YAML file loaded once at startup.
package static

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"dora-eats/internal/models"
	"dora-eats/internal/repository"
)

type menuFile struct {
	Items []models.MenuItem `yaml:"items"`
}

type MenuFileRepo struct {
	items []models.MenuItem
	byID  map[string]int
}

// LoadMenu reads path and keeps the items that pass their struct tags.
// Invalid or duplicate entries are logged and skipped.
func LoadMenu(path string) (*MenuFileRepo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read menu file")
	}
	return ParseMenu(raw)
}

func ParseMenu(raw []byte) (*MenuFileRepo, error) {
	var f menuFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, "decode menu yaml")
	}

	v := validator.New()
	r := &MenuFileRepo{byID: make(map[string]int, len(f.Items))}
	for i, it := range f.Items {
		if err := v.Struct(it); err != nil {
			logrus.WithError(err).WithField("id", it.ID).Warn("skip invalid menu item")
			continue
		}
		if _, dup := r.byID[it.ID]; dup {
			logrus.WithField("id", it.ID).Warn("skip duplicate menu item")
			continue
		}
		it.Position = i
		r.byID[it.ID] = len(r.items)
		r.items = append(r.items, it)
	}
	if len(r.items) == 0 {
		return nil, errors.New("menu has no valid items")
	}
	return r, nil
}

func (r *MenuFileRepo) GetAll() ([]models.MenuItem, error) {
	return append([]models.MenuItem(nil), r.items...), nil
}

func (r *MenuFileRepo) Get(id string) (models.MenuItem, error) {
	i, ok := r.byID[id]
	if !ok {
		return models.MenuItem{}, errors.Wrapf(repository.ErrNotFound, "menu item %s", id)
	}
	return r.items[i], nil
}
