package postgres

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"dora-eats/internal/models"
	"dora-eats/internal/repository"
)

type MenuPostgresRepo struct {
	db *gorm.DB
}

func NewMenuPostgres(db *gorm.DB) *MenuPostgresRepo {
	return &MenuPostgresRepo{db: db}
}

func (r *MenuPostgresRepo) Migrate() error {
	return errors.Wrap(r.db.AutoMigrate(&models.MenuItem{}).Error, "migrate menu_items")
}

// Seed inserts new items and overwrites the stored copy of existing ones.
func (r *MenuPostgresRepo) Seed(items []models.MenuItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, it := range items {
			it.Position = i
			var count int
			if err := tx.Model(&models.MenuItem{}).Where("id = ?", it.ID).Count(&count).Error; err != nil {
				return errors.Wrapf(err, "lookup menu item %s", it.ID)
			}

			if count == 0 {
				if err := tx.Create(&it).Error; err != nil {
					return errors.Wrapf(err, "create menu item %s", it.ID)
				}
				continue
			}

			if err := tx.Model(&models.MenuItem{}).
				Where("id = ?", it.ID).
				Updates(map[string]interface{}{
					"name":        it.Name,
					"price":       it.Price,
					"description": it.Description,
					"image_url":   it.ImageURL,
					"category":    it.Category,
					"bestseller":  it.Bestseller,
					"position":    it.Position,
				}).Error; err != nil {
				return errors.Wrapf(err, "update menu item %s", it.ID)
			}
		}
		return nil
	})
}

func (r *MenuPostgresRepo) GetAll() ([]models.MenuItem, error) {
	var out []models.MenuItem
	if err := r.db.Order("position").Order("id").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list menu items")
	}
	return out, nil
}

func (r *MenuPostgresRepo) Get(id string) (models.MenuItem, error) {
	var it models.MenuItem
	err := r.db.Where("id = ?", id).First(&it).Error
	if gorm.IsRecordNotFoundError(err) {
		return models.MenuItem{}, errors.Wrapf(repository.ErrNotFound, "menu item %s", id)
	}
	if err != nil {
		return models.MenuItem{}, errors.Wrapf(err, "get menu item %s", id)
	}
	return it, nil
}
