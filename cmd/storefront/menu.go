package main

import (
	"github.com/sirupsen/logrus"

	"dora-eats/internal/configs"
	"dora-eats/internal/repository"
	"dora-eats/internal/repository/postgres"
	"dora-eats/internal/repository/static"
)

// openMenu picks the catalog source. With MENU_FROM_POSTGRES the YAML file
// seeds the menu_items table and reads go to postgres.
func openMenu(cfg configs.Config) (repository.MenuRepo, func(), error) {
	fileMenu, fileErr := static.LoadMenu(cfg.MenuPath)
	if !cfg.MenuFromPostgres {
		if fileErr != nil {
			return nil, nil, fileErr
		}
		logrus.Printf("menu loaded from %s", cfg.MenuPath)
		return fileMenu, func() {}, nil
	}

	db, err := postgres.ConnectDB(postgres.Config{URL: cfg.PgDSN()})
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if derr := db.Close(); derr != nil {
			logrus.Errorf("db close: %v", derr)
		}
	}
	logrus.Print("connected to postgres")

	pg := postgres.NewMenuPostgres(db)
	if err := pg.Migrate(); err != nil {
		closeDB()
		return nil, nil, err
	}

	if fileErr != nil {
		logrus.WithError(fileErr).Warn("menu seed file unavailable, serving stored menu")
		return pg, closeDB, nil
	}
	items, _ := fileMenu.GetAll()
	if err := pg.Seed(items); err != nil {
		closeDB()
		return nil, nil, err
	}
	logrus.Printf("menu seeded from %s", cfg.MenuPath)
	return pg, closeDB, nil
}
