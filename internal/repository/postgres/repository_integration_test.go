package postgres_test

import (
	"testing"

	gorm "github.com/jinzhu/gorm"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"

	"dora-eats/internal/models"
	repo "dora-eats/internal/repository"
	pg "dora-eats/internal/repository/postgres"
)

type pgEnv struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	DB       *gorm.DB
	Menu     *pg.MenuPostgresRepo
	R        *repo.Repository
}

func upPostgres(t *testing.T) *pgEnv {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_DB=storefront",
		"POSTGRES_USER=app",
		"POSTGRES_PASSWORD=app",
	})
	require.NoError(t, err)

	env := &pgEnv{pool: pool, resource: resource}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	require.NoError(t, pool.Retry(func() error {
		db, err := pg.ConnectDB(pg.Config{
			Host:     "localhost",
			Port:     resource.GetPort("5432/tcp"),
			Username: "app",
			Password: "app",
			DbName:   "storefront",
			SslMode:  "disable",
		})
		if err != nil {
			return err
		}
		env.DB = db
		env.Menu = pg.NewMenuPostgres(db)
		if err := env.Menu.Migrate(); err != nil {
			return err
		}

		env.R = repo.NewRepository(env.Menu, repo.CacheConfig{})
		return nil
	}))
	t.Cleanup(func() {
		env.R.Close()
		_ = env.DB.Close()
	})

	return env
}

func item(id, name, category string, price int) models.MenuItem {
	return models.MenuItem{ID: id, Name: name, Price: price, Category: category}
}

func Test_Postgres_SeedGet_GetAll_Positive(t *testing.T) {
	env := upPostgres(t)

	items := []models.MenuItem{
		item("3", "Anywhere Door Margherita Pizza", "Main Courses", 1250),
		item("1", "Classic Dorayaki", "Dorayaki & Sweets", 350),
	}
	require.NoError(t, env.Menu.Seed(items))

	got, err := env.R.MenuRepo.Get("1")
	require.NoError(t, err)
	require.Equal(t, "Classic Dorayaki", got.Name)

	all, err := env.R.MenuRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "3", all[0].ID, "seed order is kept")

	items[1].Price = 400
	items[1].Bestseller = true
	require.NoError(t, env.Menu.Seed(items))

	got, err = env.R.MenuRepo.Get("1")
	require.NoError(t, err)
	require.Equal(t, 400, got.Price)
	require.True(t, got.Bestseller)

	all, err = env.R.MenuRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func Test_Postgres_Get_NotFound_Maps(t *testing.T) {
	env := upPostgres(t)

	_, err := env.R.MenuRepo.Get("nope")
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func Test_Postgres_GetAll_Empty_OK(t *testing.T) {
	env := upPostgres(t)

	all, err := env.R.MenuRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 0)
}

func Test_Postgres_Seed_DroppedTable_Error(t *testing.T) {
	env := upPostgres(t)

	require.NoError(t, env.DB.DropTable(&models.MenuItem{}).Error)

	err := env.Menu.Seed([]models.MenuItem{item("1", "Classic Dorayaki", "Dorayaki & Sweets", 350)})
	require.Error(t, err, "expected error because menu_items table is missing")

	_, err = env.R.MenuRepo.GetAll()
	require.Error(t, err)
}

func Test_Postgres_Seed_RollsBackOnFailure(t *testing.T) {
	env := upPostgres(t)

	require.NoError(t, env.DB.Exec(`ALTER TABLE menu_items ADD CONSTRAINT price_positive CHECK (price > 0)`).Error)

	err := env.Menu.Seed([]models.MenuItem{
		item("1", "Classic Dorayaki", "Dorayaki & Sweets", 350),
		item("2", "Free Lunch", "Main Courses", 0),
	})
	require.Error(t, err)

	all, err := env.R.MenuRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 0, "first insert must be rolled back")
}
