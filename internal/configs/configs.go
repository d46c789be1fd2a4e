package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"

	"dora-eats/internal/checkout"
	"dora-eats/internal/models"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8081"`

	KafkaBrokers      string        `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaTopic        string        `env:"KAFKA_TOPIC" envDefault:"orders"`
	KafkaWriteTimeout time.Duration `env:"KAFKA_WRITE_TIMEOUT" envDefault:"5s"`

	MenuPath         string `env:"MENU_PATH" envDefault:"configs/menu.yaml"`
	CheckoutFormPath string `env:"CHECKOUT_FORM_PATH" envDefault:""`

	CurrencySymbol  string   `env:"CURRENCY_SYMBOL" envDefault:"¥"`
	EstimatedTime   string   `env:"ESTIMATED_TIME" envDefault:"approx. 25-35 minutes"`
	PickupLocations []string `env:"PICKUP_LOCATIONS" envSeparator:";" envDefault:"dora_bell_cafe=Doraemon's Bell Cafe - Downtown;anywhere_door_point=Anywhere Door Pickup Point - Suburbia;nobitas_house_eats=Nobita's House Eats - Residential Area"`
	PickupTimeSlots []string `env:"PICKUP_TIME_SLOTS" envSeparator:";" envDefault:"12:00=12:00 PM - 12:30 PM;13:00=1:00 PM - 1:30 PM;18:00=6:00 PM - 6:30 PM;19:00=7:00 PM - 7:30 PM"`

	CartTTL         time.Duration `env:"CART_TTL" envDefault:"2h"`
	ConfirmationTTL time.Duration `env:"CONFIRMATION_TTL" envDefault:"24h"`
	InFlightTTL     time.Duration `env:"IN_FLIGHT_TTL" envDefault:"30s"`

	MenuFromPostgres bool   `env:"MENU_FROM_POSTGRES" envDefault:"false"`
	DatabaseURL      string `env:"DATABASE_URL" envDefault:""`
	PostgresHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort     string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser     string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass     string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"storefront"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	if len(c.PickupLocationChoices()) == 0 {
		return Config{}, fmt.Errorf("config: PICKUP_LOCATIONS must not be empty")
	}
	if len(c.PickupTimeSlotChoices()) == 0 {
		return Config{}, fmt.Errorf("config: PICKUP_TIME_SLOTS must not be empty")
	}
	return c, nil
}

func (c Config) KafkaBrokersSlice() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) PgDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PostgresUser,
		c.PostgresPass,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
		c.PostgresSSLMode,
	)
}

func (c Config) PickupLocationChoices() []models.Choice { return parseChoices(c.PickupLocations) }
func (c Config) PickupTimeSlotChoices() []models.Choice { return parseChoices(c.PickupTimeSlots) }

// CheckoutOptions feeds the configured enumerations to the validator.
func (c Config) CheckoutOptions() checkout.Options {
	return checkout.Options{
		PickupLocations: c.PickupLocationChoices(),
		PickupTimeSlots: c.PickupTimeSlotChoices(),
	}
}

// parseChoices reads "id=label" entries; a bare id is its own label.
func parseChoices(raw []string) []models.Choice {
	out := make([]models.Choice, 0, len(raw))
	for _, entry := range raw {
		id, label, found := strings.Cut(entry, "=")
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		label = strings.TrimSpace(label)
		if !found || label == "" {
			label = id
		}
		out = append(out, models.Choice{ID: id, Label: label})
	}
	return out
}
