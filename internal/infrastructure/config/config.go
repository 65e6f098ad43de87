package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App holds the process configuration, populated from environment variables.
type App struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	MercadoPagoAccessToken string        `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool          `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
	GatewayTimeout         time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"15s"`

	KafkaBrokers      []string `envconfig:"KAFKA_BROKERS"`
	EscrowEventsTopic string   `envconfig:"ESCROW_EVENTS_TOPIC" default:"escrow-events"`
}

func Load() (App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return App{}, err
	}
	return cfg, nil
}

func (a App) IsProduction() bool {
	return a.Env == "production"
}
