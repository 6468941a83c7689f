package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DairyName string `envconfig:"DAIRY_NAME" default:"Sharma Dairy"`

	// OTPDelay paces the mock auth flow the way a real gateway would.
	OTPDelay       time.Duration `envconfig:"OTP_DELAY" default:"1s"`
	ResendCooldown time.Duration `envconfig:"OTP_RESEND_COOLDOWN" default:"30s"`

	// Simulated milkman walk: origin at the dairy, one step per tick.
	DairyLat    float64       `envconfig:"DAIRY_LAT" default:"19.0760"`
	DairyLng    float64       `envconfig:"DAIRY_LNG" default:"72.8777"`
	WalkTick    time.Duration `envconfig:"WALK_TICK" default:"3s"`
	WalkStepDeg float64       `envconfig:"WALK_STEP_DEG" default:"0.0005"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("dailydairy", &cfg); err != nil {
		return nil, errors.Wrap(err, "process environment config")
	}
	return &cfg, nil
}
