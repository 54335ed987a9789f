package envs

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Envs struct {
	RejsonHost   string        `env:"REJSON_HOST" envDefault:"localhost"`
	RejsonPort   string        `env:"REJSON_PORT" envDefault:"6379"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	DefaultTTL   int64         `env:"DEFAULT_TTL" envDefault:"0"` // 0 = SETEX requires an explicit ttl
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		fmt.Printf("Warning: .env file not found, using default values\n")
	}
}

func Gets() Envs {
	var envs Envs

	if err := env.Parse(&envs); err != nil {
		fmt.Printf("Error parsing env variables: %v\n", err)
		os.Exit(1)
	}

	return envs
}
