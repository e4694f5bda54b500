package mandrill

import "time"

// Config holds Mandrill API client configuration.
// The env tags let caarlos0/env fill it from the process environment.
type Config struct {
	APIKey  string        `env:"MANDRILL_KEY"`
	BaseURL string        `env:"MANDRILL_BASE_URL" envDefault:"https://mandrillapp.com/api/1.0"`
	Timeout time.Duration `env:"MANDRILL_TIMEOUT" envDefault:"30s"`
}
