package config

type HTTP struct {
	Host    string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port    uint32 `env:"HTTP_PORT" envDefault:"8000"`
	Swagger bool   `env:"HTTP_SWAGGER" envDefault:"true"`
}

type Cors struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	// AllowedMethods defaults to every standard method.
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,HEAD,POST,PUT,PATCH,DELETE,OPTIONS,CONNECT,TRACE"`
	MaxAge         int      `env:"CORS_MAX_AGE" envDefault:"300"`
}
