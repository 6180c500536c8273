package config

type Inventory struct {
	// SeedExampleParts pre-populates the store with the example catalogue on startup.
	SeedExampleParts     bool `env:"SEED_EXAMPLE_PARTS" envDefault:"true"`
	DefaultMinStockLevel int  `env:"DEFAULT_MIN_STOCK_LEVEL" envDefault:"20"`
}
