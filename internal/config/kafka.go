package config

type Kafka struct {
	Enabled    bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Addresses  []string `env:"KAFKA_ADDRESSES" envSeparator:","`
	Group      string   `env:"KAFKA_GROUP" envDefault:"parts-inventory"`
	AlertTopic string   `env:"KAFKA_ALERT_TOPIC" envDefault:"part.restock_alert"`
}
