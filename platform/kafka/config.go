package kafka

import "time"

// Config содержит настройки подключения к Kafka
type Config struct {
	// Brokers - список брокеров через запятую:
	//   - локальная разработка: localhost:19092
	//   - docker: kafka:9092
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:19092"`
	// BatchTimeout - сколько writer ждёт заполнения батча
	BatchTimeout time.Duration `env:"KAFKA_BATCH_TIMEOUT" envDefault:"10ms"`
	// WriteTimeout - таймаут записи батча
	WriteTimeout time.Duration `env:"KAFKA_WRITE_TIMEOUT" envDefault:"10s"`
	// AllowAutoTopicCreation - создавать топик при первой записи (local/docker)
	AllowAutoTopicCreation bool `env:"KAFKA_AUTO_CREATE_TOPICS" envDefault:"true"`
}
