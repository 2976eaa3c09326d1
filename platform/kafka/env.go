package kafka

import (
	"errors"

	"github.com/caarlos0/env/v10"
	"github.com/segmentio/kafka-go"
)

// LoadEnv заполняет cfg из переменных окружения
func LoadEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return err
	}
	if len(cfg.Brokers) == 0 {
		return errors.New("KAFKA_BROKERS is required")
	}
	return nil
}

// NewWriter создаёт kafka.Writer без топика: топик задаётся в каждом сообщении
func NewWriter(cfg Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		WriteTimeout:           cfg.WriteTimeout,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: cfg.AllowAutoTopicCreation,
	}
}
