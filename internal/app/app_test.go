package app

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shestoi/GoBigTech/braintree/internal/config"
	platformlogging "github.com/shestoi/GoBigTech/braintree/platform/logging"
)

func inMemoryConfig(out *bytes.Buffer) config.Config {
	return config.Config{
		AppEnv:             config.EnvLocal,
		HTTPAddr:           "127.0.0.1:0",
		ShutdownTimeout:    time.Second,
		PaymentStorage:     config.StorageMemory,
		ProcessedStorage:   config.StorageMemory,
		ProcessedTTL:       time.Hour,
		KafkaEnabled:       false,
		ReportRateLimit:    10,
		CORSAllowedOrigins: []string{"*"},
		Braintree: config.Braintree{
			Environment: "sandbox",
			MerchantID:  "merchant",
			PublicKey:   "public",
			PrivateKey:  "private",
			Timeout:     time.Second,
		},
		Log: platformlogging.Config{ServiceName: config.ServiceName, Env: "local", Level: "debug", Format: "json", Output: out},
	}
}

func TestBuildAndRun_InMemory(t *testing.T) {
	// Arrange
	var logs bytes.Buffer
	application, err := Build(context.Background(), inMemoryConfig(&logs))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	// Act
	err = application.Run(ctx)

	// Assert
	require.NoError(t, err)
	require.Contains(t, logs.String(), "Kafka disabled")
	require.Contains(t, logs.String(), "Braintree service stopped")
}

func TestBuild_InvalidBraintreeConfig(t *testing.T) {
	var logs bytes.Buffer
	cfg := inMemoryConfig(&logs)
	cfg.Braintree.PrivateKey = ""

	_, err := Build(context.Background(), cfg)

	require.Error(t, err)
	require.Contains(t, err.Error(), "create braintree client")
}
