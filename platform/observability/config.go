package observability

// Config конфигурация OpenTelemetry (traces + metrics + propagator)
type Config struct {
	// Enabled включает экспорт в OTLP collector; иначе ставятся noop providers
	Enabled bool `env:"OTEL_ENABLED" envDefault:"false"`
	// OTLPEndpoint адрес OTLP gRPC collector, например "otel-collector:4317"
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4317"`
	// SamplingRatio доля семплируемых трасс (0..1)
	SamplingRatio float64 `env:"OTEL_SAMPLING_RATIO" envDefault:"1.0"`
	// ServiceName имя сервиса в resource
	ServiceName string
	// DeploymentEnvironment окружение (local, docker)
	DeploymentEnvironment string
	// ServiceVersion версия сборки, опционально
	ServiceVersion string `env:"SERVICE_VERSION"`
}
