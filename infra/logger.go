package infra

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/advikbond/real-estate/config"
)

type LoggerClient struct {
	logger *slog.Logger
}

// InitLoggerClient builds the shared structured logger. When OTLP_ENDPOINT
// is set logs are shipped through the OTLP/HTTP exporter, otherwise they go
// to stdout as JSON.
func InitLoggerClient(cfg *config.EnvConfig) *LoggerClient {
	if cfg.Telemetry.OTLPEndpoint != "" {
		exporter, err := otlploghttp.New(context.Background(),
			otlploghttp.WithEndpoint(cfg.Telemetry.OTLPEndpoint),
		)
		if err == nil {
			provider := sdklog.NewLoggerProvider(
				sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
				sdklog.WithResource(resource.NewWithAttributes(
					semconv.SchemaURL,
					semconv.ServiceName(cfg.Telemetry.ServiceName),
				)),
			)
			handler := otelslog.NewHandler(cfg.Telemetry.ServiceName,
				otelslog.WithLoggerProvider(provider),
			)
			return &LoggerClient{logger: slog.New(handler)}
		}
		log.Printf("Failed to initialize OTLP log exporter: %v, falling back to stdout", err)
	}

	return &LoggerClient{
		logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (l *LoggerClient) InfoWithContextf(ctx context.Context, format string, args ...interface{}) {
	l.logger.InfoContext(ctx, fmt.Sprintf(format, args...))
}

func (l *LoggerClient) WarningWithContextf(ctx context.Context, format string, args ...interface{}) {
	l.logger.WarnContext(ctx, fmt.Sprintf(format, args...))
}

func (l *LoggerClient) ErrorWithContextf(ctx context.Context, err error, format string, args ...interface{}) {
	if err != nil {
		l.logger.ErrorContext(ctx, fmt.Sprintf(format, args...), slog.String("error", err.Error()))
		return
	}
	l.logger.ErrorContext(ctx, fmt.Sprintf(format, args...))
}
