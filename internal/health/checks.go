package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/config"
	kafkaClient "github.com/aaravmahajanofficial/ecofinds-marketplace/pkg/kafka"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/segmentio/kafka-go"
)

const componentName = "ecofinds-marketplace"

type Endpoints struct {
	Kafka *kafkaClient.Client
}

// NewHealthHandler checks postgres and redis. The broker check only runs when
// kafka is configured, and never fails the whole report.
func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		},
		{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(
				healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				},
			),
		},
	}

	if endpoints != nil && endpoints.Kafka.Enabled() {
		checks = append(checks, health.Config{
			Name:      "kafka",
			Timeout:   3 * time.Second,
			SkipOnErr: true,
			Check:     kafkaCheck(endpoints.Kafka),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    componentName,
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

// kafkaCheck succeeds as soon as one broker accepts a connection.
func kafkaCheck(client *kafkaClient.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if !client.Enabled() {
			return errors.New("kafka client is not configured")
		}

		var errs []error
		for _, broker := range client.Brokers {
			conn, err := kafka.DialContext(ctx, "tcp", broker)
			if err != nil {
				errs = append(errs, fmt.Errorf("broker %s: %w", broker, err))
				continue
			}
			conn.Close()

			return nil
		}

		return fmt.Errorf("failed to reach kafka: %w", errors.Join(errs...))
	}
}
