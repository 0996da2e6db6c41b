package health

import (
	"context"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/config"
	kafkaClient "github.com/aaravmahajanofficial/ecofinds-marketplace/pkg/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Database: config.Database{
			Host: "localhost", Port: "5432", User: "eco", Password: "secret", Name: "ecofinds", SSLMode: "disable",
		},
		RedisConnect: config.RedisConnect{Host: "localhost", Port: "6379"},
	}
}

func TestNewHealthHandler(t *testing.T) {

	t.Run("Without kafka", func(t *testing.T) {
		h, err := NewHealthHandler(testConfig(), &Endpoints{})
		require.NoError(t, err)
		assert.NotNil(t, h)
	})

	t.Run("With kafka", func(t *testing.T) {
		h, err := NewHealthHandler(testConfig(), &Endpoints{Kafka: kafkaClient.NewClient([]string{"localhost:9092"})})
		require.NoError(t, err)
		assert.NotNil(t, h)
	})

	t.Run("Nil endpoints", func(t *testing.T) {
		h, err := NewHealthHandler(testConfig(), nil)
		require.NoError(t, err)
		assert.NotNil(t, h)
	})
}

func TestKafkaCheck(t *testing.T) {

	t.Run("Not configured", func(t *testing.T) {
		err := kafkaCheck(kafkaClient.NewClient(nil))(context.Background())
		assert.Error(t, err)
	})

	t.Run("Unreachable broker", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		err := kafkaCheck(kafkaClient.NewClient([]string{"127.0.0.1:1"}))(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "127.0.0.1:1")
	})
}
