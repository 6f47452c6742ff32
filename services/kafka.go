package services

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"trainings-module/config"
	"trainings-module/logger"
)

var (
	producer      *kafka.Writer
	producerMutex sync.Mutex
	isConnected   bool
)

// InitProducer initializes a Kafka writer using brokers from the config.
// Eventing is optional: with no brokers configured the producer stays nil
// and every publish is a silent no-op.
func InitProducer() {
	producerMutex.Lock()
	defer producerMutex.Unlock()

	if config.AppConfig.KafkaBrokers == "" {
		logger.Info("Kafka is disabled (KAFKA_BROKERS is empty)")
		return
	}

	var brokers []string
	for _, b := range strings.Split(config.AppConfig.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		logger.Warn("No valid Kafka brokers configured")
		return
	}

	ensureTopicExists(brokers, config.AppConfig.KafkaTopic)

	producer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		Async:        false,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireAll,
	}

	logger.Info("Kafka producer initialized. Brokers=%v, Topic=%s", brokers, config.AppConfig.KafkaTopic)
	isConnected = true
}

// ensureTopicExists creates the event topic if missing. Runs in the
// background so a slow broker never blocks startup.
func ensureTopicExists(brokers []string, topic string) {
	go func() {
		conn, err := kafka.Dial("tcp", brokers[0])
		if err != nil {
			logger.Warn("Could not connect to Kafka broker for topic creation: %v (topic may need manual creation)", err)
			return
		}
		defer conn.Close()

		err = conn.CreateTopics(kafka.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		})
		if err != nil && !strings.Contains(err.Error(), "already exists") {
			logger.Warn("Could not create Kafka topic '%s': %v", topic, err)
		}
	}()
}

// Publish marshals value to JSON and publishes it to the given topic with
// key, retrying with exponential backoff. Best-effort: returns nil when
// Kafka is disabled.
func Publish(topic, key string, value interface{}) error {
	producerMutex.Lock()
	defer producerMutex.Unlock()

	if producer == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		logger.Error("Error marshaling Kafka message: %v", err)
		return err
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := producer.WriteMessages(ctx, msg)
		cancel()

		if err == nil {
			isConnected = true
			return nil
		}

		lastErr = err
		isConnected = false
		logger.Warn("Kafka publish attempt %d failed: %v", attempt+1, err)

		if attempt < 2 {
			time.Sleep(time.Duration(math.Pow(2, float64(attempt))) * time.Second)
		}
	}

	return lastErr
}

// IsConnected returns true if the Kafka producer is connected and ready.
func IsConnected() bool {
	producerMutex.Lock()
	defer producerMutex.Unlock()
	return isConnected && producer != nil
}

// Close gracefully closes the Kafka producer.
func Close() error {
	producerMutex.Lock()
	defer producerMutex.Unlock()

	if producer != nil {
		return producer.Close()
	}
	return nil
}
