package morse

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTConfig configures the optional spot publisher, mirroring the
// shape (broker/credentials/keepalive knobs) of the teacher's
// MQTTConfig in mqtt_publisher.go, trimmed to what a spot feed needs.
type MQTTConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Broker   string `yaml:"broker"`
	Topic    string `yaml:"topic"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Spot is one published decode event: a letter, word break, or raw
// pattern, tagged with the decoder session that produced it.
type Spot struct {
	DecoderID string `json:"decoder_id"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// SpotPublisher forwards decoded output to an MQTT broker, grounded on
// mqtt_publisher.go's MQTTPublisher (client setup, auto-reconnect,
// generateClientID) with the spectrum/noise-floor publishing goroutines
// dropped: a decoder has nothing periodic to republish, it only has
// spots to forward as they arrive.
type SpotPublisher struct {
	client mqtt.Client
	config MQTTConfig
}

func generateClientID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return "gomorse_" + hex.EncodeToString(buf)
}

// NewSpotPublisher connects to the configured broker. Returns nil,
// nil if publishing is disabled.
func NewSpotPublisher(cfg MQTTConfig) (*SpotPublisher, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(generateClientID())
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(10 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetOnConnectHandler(func(mqtt.Client) {
		log.Println("[morse/publisher] connected to broker")
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Printf("[morse/publisher] connection lost: %v", err)
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	log.Printf("[morse/publisher] connected to %s", cfg.Broker)

	return &SpotPublisher{client: client, config: cfg}, nil
}

// Publish sends one decoded spot as a JSON payload on the configured
// topic. Safe to call with a nil receiver (e.g. when publishing is
// disabled) — it becomes a no-op.
func (p *SpotPublisher) Publish(decoderID, text string, at time.Time) error {
	if p == nil {
		return nil
	}
	payload, err := json.Marshal(Spot{DecoderID: decoderID, Text: text, Timestamp: at.Unix()})
	if err != nil {
		return err
	}
	token := p.client.Publish(p.config.Topic, 0, false, payload)
	token.Wait()
	return token.Error()
}

// Close disconnects from the broker. Safe to call with a nil receiver.
func (p *SpotPublisher) Close() {
	if p == nil {
		return
	}
	p.client.Disconnect(250)
}
