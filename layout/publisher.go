package layout

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Publisher pushes a generated layout to MQTT so controller hosts can pick
// up regenerated layouts without copying files around. Messages are retained
// so late subscribers always see the latest layout.
type Publisher struct {
	client mqtt.Client
	prefix string
	qos    byte
}

// LayoutSummary is the small companion message published next to the layout.
type LayoutSummary struct {
	Mode          string `json:"mode"`
	LedCount      int    `json:"ledCount"`
	BoundaryCount int    `json:"boundaryCount"`
	BoundaryAware bool   `json:"boundaryAware"`
	Group         int    `json:"group"`
	Timestamp     int64  `json:"timestamp"`
}

// NewPublisher creates a layout publisher. An empty prefix falls back to the
// default topic prefix.
func NewPublisher(client mqtt.Client, prefix string) *Publisher {
	if prefix == "" {
		prefix = defaultPublishPrefix
	}
	return &Publisher{
		client: client,
		prefix: prefix,
		qos:    1, // layouts are rare and must arrive
	}
}

// PublishLayout publishes the serialized region list to <prefix>/layout.
func (p *Publisher) PublishLayout(regions []Region) error {
	payload, err := MarshalRegions(regions, false)
	if err != nil {
		return fmt.Errorf("marshaling layout: %w", err)
	}
	return p.publish(p.prefix+"/layout", payload)
}

// PublishSummary publishes run metadata to <prefix>/summary.
func (p *Publisher) PublishSummary(s LayoutSummary) error {
	if s.Timestamp == 0 {
		s.Timestamp = time.Now().Unix()
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	return p.publish(p.prefix+"/summary", payload)
}

// PublishRun connects to the configured broker, publishes the layout and
// its summary, and disconnects. One-shot counterpart to the CLI run.
func PublishRun(cfg MQTTConfig, regions []Region, summary LayoutSummary) error {
	client, err := ConnectMQTT(cfg)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)

	p := NewPublisher(client, cfg.PublishPrefix)
	if err := p.PublishLayout(regions); err != nil {
		return err
	}
	return p.PublishSummary(summary)
}

func (p *Publisher) publish(topic string, payload []byte) error {
	if p.client == nil || !p.client.IsConnected() {
		return fmt.Errorf("MQTT client not connected")
	}

	token := p.client.Publish(topic, p.qos, true, payload)
	if token.WaitTimeout(publishTimeout) && token.Error() != nil {
		return fmt.Errorf("publishing to %s: %w", topic, token.Error())
	}
	return nil
}
