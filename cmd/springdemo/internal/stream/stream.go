// Package stream publishes animation frames over MQTT.
package stream

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/go-drift/spring/pkg/animation"
	"github.com/go-drift/spring/pkg/errors"
)

// Publisher sends a payload to a topic.
type Publisher interface {
	Publish(topic string, qos byte, payload []byte) error
}

// Frame is one published sample of the animated values.
type Frame struct {
	Seq    int            `json:"seq"`
	Time   time.Time      `json:"time"`
	Rest   bool           `json:"rest,omitempty"`
	Values map[string]any `json:"values"`
}

// Encode returns the JSON wire form of f. Animated sources are resolved and
// keys are written in sorted order.
func Encode(f Frame) ([]byte, error) {
	values := make(map[string]any, len(f.Values))
	for _, name := range slices.Sorted(maps.Keys(f.Values)) {
		v := f.Values[name]
		if source, ok := v.(animation.Source); ok {
			v = source.Get()
		}
		values[name] = v
	}
	f.Values = values
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode frame %d: %w", f.Seq, err)
	}
	return data, nil
}

// Streamer numbers frames and publishes them. Failures are reported to the
// error handler so a flaky broker does not stop the animation.
type Streamer struct {
	pub   Publisher
	topic string
	qos   byte
	seq   int
	sent  int
}

// NewStreamer creates a streamer publishing to topic.
func NewStreamer(pub Publisher, topic string, qos byte) *Streamer {
	return &Streamer{pub: pub, topic: topic, qos: qos}
}

// Send publishes values as the next frame.
func (s *Streamer) Send(values map[string]any, rest bool) error {
	s.seq++
	payload, err := Encode(Frame{Seq: s.seq, Time: animation.Now(), Rest: rest, Values: values})
	if err != nil {
		return err
	}
	if err := s.pub.Publish(s.topic, s.qos, payload); err != nil {
		wrapped := &errors.Error{
			Op:        "stream.publish",
			Kind:      errors.KindTransport,
			Subject:   s.topic,
			Err:       err,
			Timestamp: time.Now(),
		}
		errors.Report(wrapped)
		return wrapped
	}
	s.sent++
	return nil
}

// Seq returns the number of the last frame sent or attempted.
func (s *Streamer) Seq() int {
	return s.seq
}

// Sent returns how many frames were published successfully.
func (s *Streamer) Sent() int {
	return s.sent
}

// MQTTOptions configures the broker connection.
type MQTTOptions struct {
	Broker   string
	ClientID string
	Username string
	Password string
	// Timeout bounds connect and publish acknowledgements.
	Timeout time.Duration
}

// MQTT is a Publisher backed by a paho client.
type MQTT struct {
	client  mqtt.Client
	timeout time.Duration
}

// DialMQTT connects to the broker.
func DialMQTT(opts MQTTOptions) (*MQTT, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	options := mqtt.NewClientOptions().
		AddBroker(opts.Broker).
		SetClientID(opts.ClientID).
		SetUsername(opts.Username).
		SetPassword(opts.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(opts.Timeout).
		SetConnectTimeout(opts.Timeout).
		SetAutoReconnect(true)
	client := mqtt.NewClient(options)

	token := client.Connect()
	if !token.WaitTimeout(opts.Timeout) {
		return nil, &errors.Error{
			Op:        "mqtt.connect",
			Kind:      errors.KindTransport,
			Subject:   opts.Broker,
			Err:       fmt.Errorf("timed out after %v", opts.Timeout),
			Timestamp: time.Now(),
		}
	}
	if err := token.Error(); err != nil {
		return nil, &errors.Error{
			Op:        "mqtt.connect",
			Kind:      errors.KindTransport,
			Subject:   opts.Broker,
			Err:       err,
			Timestamp: time.Now(),
		}
	}
	return &MQTT{client: client, timeout: opts.Timeout}, nil
}

// Publish sends payload and waits for the broker to acknowledge it.
func (m *MQTT) Publish(topic string, qos byte, payload []byte) error {
	token := m.client.Publish(topic, qos, false, payload)
	if !token.WaitTimeout(m.timeout) {
		return fmt.Errorf("publish to %s timed out", topic)
	}
	return token.Error()
}

// Close disconnects, giving in-flight messages a moment to drain.
func (m *MQTT) Close() {
	m.client.Disconnect(250)
}
