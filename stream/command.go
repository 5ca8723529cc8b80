package stream

import (
	"encoding/json"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// CommandMessage is a transport-control request from the command
// topic. Time is only meaningful for seek.
type CommandMessage struct {
	Type string  `json:"type"`
	Time float64 `json:"time,omitempty"`
}

// StatusMessage reports transport state on the status topic.
type StatusMessage struct {
	Playing     bool      `json:"playing"`
	CurrentTime float64   `json:"currentTime"`
	Duration    float64   `json:"duration"`
	Caption     string    `json:"caption,omitempty"`
	Keyframes   []float64 `json:"keyframes"`
}

func (s *Streamer) handleCommandMessage(client mqtt.Client, msg mqtt.Message) {
	var command CommandMessage
	if err := json.Unmarshal(msg.Payload(), &command); err != nil {
		log.Printf("Bad command on %s: %v", msg.Topic(), err)
		return
	}

	// Route onto the tick loop; the controller is single-threaded.
	select {
	case s.commands <- command:
	default:
		log.Printf("Dropped command %q, loop busy", command.Type)
	}
}

func (s *Streamer) runCommand(command CommandMessage) {
	switch command.Type {
	case "play":
		s.ctrl.Play()
	case "pause":
		s.ctrl.Pause()
	case "reset":
		s.ctrl.Reset()
	case "seek":
		s.ctrl.Seek(command.Time)
	case "status":
	default:
		log.Printf("Unknown command %q", command.Type)
		return
	}
	s.publishStatus()
}

func (s *Streamer) publishStatus() {
	if s.config.Mqtt.Topics.Status == "" {
		return
	}
	status := StatusMessage{
		Playing:     s.ctrl.IsPlaying(),
		CurrentTime: s.ctrl.CurrentTime(),
		Duration:    s.ctrl.Duration(),
		Caption:     s.rig.Caption(),
		Keyframes:   s.ctrl.KeyframeTimes(),
	}
	b, _ := json.Marshal(status)
	s.client.Publish(s.config.Mqtt.Topics.Status, 0, false, b)
}

// Subscribe attaches the command topic handler. Call it from the MQTT
// OnConnect callback so the subscription survives reconnects.
func (s *Streamer) Subscribe() {
	topic := s.config.Mqtt.Topics.Command
	if topic == "" {
		return
	}
	if token := s.client.Subscribe(topic, 0, s.handleCommandMessage); token.Wait() && token.Error() != nil {
		log.Println(token.Error())
	}
}
