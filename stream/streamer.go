package stream

import (
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/animtx/anim"
)

// Streamer that streams keyframe-animated RGB frames to an ledrx
// device. It owns the animation controller, advances its clock on the
// publish tick and paints the rig's animated properties into frames.
type Streamer struct {
	config   Config
	client   mqtt.Client
	ctrl     *anim.Controller
	rig      *Rig
	frame    *Frame
	commands chan CommandMessage
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client

	duration := config.Animation.Duration
	if duration <= 0 {
		duration = 30
	}
	s.ctrl = anim.NewController(duration)
	s.rig = NewRig(s.ctrl)
	s.frame = NewFrame()
	s.commands = make(chan CommandMessage, 8)

	return s
}

// Controller exposes the animation controller, so timelines can be
// loaded into it and the api can introspect it.
func (s *Streamer) Controller() *anim.Controller {
	return s.ctrl
}

// SendFrame renders the rig and sends the frame as binary over MQTT.
func (s *Streamer) SendFrame() {
	s.rig.Render(s.frame)
	b, _ := s.frame.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
}

// Run starts playback and sends frames continuously. Each tick
// advances the controller by the measured elapsed time, which fires
// the rig's property callbacks, then publishes the painted frame.
func (s *Streamer) Run() {
	frameRate := s.config.Animation.FrameRate
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Duration(float64(time.Second) / frameRate)

	s.ctrl.Play()
	s.ctrl.Update()

	log.Printf("Streaming at %.0f fps, %gs loop", frameRate, s.ctrl.Duration())
	publishTimer := time.NewTicker(interval)
	last := time.Now()
	for {
		select {
		case <-publishTimer.C:
			now := time.Now()
			s.ctrl.Advance(now.Sub(last).Seconds())
			last = now
			s.SendFrame()
		case command := <-s.commands:
			s.runCommand(command)
		}
	}
}
