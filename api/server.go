package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/animtx/anim"
)

// Api serves the client bundle and a read-only view of the timeline.
type Api struct {
	ctrl *anim.Controller
}

// NewApi creates an Api over an animation controller.
func NewApi(ctrl *anim.Controller) *Api {
	a := new(Api)
	a.ctrl = ctrl
	return a
}

type timelineResponse struct {
	Duration      float64   `json:"duration"`
	CurrentTime   float64   `json:"currentTime"`
	Playing       bool      `json:"playing"`
	Tracks        []string  `json:"tracks"`
	KeyframeTimes []float64 `json:"keyframeTimes"`
}

func (a *Api) handleTimeline(w http.ResponseWriter, r *http.Request) {
	response := timelineResponse{
		Duration:      a.ctrl.Duration(),
		CurrentTime:   a.ctrl.CurrentTime(),
		Playing:       a.ctrl.IsPlaying(),
		Tracks:        a.ctrl.TrackIDs(),
		KeyframeTimes: a.ctrl.KeyframeTimes(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Serve blocks, serving the client bundle and the timeline endpoint.
func (a *Api) Serve() {
	fs := http.FileServer(http.Dir("client/dist"))
	http.Handle("/", fs)
	http.HandleFunc("/timeline", a.handleTimeline)

	log.Println("Listening...")
	http.ListenAndServe(":3000", nil)
}
