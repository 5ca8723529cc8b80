package main

import (
	"flag"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/animtx/api"
	"github.com/matt-g-everett/animtx/document"
	"github.com/matt-g-everett/animtx/stream"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Streamer *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	a.Streamer.Subscribe()
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	a.Streamer.Run()
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&a.Config)
	if err != nil {
		panic(err)
	}
}

func (a *app) loadTimeline(timelinePath string) {
	ctrl := a.Streamer.Controller()
	if timelinePath == "" {
		stream.DefaultTimeline(ctrl)
		return
	}

	doc, err := document.Load(timelinePath)
	if err != nil {
		panic(err)
	}
	if skipped := doc.Apply(ctrl); len(skipped) > 0 {
		log.Printf("Skipped unknown tracks: %v", skipped)
	}
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	timelinePath := flag.String("timeline", "", "YAML timeline document; built-in show when omitted.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("animtx").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	client := mqtt.NewClient(options)

	a.Client = client
	a.Streamer = stream.NewStreamer(a.Config, client)
	a.loadTimeline(*timelinePath)

	go api.NewApi(a.Streamer.Controller()).Serve()

	a.run()
}
