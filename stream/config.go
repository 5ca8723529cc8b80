package stream

// Config holds the streaming runtime settings read from YAML.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Command string `yaml:"command"`
			Status  string `yaml:"status"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Animation struct {
		FrameRate float64 `yaml:"frameRate"`
		Duration  float64 `yaml:"duration"`
	} `yaml:"animation"`
}
