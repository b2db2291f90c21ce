package model

import "path/filepath"

type Config struct {
	DataDir string `yaml:"data_dir"`
	Sync    struct {
		Enable     bool   `yaml:"enable"`
		Platform   string `yaml:"platform"`
		Bucket     string `yaml:"bucket"`
		AWSProfile string `yaml:"aws_profile"`
		AWSRegion  string `yaml:"aws_region"`
	} `yaml:"sync"`
}

func DefaultConfig() Config {
	return Config{
		DataDir: "~/.local/share/eve",
	}
}

// TasksFile is the path of the JSON document holding the task collection.
func (c Config) TasksFile() string {
	return filepath.Join(c.DataDir, "tasks.json")
}
