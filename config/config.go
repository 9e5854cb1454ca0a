package config

import (
	"errors"
	"log"
	"sync"

	"github.com/spf13/viper"
)

type SimulatorConfig struct {
	Port       int
	GanttWidth int
}

var once sync.Once
var config *SimulatorConfig

// GetSimulatorConfig loads config.yaml from the working directory once. The
// file is optional; defaults apply when it is absent, so the CLI report mode
// works without one.
func GetSimulatorConfig() *SimulatorConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		viper.SetDefault("port", 9095)
		viper.SetDefault("report.gantt_width", 8)
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalln(err)
			}
		}
		config = &SimulatorConfig{}
		config.Port = viper.GetInt("port")
		config.GanttWidth = viper.GetInt("report.gantt_width")
	})

	return config
}
