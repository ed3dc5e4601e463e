package configuration

import (
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/tpfand/tpfand/internal/ui"
)

const (
	ConfigName = "tpfand"
	EnvPrefix  = "TPFAND"
)

type Configuration struct {
	DbPath  string `json:"dbPath"`
	PidFile string `json:"pidFile"`
	LogFile string `json:"logFile"`

	// TickRate is the fixed interval between two iterations of the control loop.
	TickRate time.Duration `json:"tickRate"`
	// PrimaryZone is the index of the sensor zone that drives the control decisions.
	PrimaryZone int `json:"primaryZone"`

	Sensor SensorConfig `json:"sensor"`
	Fan    FanConfig    `json:"fan"`

	ProfileDefaults ProfileDefaultsConfig `json:"profileDefaults"`
	Profiles        []ProfileConfig       `json:"profiles"`

	History    HistoryConfig    `json:"history"`
	Statistics StatisticsConfig `json:"statistics"`
	Api        ApiConfig        `json:"api"`
	Profiling  ProfilingConfig  `json:"profiling"`
}

type HistoryConfig struct {
	Enabled bool `json:"enabled"`
	// Retention is the maximum number of transitions kept in the journal.
	Retention int `json:"retention"`
}

type StatisticsConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

// ApiConfig configures the read-only REST API.
type ApiConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
}

// ProfilingConfig exposes net/http/pprof when enabled.
type ProfilingConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName(ConfigName)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/tpfand/")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues(viper.GetViper())
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("dbPath", "/var/lib/tpfand/tpfand.db")
	v.SetDefault("pidFile", "/run/tpfand.pid")
	v.SetDefault("logFile", "")

	v.SetDefault("tickRate", 300*time.Millisecond)
	v.SetDefault("primaryZone", 0)

	v.SetDefault("sensor.width", 8)
	v.SetDefault("fan.minLevel", 0)
	v.SetDefault("fan.maxLevel", 7)

	v.SetDefault("profileDefaults.stickMargin", 0)
	// roughly 10 seconds at the default tick rate
	v.SetDefault("profileDefaults.holdDelay", 33)

	v.SetDefault("history.enabled", true)
	v.SetDefault("history.retention", 1000)

	v.SetDefault("statistics.enabled", false)
	v.SetDefault("statistics.port", 9000)

	v.SetDefault("api.enabled", false)
	v.SetDefault("api.host", "localhost")
	v.SetDefault("api.port", 9001)

	v.SetDefault("profiling.enabled", false)
	v.SetDefault("profiling.host", "localhost")
	v.SetDefault("profiling.port", 6060)
}

// DetectAndReadConfigFile locates and reads the config file, exits if none is found.
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		// config file is required, so we fail here
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

// LoadConfig decodes the configuration read by viper into CurrentConfig.
func LoadConfig() {
	config, err := unmarshalConfig(viper.GetViper())
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
	CurrentConfig = config
}

func unmarshalConfig(v *viper.Viper) (Configuration, error) {
	var config Configuration
	err := v.Unmarshal(&config, viper.DecodeHook(decodeHooks()))
	return config, err
}
