package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/yaoapp/kun/exception"
	"github.com/yaoapp/kun/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Conf the loaded configuration
var Conf Config

// LogOutput the log file
var LogOutput io.WriteCloser

func init() {
	Init()
}

// Init load the configuration from ./.env when it exists, or from the environment
func Init() {
	filename, _ := filepath.Abs(filepath.Join(".", ".env"))
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		Conf = Load()
	} else {
		Conf = LoadFrom(filename)
	}
	Apply()
}

// LoadFrom load the env file, then the configuration
func LoadFrom(envfile string) Config {
	file, err := filepath.Abs(envfile)
	if err != nil {
		return Load()
	}

	// load from env
	godotenv.Overload(file)
	return Load()
}

// Load the config from the environment
func Load() Config {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		exception.New("Can't read config %s", 500, err.Error()).Throw()
	}

	cfg.Root, _ = filepath.Abs(cfg.Root)
	return cfg
}

// Apply set the log level and output of the current mode
func Apply() {
	if Conf.Mode == "development" {
		Development()
		return
	}
	Production()
}

// Production the production mode
func Production() {
	os.Setenv("AGENDA_ENV", "production")
	Conf.Mode = "production"
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(log.TEXT)
	if Conf.LogMode == "JSON" {
		log.SetFormatter(log.JSON)
	}
	ReloadLog()
}

// Development the development mode, trace logs are printed
func Development() {
	os.Setenv("AGENDA_ENV", "development")
	Conf.Mode = "development"
	log.SetLevel(log.TraceLevel)
	log.SetFormatter(log.TEXT)
	if Conf.LogMode == "JSON" {
		log.SetFormatter(log.JSON)
	}
	ReloadLog()
}

// Path resolves a path against the configured root
func (cfg Config) Path(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.Root, path)
}

// ReloadLog reopen the log
func ReloadLog() {
	CloseLog()
	OpenLog()
}

// OpenLog open the log file, the log stays on stderr when no file is configured
func OpenLog() {
	if Conf.Log == "" {
		log.SetOutput(os.Stderr)
		return
	}

	logfile, err := filepath.Abs(Conf.Path(Conf.Log))
	if err != nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(logfile), 0755); err != nil {
		log.Error("can't create the log directory: %s", err.Error())
		return
	}

	LogOutput = &lumberjack.Logger{
		Filename:   logfile,
		MaxSize:    Conf.LogMaxSize, // megabytes
		MaxBackups: Conf.LogMaxBackups,
		MaxAge:     Conf.LogMaxAge, //days
		LocalTime:  Conf.LogLocalTime,
	}
	log.SetOutput(LogOutput)
}

// CloseLog close the log file
func CloseLog() {
	if LogOutput != nil {
		err := LogOutput.Close()
		LogOutput = nil
		if err != nil {
			log.Error("close log: %s", err.Error())
			return
		}
	}
}
