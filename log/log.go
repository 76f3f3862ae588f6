package log

import (
	"os"

	"github.com/mdmdirector/phonewatch/utils"
	log "github.com/sirupsen/logrus"
)

// Setup configures the global logrus logger from the -log-level and -debug flags.
func Setup() error {
	level, err := log.ParseLevel(utils.LogLevel())
	if err != nil {
		return err
	}
	log.SetOutput(os.Stdout)
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}

func enabled(level log.Level) bool {
	configured, err := log.ParseLevel(utils.LogLevel())
	if err != nil {
		configured = log.InfoLevel
	}
	return configured >= level
}

func Debug(msg ...interface{}) {
	if enabled(log.DebugLevel) {
		log.Debug(msg...)
	}
}

func Debugf(format string, msg ...interface{}) {
	if enabled(log.DebugLevel) {
		log.Debugf(format, msg...)
	}
}

func Info(msg ...interface{}) {
	if enabled(log.InfoLevel) {
		log.Info(msg...)
	}
}

func Infof(format string, msg ...interface{}) {
	if enabled(log.InfoLevel) {
		log.Infof(format, msg...)
	}
}

func Warn(msg ...interface{}) {
	if enabled(log.WarnLevel) {
		log.Warn(msg...)
	}
}

func Warnf(format string, msg ...interface{}) {
	if enabled(log.WarnLevel) {
		log.Warnf(format, msg...)
	}
}

func Error(msg ...interface{}) {
	log.Error(msg...)
}

func Errorf(format string, msg ...interface{}) {
	log.Errorf(format, msg...)
}

func Fatal(msg ...interface{}) {
	log.Fatal(msg...)
}

func Fatalf(format string, msg ...interface{}) {
	log.Fatalf(format, msg...)
}
