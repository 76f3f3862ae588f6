package checker

import (
	log "github.com/sirupsen/logrus"
)

type LogHolder struct {
	RunID      string
	PhoneID    string
	SerialName string
	AlertKind  string
	PhoneCount int
	AlertCount int
	Message    string
}

func processFields(logholder LogHolder) *log.Entry {
	logger := log.WithFields(log.Fields{})
	if logholder.RunID != "" {
		logger = logger.WithFields(
			log.Fields{
				"run_id": logholder.RunID,
			})
	}

	if logholder.PhoneID != "" {
		logger = logger.WithFields(
			log.Fields{
				"phone_id": logholder.PhoneID,
			})
	}

	if logholder.SerialName != "" {
		logger = logger.WithFields(
			log.Fields{
				"serial_name": logholder.SerialName,
			})
	}

	if logholder.AlertKind != "" {
		logger = logger.WithFields(
			log.Fields{
				"alert_kind": logholder.AlertKind,
			})
	}

	if logholder.PhoneCount != 0 {
		logger = logger.WithFields(
			log.Fields{
				"phone_count": logholder.PhoneCount,
			})
	}

	if logholder.AlertCount != 0 {
		logger = logger.WithFields(
			log.Fields{
				"alert_count": logholder.AlertCount,
			})
	}

	return logger
}

func DebugLogger(logholder LogHolder) {
	logger := processFields(logholder)
	logger.Debug(logholder.Message)
}

func InfoLogger(logholder LogHolder) {
	logger := processFields(logholder)
	logger.Info(logholder.Message)
}

func WarnLogger(logholder LogHolder) {
	logger := processFields(logholder)

	logger.Warn(logholder.Message)
}

func ErrorLogger(logholder LogHolder) {
	logger := processFields(logholder)

	logger.Error(logholder.Message)
}
