package logger

import (
	"followupplan-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the startup logger used while the zap pipeline logger is
// not yet wired.
func NewLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.New()

	switch internalConfig.App.Env {
	case "production":
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
