package logger

import (
	"testing"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_LevelParsing(t *testing.T) {
	log := New(&config.AppConfig{LogLevel: "warn", Environment: "development"})
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := New(&config.AppConfig{LogLevel: "verbose", Environment: "development"})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNew_FormatterPerEnvironment(t *testing.T) {
	prod := New(&config.AppConfig{LogLevel: "info", Environment: "production"})
	assert.IsType(t, &logrus.JSONFormatter{}, prod.Formatter)

	staging := New(&config.AppConfig{LogLevel: "info", Environment: "staging"})
	assert.IsType(t, &logrus.JSONFormatter{}, staging.Formatter)

	dev := New(&config.AppConfig{LogLevel: "info", Environment: "development"})
	assert.IsType(t, &logrus.TextFormatter{}, dev.Formatter)
}
