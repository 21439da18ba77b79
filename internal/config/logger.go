package config

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger. Development gets the human-readable
// console encoder, everything else the production JSON encoder.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
