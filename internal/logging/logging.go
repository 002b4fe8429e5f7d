// Package logging constructs the application's zap logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a sugared zap logger. Development mode uses the human-readable
// console encoder; production mode emits JSON.
func New(development bool) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return logger.Sugar(), nil
}
