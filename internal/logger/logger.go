package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the application logger. Release mode gets the JSON
// production config, everything else the console development config.
func New() (*zap.Logger, error) {
	if os.Getenv("GIN_MODE") == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
