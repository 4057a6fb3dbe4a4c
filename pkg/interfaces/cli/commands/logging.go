package commands

import (
	"go.uber.org/zap"
)

// newLogger builds the CLI logger. Console encoding on stderr keeps
// stdout clean for command output and CSV export piping.
func newLogger(level string) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Encoding = "console"
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	parsed, err := zap.ParseAtomicLevel(level)
	if err != nil {
		parsed = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = parsed

	return zapConfig.Build()
}
