package main

import (
	"go.uber.org/zap"

	"github.com/rlittletht/streamex"
)

// zapLogger реализация streamex.Logger поверх zap.
type zapLogger struct {
	log *zap.Logger
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func (l zapLogger) LineTruncated(pos int64, length int) {
	l.log.Warn(
		"line does not fit into the buffer and was split",
		zap.Int64("stream-position", pos),
		zap.Int("piece-length", length),
	)
}

func (l zapLogger) SourceCloseFailed(name string, err error) {
	l.log.Error("failed to close source file", zap.String("file-name", name), zap.Error(err))
}

var _ streamex.Logger = zapLogger{}
