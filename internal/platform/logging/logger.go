// Package logging は zerolog ベースのロガーを構築します。
package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ogurasousui/gymledger/internal/platform/config"
	"github.com/rs/zerolog"
)

// New は設定に従ってロガーを生成します。返却される io.Closer はログファイルを閉じます。
func New(cfg config.LoggingConfig) (zerolog.Logger, io.Closer, error) {
	return newWithStdout(cfg, os.Stdout)
}

func newWithStdout(cfg config.LoggingConfig, stdout io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logging: parse level %q: %w", cfg.Level, err)
	}

	var console io.Writer = stdout
	if cfg.Format == "console" {
		console = zerolog.ConsoleWriter{Out: stdout, TimeFormat: "2006-01-02 15:04:05"}
	}

	writers := []io.Writer{console}
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("logging: open %s: %w", cfg.File, err)
		}
		writers = append(writers, file)
		closer = file
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Str("service", "gymledger").
		Logger()

	return logger, closer, nil
}

// FromContext はコンテキストに格納されたロガーを返します。存在しない場合は何も出力しないロガーです。
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
