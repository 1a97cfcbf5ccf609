package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingCompleter is a decorator that records metadata about every
// completion request. The prompt itself and the credential are never logged.
type LoggingCompleter struct {
	inner Completer
	log   *zap.Logger
}

// WithLogging wraps a Completer with request logging.
func WithLogging(c Completer, log *zap.Logger) Completer {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingCompleter{inner: c, log: log}
}

func (l *LoggingCompleter) StreamCompletion(ctx context.Context, req Request) *Stream {
	start := time.Now()

	l.log.Info("completion started",
		zap.String("model", l.inner.ModelID()),
		zap.Float64("temperature", req.Temperature),
		zap.Int("prompt_len", len(req.Prompt)),
	)

	inner := l.inner.StreamCompletion(ctx, req)
	out := newStream()

	go func() {
		defer out.close()

		chunks := 0
		for chunk := range inner.Chunks() {
			chunks++
			out.info(chunk)
		}
		// The inner stream owns accumulation; copy it over once drained so
		// the informational chunks forwarded above stay excluded.
		out.adopt(inner.Text())

		l.log.Info("completion finished",
			zap.String("model", l.inner.ModelID()),
			zap.Int("chunks", chunks),
			zap.Int("bytes", len(inner.Text())),
			zap.Duration("elapsed", time.Since(start)),
		)
	}()

	return out
}

func (l *LoggingCompleter) ModelID() string {
	return l.inner.ModelID()
}
