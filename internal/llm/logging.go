package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingProvider is a decorator that records every model request with
// timing and token usage. Prompt and response bodies are not logged;
// they can contain user-submitted email content.
type LoggingProvider struct {
	inner Provider
	log   logrus.FieldLogger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider) Provider {
	return &LoggingProvider{inner: p, log: logrus.StandardLogger()}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	fields := logrus.Fields{
		"purpose":    PurposeFrom(ctx),
		"model":      req.model(l.inner.ModelID()),
		"latency_ms": time.Since(start).Milliseconds(),
	}
	if resp != nil {
		fields["input_tokens"] = resp.Usage.InputTokens
		fields["output_tokens"] = resp.Usage.OutputTokens
		fields["stop_reason"] = resp.StopReason
	}

	if err != nil {
		fields["kind"] = KindOf(err).String()
		l.log.WithFields(fields).WithError(err).Warn("model request failed")
	} else {
		l.log.WithFields(fields).Info("model request completed")
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
