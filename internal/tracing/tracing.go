package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegerzap "github.com/uber/jaeger-client-go/log/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

type config interface {
	Enabled() bool
	ServiceName() string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init installs a Jaeger tracer as the global opentracing tracer. Agent
// settings come from the JAEGER_* environment. With tracing disabled the
// global no-op tracer is left in place.
func Init(cfg config) (io.Closer, error) {
	if !cfg.Enabled() {
		return nopCloser{}, nil
	}

	jcfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "read jaeger env")
	}
	jcfg.ServiceName = cfg.ServiceName()
	if jcfg.Sampler.Type == "" {
		jcfg.Sampler.Type = jaeger.SamplerTypeConst
		jcfg.Sampler.Param = 1
	}

	tracer, closer, err := jcfg.NewTracer(
		jaegercfg.Logger(jaegerzap.NewLogger(logger.Named("jaeger"))),
	)
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}
