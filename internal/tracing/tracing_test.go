package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	enabled bool
}

func (c testConfig) Enabled() bool       { return c.enabled }
func (c testConfig) ServiceName() string { return "expense-tracker-test" }

func Test_Init_DisabledKeepsNoopTracer(t *testing.T) {
	closer, err := Init(testConfig{})

	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}
