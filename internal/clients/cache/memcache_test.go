package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testConfig []string

func (c testConfig) Hosts() []string { return c }

func Test_FormatKey_ShouldPrefix(t *testing.T) {
	assert.Equal(t, "expense-tracker:report:month", formatKey("report:month"))
}

func Test_NewMemcache_ShouldFailWhenUnreachable(t *testing.T) {
	_, err := NewMemcache(testConfig{"127.0.0.1:1"})

	assert.Error(t, err)
}
