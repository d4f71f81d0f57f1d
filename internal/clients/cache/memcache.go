package cache

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	keyPrefix = "expense-tracker:"
	// rendered reports are also dropped on every append
	reportTTLSeconds = 15 * 60
)

type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func formatKey(option string) string {
	return keyPrefix + option
}

func (mc *MemcacheClient) CacheReport(option string, report string) error {
	logger.Debug("cache report", zap.String("option", option))
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(option),
		Value:      []byte(report),
		Expiration: reportTTLSeconds,
	})
}

func (mc *MemcacheClient) GetReport(option string) (string, error) {
	logger.Debug("get report from cache", zap.String("option", option))
	item, err := mc.client.Get(formatKey(option))
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

func (mc *MemcacheClient) InvalidateCache(options []string) error {
	logger.Debug("invalidate cache", zap.Strings("options", options))

	for _, opt := range options {
		err := mc.client.Delete(formatKey(opt))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
