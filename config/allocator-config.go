package config

import "github.com/pkg/errors"

type AllocatorConfig struct {
	// MaxAllocSize caps a single heap request in bytes, 0 means the memory
	// available to the process.
	MaxAllocSize int `mapstructure:"max_alloc_size"`
}

func NewAllocatorConfig() *AllocatorConfig {
	return &AllocatorConfig{
		MaxAllocSize: 0,
	}
}

func (c *AllocatorConfig) Validate() error {
	if c.MaxAllocSize < 0 {
		return errors.Errorf("max_alloc_size must not be negative, got %d", c.MaxAllocSize)
	}
	return nil
}
