package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	require.Equal(t, "info", c.LogLevel)
	require.NotNil(t, c.Allocator)
	require.Zero(t, c.Allocator.MaxAllocSize)
	require.NoError(t, c.Validate())
}

func TestLoadWithoutEnv(t *testing.T) {
	t.Setenv("BASE_LOG_LEVEL", "")
	t.Setenv("BASE_MAX_ALLOC_SIZE", "")

	c, err := Load(viper.New())
	require.NoError(t, err)
	require.Equal(t, New(), c)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BASE_LOG_LEVEL", "debug")
	t.Setenv("BASE_MAX_ALLOC_SIZE", "4096")

	c, err := Load(viper.New())
	require.NoError(t, err)
	require.Equal(t, "debug", c.LogLevel)
	require.Equal(t, 4096, c.Allocator.MaxAllocSize)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("BASE_LOG_LEVEL", "info")
	t.Setenv("BASE_MAX_ALLOC_SIZE", "-1")

	c, err := Load(viper.New())
	require.Error(t, err)
	require.Nil(t, c)
	require.Contains(t, err.Error(), "max_alloc_size")

	t.Setenv("BASE_MAX_ALLOC_SIZE", "")
	t.Setenv("BASE_LOG_LEVEL", "chatty")
	c, err = Load(viper.New())
	require.Error(t, err)
	require.Nil(t, c)
}
