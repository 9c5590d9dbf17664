package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpile/config"
	"stockpile/internal/app"
	"stockpile/internal/pkg/logger"
)

func TestOpenStorage_Memory(t *testing.T) {
	repos, closeFn, err := app.OpenStorage(&config.Config{StorageDriver: config.StorageMemory}, logger.NewNop())

	require.NoError(t, err)
	assert.NotNil(t, repos.Stores)
	assert.NotNil(t, repos.Products)
	assert.NotNil(t, repos.Dashboard)
	assert.NoError(t, closeFn())
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, _, err := app.OpenStorage(&config.Config{StorageDriver: "sqlite"}, logger.NewNop())

	assert.Error(t, err)
}
