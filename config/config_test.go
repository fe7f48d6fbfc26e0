package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "blueriver", cfg.DatabaseName)
	assert.Equal(t, 10*time.Minute, cfg.RoomCacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "UTC", cfg.HotelTimezone)
}

func TestLocation(t *testing.T) {
	assert.Equal(t, time.UTC, Config{}.Location())
	assert.Equal(t, time.UTC, Config{HotelTimezone: "Not/AZone"}.Location())

	loc := Config{HotelTimezone: "Asia/Colombo"}.Location()
	assert.Equal(t, "Asia/Colombo", loc.String())
}
