package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-a", ":6060", "-s", "from-flag", "-t", "60", "-b", "other-bucket"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.EndpointAddr, ":6060")
	assert.Equal(t, c.SecretKey, "from-flag")
	assert.Equal(t, c.TokenValidityDuration, time.Hour)
	assert.Equal(t, c.S3Bucket, "other-bucket")
	// untouched values keep their defaults
	assert.Equal(t, c.S3Region, "us-east-1")
}
