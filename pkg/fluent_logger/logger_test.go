package fluentlogger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{Host: "127.0.0.1", Port: 24224})
	assert.EqualError(t, err, "fluentd tag prefix is required")

	_, err = NewClient(Config{TagPrefix: "saas-dashboard", Port: 24224})
	assert.EqualError(t, err, "fluentd host is required")
}
