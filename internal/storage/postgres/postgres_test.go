package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoSim-25-26J-441/bpmn-compliance/config"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "runs"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=runs sslmode=disable", DSN(cfg))

	cfg.DSN = "postgres://u:p@db/runs"
	assert.Equal(t, "postgres://u:p@db/runs", DSN(cfg))
}

func TestNewConnection_Disabled(t *testing.T) {
	_, err := NewConnection(context.Background(), &config.DatabaseConfig{}, Options{})
	assert.Error(t, err)
}
