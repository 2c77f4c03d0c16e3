package database

import (
	"testing"

	"tracker/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Host:     "db.local",
		Port:     "3307",
		Username: "tracker",
		Password: "secret",
		DBName:   "ledger",
		Charset:  "utf8mb4",
	}}

	assert.Equal(t,
		"tracker:secret@tcp(db.local:3307)/ledger?charset=utf8mb4&parseTime=True&loc=Local",
		DSN(cfg))
}

func TestClose_NoConnection(t *testing.T) {
	old := DB
	DB = nil
	defer func() { DB = old }()

	assert.NoError(t, Close())
	assert.Nil(t, GetDB())
}
