package database

import (
	"testing"

	"bobTheBar/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestPostgresDSN(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Host: "db", Port: "5432", User: "bob", Password: "pw", Name: "bar", SSLMode: "disable",
	}}

	assert.Equal(t, "host=db port=5432 user=bob password=pw dbname=bar sslmode=disable TimeZone=UTC", PostgresDSN(cfg))
}
