package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "postgres"
dbname = "rsc_booking"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "rsc-booking-service"

[booking]
slots = ["10:00", "11:00"]

[pricelist]
prices_file = "data/prices.csv"
options_file = "data/options.csv"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, []string{"10:00", "11:00"}, cfg.Booking.Slots)
	assert.Equal(t, "data/prices.csv", cfg.Pricelist.PricesFile)
	assert.Contains(t, cfg.Database.DSN(), "dbname=rsc_booking")
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "no port", content: `[database]
host = "h"
dbname = "d"
[booking]
slots = ["10:00"]
[pricelist]
prices_file = "p.csv"
options_file = "o.csv"`},
		{name: "no database", content: `[server]
http_port = 8080
[booking]
slots = ["10:00"]
[pricelist]
prices_file = "p.csv"
options_file = "o.csv"`},
		{name: "no slots", content: `[server]
http_port = 8080
[database]
host = "h"
dbname = "d"
[pricelist]
prices_file = "p.csv"
options_file = "o.csv"`},
		{name: "no pricelist", content: `[server]
http_port = 8080
[database]
host = "h"
dbname = "d"
[booking]
slots = ["10:00"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
