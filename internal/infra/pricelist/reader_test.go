package pricelist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPrices(t *testing.T) {
	dir := t.TempDir()
	prices := writeFile(t, dir, "prices.csv",
		"model,repair_type,cost,shipping,profit_rate\n"+
			"Pixel 7,Screen Replacement,\"9,100\",700,0.4\n"+
			"Pixel 7,Battery Replacement,SOLD OUT,700,0.4\n"+
			"Galaxy S21,Charging Port,UNSUPPORTED,700,0.35\n")

	r := NewReader(prices, filepath.Join(dir, "missing.csv"))

	rows, err := r.LoadPrices()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Разделители тысяч в ценах допускаются
	assert.Equal(t, "Pixel 7", rows[0].Model)
	assert.True(t, rows[0].Supported)
	assert.Equal(t, 9100.0, rows[0].Cost)
	assert.Equal(t, 700.0, rows[0].Shipping)
	assert.Equal(t, 0.4, rows[0].ProfitRate)

	// Маркеры SOLD OUT и UNSUPPORTED дают неподдерживаемую позицию
	assert.False(t, rows[1].Supported)
	assert.False(t, rows[2].Supported)
}

// Порядок колонок в файле значения не имеет, колонки находятся по заголовку
func TestLoadPrices_ColumnOrder(t *testing.T) {
	dir := t.TempDir()
	prices := writeFile(t, dir, "prices.csv",
		"profit_rate,model,shipping,repair_type,cost\n"+
			"0.3,Xperia 5,700,Screen Replacement,7800\n")

	r := NewReader(prices, "")

	rows, err := r.LoadPrices()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Xperia 5", rows[0].Model)
	assert.Equal(t, 7800.0, rows[0].Cost)
}

func TestLoadPrices_ShortRowsDropped(t *testing.T) {
	dir := t.TempDir()
	prices := writeFile(t, dir, "prices.csv",
		"model,repair_type,cost,shipping,profit_rate\n"+
			"Pixel 7,Screen Replacement\n"+
			"Pixel 7,Battery Replacement,3200,700,0.4\n")

	r := NewReader(prices, "")

	rows, err := r.LoadPrices()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Battery Replacement", rows[0].RepairType)
}

func TestLoadPrices_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	prices := writeFile(t, dir, "prices.csv",
		"model,cost,shipping,profit_rate\nPixel 7,9100,700,0.4\n")

	r := NewReader(prices, "")

	_, err := r.LoadPrices()
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestLoadPrices_FileMissing(t *testing.T) {
	r := NewReader(filepath.Join(t.TempDir(), "missing.csv"), "")

	_, err := r.LoadPrices()
	assert.ErrorIs(t, err, ErrOpenFile)
}

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	options := writeFile(t, dir, "options.csv",
		"name,price\n"+
			"Glass Coating,1500\n"+
			"Broken Price,n/a\n"+
			"Express Service,\"2,000\"\n")

	r := NewReader("", options)

	got, err := r.LoadOptions()
	require.NoError(t, err)

	// Опция с нечисловой ценой пропущена
	require.Len(t, got, 2)
	assert.Equal(t, "Glass Coating", got[0].Name)
	assert.Equal(t, 1500, got[0].Price)
	assert.Equal(t, 2000, got[1].Price)
}

// Файлы перечитываются на каждый вызов: правка на диске видна сразу
func TestLoadPrices_RereadsFile(t *testing.T) {
	dir := t.TempDir()
	prices := writeFile(t, dir, "prices.csv",
		"model,repair_type,cost,shipping,profit_rate\n"+
			"Pixel 7,Screen Replacement,9100,700,0.4\n")

	r := NewReader(prices, "")

	rows, err := r.LoadPrices()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	writeFile(t, dir, "prices.csv",
		"model,repair_type,cost,shipping,profit_rate\n"+
			"Pixel 7,Screen Replacement,9100,700,0.4\n"+
			"Pixel 7,Battery Replacement,3200,700,0.4\n")

	rows, err = r.LoadPrices()
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
