package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-taking/placeorder/catalog"
)

func TestDefault(t *testing.T) {
	c := catalog.Default()

	p, ok := c.Lookup("W1234")
	require.True(t, ok)
	assert.Equal(t, int64(1000), p.Price)

	_, ok = c.Lookup("W0000")
	assert.False(t, ok)

	assert.Equal(t, int64(400), c.PriceList()["G123"])
	assert.True(t, c.Serviceable("12345"))
	assert.False(t, c.Serviceable("99901"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
products:
  - code: W1
    price: 5
`), 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"W1": 5}, c.PriceList())
	assert.True(t, c.Serviceable("99999"))

	_, err = catalog.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "products: [",
		"empty code":     "products:\n  - price: 1\n",
		"negative price": "products:\n  - code: W1\n    price: -1\n",
		"duplicate":      "products:\n  - code: W1\n  - code: W1\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(data))
			require.Error(t, err)
		})
	}
}
