// Package catalog loads the product catalog used by the activities.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Product is a catalog entry. Price is in minor currency units.
type Product struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
	Price       int64  `yaml:"price"`
}

// Catalog is the set of products that can be ordered and the zip code
// prefixes that cannot be shipped to.
type Catalog struct {
	Products                 []Product `yaml:"products"`
	UnserviceableZipPrefixes []string  `yaml:"unserviceable_zip_prefixes"`

	byCode map[string]Product
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and checks a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c.byCode = make(map[string]Product, len(c.Products))
	for _, p := range c.Products {
		if p.Code == "" {
			return nil, fmt.Errorf("catalog: product with empty code")
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("catalog: product %s has negative price %d", p.Code, p.Price)
		}
		if _, dup := c.byCode[p.Code]; dup {
			return nil, fmt.Errorf("catalog: duplicate product %s", p.Code)
		}
		c.byCode[p.Code] = p
	}
	return &c, nil
}

// Lookup returns the product with the given code.
func (c *Catalog) Lookup(code string) (Product, bool) {
	p, ok := c.byCode[code]
	return p, ok
}

// PriceList maps every product code to its price.
func (c *Catalog) PriceList() map[string]int64 {
	prices := make(map[string]int64, len(c.Products))
	for _, p := range c.Products {
		prices[p.Code] = p.Price
	}
	return prices
}

// Serviceable reports whether orders can be shipped to zip.
func (c *Catalog) Serviceable(zip string) bool {
	for _, prefix := range c.UnserviceableZipPrefixes {
		if strings.HasPrefix(zip, prefix) {
			return false
		}
	}
	return true
}
