package catalog

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

// fileItem is one [[entree]] / [[side_dish]] / [[accompaniment]] table.
type fileItem struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Price       string `toml:"price"`
	Image       string `toml:"image"`
}

type menuFile struct {
	Entrees        []fileItem `toml:"entree"`
	SideDishes     []fileItem `toml:"side_dish"`
	Accompaniments []fileItem `toml:"accompaniment"`
}

// LoadFile reads a menu from a TOML file.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read menu %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("menu %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML menu data and validates every course.
func Parse(data []byte) (Catalog, error) {
	var f menuFile
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
		return Catalog{}, fmt.Errorf("parse toml: %w", err)
	}
	var c Catalog
	var err error
	if c.Entrees, err = convertItems(CourseEntree, f.Entrees); err != nil {
		return Catalog{}, err
	}
	if c.SideDishes, err = convertItems(CourseSideDish, f.SideDishes); err != nil {
		return Catalog{}, err
	}
	if c.Accompaniments, err = convertItems(CourseAccompaniment, f.Accompaniments); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func convertItems(course Course, raw []fileItem) ([]MenuItem, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: no items", course)
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]MenuItem, 0, len(raw))
	for i, r := range raw {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf("%s[%d]: name is required", course, i)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%s[%d]: duplicate name %q", course, i, name)
		}
		seen[key] = struct{}{}
		price, err := decimal.NewFromString(strings.TrimSpace(r.Price))
		if err != nil {
			return nil, fmt.Errorf("%s %q: invalid price %q", course, name, r.Price)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("%s %q: price must not be negative", course, name)
		}
		out = append(out, MenuItem{
			ID:          ItemID(course, name),
			Course:      course,
			Name:        name,
			Description: strings.TrimSpace(r.Description),
			Price:       price,
			Image:       strings.TrimSpace(r.Image),
		})
	}
	return out, nil
}
