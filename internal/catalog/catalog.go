// Package catalog is an injected sample-parts source backed by SQLite. It
// stands in for a real parts catalog: lookups return listing records shaped
// exactly like search results, so the compatibility engine runs the same
// extraction path over catalog parts and scraped parts.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ByteBuilderAI/ByteBuilder-API/internal/models"
)

// Part is one catalog row. Kind is the lower-case build-request key the part
// belongs under (cpu, motherboard, ram, gpu).
type Part struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"uniqueIndex;not null"`
	Kind       string `gorm:"index;not null"`
	Socket     string
	MemoryType string
	MaxMemory  string
	PowerWatts int
	FormFactor string
	MinPrice   int
	MaxPrice   int
}

type Catalog struct {
	db *gorm.DB
}

// Open connects to the catalog database at path, migrates the schema and
// seeds the sample parts when the table is empty. Use ":memory:" for an
// ephemeral catalog.
func Open(path string) (*Catalog, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	if err := db.AutoMigrate(&Part{}); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.seed(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}
	return sqlDB.Close()
}

func (c *Catalog) seed() error {
	var count int64
	if err := c.db.Model(&Part{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count catalog parts: %w", err)
	}
	if count > 0 {
		return nil
	}
	parts := sampleParts()
	if err := c.db.Create(&parts).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}

// Lookup finds a part by name (case-insensitive) and renders it as a listing
// record. A miss returns (nil, nil); the caller decides how to report it.
func (c *Catalog) Lookup(ctx context.Context, name string) (*models.Listing, error) {
	var part Part
	err := c.db.WithContext(ctx).Where("LOWER(name) = ?", strings.ToLower(name)).First(&part).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up part: %w", err)
	}
	listing := part.Listing()
	return &listing, nil
}

// FindCompatible restores the original catalog query: compatible
// motherboards for a CPU, compatible CPUs and RAM for a motherboard.
func (c *Catalog) FindCompatible(ctx context.Context, kind, name string) ([]string, error) {
	var base Part
	err := c.db.WithContext(ctx).Where("kind = ? AND LOWER(name) = ?", strings.ToLower(kind), strings.ToLower(name)).First(&base).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up base part: %w", err)
	}

	var names []string
	switch base.Kind {
	case "cpu":
		err = c.db.WithContext(ctx).Model(&Part{}).
			Where("kind = ? AND socket = ?", "motherboard", base.Socket).
			Order("name").Pluck("name", &names).Error
	case "motherboard":
		err = c.db.WithContext(ctx).Model(&Part{}).
			Where("(kind = ? AND socket = ?) OR (kind = ? AND memory_type = ?)",
				"cpu", base.Socket, "ram", base.MemoryType).
			Order("kind, name").Pluck("name", &names).Error
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query compatible parts: %w", err)
	}
	return names, nil
}

// Listing renders a part the way a search result would describe it: the kind
// label lands in the title so category inference works, and the structured
// columns are spelled out in the snippet for the extractor to recover.
func (p Part) Listing() models.Listing {
	var details []string
	if p.Socket != "" {
		details = append(details, p.Socket+" socket")
	}
	if p.MemoryType != "" {
		details = append(details, p.MemoryType)
	}
	if p.MaxMemory != "" {
		details = append(details, "up to "+p.MaxMemory)
	}
	if p.PowerWatts > 0 {
		details = append(details, fmt.Sprintf("%dW TDP", p.PowerWatts))
	}
	if p.FormFactor != "" {
		details = append(details, p.FormFactor+" form factor")
	}

	return models.Listing{
		Title:   p.Name + " " + kindLabel(p.Kind),
		Price:   models.FormatPriceRange(p.MinPrice, p.MaxPrice),
		Snippet: strings.Join(details, ", "),
	}
}

func kindLabel(kind string) string {
	switch kind {
	case "cpu":
		return "Processor"
	case "motherboard":
		return "Motherboard"
	case "ram":
		return "Memory Kit"
	case "gpu":
		return "Graphics Card"
	}
	return ""
}

func sampleParts() []Part {
	return []Part{
		{Name: "Intel Core i7-13700K", Kind: "cpu", Socket: "LGA1700", PowerWatts: 125, MinPrice: 400, MaxPrice: 450},
		{Name: "Intel Core i5-13600K", Kind: "cpu", Socket: "LGA1700", PowerWatts: 125, MinPrice: 320, MaxPrice: 370},
		{Name: "AMD Ryzen 7 7700X", Kind: "cpu", Socket: "AM5", PowerWatts: 105, MinPrice: 350, MaxPrice: 400},
		{Name: "AMD Ryzen 5 7600X", Kind: "cpu", Socket: "AM5", PowerWatts: 105, MinPrice: 280, MaxPrice: 320},

		{Name: "ASUS ROG STRIX Z790-E", Kind: "motherboard", Socket: "LGA1700", MemoryType: "DDR5", MaxMemory: "128GB", FormFactor: "ATX", MinPrice: 350, MaxPrice: 400},
		{Name: "MSI B650 TOMAHAWK", Kind: "motherboard", Socket: "AM5", MemoryType: "DDR5", MaxMemory: "128GB", FormFactor: "ATX", MinPrice: 180, MaxPrice: 220},

		{Name: "Corsair Vengeance DDR5-5600 32GB", Kind: "ram", MemoryType: "DDR5", MaxMemory: "32GB", MinPrice: 180, MaxPrice: 220},
		{Name: "G.SKILL Trident Z5 DDR5-6000 32GB", Kind: "ram", MemoryType: "DDR5", MaxMemory: "32GB", MinPrice: 250, MaxPrice: 300},

		{Name: "NVIDIA GeForce RTX 4080", Kind: "gpu", PowerWatts: 320, MinPrice: 1100, MaxPrice: 1300},
		{Name: "NVIDIA GeForce RTX 4070", Kind: "gpu", PowerWatts: 200, MinPrice: 600, MaxPrice: 700},
		{Name: "AMD Radeon RX 7800 XT", Kind: "gpu", PowerWatts: 263, MinPrice: 500, MaxPrice: 600},
	}
}
