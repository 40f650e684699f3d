package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ByteBuilderAI/ByteBuilder-API/internal/models"
)

func TestExtractCPUListing(t *testing.T) {
	listing := models.Listing{
		Title:   "Intel Core i7-13700K Processor",
		Snippet: "LGA1700 socket, 125W TDP",
	}

	spec := Extract(listing)

	assert.Equal(t, models.CategoryCPU, spec.Category)
	assert.Equal(t, "Intel Core i7-13700K Processor", spec.Name)
	assert.Equal(t, "LGA1700", spec.Socket)
	assert.Equal(t, 125, spec.PowerConsumption)
	assert.Empty(t, spec.MemoryType)
}

func TestExtractIsIdempotent(t *testing.T) {
	listing := models.Listing{
		Title:   "MSI MAG B650 TOMAHAWK WiFi Motherboard",
		Snippet: "AM5, B650, DDR5, up to 128GB, ATX",
	}

	first := Extract(listing)
	second := Extract(listing)

	assert.Equal(t, first, second)
}

func TestExtractMotherboard(t *testing.T) {
	spec := Extract(models.Listing{
		Title:   "ASUS ROG STRIX Z790-E Motherboard",
		Snippet: "Premium Z790 board, LGA1700 socket, DDR5 support, up to 128 GB, ATX form factor",
	})

	assert.Equal(t, models.CategoryMotherboard, spec.Category)
	assert.Equal(t, "LGA1700", spec.Socket)
	assert.Equal(t, "DDR5", spec.MemoryType)
	assert.Equal(t, "128GB", spec.MaxMemory)
	assert.Equal(t, 128, spec.MaxMemoryGB())
	assert.Equal(t, "Atx", spec.FormFactor)
}

func TestExtractCategoryPriority(t *testing.T) {
	cases := []struct {
		title string
		want  models.Category
	}{
		// CPU terms outrank RAM terms even on a memory kit.
		{"DDR5 memory kit for Ryzen builds", models.CategoryCPU},
		// Case terms outrank cooler terms.
		{"Cooler Master mid tower case", models.CategoryCase},
		{"Corsair Vengeance LPX 32GB DDR4-3200", models.CategoryRAM},
		{"Samsung 980 PRO 1TB NVMe", models.CategoryStorage},
		{"Corsair RM850x power supply", models.CategoryPowerSupply},
		{"Noctua NH-D15 air cooler", models.CategoryCooler},
		{"Mystery bracket kit", models.CategoryUnknown},
	}

	for _, tc := range cases {
		spec := Extract(models.Listing{Title: tc.title})
		assert.Equal(t, tc.want, spec.Category, "title %q", tc.title)
	}
}

func TestExtractSocketOnlyForCPUAndMotherboard(t *testing.T) {
	spec := Extract(models.Listing{
		Title:   "Noctua NH-D15 air cooler",
		Snippet: "Compatible with AM5 and LGA1700 mounts",
	})

	assert.Equal(t, models.CategoryCooler, spec.Category)
	assert.Empty(t, spec.Socket)
}

func TestExtractAMDSocket(t *testing.T) {
	spec := Extract(models.Listing{
		Title:   "AMD Ryzen 7 7700X Processor",
		Snippet: "8-core processor, AM5 socket, 105W TDP",
	})

	assert.Equal(t, "AM5", spec.Socket)
	assert.Equal(t, 105, spec.PowerConsumption)
}

func TestExtractMemoryTypeNormalization(t *testing.T) {
	spec := Extract(models.Listing{
		Title:   "Budget motherboard",
		Snippet: "Supports DDR 4 memory modules",
	})

	assert.Equal(t, "DDR4", spec.MemoryType)
}

func TestExtractWattagePatternOrder(t *testing.T) {
	// "N w" style wins over "tdp N" when both are present.
	spec := Extract(models.Listing{
		Title:   "Some GPU RTX card",
		Snippet: "draws 320w under load, tdp 300",
	})
	assert.Equal(t, 320, spec.PowerConsumption)

	spec = Extract(models.Listing{
		Title:   "Some GPU RTX card",
		Snippet: "tdp 300 rated",
	})
	assert.Equal(t, 300, spec.PowerConsumption)
}

func TestExtractToleratesEmptySnippet(t *testing.T) {
	spec := Extract(models.Listing{Title: "Intel Core i5-13600K Processor"})

	assert.Equal(t, models.CategoryCPU, spec.Category)
	assert.Empty(t, spec.Socket)
	assert.Zero(t, spec.PowerConsumption)
}
