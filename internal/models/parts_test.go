package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		key  string
		want Category
	}{
		{"cpu", CategoryCPU},
		{"CPU", CategoryCPU},
		{" motherboard ", CategoryMotherboard},
		{"ram", CategoryRAM},
		{"gpu", CategoryGPU},
		{"storage", CategoryStorage},
		{"psu", CategoryPowerSupply},
		{"case", CategoryCase},
		{"cooler", CategoryCooler},
		{"accessories", CategoryUnknown},
		{"", CategoryUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseCategory(tc.key), "key %q", tc.key)
	}
}

func TestMaxMemoryGB(t *testing.T) {
	assert.Equal(t, 128, ComponentSpec{MaxMemory: "128GB"}.MaxMemoryGB())
	assert.Equal(t, 32, ComponentSpec{MaxMemory: "32gb"}.MaxMemoryGB())
	assert.Zero(t, ComponentSpec{}.MaxMemoryGB())
	assert.Zero(t, ComponentSpec{MaxMemory: "lots"}.MaxMemoryGB())
}

func TestHasExtractedData(t *testing.T) {
	assert.False(t, ComponentSpec{Name: "mystery part", Category: CategoryUnknown}.HasExtractedData())
	assert.True(t, ComponentSpec{Category: CategoryCPU}.HasExtractedData())
	assert.True(t, ComponentSpec{Category: CategoryUnknown, Socket: "AM5"}.HasExtractedData())
	assert.True(t, ComponentSpec{Category: CategoryUnknown, PowerConsumption: 65}.HasExtractedData())
}
