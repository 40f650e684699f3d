package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ByteBuilderAI/ByteBuilder-API/internal/models"
)

func TestEstimatePowerExplicitAndTierMix(t *testing.T) {
	specs := []models.ComponentSpec{
		{Name: "Intel Core i7-13700K Processor", Category: models.CategoryCPU, PowerConsumption: 125},
		{Name: "NVIDIA GeForce RTX 4080 Graphics Card", Category: models.CategoryGPU},
	}

	analysis := EstimatePower(specs)

	// 100 base + 125 declared + 280 tier estimate = 505; 505 * 1.2 = 606.
	assert.Equal(t, 505, analysis.EstimatedConsumption)
	assert.Equal(t, 650, analysis.RecommendedPSUWattage)
	assert.Contains(t, analysis.Explanation, "505W")
}

func TestEstimatePowerBaseOnly(t *testing.T) {
	analysis := EstimatePower(nil)

	assert.Equal(t, 100, analysis.EstimatedConsumption)
	assert.Equal(t, 450, analysis.RecommendedPSUWattage)
}

func TestEstimatePowerLadderOrRawAboveTop(t *testing.T) {
	ladder := map[int]bool{450: true, 550: true, 650: true, 750: true, 850: true, 1000: true, 1200: true}

	specs := []models.ComponentSpec{}
	for i := 0; i < 8; i++ {
		specs = append(specs, models.ComponentSpec{
			Name:             "NVIDIA GeForce RTX 4090",
			Category:         models.CategoryGPU,
			PowerConsumption: 50 + i*100,
		})
		analysis := EstimatePower(specs)
		if analysis.RecommendedPSUWattage > 1200 {
			// Above the ladder the raw margined total is returned, never
			// clamped down.
			assert.Equal(t, analysis.EstimatedConsumption*12/10, analysis.RecommendedPSUWattage)
		} else {
			assert.True(t, ladder[analysis.RecommendedPSUWattage],
				"unexpected wattage %d", analysis.RecommendedPSUWattage)
		}
	}
}

func TestGPUPowerTiers(t *testing.T) {
	cases := []struct {
		name  string
		watts int
	}{
		{"NVIDIA GeForce RTX 4090", 350},
		{"Radeon RX 7900 XTX", 350},
		{"NVIDIA GeForce RTX 4080", 280},
		{"Radeon RX 7900 XT", 280},
		{"NVIDIA GeForce RTX 4070", 220},
		{"Radeon RX 7800 XT", 220},
		{"NVIDIA GeForce RTX 4060", 150},
		{"Radeon RX 7600 XT", 150},
		{"Intel Arc A770", 200},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.watts, estimateGPUPower(tc.name), "gpu %q", tc.name)
	}
}

func TestCPUPowerTiers(t *testing.T) {
	cases := []struct {
		name  string
		watts int
	}{
		{"Intel Core i9-13900K", 125},
		{"AMD Ryzen 9 7950X", 125},
		{"Intel Core i7-13700K", 100},
		{"AMD Ryzen 7 7700X", 100},
		{"Intel Core i5-13600K", 80},
		{"AMD Ryzen 5 7600X", 80},
		{"Intel Core i3-13100", 65},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.watts, estimateCPUPower(tc.name), "cpu %q", tc.name)
	}
}

func TestEstimatePowerCoarse(t *testing.T) {
	analysis := EstimatePowerCoarse([]models.Category{
		models.CategoryCPU,
		models.CategoryGPU,
		models.CategoryRAM,
		models.CategoryStorage,
	})

	// 150 + 300 + 50 + 25 = 525; 525 * 1.3 = 682.
	assert.Equal(t, 525, analysis.EstimatedConsumption)
	assert.Equal(t, 682, analysis.RecommendedPSUWattage)
}

func TestEstimatePowerCoarseFloor(t *testing.T) {
	analysis := EstimatePowerCoarse([]models.Category{models.CategoryRAM})

	assert.Equal(t, 650, analysis.RecommendedPSUWattage)
}
