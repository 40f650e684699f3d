package engine

import (
	"fmt"
	"strings"

	"github.com/ByteBuilderAI/ByteBuilder-API/internal/models"
)

// basePowerWatts covers motherboard, fans and miscellaneous draw not
// attributable to a single listed component.
const basePowerWatts = 100

// psuLadder is the set of standard power-supply wattages recommendations are
// rounded up to. Totals above the top rung are returned raw rather than
// clamped.
var psuLadder = []int{450, 550, 650, 750, 850, 1000, 1200}

// gpuPowerTiers map model substrings to typical board power, checked in
// descending performance order so "7900 XTX" is matched before "7900 XT".
var gpuPowerTiers = []struct {
	models []string
	watts  int
}{
	{[]string{"RTX 4090", "7900 XTX"}, 350},
	{[]string{"RTX 4080", "7900 XT"}, 280},
	{[]string{"RTX 4070", "7800 XT"}, 220},
	{[]string{"RTX 4060", "7600 XT"}, 150},
}

var cpuPowerTiers = []struct {
	models []string
	watts  int
}{
	{[]string{"I9", "RYZEN 9"}, 125},
	{[]string{"I7", "RYZEN 7"}, 100},
	{[]string{"I5", "RYZEN 5"}, 80},
}

const (
	defaultGPUWatts = 200
	defaultCPUWatts = 65
)

// EstimatePower is the structured estimation tier, used whenever at least one
// spec carries extracted data (and for empty builds, which fall back to the
// base load alone). It sums declared wattages, substitutes model-tier
// estimates for GPUs and CPUs with no declared draw, applies 20% headroom and
// rounds up to a standard PSU wattage.
func EstimatePower(specs []models.ComponentSpec) models.PowerAnalysis {
	total := basePowerWatts

	for _, spec := range specs {
		switch {
		case spec.PowerConsumption > 0:
			total += spec.PowerConsumption
		case spec.Category == models.CategoryGPU:
			total += estimateGPUPower(spec.Name)
		case spec.Category == models.CategoryCPU:
			total += estimateCPUPower(spec.Name)
		}
	}

	recommended := roundToLadder(total * 12 / 10)

	return models.PowerAnalysis{
		EstimatedConsumption:  total,
		RecommendedPSUWattage: recommended,
		Explanation:           fmt.Sprintf("Total estimated power: %dW. Recommended PSU: %dW (with 20%% safety margin)", total, recommended),
	}
}

// EstimatePowerCoarse is the low-confidence tier for builds where no spec
// yielded any extracted data: only the requested category counts are known.
// It uses fixed per-category draws, 30% headroom and a 650W floor.
func EstimatePowerCoarse(categories []models.Category) models.PowerAnalysis {
	total := 0
	for _, cat := range categories {
		switch cat {
		case models.CategoryCPU:
			total += 150
		case models.CategoryGPU:
			total += 300
		case models.CategoryRAM:
			total += 50
		default:
			total += 25
		}
	}

	recommended := total * 13 / 10
	if recommended < 650 {
		recommended = 650
	}

	return models.PowerAnalysis{
		EstimatedConsumption:  total,
		RecommendedPSUWattage: recommended,
		Explanation:           fmt.Sprintf("Estimated power draw: %dW, recommended PSU: %dW (coarse estimate, verify component specifications)", total, recommended),
	}
}

func estimateGPUPower(name string) int {
	upper := strings.ToUpper(name)
	for _, tier := range gpuPowerTiers {
		for _, model := range tier.models {
			if strings.Contains(upper, model) {
				return tier.watts
			}
		}
	}
	return defaultGPUWatts
}

func estimateCPUPower(name string) int {
	upper := strings.ToUpper(name)
	for _, tier := range cpuPowerTiers {
		for _, model := range tier.models {
			if strings.Contains(upper, model) {
				return tier.watts
			}
		}
	}
	return defaultCPUWatts
}

func roundToLadder(watts int) int {
	for _, rung := range psuLadder {
		if rung >= watts {
			return rung
		}
	}
	return watts
}
