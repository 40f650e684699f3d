// Package engine is the compatibility-and-power-estimation core: it turns
// free-text product listings into structured component specs, evaluates
// pairwise compatibility rules across a build, and recommends a power-supply
// wattage. Everything here is pure and synchronous; concurrent callers need
// no coordination.
package engine

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/ByteBuilderAI/ByteBuilder-API/internal/models"
	"github.com/ByteBuilderAI/ByteBuilder-API/internal/utils"
)

// categoryKeywords is evaluated in priority order; the first set with a
// keyword present in the lower-cased title wins. A RAM stick advertised "for
// Ryzen builds" classifies as CPU on purpose: CPU terms outrank RAM terms.
var categoryKeywords = []struct {
	category models.Category
	keywords []string
}{
	{models.CategoryCPU, []string{"cpu", "processor", "ryzen", "intel core"}},
	{models.CategoryMotherboard, []string{"motherboard", "mobo", "mainboard"}},
	{models.CategoryGPU, []string{"gpu", "graphics", "rtx", "gtx", "radeon"}},
	{models.CategoryRAM, []string{"ram", "memory", "ddr4", "ddr5"}},
	{models.CategoryStorage, []string{"ssd", "hdd", "nvme", "storage"}},
	{models.CategoryPowerSupply, []string{"psu", "power supply"}},
	{models.CategoryCase, []string{"case", "tower", "chassis"}},
	{models.CategoryCooler, []string{"cooler", "cooling", "fan"}},
}

var (
	// Socket patterns are tried in order over the whole text, so an Intel
	// LGA token outranks an AMD token even when the AMD token appears
	// earlier in the string.
	socketMatchers = []*regexp2.Regexp{
		regexp2.MustCompile(`lga\s*\d+`, regexp2.IgnoreCase),
		regexp2.MustCompile(`am[45]`, regexp2.IgnoreCase),
		regexp2.MustCompile(`tr4`, regexp2.IgnoreCase),
		regexp2.MustCompile(`trx40`, regexp2.IgnoreCase),
		regexp2.MustCompile(`trx50`, regexp2.IgnoreCase),
	}

	memoryTypeMatcher = regexp2.MustCompile(`ddr\s*[45]`, regexp2.IgnoreCase)
	maxMemoryMatcher  = regexp2.MustCompile(`(?:up\s*to\s*)?(\d+)\s*gb`, regexp2.IgnoreCase)

	wattageMatchers = []*regexp2.Regexp{
		regexp2.MustCompile(`(\d+)\s*w(?:att)?`, regexp2.IgnoreCase),
		regexp2.MustCompile(`tdp\s*(\d+)`, regexp2.IgnoreCase),
		regexp2.MustCompile(`power\s*(\d+)`, regexp2.IgnoreCase),
	}

	// Checked in order; first substring hit wins, so "micro-atx" text
	// reports as ATX. Accepted imprecision of free-text listings.
	formFactors = []string{"atx", "micro-atx", "mini-itx", "e-atx", "full tower", "mid tower"}
)

// Extract parses a raw listing into a structured component spec. It never
// fails: attributes the text does not yield are simply left empty. Extraction
// is pure, so applying it twice to the same listing gives identical specs.
func Extract(listing models.Listing) models.ComponentSpec {
	title := strings.ToLower(listing.Title)
	combined := title + " " + strings.ToLower(listing.Snippet)

	spec := models.ComponentSpec{
		Name:     listing.Title,
		Category: classify(title),
	}

	if spec.Category == models.CategoryCPU || spec.Category == models.CategoryMotherboard {
		spec.Socket = extractSocket(combined)
	}
	spec.MemoryType = extractMemoryType(combined)
	spec.MaxMemory = extractMaxMemory(combined)
	spec.PowerConsumption = extractWattage(combined)
	spec.FormFactor = extractFormFactor(combined)

	return spec
}

func classify(title string) models.Category {
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(title, kw) {
				return entry.category
			}
		}
	}
	return models.CategoryUnknown
}

func extractSocket(text string) string {
	for _, re := range socketMatchers {
		if m := utils.FirstMatch(re, text); m != "" {
			return strings.ToUpper(m)
		}
	}
	return ""
}

func extractMemoryType(text string) string {
	m := utils.FirstMatch(memoryTypeMatcher, text)
	if m == "" {
		return ""
	}
	return strings.ReplaceAll(strings.ToUpper(m), " ", "")
}

func extractMaxMemory(text string) string {
	m := utils.FirstGroup(maxMemoryMatcher, text)
	if m == "" {
		return ""
	}
	return m + "GB"
}

func extractWattage(text string) int {
	for _, re := range wattageMatchers {
		if m := utils.FirstGroup(re, text); m != "" {
			if watts, err := strconv.Atoi(m); err == nil {
				return watts
			}
		}
	}
	return 0
}

func extractFormFactor(text string) string {
	for _, ff := range formFactors {
		if strings.Contains(text, ff) {
			return utils.TitleCase(ff)
		}
	}
	return ""
}
