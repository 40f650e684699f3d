package models

import (
	"strconv"
	"strings"
)

// Category is the component bucket a listing belongs to, inferred once at
// extraction time from the listing title.
type Category string

const (
	CategoryCPU         Category = "CPU"
	CategoryMotherboard Category = "Motherboard"
	CategoryRAM         Category = "RAM"
	CategoryGPU         Category = "GPU"
	CategoryStorage     Category = "Storage"
	CategoryPowerSupply Category = "Power Supply"
	CategoryCase        Category = "Case"
	CategoryCooler      Category = "Cooling System"
	CategoryUnknown     Category = "Unknown"
)

// ParseCategory maps a build-request key ("cpu", "motherboard", ...) to a
// Category. Keys are matched case-insensitively; anything unrecognized maps
// to CategoryUnknown.
func ParseCategory(key string) Category {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "cpu":
		return CategoryCPU
	case "motherboard":
		return CategoryMotherboard
	case "ram":
		return CategoryRAM
	case "gpu":
		return CategoryGPU
	case "storage":
		return CategoryStorage
	case "psu":
		return CategoryPowerSupply
	case "case":
		return CategoryCase
	case "cooler":
		return CategoryCooler
	}
	return CategoryUnknown
}

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

type BuildStatus string

const (
	StatusCompatible   BuildStatus = "compatible"
	StatusWarning      BuildStatus = "warning"
	StatusIncompatible BuildStatus = "incompatible"
)

// Listing is one raw search result describing a purported product. Snippet
// and Rating may be empty; Price is display-only and never parsed by the
// compatibility engine.
type Listing struct {
	Title   string `json:"title"`
	Price   string `json:"price"`
	URL     string `json:"url,omitempty"`
	Snippet string `json:"snippet"`
	Rating  string `json:"rating,omitempty"`
}

// ComponentSpec holds the structured attributes extracted from a listing.
// Absent attributes stay zero-valued rather than failing extraction.
type ComponentSpec struct {
	Name             string   `json:"name"`
	Category         Category `json:"category"`
	Socket           string   `json:"socket,omitempty"`
	MemoryType       string   `json:"memory_type,omitempty"`
	MaxMemory        string   `json:"max_memory,omitempty"`
	PowerConsumption int      `json:"power_consumption,omitempty"`
	FormFactor       string   `json:"form_factor,omitempty"`
}

// MaxMemoryGB returns the numeric value of MaxMemory ("64GB" -> 64), or 0
// when the capacity is unknown.
func (s ComponentSpec) MaxMemoryGB() int {
	trimmed := strings.TrimSuffix(strings.ToUpper(s.MaxMemory), "GB")
	n, err := strconv.Atoi(strings.TrimSpace(trimmed))
	if err != nil {
		return 0
	}
	return n
}

// HasExtractedData reports whether any attribute beyond the display name was
// recovered from the listing text. The power estimator uses this to pick an
// estimation tier.
func (s ComponentSpec) HasExtractedData() bool {
	return s.Category != CategoryUnknown ||
		s.Socket != "" ||
		s.MemoryType != "" ||
		s.MaxMemory != "" ||
		s.PowerConsumption > 0 ||
		s.FormFactor != ""
}

type CompatibilityIssue struct {
	Severity   Severity `json:"severity"`
	Component1 string   `json:"component1"`
	Component2 string   `json:"component2"`
	Issue      string   `json:"issue"`
	Suggestion string   `json:"suggestion"`
	Category   string   `json:"category"`
}

type PowerAnalysis struct {
	EstimatedConsumption  int    `json:"estimated_consumption"`
	RecommendedPSUWattage int    `json:"recommended_psu_wattage"`
	Explanation           string `json:"explanation"`
}

// BuildReport is the terminal artifact of a compatibility check. It is built
// fresh per request and never persisted past the response.
type BuildReport struct {
	BuildStatus         BuildStatus          `json:"build_status"`
	CompatibilityIssues []CompatibilityIssue `json:"compatibility_issues"`
	PowerAnalysis       PowerAnalysis        `json:"power_analysis"`
	ComponentsAnalyzed  int                  `json:"components_analyzed"`
	Summary             string               `json:"summary"`
}
