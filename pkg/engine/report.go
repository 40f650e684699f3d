package engine

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	"github.com/ByteBuilderAI/ByteBuilder-API/internal/models"
)

// Analyzer is an optional enrichment capability: when present and
// successful, its report replaces the heuristic one wholesale. Any failure
// falls back to the heuristic engine, so the checker works identically with
// or without it.
type Analyzer interface {
	AnalyzeBuild(ctx context.Context, build map[string]*models.Listing) (*models.BuildReport, error)
}

// PartSource is an injected parts catalog: lookup by display name. A miss is
// reported as (nil, nil); errors are reserved for the backing store failing.
type PartSource interface {
	Lookup(ctx context.Context, name string) (*models.Listing, error)
}

// Checker orchestrates extraction, the rule set and power estimation over a
// full build. It holds no mutable state, so one Checker serves concurrent
// requests without coordination.
type Checker struct {
	analyzer Analyzer
}

// NewChecker returns a build checker. analyzer may be nil.
func NewChecker(analyzer Analyzer) *Checker {
	return &Checker{analyzer: analyzer}
}

// GenerateReport produces a compatibility report for a build: a mapping from
// category key to listing. Nil or empty listings are ignored, unrecognized
// keys are tolerated, and a build with nothing usable still yields a
// well-formed report.
func (c *Checker) GenerateReport(ctx context.Context, build map[string]*models.Listing) models.BuildReport {
	if c.analyzer != nil {
		report, err := c.analyzer.AnalyzeBuild(ctx, build)
		if err == nil && report != nil {
			return *report
		}
		if err != nil {
			log.Warnf("analyzer unavailable, using heuristic engine: %v", err)
		}
	}

	return c.heuristicReport(build)
}

func (c *Checker) heuristicReport(build map[string]*models.Listing) models.BuildReport {
	var specs []models.ComponentSpec
	var requestedCategories []models.Category

	for key, listing := range build {
		if listing == nil || listing.Title == "" {
			continue
		}
		specs = append(specs, Extract(*listing))
		requestedCategories = append(requestedCategories, models.ParseCategory(key))
	}

	issues := []models.CompatibilityIssue{}

	cpu := findCategory(specs, models.CategoryCPU)
	mb := findCategory(specs, models.CategoryMotherboard)
	if cpu != nil && mb != nil {
		issues = append(issues, CheckSocket(*cpu, *mb)...)
	}

	ram := findCategory(specs, models.CategoryRAM)
	if ram != nil && mb != nil {
		issues = append(issues, CheckMemory(*ram, *mb)...)
	}

	power := estimateForBuild(specs, requestedCategories)

	status := statusFromIssues(issues)

	return models.BuildReport{
		BuildStatus:         status,
		CompatibilityIssues: issues,
		PowerAnalysis:       power,
		ComponentsAnalyzed:  len(specs),
		Summary:             renderSummary(status, issues),
	}
}

// estimateForBuild picks the estimation tier: structured whenever any spec
// carries extracted data (or the build is empty), coarse category-count
// estimation only when extraction recovered nothing at all.
func estimateForBuild(specs []models.ComponentSpec, requested []models.Category) models.PowerAnalysis {
	if len(specs) == 0 {
		return EstimatePower(nil)
	}
	for _, spec := range specs {
		if spec.HasExtractedData() {
			return EstimatePower(specs)
		}
	}
	return EstimatePowerCoarse(requested)
}

func findCategory(specs []models.ComponentSpec, cat models.Category) *models.ComponentSpec {
	for i := range specs {
		if specs[i].Category == cat {
			return &specs[i]
		}
	}
	return nil
}

func statusFromIssues(issues []models.CompatibilityIssue) models.BuildStatus {
	status := models.StatusCompatible
	for _, issue := range issues {
		switch issue.Severity {
		case models.SeverityError:
			return models.StatusIncompatible
		case models.SeverityWarning:
			status = models.StatusWarning
		}
	}
	return status
}

func renderSummary(status models.BuildStatus, issues []models.CompatibilityIssue) string {
	switch status {
	case models.StatusCompatible:
		return "All components appear to be compatible!"
	case models.StatusWarning:
		return fmt.Sprintf("Build is compatible but has %d warnings that should be reviewed.", countSeverity(issues, models.SeverityWarning))
	default:
		return fmt.Sprintf("Build has %d compatibility errors that must be resolved.", countSeverity(issues, models.SeverityError))
	}
}

func countSeverity(issues []models.CompatibilityIssue, severity models.Severity) int {
	n := 0
	for _, issue := range issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}

// GenerateCatalogReport runs the same pipeline over catalog part names
// instead of raw listings. Names missing from the catalog surface as error
// issues rather than failing the whole report; only a backing-store error
// aborts.
func (c *Checker) GenerateCatalogReport(ctx context.Context, source PartSource, parts map[string]string) (models.BuildReport, error) {
	build := make(map[string]*models.Listing, len(parts))
	missing := []models.CompatibilityIssue{}

	for key, name := range parts {
		if name == "" {
			continue
		}
		listing, err := source.Lookup(ctx, name)
		if err != nil {
			return models.BuildReport{}, fmt.Errorf("catalog lookup for %q: %w", name, err)
		}
		if listing == nil {
			missing = append(missing, models.CompatibilityIssue{
				Severity:   models.SeverityError,
				Component1: name,
				Component2: "catalog",
				Issue:      "Component not found in catalog",
				Suggestion: "Check the part name against the catalog",
				Category:   CategoryUnknownComponent,
			})
			continue
		}
		build[key] = listing
	}

	report := c.heuristicReport(build)
	if len(missing) > 0 {
		report.CompatibilityIssues = append(missing, report.CompatibilityIssues...)
		report.BuildStatus = statusFromIssues(report.CompatibilityIssues)
		report.Summary = renderSummary(report.BuildStatus, report.CompatibilityIssues)
	}
	return report, nil
}
