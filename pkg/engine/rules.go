package engine

import (
	"fmt"

	"github.com/ByteBuilderAI/ByteBuilder-API/internal/models"
)

// Issue categories surfaced on compatibility issues.
const (
	CategorySocket           = "socket_compatibility"
	CategoryMemory           = "memory_compatibility"
	CategoryMemoryCapacity   = "memory_capacity"
	CategoryInsufficientData = "insufficient_data"
	CategoryUnknownComponent = "unknown_component"
)

// CheckSocket evaluates the CPU-to-motherboard socket rule. Equality is only
// judged when both sockets were extracted; if either is missing the result is
// an insufficient-data warning, never a mismatch error.
func CheckSocket(cpu, mb models.ComponentSpec) []models.CompatibilityIssue {
	if cpu.Socket != "" && mb.Socket != "" {
		if cpu.Socket != mb.Socket {
			return []models.CompatibilityIssue{{
				Severity:   models.SeverityError,
				Component1: cpu.Name,
				Component2: mb.Name,
				Issue:      fmt.Sprintf("Socket mismatch: CPU requires %s, Motherboard has %s", cpu.Socket, mb.Socket),
				Suggestion: fmt.Sprintf("Choose a CPU with %s socket or a motherboard with %s socket", mb.Socket, cpu.Socket),
				Category:   CategorySocket,
			}}
		}
		return nil
	}

	return []models.CompatibilityIssue{{
		Severity:   models.SeverityWarning,
		Component1: cpu.Name,
		Component2: mb.Name,
		Issue:      "Unable to verify socket compatibility - insufficient specification data",
		Suggestion: "Manually verify CPU and motherboard socket compatibility",
		Category:   CategoryInsufficientData,
	}}
}

// CheckMemory evaluates the RAM-to-motherboard rules: memory-type match and
// capacity limit. The two rules fire independently, so a build can receive
// both a type error and a capacity warning from one evaluation.
func CheckMemory(ram, mb models.ComponentSpec) []models.CompatibilityIssue {
	var issues []models.CompatibilityIssue

	if ram.MemoryType != "" && mb.MemoryType != "" {
		if ram.MemoryType != mb.MemoryType {
			issues = append(issues, models.CompatibilityIssue{
				Severity:   models.SeverityError,
				Component1: ram.Name,
				Component2: mb.Name,
				Issue:      fmt.Sprintf("Memory type mismatch: RAM is %s, Motherboard supports %s", ram.MemoryType, mb.MemoryType),
				Suggestion: fmt.Sprintf("Choose %s RAM or a motherboard that supports %s", mb.MemoryType, ram.MemoryType),
				Category:   CategoryMemory,
			})
		}
	} else {
		issues = append(issues, models.CompatibilityIssue{
			Severity:   models.SeverityInfo,
			Component1: ram.Name,
			Component2: mb.Name,
			Issue:      "Unable to verify memory type compatibility",
			Suggestion: "Ensure RAM and motherboard memory types match (DDR4/DDR5)",
			Category:   CategoryInsufficientData,
		})
	}

	ramCapacity := ram.MaxMemoryGB()
	mbLimit := mb.MaxMemoryGB()
	if ramCapacity > 0 && mbLimit > 0 && ramCapacity > mbLimit {
		issues = append(issues, models.CompatibilityIssue{
			Severity:   models.SeverityWarning,
			Component1: ram.Name,
			Component2: mb.Name,
			Issue:      fmt.Sprintf("RAM capacity (%dGB) exceeds motherboard limit (%dGB)", ramCapacity, mbLimit),
			Suggestion: fmt.Sprintf("Consider RAM with total capacity of %dGB or less", mbLimit),
			Category:   CategoryMemoryCapacity,
		})
	}

	return issues
}
