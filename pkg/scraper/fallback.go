package scraper

import (
	"fmt"
	"strings"

	"github.com/ByteBuilderAI/ByteBuilder-API/internal/models"
)

// FallbackListings returns curated listings for a query when live search is
// unavailable. The set is keyed off the same component keywords the engine
// classifies with, so downstream extraction still produces usable specs.
func FallbackListings(query string) []models.Listing {
	q := strings.ToLower(query)

	switch {
	case strings.Contains(q, "cpu") || strings.Contains(q, "processor"):
		return []models.Listing{
			{
				Title:   "Intel Core i7-13700K Processor",
				Price:   "$409.99",
				Snippet: "16-core (8P+8E) 24-thread processor with up to 5.4 GHz boost clock. LGA1700 socket, 125W TDP.",
				Rating:  "4.7",
			},
			{
				Title:   "AMD Ryzen 7 7700X Processor",
				Price:   "$349.99",
				Snippet: "8-core 16-thread processor with up to 5.4 GHz boost clock. AM5 socket, 105W TDP.",
				Rating:  "4.6",
			},
			{
				Title:   "Intel Core i5-13600K Processor",
				Price:   "$289.99",
				Snippet: "14-core (6P+8E) 20-thread processor with up to 5.1 GHz boost clock. LGA1700 socket.",
				Rating:  "4.8",
			},
		}
	case strings.Contains(q, "gpu") || strings.Contains(q, "graphics"):
		return []models.Listing{
			{
				Title:   "NVIDIA GeForce RTX 4070 Graphics Card",
				Price:   "$599.99",
				Snippet: "12GB GDDR6X VRAM, DLSS 3, Ray Tracing. 200W TDP, perfect for 1440p gaming.",
				Rating:  "4.5",
			},
			{
				Title:   "AMD Radeon RX 7800 XT Graphics Card",
				Price:   "$549.99",
				Snippet: "16GB GDDR6 VRAM, RDNA 3 architecture. 263W TDP, excellent 1440p performance.",
				Rating:  "4.4",
			},
			{
				Title:   "NVIDIA GeForce RTX 4080 Graphics Card",
				Price:   "$1199.99",
				Snippet: "16GB GDDR6X VRAM, flagship performance for 4K gaming with ray tracing. 320W TDP.",
				Rating:  "4.6",
			},
		}
	case strings.Contains(q, "ram") || strings.Contains(q, "memory"):
		return []models.Listing{
			{
				Title:   "Corsair Vengeance LPX 32GB DDR4-3200",
				Price:   "$179.99",
				Snippet: "32GB (2x16GB) DDR4-3200 CL16 memory kit. Low profile design for better compatibility.",
				Rating:  "4.5",
			},
			{
				Title:   "G.Skill Trident Z5 32GB DDR5-5600",
				Price:   "$239.99",
				Snippet: "32GB (2x16GB) DDR5-5600 CL36. Premium RGB lighting with excellent performance.",
				Rating:  "4.7",
			},
		}
	case strings.Contains(q, "storage") || strings.Contains(q, "ssd") || strings.Contains(q, "drive"):
		return []models.Listing{
			{
				Title:   "Samsung 980 PRO 1TB NVMe SSD",
				Price:   "$129.99",
				Snippet: "1TB PCIe 4.0 NVMe SSD with 7000 MB/s read speeds. Premium performance storage.",
				Rating:  "4.8",
			},
			{
				Title:   "Western Digital Black SN850X 2TB NVMe SSD",
				Price:   "$199.99",
				Snippet: "2TB PCIe 4.0 gaming SSD with heatsink. Optimized for gaming and content creation.",
				Rating:  "4.6",
			},
		}
	case strings.Contains(q, "motherboard"):
		return []models.Listing{
			{
				Title:   "ASUS ROG STRIX Z790-E GAMING WiFi Motherboard",
				Price:   "$449.99",
				Snippet: "Premium Z790 motherboard with WiFi 6E, LGA1700 socket, DDR5 support, up to 128GB, ATX.",
				Rating:  "4.7",
			},
			{
				Title:   "MSI MAG B650 TOMAHAWK WiFi Motherboard",
				Price:   "$229.99",
				Snippet: "B650 motherboard for AMD Ryzen 7000 series. AM5 socket, DDR5, up to 128GB, ATX.",
				Rating:  "4.5",
			},
		}
	case strings.Contains(q, "psu") || strings.Contains(q, "power"):
		return []models.Listing{
			{
				Title:   "Corsair RM850x 850W 80+ Gold Power Supply",
				Price:   "$149.99",
				Snippet: "850W 80+ Gold modular PSU with 10-year warranty and silent operation.",
				Rating:  "4.8",
			},
			{
				Title:   "EVGA SuperNOVA 750 GT 750W Power Supply",
				Price:   "$119.99",
				Snippet: "750W 80+ Gold PSU with excellent efficiency and reliable performance.",
				Rating:  "4.5",
			},
		}
	case strings.Contains(q, "case"):
		return []models.Listing{
			{
				Title:   "Fractal Design Define 7 Compact Case",
				Price:   "$169.99",
				Snippet: "Premium silent mid tower ATX case with excellent build quality and cable management.",
				Rating:  "4.8",
			},
			{
				Title:   "NZXT H7 Flow Case",
				Price:   "$129.99",
				Snippet: "High airflow mid tower ATX case with excellent cooling performance.",
				Rating:  "4.6",
			},
		}
	case strings.Contains(q, "cool") || strings.Contains(q, "fan"):
		return []models.Listing{
			{
				Title:   "Noctua NH-D15 CPU Air Cooler",
				Price:   "$109.99",
				Snippet: "Premium dual-tower air cooler with exceptional cooling performance and silence.",
				Rating:  "4.9",
			},
			{
				Title:   "Corsair H100i RGB PLATINUM SE Liquid Cooler",
				Price:   "$159.99",
				Snippet: "240mm AIO liquid cooler with RGB lighting and excellent cooling performance.",
				Rating:  "4.4",
			},
		}
	}

	return []models.Listing{
		{
			Title:   fmt.Sprintf("Premium %s Component", strings.TrimSpace(query)),
			Price:   "$299.99",
			Snippet: fmt.Sprintf("High-quality %s component with excellent performance and reliability.", query),
			Rating:  "4.5",
		},
	}
}
