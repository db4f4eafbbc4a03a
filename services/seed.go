// services/seed.go
package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// DefaultCatalog is the catalog a fresh installation starts with.
var DefaultCatalog = []ServiceInput{
	{
		Name:        "Logo & Branding",
		Description: "Professional logo design and complete brand identity packages",
		Icon:        "🎨",
		Price:       decimal.NewFromInt(299),
		Features:    []string{"Custom Logo Design", "Brand Guidelines", "Color Palette", "Typography Selection"},
	},
	{
		Name:        "Presentation Slides",
		Description: "Engaging presentation decks that captivate your audience",
		Icon:        "📊",
		Price:       decimal.NewFromInt(149),
		Features:    []string{"Custom Templates", "Data Visualization", "Professional Design", "Unlimited Revisions"},
	},
	{
		Name:        "CV Form",
		Description: "Modern, ATS-friendly CV designs that get you noticed",
		Icon:        "📄",
		Price:       decimal.NewFromInt(49),
		Features:    []string{"ATS Optimization", "Modern Layouts", "Professional Formatting", "2 Revisions"},
	},
	{
		Name:        "AI Character",
		Description: "Unique AI-generated characters for your brand or project",
		Icon:        "🤖",
		Price:       decimal.NewFromInt(79),
		Features:    []string{"Custom AI Art", "Multiple Variations", "High Resolution", "Commercial Rights"},
	},
	{
		Name:        "AI Video Ads",
		Description: "Cutting-edge AI-powered video advertisements",
		Icon:        "🎬",
		Price:       decimal.NewFromInt(399),
		Features:    []string{"AI Video Generation", "Script Writing", "Voiceover", "Music & SFX"},
	},
}

// SeedCatalog creates the default services when the catalog is empty. It
// reports whether anything was created.
func SeedCatalog(ctx context.Context, store ServiceRepository, admin *CatalogAdmin) (bool, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	for _, in := range DefaultCatalog {
		if _, err := admin.Create(ctx, in); err != nil {
			return false, err
		}
	}
	return true, nil
}
