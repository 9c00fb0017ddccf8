// Package categories exposes the fixed list of craft categories creators tag
// themselves and their posts with.
package categories

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Category is one craft category.
type Category struct {
	Name        string `json:"name"        doc:"Category name"        example:"Mehendi Art"`
	Description string `json:"description" doc:"Short description"    example:"Beautiful henna designs for all occasions"`
}

// ListData is the response body containing all categories.
type ListData struct {
	Categories []Category `json:"categories" doc:"All craft categories"`
	Total      int        `json:"total"      doc:"Total categories"     example:"12"`
}

// ListOutput for GET /categories
type ListOutput struct {
	Body ListData
}

// ListInput for GET /categories (no parameters needed)
type ListInput struct{}

var all = []Category{
	{Name: "Fashion Design", Description: "Custom clothing, alterations, and unique fashion pieces"},
	{Name: "Home Baking", Description: "Freshly baked cakes, cookies, breads, and pastries"},
	{Name: "Jewelry Making", Description: "Handcrafted jewelry, imitation and custom designs"},
	{Name: "Embroidery", Description: "Traditional and modern embroidery work"},
	{Name: "Candle Making", Description: "Decorative and scented handmade candles"},
	{Name: "Pottery", Description: "Handcrafted ceramic items and pottery art"},
	{Name: "Crochet & Knitting", Description: "Hand-knitted and crocheted items"},
	{Name: "Mehendi Art", Description: "Beautiful henna designs for all occasions"},
	{Name: "Custom Cakes", Description: "Designer cakes for special celebrations"},
	{Name: "Photography", Description: "Professional photography services"},
	{Name: "Painting", Description: "Original artworks and custom paintings"},
	{Name: "Calligraphy", Description: "Beautiful hand-lettering and calligraphy art"},
}

// names returns the category names in display order.
func names() []string {
	out := make([]string, 0, len(all))
	for _, c := range all {
		out = append(out, c.Name)
	}
	return out
}

// Register wires the category route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List craft categories",
		Description: "Returns the fixed set of categories in display order.",
		Tags:        []string{"Categories"},
	}, func(_ context.Context, _ *ListInput) (*ListOutput, error) {
		return &ListOutput{
			Body: ListData{Categories: all, Total: len(all)},
		}, nil
	})
}
