/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

// Package catalog holds the roll-off dumpster size reference data served on
// the pricing pages.
package catalog

// DumpsterSize describes one rentable container size.
type DumpsterSize struct {
	Size       int      `json:"size"`
	Name       string   `json:"name"`
	Slug       string   `json:"slug"`
	Dimensions string   `json:"dimensions"`
	Capacity   string   `json:"capacity"`
	BasePrice  int      `json:"basePrice"`
	IdealFor   []string `json:"idealFor"`
}

var sizes = []DumpsterSize{
	{
		Size:       10,
		Name:       "10 Yard Dumpster",
		Slug:       "10-yard-dumpster",
		Dimensions: "12' L x 8' W x 3.5' H",
		Capacity:   "Holds 3-4 pickup truck loads",
		BasePrice:  350,
		IdealFor:   []string{"Garage cleanouts", "Small roofing jobs", "Yard waste removal", "Basement cleanup"},
	},
	{
		Size:       20,
		Name:       "20 Yard Dumpster",
		Slug:       "20-yard-dumpster",
		Dimensions: "22' L x 8' W x 4' H",
		Capacity:   "Holds 6-8 pickup truck loads",
		BasePrice:  450,
		IdealFor:   []string{"Whole-home cleanouts", "Medium construction", "Large roofing projects", "Kitchen/bath remodeling"},
	},
	{
		Size:       30,
		Name:       "30 Yard Dumpster",
		Slug:       "30-yard-dumpster",
		Dimensions: "22' L x 8' W x 6' H",
		Capacity:   "Holds 9-12 pickup truck loads",
		BasePrice:  550,
		IdealFor:   []string{"New construction", "Major demolition", "Commercial cleanouts", "Large remodels"},
	},
	{
		Size:       40,
		Name:       "40 Yard Dumpster",
		Slug:       "40-yard-dumpster",
		Dimensions: "22' L x 8' W x 8' H",
		Capacity:   "Holds 12-16 pickup truck loads",
		BasePrice:  650,
		IdealFor:   []string{"Large construction sites", "Commercial projects", "Industrial cleanouts"},
	},
}

// Sizes returns all rentable dumpster sizes, smallest first.
func Sizes() []DumpsterSize {
	return sizes
}

// BySlug returns the size with the given slug.
func BySlug(slug string) (DumpsterSize, bool) {
	for _, s := range sizes {
		if s.Slug == slug {
			return s, true
		}
	}
	return DumpsterSize{}, false
}
