package models

// GenerateOutfitRequest represents the request body for outfit generation
type GenerateOutfitRequest struct {
	Temperature *int     `json:"temperature"`
	Style       string   `json:"style"`
	Season      string   `json:"season"`
	Color       string   `json:"color"`
	MustHave    []string `json:"mustHave"`
	Occasion    string   `json:"occasion"` // Accepted for form compatibility, not used for selection
}

// OutfitSlotView represents a single rendered slot
type OutfitSlotView struct {
	Slot  string `json:"slot"`
	Label string `json:"label"`
	Item  *Item  `json:"item"`
}

// GenerateOutfitResponse represents the response after generating an outfit
type GenerateOutfitResponse struct {
	Slots    []OutfitSlotView `json:"slots"` // LAYER, TOP, BOTTOM, SHOES
	Extras   []OutfitSlotView `json:"extras"`
	Warnings []string         `json:"warnings"`
	Score    int              `json:"score"`
	Attempts int              `json:"attempts"`
}

// OptionsResponse represents the selectable values for the input form
type OptionsResponse struct {
	Styles  []string `json:"styles"`  // Prefixed with "any"
	Seasons []string `json:"seasons"` // Prefixed with "any"
	Colors  []string `json:"colors"`  // Prefixed with "any"
	Names   []string `json:"names"`
}

// ErrorResponse represents an error payload
type ErrorResponse struct {
	Error string `json:"error"`
}
