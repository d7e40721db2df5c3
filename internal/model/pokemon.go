// Package model defines the decoded party data types.
package model

// Pokemon is one decoded party member, ready for display.
type Pokemon struct {
	Nickname    string   `json:"nickname"`
	Species     string   `json:"species"`
	Level       uint8    `json:"level"`
	Item        string   `json:"item,omitempty"` // empty when nothing is held
	Nature      string   `json:"nature"`
	Ability     string   `json:"ability"`
	Moves       []string `json:"moves"`
	DisplayText string   `json:"display_text"`
}

// Natures lists the 25 nature names in encoding order. A Pokemon's nature
// is Natures[personality % 25]; the game derives it the same way, so the
// ordering here must not change.
var Natures = [25]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}
