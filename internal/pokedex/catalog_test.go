package pokedex

import "testing"

func newTestCatalog() *Catalog {
	species := "Bulbasaur\nIvysaur\nVenusaur\n"
	moves := "Pound\nKarate Chop\n"
	items := "Master Ball\nUltra Ball\n"
	abilities := "species,primary,secondary,hidden\n" +
		"Bulbasaur,Overgrow,Overgrow,Chlorophyll\n" +
		"broken row\n" +
		"Venusaur,Overgrow,Overgrow,Chlorophyll\n"
	return New(species, moves, items, abilities)
}

func TestLookupsAreOneIndexed(t *testing.T) {
	c := newTestCatalog()

	if got := c.SpeciesName(1); got != "Bulbasaur" {
		t.Errorf("SpeciesName(1) = %q, want Bulbasaur", got)
	}
	if got := c.SpeciesName(3); got != "Venusaur" {
		t.Errorf("SpeciesName(3) = %q, want Venusaur", got)
	}
	if got := c.MoveName(2); got != "Karate Chop" {
		t.Errorf("MoveName(2) = %q, want Karate Chop", got)
	}
	if got := c.ItemName(1); got != "Master Ball" {
		t.Errorf("ItemName(1) = %q, want Master Ball", got)
	}
}

func TestUnknownIDsResolveToPlaceholder(t *testing.T) {
	c := newTestCatalog()

	if got := c.SpeciesName(9999); got != Placeholder {
		t.Errorf("SpeciesName(9999) = %q, want %q", got, Placeholder)
	}
	if got := c.MoveName(500); got != Placeholder {
		t.Errorf("MoveName(500) = %q, want %q", got, Placeholder)
	}
	if got := c.ItemName(500); got != Placeholder {
		t.Errorf("ItemName(500) = %q, want %q", got, Placeholder)
	}
}

func TestAbilityName(t *testing.T) {
	c := newTestCatalog()

	tests := []struct {
		name    string
		species string
		slot    int
		want    string
	}{
		{"primary", "Bulbasaur", AbilityPrimary, "Overgrow"},
		{"secondary", "Bulbasaur", AbilitySecondary, "Overgrow"},
		{"hidden", "Bulbasaur", AbilityHidden, "Chlorophyll"},
		{"case-insensitive", "bulbaSAUR", AbilityHidden, "Chlorophyll"},
		{"unknown species", "Missingno", AbilityPrimary, Placeholder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.AbilityName(tt.species, tt.slot); got != tt.want {
				t.Errorf("AbilityName(%q, %d) = %q, want %q", tt.species, tt.slot, got, tt.want)
			}
		})
	}
}

func TestMalformedAbilityRowsAreSkipped(t *testing.T) {
	c := newTestCatalog()

	// The "broken row" line must not poison the rows around it.
	if got := c.AbilityName("Venusaur", AbilityPrimary); got != "Overgrow" {
		t.Errorf("AbilityName(Venusaur) = %q, want Overgrow", got)
	}
	if got := c.AbilityName("broken row", AbilityPrimary); got != Placeholder {
		t.Errorf("AbilityName(broken row) = %q, want %q", got, Placeholder)
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if c != Default() {
		t.Fatal("Default() should return the same instance")
	}

	// Spot-check the embedded reference data.
	if got := c.SpeciesName(1); got != "Bulbasaur" {
		t.Errorf("SpeciesName(1) = %q, want Bulbasaur", got)
	}
	if got := c.SpeciesName(73); got != "Tentacruel" {
		t.Errorf("SpeciesName(73) = %q, want Tentacruel", got)
	}
	if got := c.MoveName(1); got != "Pound" {
		t.Errorf("MoveName(1) = %q, want Pound", got)
	}
	if got := c.ItemName(139); got != "Oran Berry" {
		t.Errorf("ItemName(139) = %q, want Oran Berry", got)
	}
	if got := c.AbilityName("Tentacruel", AbilitySecondary); got != "Liquid Ooze" {
		t.Errorf("AbilityName(Tentacruel, secondary) = %q, want Liquid Ooze", got)
	}
}
