package checkout

import "dora-eats/internal/models"

// Options holds the externally configured enumerations consulted by the
// pickup rules.
type Options struct {
	PickupLocations []models.Choice
	PickupTimeSlots []models.Choice
}

// DefaultOptions returns the storefront's stock pickup points and windows.
func DefaultOptions() Options {
	return Options{
		PickupLocations: []models.Choice{
			{ID: "dora_bell_cafe", Label: "Doraemon's Bell Cafe - Downtown"},
			{ID: "anywhere_door_point", Label: "Anywhere Door Pickup Point - Suburbia"},
			{ID: "nobitas_house_eats", Label: "Nobita's House Eats - Residential Area"},
		},
		PickupTimeSlots: []models.Choice{
			{ID: "12:00", Label: "12:00 PM - 12:30 PM"},
			{ID: "13:00", Label: "1:00 PM - 1:30 PM"},
			{ID: "18:00", Label: "6:00 PM - 6:30 PM"},
			{ID: "19:00", Label: "7:00 PM - 7:30 PM"},
		},
	}
}

func idSet(choices []models.Choice) map[string]struct{} {
	out := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		out[c.ID] = struct{}{}
	}
	return out
}
