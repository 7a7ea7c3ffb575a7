package util

// Waste categories accepted on pickup requests
const (
	WasteOrganic    = "organic"
	WasteRecyclable = "recyclable"
	WasteHazardous  = "hazardous"
	WasteEWaste     = "e-waste"
	WasteGeneral    = "general"
)

// IsSupportedWasteType returns true if the waste type is supported
func IsSupportedWasteType(wasteType string) bool {
	switch wasteType {
	case WasteOrganic, WasteRecyclable, WasteHazardous, WasteEWaste, WasteGeneral:
		return true
	}
	return false
}
