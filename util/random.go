package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// RandomFloat generates a random float between min and max
func RandomFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomName generates a random person name
func RandomName() string {
	return RandomString(6)
}

// RandomEmail generates a random email address
func RandomEmail() string {
	return fmt.Sprintf("%s@email.com", RandomString(8))
}

// RandomPhone generates a random 10-digit phone number
func RandomPhone() string {
	return fmt.Sprintf("9%09d", RandomInt(0, 999999999))
}

// RandomLongitude generates a valid longitude
func RandomLongitude() float64 {
	return RandomFloat(-180, 180)
}

// RandomLatitude generates a valid latitude
func RandomLatitude() float64 {
	return RandomFloat(-90, 90)
}

// RandomWasteType picks one of the supported waste categories
func RandomWasteType() string {
	types := []string{"organic", "recyclable", "hazardous", "e-waste", "general"}
	return types[rand.Intn(len(types))]
}

// RandomPickupStatus picks one of the pickup lifecycle statuses
func RandomPickupStatus() string {
	statuses := []string{"pending", "assigned", "in_progress", "completed"}
	return statuses[rand.Intn(len(statuses))]
}
