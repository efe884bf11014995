package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCoords разбирает строку вида "13.7,-89.2" в пару (lat, lon)
func ParseCoords(coords string) (float64, float64, error) {
	parts := strings.Split(coords, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"lat,lon\", got %q", coords)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}

	if !ValidateCoordinates(lat, lon) {
		return 0, 0, fmt.Errorf("coordinates out of range: %f, %f", lat, lon)
	}

	return lat, lon, nil
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
