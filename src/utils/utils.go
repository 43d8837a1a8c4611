// backend/src/utils/utils.go
package utils

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// RoundFloat rounds val to the given number of decimal places.
func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// ParsePercent coerces feed values like "4.52%", " 0.34 ", "$1,000" or
// "N/A" into a float64. Anything unparseable, NaN or infinite comes back as
// 0 so a degenerate row never poisons the downstream math.
func ParsePercent(s string) float64 {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimSuffix(cleaned, "%")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimPrefix(cleaned, "$")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// SendJSONError writes a JSON error payload with the given HTTP status.
func SendJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
