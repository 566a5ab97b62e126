package services

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"

	"gatortrips/internal/models/db_models"
)

const earthRadiusKm = 6371.0

// DistanceKm is the haversine great-circle distance between two points.
// It is a coarse feasibility gate only; leg durations come from the
// routing provider.
func DistanceKm(a, b db_models.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

var (
	secondsSuffixRe = regexp.MustCompile(`^(\d+)s$`)
	isoDurationRe   = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)
)

// DurationMinutes normalizes a provider duration into whole minutes. It
// accepts a plain number of seconds, a "<seconds>s" string, an ISO-8601
// style "PT[n]H[n]M" string, or an object carrying a seconds field. Any
// other shape yields 0: travel time is advisory and a missing estimate
// must not block scheduling.
func DurationMinutes(raw interface{}) int {
	switch v := raw.(type) {
	case nil:
		return 0
	case int:
		return minutesFromSeconds(float64(v))
	case int64:
		return minutesFromSeconds(float64(v))
	case float64:
		return minutesFromSeconds(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return minutesFromSeconds(f)
	case string:
		return minutesFromString(v)
	case json.RawMessage:
		var decoded interface{}
		if err := json.Unmarshal(v, &decoded); err != nil {
			return 0
		}
		return DurationMinutes(decoded)
	case map[string]interface{}:
		if sec, ok := v["seconds"]; ok {
			return DurationMinutes(sec)
		}
		return 0
	default:
		return 0
	}
}

func minutesFromString(s string) int {
	if m := secondsSuffixRe.FindStringSubmatch(s); m != nil {
		sec, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0
		}
		return minutesFromSeconds(sec)
	}
	if m := isoDurationRe.FindStringSubmatch(s); m != nil && s != "PT" {
		hours, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		return hours*60 + mins
	}
	return 0
}

func minutesFromSeconds(sec float64) int {
	if sec <= 0 || math.IsNaN(sec) || math.IsInf(sec, 0) {
		return 0
	}
	return int(math.Round(sec / 60))
}
