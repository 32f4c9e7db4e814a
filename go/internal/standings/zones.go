package standings

import (
	"encoding/json"
	"fmt"
)

// ZoneSize is the number of rows in both the qualification and the relegation band.
const ZoneSize = 3

// Zone is the classification band of a table row.
type Zone int

const (
	ZoneNeutral Zone = iota
	ZoneQualification
	ZoneRelegation
)

func (z Zone) String() string {
	switch z {
	case ZoneQualification:
		return "qualification"
	case ZoneRelegation:
		return "relegation"
	case ZoneNeutral:
		return "neutral"
	default:
		return fmt.Sprintf("Zone(%d)", int(z))
	}
}

// MarshalJSON encodes the zone by name.
func (z Zone) MarshalJSON() ([]byte, error) {
	return json.Marshal(z.String())
}

// ClassifyZone returns the zone of the row at the 0-based index in a table of
// n rows. The qualification check runs first, so on short tables where the
// two bands overlap the top rows stay in qualification.
func ClassifyZone(index, n int) Zone {
	if index < ZoneSize {
		return ZoneQualification
	}
	if index >= n-ZoneSize {
		return ZoneRelegation
	}
	return ZoneNeutral
}
