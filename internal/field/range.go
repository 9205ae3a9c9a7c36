package field

import (
	"encoding/json"
	"fmt"
)

// RangeValue is a submitted [min, max] pair. Either bound may be absent.
type RangeValue struct {
	Min *string
	Max *string
}

// NewRange builds a RangeValue, treating empty strings as absent bounds.
func NewRange(lower, upper string) RangeValue {
	var r RangeValue
	if lower != "" {
		r.Min = &lower
	}
	if upper != "" {
		r.Max = &upper
	}
	return r
}

func (r RangeValue) IsEmpty() bool {
	return r.Min == nil && r.Max == nil
}

func (r RangeValue) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]*string{r.Min, r.Max})
}

func (r *RangeValue) UnmarshalJSON(data []byte) error {
	var bounds []*string
	if err := json.Unmarshal(data, &bounds); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	if len(bounds) > 2 {
		return fmt.Errorf("%w: expected 2 bounds, got %d", ErrInvalidRange, len(bounds))
	}

	*r = RangeValue{}
	for i, b := range bounds {
		if b == nil || *b == "" {
			continue
		}
		if i == 0 {
			r.Min = b
		} else {
			r.Max = b
		}
	}
	return nil
}
