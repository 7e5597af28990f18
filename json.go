package timeseries

import (
	"github.com/goccy/go-json"
)

type seriesJSON struct {
	Times  []float64 `json:"times"`
	Values []float64 `json:"values"`
}

// MarshalJSON encodes the series as parallel time and value arrays.
func (ts *TimeSeries) MarshalJSON() ([]byte, error) {
	return json.Marshal(seriesJSON{Times: ts.Times(), Values: ts.Values()})
}

// UnmarshalJSON decodes through New so payloads get constructor
// validation; a missing times array defaults to indices.
func (ts *TimeSeries) UnmarshalJSON(data []byte) error {
	var s seriesJSON
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	next, err := New(s.Values, s.Times)
	if err != nil {
		return err
	}
	*ts = *next
	return nil
}

// MarshalJSON encodes the series as parallel time and value arrays.
func (ats *ArrayTimeSeries) MarshalJSON() ([]byte, error) {
	return json.Marshal(seriesJSON{Times: ats.Times(), Values: ats.Values()})
}

// UnmarshalJSON decodes through NewArray so payloads get constructor
// validation.
func (ats *ArrayTimeSeries) UnmarshalJSON(data []byte) error {
	var s seriesJSON
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	next, err := NewArray(s.Times, s.Values)
	if err != nil {
		return err
	}
	*ats = *next
	return nil
}
