package ondilo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// MeasureType identifies a sensor reading kind reported by the ICO.
type MeasureType string

// Measure types accepted by the last-measures and history endpoints.
const (
	MeasureTemperature MeasureType = "temperature"
	MeasurePH          MeasureType = "ph"
	MeasureORP         MeasureType = "orp"
	MeasureSalt        MeasureType = "salt"
	MeasureBattery     MeasureType = "battery"
	MeasureTDS         MeasureType = "tds"
	MeasureRSSI        MeasureType = "rssi"
)

// AllMeasureTypes returns every measure type the API reports.
func AllMeasureTypes() []MeasureType {
	return []MeasureType{
		MeasureTemperature,
		MeasurePH,
		MeasureORP,
		MeasureSalt,
		MeasureBattery,
		MeasureTDS,
		MeasureRSSI,
	}
}

// Period is the time range of a measure history query.
type Period string

// Periods accepted by the history endpoint.
const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Measure is a single sensor reading.
type Measure struct {
	DataType        MeasureType `json:"data_type"`
	Value           float64     `json:"value"`
	ValueTime       string      `json:"value_time"`
	IsValid         bool        `json:"is_valid"`
	ExclusionReason string      `json:"exclusion_reason,omitempty"`
}

// GetLastMeasures returns the most recent sensor readings for a pool.
// With no types given it requests every measure type the API reports.
func (c *Client) GetLastMeasures(ctx context.Context, poolID int, types ...MeasureType) ([]Measure, error) {
	if poolID <= 0 {
		return nil, ErrInvalidPoolID
	}
	if len(types) == 0 {
		types = AllMeasureTypes()
	}

	params := url.Values{}
	for _, t := range types {
		if t == "" {
			return nil, ErrEmptyMeasureType
		}
		params.Add("types[]", string(t))
	}

	data, err := c.get(ctx, poolPath(poolID)+"/lastmeasures?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var measures []Measure
	if err := json.Unmarshal(data, &measures); err != nil {
		return nil, fmt.Errorf("failed to parse last measures: %w (body: %s)", err, truncatePreview(data))
	}

	return measures, nil
}

// GetMeasureHistory returns the historical series of one measure type
// over the given period.
func (c *Client) GetMeasureHistory(ctx context.Context, poolID int, measure MeasureType, period Period) ([]Measure, error) {
	if poolID <= 0 {
		return nil, ErrInvalidPoolID
	}
	if measure == "" {
		return nil, ErrEmptyMeasureType
	}
	if period == "" {
		return nil, ErrEmptyPeriod
	}

	params := url.Values{}
	params.Set("type", string(measure))
	params.Set("period", string(period))

	data, err := c.get(ctx, poolPath(poolID)+"/measures?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var measures []Measure
	if err := json.Unmarshal(data, &measures); err != nil {
		return nil, fmt.Errorf("failed to parse measure history: %w (body: %s)", err, truncatePreview(data))
	}

	return measures, nil
}
