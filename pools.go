package ondilo

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Pool represents a pool or spa registered on the Ondilo platform.
type Pool struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Type         string       `json:"type"` // e.g. "outdoor_inground_pool"
	Volume       float64      `json:"volume"`
	Disinfection Disinfection `json:"disinfection,omitempty"`
	Address      Address      `json:"address,omitempty"`
	UpdatedAt    string       `json:"updated_at,omitempty"`
}

// Disinfection describes the water treatment methods of a pool.
type Disinfection struct {
	Primary   string `json:"primary,omitempty"`
	Secondary struct {
		UVSanitizer bool `json:"uv_sanitizer"`
		Ozonator    bool `json:"ozonator"`
	} `json:"secondary,omitempty"`
}

// Address is the physical location of a pool.
type Address struct {
	Street    string  `json:"street,omitempty"`
	Zipcode   string  `json:"zipcode,omitempty"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// ICO represents the water-monitoring device attached to a pool.
type ICO struct {
	UUID         string `json:"uuid"`
	SerialNumber string `json:"serial_number"`
	SWVersion    string `json:"sw_version"`
}

// PoolConfiguration holds the acceptable ranges configured for a pool.
type PoolConfiguration struct {
	TemperatureLow  float64 `json:"temperature_low"`
	TemperatureHigh float64 `json:"temperature_high"`
	PhLow           float64 `json:"ph_low"`
	PhHigh          float64 `json:"ph_high"`
	OrpLow          float64 `json:"orp_low"`
	OrpHigh         float64 `json:"orp_high"`
	SaltLow         float64 `json:"salt_low"`
	SaltHigh        float64 `json:"salt_high"`
	TdsLow          float64 `json:"tds_low"`
	TdsHigh         float64 `json:"tds_high"`
}

// Share identifies a user with whom a pool is shared.
type Share struct {
	Lastname  string `json:"lastname"`
	Firstname string `json:"firstname"`
	Email     string `json:"email"`
}

// Recommendation is an actionable suggestion generated by the platform
// from sensor data, e.g. "add chlorine".
type Recommendation struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
	Status    string `json:"status,omitempty"` // "waiting" or "ok"
	Deadline  string `json:"deadline,omitempty"`
}

// poolPath builds the path prefix for a pool's sub-resources.
func poolPath(poolID int) string {
	return "/pools/" + strconv.Itoa(poolID)
}

// ListPools returns all pools and spas associated with the user.
func (c *Client) ListPools(ctx context.Context) ([]Pool, error) {
	data, err := c.get(ctx, "/pools")
	if err != nil {
		return nil, err
	}

	var pools []Pool
	if err := json.Unmarshal(data, &pools); err != nil {
		return nil, fmt.Errorf("failed to parse pool list: %w (body: %s)", err, truncatePreview(data))
	}

	return pools, nil
}

// GetICODetails returns the details of the ICO device attached to a pool.
func (c *Client) GetICODetails(ctx context.Context, poolID int) (*ICO, error) {
	if poolID <= 0 {
		return nil, ErrInvalidPoolID
	}

	data, err := c.get(ctx, poolPath(poolID)+"/device")
	if err != nil {
		return nil, err
	}

	return unmarshalResponse[ICO](data, "ICO details")
}

// GetRecommendations returns the pending recommendations for a pool.
func (c *Client) GetRecommendations(ctx context.Context, poolID int) ([]Recommendation, error) {
	if poolID <= 0 {
		return nil, ErrInvalidPoolID
	}

	data, err := c.get(ctx, poolPath(poolID)+"/recommendations")
	if err != nil {
		return nil, err
	}

	var recs []Recommendation
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations: %w (body: %s)", err, truncatePreview(data))
	}

	return recs, nil
}

// ValidateRecommendation acknowledges a recommendation as done.
func (c *Client) ValidateRecommendation(ctx context.Context, poolID, recommendationID int) error {
	if poolID <= 0 {
		return ErrInvalidPoolID
	}
	if recommendationID <= 0 {
		return ErrInvalidRecommendationID
	}

	// The API answers the bare string "Done"; only the status matters.
	_, err := c.put(ctx, poolPath(poolID)+"/recommendations/"+strconv.Itoa(recommendationID), nil)
	return err
}

// GetPoolConfiguration returns the acceptable ranges configured for a pool.
func (c *Client) GetPoolConfiguration(ctx context.Context, poolID int) (*PoolConfiguration, error) {
	if poolID <= 0 {
		return nil, ErrInvalidPoolID
	}

	data, err := c.get(ctx, poolPath(poolID)+"/configuration")
	if err != nil {
		return nil, err
	}

	return unmarshalResponse[PoolConfiguration](data, "pool configuration")
}

// GetPoolShares returns the users with whom a pool is shared.
func (c *Client) GetPoolShares(ctx context.Context, poolID int) ([]Share, error) {
	if poolID <= 0 {
		return nil, ErrInvalidPoolID
	}

	data, err := c.get(ctx, poolPath(poolID)+"/shares")
	if err != nil {
		return nil, err
	}

	var shares []Share
	if err := json.Unmarshal(data, &shares); err != nil {
		return nil, fmt.Errorf("failed to parse pool shares: %w (body: %s)", err, truncatePreview(data))
	}

	return shares, nil
}
