package ondilo

import (
	"context"
)

// UserInfo is the authenticated user's profile.
type UserInfo struct {
	Lastname  string `json:"lastname"`
	Firstname string `json:"firstname"`
	Email     string `json:"email"`
}

// UserUnits holds the user's measurement-unit preferences.
type UserUnits struct {
	Conductivity string `json:"conductivity,omitempty"`
	Hardness     string `json:"hardness,omitempty"`
	Orp          string `json:"orp,omitempty"`
	Pressure     string `json:"pressure,omitempty"`
	Salt         string `json:"salt,omitempty"`
	Speed        string `json:"speed,omitempty"`
	Temperature  string `json:"temperature,omitempty"`
	Volume       string `json:"volume,omitempty"`
}

// GetUserInfo returns the authenticated user's profile.
func (c *Client) GetUserInfo(ctx context.Context) (*UserInfo, error) {
	data, err := c.get(ctx, "/user/info")
	if err != nil {
		return nil, err
	}

	return unmarshalResponse[UserInfo](data, "user info")
}

// GetUserUnits returns the authenticated user's measurement-unit preferences.
func (c *Client) GetUserUnits(ctx context.Context) (*UserUnits, error) {
	data, err := c.get(ctx, "/user/units")
	if err != nil {
		return nil, err
	}

	return unmarshalResponse[UserUnits](data, "user units")
}
