package geocode

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"ruchi/internal/domain/districts"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://nominatim.openstreetmap.org"
	DefaultTimeout = 10 * time.Second
	userAgent      = "RuchiSpots/1.0"
)

var ErrInvalidCoordinates = errors.New("latitude must be within ±90 and longitude within ±180")

// Address holds the address components of a reverse lookup that can name a
// district.
type Address struct {
	StateDistrict string `json:"state_district"`
	County        string `json:"county"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	Suburb        string `json:"suburb"`
	State         string `json:"state"`
}

// Candidates lists the fields in the order they are tried for district
// resolution.
func (a Address) Candidates() []string {
	return []string{a.StateDistrict, a.County, a.City, a.Town, a.Village, a.Suburb}
}

type reverseResponse struct {
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
	Error       string  `json:"error"`
}

type Place struct {
	DisplayName string  `json:"displayName"`
	Address     Address `json:"address"`
}

// Resolution is the outcome of locating a point. District is empty when
// none of the candidates matched.
type Resolution struct {
	Place    Place  `json:"place"`
	District string `json:"district,omitempty"`
}

type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept-Language", "en").
		SetHeader("User-Agent", userAgent)

	return &Client{http: c}
}

// Reverse looks up the address at a point. It makes exactly one attempt.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (*Place, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, ErrInvalidCoordinates
	}

	var out reverseResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "json",
			"lat":    strconv.FormatFloat(lat, 'f', -1, 64),
			"lon":    strconv.FormatFloat(lng, 'f', -1, 64),
			"zoom":   "10",
		}).
		SetResult(&out).
		Get("/reverse")
	if err != nil {
		return nil, fmt.Errorf("reverse geocode: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("reverse geocode: unexpected status %s", resp.Status())
	}
	if out.Error != "" {
		return nil, fmt.Errorf("reverse geocode: %s", out.Error)
	}

	return &Place{DisplayName: out.DisplayName, Address: out.Address}, nil
}

// Locate reverse geocodes a point and resolves its district. An unmatched
// address is not an error; the caller decides how to ask for a district.
func (c *Client) Locate(ctx context.Context, lat, lng float64) (*Resolution, error) {
	place, err := c.Reverse(ctx, lat, lng)
	if err != nil {
		return nil, err
	}

	res := &Resolution{Place: *place}
	if d, err := districts.Resolve(place.Address.Candidates()...); err == nil {
		res.District = d
	}
	return res, nil
}
