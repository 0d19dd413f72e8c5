package domain

import "time"

// FireRow is one row produced by the active-fires query, before response
// shaping. Centroid and suggested zoom are computed by the query itself so
// cached payloads carry them as-is.
type FireRow struct {
	GID              string     `json:"gid"`
	Name             *string    `json:"fire_name"`
	ModifiedAt       *time.Time `json:"modified_at"`
	IrwinID          string     `json:"irwin_id"`
	GlobalID         *string    `json:"globalid"`
	Acres            *float64   `json:"acres"`
	State            *string    `json:"state"`
	County           *string    `json:"county"`
	PercentContained *float64   `json:"percent_contained"`
	CenterLng        float64    `json:"center_lng"`
	CenterLat        float64    `json:"center_lat"`
	SuggestedZoom    int        `json:"suggested_zoom"`
}

// Coords is the marker position plus a suggested map zoom level.
type Coords struct {
	Lng  float64 `json:"lng"`
	Lat  float64 `json:"lat"`
	Zoom int     `json:"zoom"`
}

// Fire is the public shape of one active wildfire.
type Fire struct {
	ID           string     `json:"id"`
	Name         *string    `json:"name"`
	IrwinID      string     `json:"irwin_id"`
	Updated      *time.Time `json:"updated"`
	Acres        *int       `json:"acres"`
	State        *string    `json:"state"`
	County       *string    `json:"county"`
	ContainedPct *int       `json:"contained_pct"`
	MapURL       string     `json:"map_url"`
	Coords       Coords     `json:"coords"`
}

type Meta struct {
	GeneratedAt string `json:"generated_at"`
	Count       int    `json:"count"`
	Cached      bool   `json:"cached"`
	CacheTTL    int    `json:"cache_ttl"`
}

// FireList is the full response envelope.
type FireList struct {
	Meta  Meta   `json:"meta"`
	Fires []Fire `json:"fires"`
}
