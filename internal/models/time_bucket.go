package models

// TimeBucket is one point of the sampled time series. Each channel holds the
// rounded mean of the values folded since the previous flush, or 0 when none were.
type TimeBucket struct {
	Label   string  `json:"time"`
	Battery float64 `json:"battery"`
	RPM     float64 `json:"rpm"`
	Speed   float64 `json:"speed"`
	Load    float64 `json:"load"`
}
