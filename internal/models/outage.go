package models

// Outage is an entry of the outage feed for an area.
type Outage struct {
	ID      int    `json:"id"`
	Area    string `json:"area"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
