package chat

import (
	"strings"
	"time"
)

// Feature is a single named spec attribute returned by the engine
// (e.g. {"name": "ram", "value": "16GB"}).
type Feature struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// Recommendation is one laptop suggestion returned by the recommendation engine.
type Recommendation struct {
	ModelID  string    `json:"model_id,omitempty"`
	Brand    string    `json:"brand"`
	Name     string    `json:"name"`
	Specs    string    `json:"specs,omitempty"`
	Price    string    `json:"price,omitempty"`
	Features []Feature `json:"features,omitempty"`
}

// Key returns the stable identity of a recommendation. When the engine did not
// supply a model id, a deterministic brand-name key is synthesized so that
// identical brand+name pairs always collapse to the same identity.
func (r Recommendation) Key() string {
	if r.ModelID != "" {
		return r.ModelID
	}
	brand := strings.Join(strings.Fields(strings.ToLower(r.Brand)), "-")
	name := strings.Join(strings.Fields(strings.ToLower(r.Name)), "-")
	return brand + "-" + name
}

// TimestampedRecommendation is a Recommendation stamped with the moment it was
// received, as kept in the cumulative log.
type TimestampedRecommendation struct {
	Recommendation
	Timestamp time.Time `json:"timestamp"`
}
