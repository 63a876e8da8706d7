package schema

// Location is a geographic point, optionally annotated with the
// administrative areas it resolves into.
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	District  string  `json:"district,omitempty" bson:"district,omitempty"`
	State     string  `json:"state,omitempty" bson:"state,omitempty"`
	Country   string  `json:"country,omitempty" bson:"country,omitempty"`
	Address   string  `json:"address,omitempty" bson:"address,omitempty"`
}
