package entity

// ConfigKeyInfo documents one configuration key.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "drawer.gravity_magnitude". A
	// "<direction>" segment stands for any direction name in Values.
	Key string `json:"key"`

	Type    string `json:"type"`
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists accepted names for enum keys and direction segments.
	Values []string `json:"values,omitempty"`

	// Range describes numeric constraints such as "0-1" or ">0".
	Range string `json:"range,omitempty"`

	Section string `json:"section"`
}
