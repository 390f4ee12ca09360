package forecast

import (
	"encoding/json"
	"strings"
)

// Condition is the weather condition of a forecast point. It is an
// explicit variant type: strings a data source emits parse into a known
// variant or ConditionUnknown, which remains representable and renderable
// rather than a silent fallback.
type Condition int

const (
	ConditionUnknown Condition = iota
	ClearNight
	Cloudy
	Fog
	Hail
	Lightning
	LightningRainy
	PartlyCloudy
	Pouring
	Rainy
	Snowy
	SnowyRainy
	Sunny
	Windy
	WindyVariant
	Exceptional
)

var conditionNames = map[Condition]string{
	ClearNight:     "clear-night",
	Cloudy:         "cloudy",
	Fog:            "fog",
	Hail:           "hail",
	Lightning:      "lightning",
	LightningRainy: "lightning-rainy",
	PartlyCloudy:   "partlycloudy",
	Pouring:        "pouring",
	Rainy:          "rainy",
	Snowy:          "snowy",
	SnowyRainy:     "snowy-rainy",
	Sunny:          "sunny",
	Windy:          "windy",
	WindyVariant:   "windy-variant",
	Exceptional:    "exceptional",
}

var conditionValues = func() map[string]Condition {
	m := make(map[string]Condition, len(conditionNames))
	for c, s := range conditionNames {
		m[s] = c
	}
	return m
}()

// ParseCondition maps a condition string to its variant. Unrecognized or
// empty strings map to ConditionUnknown.
func ParseCondition(s string) Condition {
	if c, ok := conditionValues[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c
	}
	return ConditionUnknown
}

func (c Condition) String() string {
	if s, ok := conditionNames[c]; ok {
		return s
	}
	return "unknown"
}

// Icon returns the icon identifier for the condition. The mapping is
// total: every variant, including ConditionUnknown, resolves to an
// identifier the embedding layer can display.
func (c Condition) Icon() string {
	switch c {
	case ClearNight:
		return "mdi:weather-night"
	case Cloudy:
		return "mdi:weather-cloudy"
	case Fog:
		return "mdi:weather-fog"
	case Hail:
		return "mdi:weather-hail"
	case Lightning:
		return "mdi:weather-lightning"
	case LightningRainy:
		return "mdi:weather-lightning-rainy"
	case PartlyCloudy:
		return "mdi:weather-partly-cloudy"
	case Pouring:
		return "mdi:weather-pouring"
	case Rainy:
		return "mdi:weather-rainy"
	case Snowy:
		return "mdi:weather-snowy"
	case SnowyRainy:
		return "mdi:weather-snowy-rainy"
	case Sunny:
		return "mdi:weather-sunny"
	case Windy:
		return "mdi:weather-windy"
	case WindyVariant:
		return "mdi:weather-windy-variant"
	case Exceptional:
		return "mdi:alert-circle-outline"
	default:
		return "mdi:weather-cloudy"
	}
}

// PrecipKind is the particle family a condition produces.
type PrecipKind int

const (
	PrecipNone PrecipKind = iota
	PrecipRain
	PrecipSnow
	PrecipMixed
)

// Precip returns the particle family for the condition.
func (c Condition) Precip() PrecipKind {
	switch c {
	case Rainy, Pouring, LightningRainy, Hail:
		return PrecipRain
	case Snowy:
		return PrecipSnow
	case SnowyRainy:
		return PrecipMixed
	default:
		return PrecipNone
	}
}

// RainLike reports whether the condition implies liquid precipitation.
func (c Condition) RainLike() bool {
	switch c {
	case Rainy, Pouring, LightningRainy, Hail, SnowyRainy:
		return true
	}
	return false
}

// Nice reports whether the condition qualifies as pleasant weather for
// ground-type resolution.
func (c Condition) Nice() bool {
	switch c {
	case Sunny, PartlyCloudy, ClearNight:
		return true
	}
	return false
}

// MarshalJSON encodes the condition as its wire string.
func (c Condition) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a condition string, tolerating null and unknown
// values as ConditionUnknown.
func (c *Condition) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*c = ConditionUnknown
		return nil
	}
	*c = ParseCondition(*s)
	return nil
}
