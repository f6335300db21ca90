package models

import (
	"fmt"
	"strings"

	apperrors "github.com/julianstephens/auragenie/internal/errors"
)

type HealthKey string

const (
	HealthSleep    HealthKey = "sleep"
	HealthWater    HealthKey = "water"
	HealthExercise HealthKey = "exercise"
)

func AllHealthKeys() []HealthKey {
	return []HealthKey{HealthSleep, HealthWater, HealthExercise}
}

func (k HealthKey) Valid() bool {
	switch k {
	case HealthSleep, HealthWater, HealthExercise:
		return true
	}
	return false
}

// Unit is the display unit for the metric
func (k HealthKey) Unit() string {
	switch k {
	case HealthSleep:
		return "hrs"
	case HealthWater:
		return "glasses"
	case HealthExercise:
		return "min"
	default:
		return ""
	}
}

func ParseHealthKey(s string) (HealthKey, error) {
	k := HealthKey(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%q: %w", s, apperrors.ErrUnknownHealthKey)
	}
	return k, nil
}

// HealthData is a value snapshot. Values are not range checked.
type HealthData struct {
	Sleep    float64 `json:"sleep"`
	Water    float64 `json:"water"`
	Exercise float64 `json:"exercise"`
}

// With returns a copy of h with only key replaced
func (h HealthData) With(key HealthKey, value float64) (HealthData, error) {
	switch key {
	case HealthSleep:
		h.Sleep = value
	case HealthWater:
		h.Water = value
	case HealthExercise:
		h.Exercise = value
	default:
		return h, fmt.Errorf("%q: %w", key, apperrors.ErrUnknownHealthKey)
	}
	return h, nil
}

func (h HealthData) Get(key HealthKey) (float64, bool) {
	switch key {
	case HealthSleep:
		return h.Sleep, true
	case HealthWater:
		return h.Water, true
	case HealthExercise:
		return h.Exercise, true
	}
	return 0, false
}
