package services

import (
	"fmt"
	"strings"
)

// SensorCategory describes the filename convention for one sensor stream.
// Matching is a pure case-insensitive substring check, not an extension check.
type SensorCategory struct {
	Name    string
	Include []string
	Exclude []string
}

var (
	CategoryPPG           = SensorCategory{Name: "ppg", Include: []string{"ppg"}, Exclude: []string{"acc", "offbody"}}
	CategoryAccelerometer = SensorCategory{Name: "acc", Include: []string{"acc"}, Exclude: []string{"ppg", "offbody"}}
	CategoryOffBody       = SensorCategory{Name: "offbody", Include: []string{"offbody"}, Exclude: []string{"ppg", "acc"}}
)

func (category SensorCategory) Matches(filename string) bool {
	lowered := strings.ToLower(filename)
	for _, required := range category.Include {
		if !strings.Contains(lowered, required) {
			return false
		}
	}
	for _, forbidden := range category.Exclude {
		if strings.Contains(lowered, forbidden) {
			return false
		}
	}
	return true
}

func (category SensorCategory) RuleMessage() string {
	return fmt.Sprintf("Filename must contain %q and NOT contain %q", category.Include, category.Exclude)
}
