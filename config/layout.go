package config

import (
	"fmt"
	"log"
	"os"

	"backend/composer"

	"gopkg.in/yaml.v3"
)

// layoutFile mirrors composer.Options. Unset fields keep their defaults.
type layoutFile struct {
	MealsPerPage       *int    `yaml:"meals_per_page"`
	ExercisesPerPage   *int    `yaml:"exercises_per_page"`
	SupplementRowWidth *int    `yaml:"supplement_row_width"`
	PadSupplementRows  *bool   `yaml:"pad_supplement_rows"`
	FooterText         *string `yaml:"footer_text"`
}

// LoadLayout reads plan layout overrides from a YAML file. An empty path
// returns the defaults.
func LoadLayout(path string) (composer.Options, error) {
	opts := composer.DefaultOptions()
	if path == "" {
		return opts, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read layout config: %w", err)
	}
	var lf layoutFile
	if err := yaml.Unmarshal(raw, &lf); err != nil {
		return opts, fmt.Errorf("failed to parse layout config: %w", err)
	}

	if lf.MealsPerPage != nil {
		if *lf.MealsPerPage < 1 {
			return opts, fmt.Errorf("meals_per_page must be at least 1")
		}
		opts.MealsPerPage = *lf.MealsPerPage
	}
	if lf.ExercisesPerPage != nil {
		if *lf.ExercisesPerPage < 1 {
			return opts, fmt.Errorf("exercises_per_page must be at least 1")
		}
		opts.ExercisesPerPage = *lf.ExercisesPerPage
	}
	if lf.SupplementRowWidth != nil {
		if *lf.SupplementRowWidth < 1 {
			return opts, fmt.Errorf("supplement_row_width must be at least 1")
		}
		opts.SupplementRowWidth = *lf.SupplementRowWidth
	}
	if lf.PadSupplementRows != nil {
		opts.PadSupplementRows = *lf.PadSupplementRows
	}
	if lf.FooterText != nil {
		opts.FooterText = *lf.FooterText
	}
	return opts, nil
}

// Layout loads the file named by LAYOUT_CONFIG, falling back to defaults.
func Layout() composer.Options {
	opts, err := LoadLayout(os.Getenv("LAYOUT_CONFIG"))
	if err != nil {
		log.Printf("using default plan layout: %v", err)
		return composer.DefaultOptions()
	}
	return opts
}
