package main

import (
	"fmt"
	"os"

	"srs-intake-be/pkg/srsform"

	"gopkg.in/yaml.v3"
)

// loadState reads a form-state fixture. JSON documents parse as YAML too.
//
//	fields:
//	  project_name: Atlas
//	  domain: Finance
//	groups:
//	  target_users: [Admin, Other]
func loadState(path string) (*srsform.FormState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form state: %w", err)
	}
	return parseState(data)
}

func parseState(data []byte) (*srsform.FormState, error) {
	state := srsform.NewFormState()
	if err := yaml.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("parse form state: %w", err)
	}
	if state.Fields == nil {
		state.Fields = make(map[string]string)
	}
	if state.Groups == nil {
		state.Groups = make(map[string][]string)
	}
	return state, nil
}

func saveState(path string, state *srsform.FormState) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode form state: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
