package domain

import "time"

// Manifest is written into an environment once it has been fully built.
type Manifest struct {
	Key          string    `json:"key,omitzero"`
	Interpreter  string    `json:"interpreter,omitzero"`
	Requirements []string  `json:"requirements,omitzero"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
	Version      string    `json:"version,omitzero"`
}

// Spec returns the spec the manifest was written for.
func (m Manifest) Spec() EnvSpec {
	return EnvSpec{Interpreter: m.Interpreter, Requirements: m.Requirements}
}

// Record is an environment found in a cache root.
type Record struct {
	Key  string
	Root string
	// Manifest is nil for an environment whose build never completed.
	Manifest *Manifest
}

// Complete reports whether the environment finished building.
func (r Record) Complete() bool {
	return r.Manifest != nil
}
