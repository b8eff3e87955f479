// Package model defines the data types shared between the host, the content
// loader and the repeater.
package model

// Event is a scripted event the host is currently running.
type Event struct {
	ID       string   `json:"id"`
	Commands []string `json:"commands"`
}

// Manifest describes an installed content pack.
type Manifest struct {
	Name           string       `json:"Name"`
	UniqueID       string       `json:"UniqueID"`
	Version        string       `json:"Version,omitempty"`
	ContentPackFor *PackRef     `json:"ContentPackFor,omitempty"`
	Dependencies   []Dependency `json:"Dependencies,omitempty"`
}

// PackRef names the mod a content pack is written for.
type PackRef struct {
	UniqueID string `json:"UniqueID"`
}

// Dependency is a manifest dependency entry. Optional and required
// dependencies both count when selecting packs.
type Dependency struct {
	UniqueID   string `json:"UniqueID"`
	IsRequired *bool  `json:"IsRequired,omitempty"`
}

// Document is the forget-list a content pack contributes.
type Document struct {
	RepeatEvents   []int    `json:"RepeatEvents,omitempty" yaml:"RepeatEvents,omitempty"`
	RepeatMail     []string `json:"RepeatMail,omitempty" yaml:"RepeatMail,omitempty"`
	RepeatResponse []int    `json:"RepeatResponse,omitempty" yaml:"RepeatResponse,omitempty"`
}
