// Package types provides type definitions for the portfolio profile document.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Profile is the ProfileDocument describing a portfolio's content.
// Every field is optional; renderers substitute empty values.
type Profile struct {
	Name       string       `json:"name,omitempty"`
	Tagline    string       `json:"tagline,omitempty"`
	Avatar     string       `json:"avatar,omitempty"`
	Links      []Link       `json:"links,omitempty"`
	About      About        `json:"about"`
	Skills     Skills       `json:"skills"`
	Projects   []Project    `json:"projects,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Contact    []Link       `json:"contact,omitempty"`
}

// Link represents a navigable link with a visible label
type Link struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// Project represents a single project card
type Project struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Links       []Link   `json:"links,omitempty"`
}

// Experience represents a single entry on the experience timeline
type Experience struct {
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// paragraphBreak matches runs of two or more line breaks.
var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// About holds the about section, given either as a single string or as a
// list of paragraph strings.
type About struct {
	parts []string
}

// NewAbout builds an About from explicit paragraphs.
func NewAbout(paragraphs ...string) About {
	return About{parts: paragraphs}
}

// AboutFromText builds an About by splitting text on blank lines.
func AboutFromText(text string) About {
	return About{parts: paragraphBreak.Split(text, -1)}
}

// UnmarshalJSON accepts a string, an array of strings, or null.
func (a *About) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.parts = nil
		return nil
	}

	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return &FieldError{Field: "about", Cause: err}
		}
		*a = AboutFromText(text)
		return nil
	case '[':
		var parts []string
		if err := json.Unmarshal(data, &parts); err != nil {
			return &FieldError{Field: "about", Cause: err}
		}
		a.parts = parts
		return nil
	default:
		return &FieldError{Field: "about", Cause: fmt.Errorf("expected string or array, got %s", kindOf(data))}
	}
}

// Paragraphs returns the trimmed, non-empty paragraphs in order.
func (a About) Paragraphs() []string {
	out := make([]string, 0, len(a.parts))
	for _, p := range a.parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SkillGroup is one titled group of skills
type SkillGroup struct {
	Title string
	Items []string
}

// Skills holds either a flat list of skills or an ordered set of groups.
type Skills struct {
	flat    []string
	groups  []SkillGroup
	grouped bool
}

// NewFlatSkills builds a flat skills list.
func NewFlatSkills(items ...string) Skills {
	return Skills{flat: items}
}

// NewGroupedSkills builds grouped skills in the given order.
func NewGroupedSkills(groups ...SkillGroup) Skills {
	return Skills{groups: groups, grouped: true}
}

// IsGrouped reports whether skills were given as a mapping of group title to items.
func (s Skills) IsGrouped() bool { return s.grouped }

// Flat returns the flat skill list. It is empty for grouped skills.
func (s Skills) Flat() []string { return s.flat }

// Groups returns the skill groups in key insertion order.
func (s Skills) Groups() []SkillGroup { return s.groups }

// UnmarshalJSON accepts an array of strings, an object of arrays, or null.
// Object keys keep the order they appear in the document.
func (s *Skills) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = Skills{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return &FieldError{Field: "skills", Cause: err}
		}
		s.flat = items
		return nil
	case '{':
		groups, err := decodeGroups(data)
		if err != nil {
			return &FieldError{Field: "skills", Cause: err}
		}
		s.groups = groups
		s.grouped = true
		return nil
	default:
		return &FieldError{Field: "skills", Cause: fmt.Errorf("expected array or object, got %s", kindOf(data))}
	}
}

// decodeGroups walks a JSON object token by token so key order survives.
func decodeGroups(data []byte) ([]SkillGroup, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object")
	}

	groups := []SkillGroup{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		title, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected group title, got %v", tok)
		}

		var items []string
		if err := dec.Decode(&items); err != nil {
			return nil, fmt.Errorf("group %q: %w", title, err)
		}
		groups = append(groups, SkillGroup{Title: title, Items: items})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return groups, nil
}

func kindOf(data []byte) string {
	switch data[0] {
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	default:
		return "number"
	}
}

// FieldError reports a document field that could not be decoded
type FieldError struct {
	Field string
	Cause error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Cause)
}

func (e *FieldError) Unwrap() error {
	return e.Cause
}

// ParseProfile decodes a ProfileDocument from JSON. The document must be
// a JSON object; null or any other root is a *FieldError for "(root)".
func ParseProfile(data []byte) (*Profile, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] != '{' {
		return nil, &FieldError{Field: "(root)", Cause: fmt.Errorf("expected object, got %s", kindOf(trimmed))}
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
