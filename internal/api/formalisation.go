package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// legal structure kinds a formalisation request is classified into
const (
	StructureSA      = "SA"
	StructureSARL    = "SARL"
	StructureGIC     = "GIC"
	StructureCOOP    = "COOP"
	StructureUnknown = "unknown"
)

// FormalisationParams holds the fields of a business-registration assistance request
type FormalisationParams struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Structure   string `json:"structure"`
	Sector      string `json:"sector"`
	Description string `json:"description"`
}

// SubmitFormalisation sends a formalisation request (public)
func (c *Client) SubmitFormalisation(ctx context.Context, params FormalisationParams) (*Formalisation, error) {
	if params.Name == "" || params.Email == "" || params.Structure == "" {
		return nil, newValidationError("name, email and structure are required")
	}

	var out Formalisation
	if err := c.doJSON(ctx, http.MethodPost, "/formalisation", params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Formalisations lists submitted formalisation requests (admin)
func (c *Client) Formalisations(ctx context.Context) ([]Formalisation, error) {
	var out FormalisationList
	if err := c.getJSON(ctx, "/formalisation", true, &out); err != nil {
		return nil, err
	}
	return out.Formalisations, nil
}

// GetFormalisation fetches a single formalisation request (admin)
func (c *Client) GetFormalisation(ctx context.Context, id int) (*Formalisation, error) {
	var out Formalisation
	if err := c.getJSON(ctx, fmt.Sprintf("/formalisation/%d", id), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFormalisation removes a formalisation request (admin)
func (c *Client) DeleteFormalisation(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/formalisation/%d", id), nil, true, nil)
}

// StructureKind classifies the free-text structure field into one of the legal
// forms handled by the formalisation desk. Matching is by substring, after
// lowercasing and stripping diacritics so "Société Anonyme" matches "societe".
func (f Formalisation) StructureKind() string {
	text := foldStructure(f.Structure)

	switch {
	case strings.Contains(text, "sarl") || strings.Contains(text, "responsabilite limitee"):
		return StructureSARL
	case strings.Contains(text, "sa") || strings.Contains(text, "societe anonyme"):
		return StructureSA
	case strings.Contains(text, "gic") || strings.Contains(text, "groupe d'initiative commune"):
		return StructureGIC
	case strings.Contains(text, "coop"):
		return StructureCOOP
	default:
		return StructureUnknown
	}
}

// foldStructure lowercases the input and removes diacritics (NFD decomposition
// then dropping the combining marks)
func foldStructure(input string) string {
	normalized := norm.NFD.String(input)

	stripped, _, err := transform.String(runes.Remove(runes.In(unicode.Mn)), normalized)
	if err != nil {
		stripped = normalized
	}

	return strings.ToLower(stripped)
}
