package model

import "fmt"

// Problem is the RFC 7807 error body VTNs return for failed requests.
type Problem struct {
	// Type is a URI identifying the problem type; "about:blank" when the
	// HTTP status code says it all.
	Type string `json:"type,omitempty"`

	// Title is a short human-readable summary.
	Title string `json:"title,omitempty"`

	// Status is the HTTP status code.
	Status int `json:"status,omitempty"`

	// Detail explains this specific occurrence.
	Detail string `json:"detail,omitempty"`

	// Instance is a URI identifying this occurrence.
	Instance string `json:"instance,omitempty"`
}

// Error implements the error interface.
func (p *Problem) Error() string {
	switch {
	case p.Title != "" && p.Detail != "":
		return fmt.Sprintf("vtn problem (status %d): %s: %s", p.Status, p.Title, p.Detail)
	case p.Title != "":
		return fmt.Sprintf("vtn problem (status %d): %s", p.Status, p.Title)
	default:
		return fmt.Sprintf("vtn problem (status %d)", p.Status)
	}
}
