// Package editor maps selected records onto editable drafts and turns
// submitted drafts into the payloads the backend expects. Drafts are
// plain values: a failed submit leaves the draft with the caller for
// retry.
package editor

import (
	"fmt"

	"github.com/kelola-aset/kelola/internal/model"
)

// ValidationError reports a required field that would block a submit.
// Nothing is sent to the backend while one of these is outstanding.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q is required", e.Field)
}

// ResolveVendorID maps a vendor display name to its identifier. An
// unresolved name passes through as-is rather than blocking the
// submission; the backend owns the final verdict.
func ResolveVendorID(vendors []model.Vendor, name string) string {
	for _, v := range vendors {
		if v.Name == name {
			return v.ID
		}
	}
	return name
}

// VendorNameOf resolves an identifier back to a display name, with a
// placeholder for dangling references so rendering never fails on one.
func VendorNameOf(vendors []model.Vendor, id string) string {
	for _, v := range vendors {
		if v.ID == id {
			return v.Name
		}
	}
	return "Unknown Vendor"
}

// AdminNameOf resolves an admin reference for display.
func AdminNameOf(admins []model.Admin, id string) string {
	for _, a := range admins {
		if a.ID == id {
			return a.FullName
		}
	}
	return "N/A"
}
