// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import "github.com/MKhiriev/go-notes-keeper/models"

// Reconcile returns the selection that should follow selected after the
// collection (all) or the filtered view changed.
//
// Rules, in order:
//   - filtered non-empty, nothing selected: the first filtered note;
//   - filtered empty, something selected: kept while its note still exists
//     in all, nil otherwise;
//   - selected note missing from filtered: the first filtered note.
//
// A kept selection is returned as the same pointer, so local unsaved edits
// survive. Reconcile is idempotent.
func Reconcile(all, filtered []models.Note, selected *models.Note) *models.Note {
	switch {
	case selected == nil:
		if len(filtered) > 0 {
			first := filtered[0]
			return &first
		}
		return nil

	case len(filtered) == 0:
		if indexOf(all, selected.ID) < 0 {
			return nil
		}
		return selected

	case indexOf(filtered, selected.ID) < 0:
		first := filtered[0]
		return &first
	}

	return selected
}
