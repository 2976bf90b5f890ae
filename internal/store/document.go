package store

import (
	"sort"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

// sortDocuments orders documents newest first.
func sortDocuments(docs []types.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].DateAdded.After(docs[j].DateAdded)
	})
}

// AddDocument creates a document. Documents are always created with an
// explicit project context. String fields are trimmed, the ID and added
// timestamp are assigned, category defaults to recurring and source to
// manual when omitted. Returns the stored record.
func (s *Store) AddDocument(doc types.Document) (*types.Document, error) {
	doc.ProjectID = trim(doc.ProjectID)
	if doc.ProjectID == "" {
		return nil, types.ErrInvalidData
	}
	doc.ID = s.newID()
	doc.Title = trim(doc.Title)
	doc.Description = trim(doc.Description)
	doc.LinkURL = trim(doc.LinkURL)
	doc.DateAdded = s.now()

	if doc.Category == "" {
		doc.Category = types.CategoryRecurring
	} else if !types.ValidCategory(doc.Category) {
		return nil, types.ErrInvalidCategory
	}
	if doc.Source == "" {
		doc.Source = types.SourceManual
	} else if !types.ValidSource(doc.Source) {
		return nil, types.ErrInvalidSource
	}

	docs := readCollection[types.Document](s, keyDocuments)
	docs = append(docs, doc)
	if err := writeCollection(s, keyDocuments, docs); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetDocumentByID returns the document with the given ID, or ErrNotFound.
func (s *Store) GetDocumentByID(id string) (*types.Document, error) {
	for _, d := range readCollection[types.Document](s, keyDocuments) {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, types.ErrNotFound
}

// GetDocumentsByProject returns documents for the given project, newest
// first.
func (s *Store) GetDocumentsByProject(projectID string) []types.Document {
	out := []types.Document{}
	if projectID == "" {
		return out
	}
	for _, d := range readCollection[types.Document](s, keyDocuments) {
		if d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	sortDocuments(out)
	return out
}

// GetDocumentsByCategory returns the project's documents in one category,
// newest first.
func (s *Store) GetDocumentsByCategory(projectID, category string) []types.Document {
	out := []types.Document{}
	for _, d := range s.GetDocumentsByProject(projectID) {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// UpdateDocument shallow-merges the provided fields over the stored record.
// Returns the updated record, or ErrNotFound if no record matches.
func (s *Store) UpdateDocument(id string, upd types.DocumentUpdate) (*types.Document, error) {
	docs := readCollection[types.Document](s, keyDocuments)
	for i := range docs {
		if docs[i].ID != id {
			continue
		}
		if upd.ProjectID != nil {
			docs[i].ProjectID = trim(*upd.ProjectID)
		}
		if upd.Category != nil {
			if !types.ValidCategory(*upd.Category) {
				return nil, types.ErrInvalidCategory
			}
			docs[i].Category = *upd.Category
		}
		if upd.Title != nil {
			docs[i].Title = trim(*upd.Title)
		}
		if upd.Description != nil {
			docs[i].Description = trim(*upd.Description)
		}
		if upd.LinkURL != nil {
			docs[i].LinkURL = trim(*upd.LinkURL)
		}
		if upd.Source != nil {
			if !types.ValidSource(*upd.Source) {
				return nil, types.ErrInvalidSource
			}
			docs[i].Source = *upd.Source
		}
		if upd.DatePublished != nil {
			published := *upd.DatePublished
			docs[i].DatePublished = &published
		}
		if err := writeCollection(s, keyDocuments, docs); err != nil {
			return nil, err
		}
		updated := docs[i]
		return &updated, nil
	}
	return nil, types.ErrNotFound
}

// DeleteDocument removes a document. Deleting a nonexistent ID is a no-op
// success.
func (s *Store) DeleteDocument(id string) error {
	docs := readCollection[types.Document](s, keyDocuments)
	docs, removed := deleteByID(docs, id, func(d types.Document) string { return d.ID })
	if !removed {
		return nil
	}
	return writeCollection(s, keyDocuments, docs)
}
