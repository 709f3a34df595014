package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/MrJamesThe3rd/payday/internal/encoding"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=snapshot
type Repository interface {
	// ReadAll captures every table into one document.
	ReadAll(ctx context.Context) (*Document, error)

	// Replace wipes the database and restores the document, all inside
	// one transaction. A failed restore leaves the previous data intact.
	Replace(ctx context.Context, doc *Document) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds the service around the repository and a time source
// for the export stamp; two exports of the same data under the same
// time source produce identical bytes.
func NewService(repo Repository, now func() time.Time) *Service {
	return &Service{repo: repo, now: now}
}

// Export writes the whole database as an indented JSON document.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	doc, err := s.repo.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	doc.Version = Version
	doc.ExportedAt = s.now().UTC()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	return nil
}

// Import replaces the entire database with the document read from r.
// The input passes through encoding detection first; exported files
// travel through editors and mail clients that love to re-encode them.
func (s *Service) Import(ctx context.Context, r io.Reader) error {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return fmt.Errorf("detecting snapshot encoding: %w", err)
	}

	var doc Document

	dec := json.NewDecoder(utf8r)
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return err
	}

	if err := s.repo.Replace(ctx, &doc); err != nil {
		return fmt.Errorf("restoring snapshot: %w", err)
	}

	return nil
}
