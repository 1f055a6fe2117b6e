package catalog

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"materialcore/internal/blob"
	"materialcore/pkg/domain"
)

// DatasheetKind names the two attachment slots a sourcing record carries.
type DatasheetKind string

const (
	DatasheetTechnical DatasheetKind = "technical"
	DatasheetSafety    DatasheetKind = "safety"
)

// Datasheets attaches vendor documents to sourcing records. Document content
// lives in a blob store; the sourcing record keeps only the object key, so
// catalogue backups stay small and blobs can move between drivers.
type Datasheets struct {
	service *Service
	blobs   blob.Store
}

// NewDatasheets wires a blob store to the catalogue service.
func NewDatasheets(service *Service, blobs blob.Store) *Datasheets {
	return &Datasheets{service: service, blobs: blobs}
}

func datasheetKey(id domain.SourcingID, kind DatasheetKind, filename string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("sourcing id required")
	}
	base := path.Base(strings.TrimSpace(filename))
	if base == "" || base == "." || base == "/" {
		return "", fmt.Errorf("datasheet filename required")
	}
	return fmt.Sprintf("sourcings/%s/%s/%s", id, kind, base), nil
}

func validDatasheetKind(kind DatasheetKind) bool {
	return kind == DatasheetTechnical || kind == DatasheetSafety
}

// Attach stores the document and records its key on the sourcing record.
// A slot that already holds a document must be detached first; overwriting
// in place would orphan the previous blob.
func (d *Datasheets) Attach(ctx context.Context, id domain.SourcingID, kind DatasheetKind, filename, contentType string, r io.Reader) (blob.Info, error) {
	if !validDatasheetKind(kind) {
		return blob.Info{}, fmt.Errorf("unknown datasheet kind %q", kind)
	}
	key, err := datasheetKey(id, kind, filename)
	if err != nil {
		return blob.Info{}, err
	}
	info, err := d.blobs.Put(ctx, key, r, blob.PutOptions{ContentType: contentType})
	if err != nil {
		return blob.Info{}, err
	}
	err = d.service.run(ctx, "attach_datasheet", func(tx domain.Transaction) error {
		_, err := tx.Update(domain.KindSourcing, string(id), func(rec domain.Record) error {
			sourcing, ok := rec.(*domain.Sourcing)
			if !ok {
				return fmt.Errorf("record %s is not a sourcing", id)
			}
			current := datasheetSlot(sourcing, kind)
			if *current != "" {
				return fmt.Errorf("sourcing %s already has a %s datasheet", id, kind)
			}
			*current = key
			return nil
		})
		return err
	})
	if err != nil {
		// The record update failed; remove the orphaned blob.
		_, _ = d.blobs.Delete(ctx, key)
		return blob.Info{}, err
	}
	return info, nil
}

// Open returns the attached document's metadata and content. The caller
// closes the reader.
func (d *Datasheets) Open(ctx context.Context, id domain.SourcingID, kind DatasheetKind) (blob.Info, io.ReadCloser, error) {
	key, err := d.lookupKey(id, kind)
	if err != nil {
		return blob.Info{}, nil, err
	}
	return d.blobs.Get(ctx, key)
}

// SignedURL returns a time-limited download URL when the blob driver
// supports pre-signing.
func (d *Datasheets) SignedURL(ctx context.Context, id domain.SourcingID, kind DatasheetKind, expiry time.Duration) (string, error) {
	key, err := d.lookupKey(id, kind)
	if err != nil {
		return "", err
	}
	return d.blobs.PresignURL(ctx, key, blob.SignedURLOptions{Expiry: expiry})
}

// Detach clears the slot on the sourcing record and deletes the blob.
func (d *Datasheets) Detach(ctx context.Context, id domain.SourcingID, kind DatasheetKind) error {
	key, err := d.lookupKey(id, kind)
	if err != nil {
		return err
	}
	err = d.service.run(ctx, "detach_datasheet", func(tx domain.Transaction) error {
		_, err := tx.Update(domain.KindSourcing, string(id), func(rec domain.Record) error {
			sourcing, ok := rec.(*domain.Sourcing)
			if !ok {
				return fmt.Errorf("record %s is not a sourcing", id)
			}
			*datasheetSlot(sourcing, kind) = ""
			return nil
		})
		return err
	})
	if err != nil {
		return err
	}
	_, err = d.blobs.Delete(ctx, key)
	return err
}

func (d *Datasheets) lookupKey(id domain.SourcingID, kind DatasheetKind) (string, error) {
	if !validDatasheetKind(kind) {
		return "", fmt.Errorf("unknown datasheet kind %q", kind)
	}
	rec, ok := d.service.store.Get(domain.KindSourcing, string(id))
	if !ok {
		return "", domain.NotFoundError{Kind: domain.KindSourcing, ID: string(id)}
	}
	sourcing, ok := rec.(*domain.Sourcing)
	if !ok {
		return "", fmt.Errorf("record %s is not a sourcing", id)
	}
	key := *datasheetSlot(sourcing, kind)
	if key == "" {
		return "", fmt.Errorf("sourcing %s has no %s datasheet", id, kind)
	}
	return key, nil
}

func datasheetSlot(s *domain.Sourcing, kind DatasheetKind) *string {
	if kind == DatasheetSafety {
		return &s.SafetyDataSheetKey
	}
	return &s.TechnicalDataSheetKey
}
