package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"recruitcrm/internal/contact"
)

// contactColumns enumerates every stored column in scan order. Optional
// columns are coalesced so legacy NULLs read back as empty strings.
const contactColumns = `
	id,
	company,
	full_name,
	COALESCE(telegram, ''),
	COALESCE(phone, ''),
	COALESCE(position, ''),
	COALESCE(email, ''),
	COALESCE(comments, ''),
	COALESCE(resume_path, ''),
	COALESCE(status, ''),
	COALESCE(last_contact, ''),
	COALESCE(next_step, ''),
	COALESCE(created_at, '')`

// listOrder is the fixed sort for every listing: rows with a next_step
// first in ascending date order, rows without one after them, ties broken
// by created_at descending and then id descending for determinism.
const listOrder = `
	ORDER BY
		CASE WHEN next_step IS NULL OR next_step = '' THEN 1 ELSE 0 END,
		next_step ASC,
		created_at DESC,
		id DESC`

// Get retrieves a single contact by id.
// Returns *contact.NotFoundError when no row has that id.
func (s *Store) Get(ctx context.Context, id int64) (contact.Contact, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+contactColumns+`
		FROM contacts
		WHERE id = ?
	`, id)

	c, err := scanContactRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return contact.Contact{}, &contact.NotFoundError{ID: id}
	}
	if err != nil {
		return contact.Contact{}, &contact.StorageError{Op: "get", Err: err}
	}

	return c, nil
}

// List returns all contacts matching the filter in the fixed sort order.
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) List(ctx context.Context, f Filter) ([]contact.Contact, error) {
	where, params, err := buildWhere(f.conditions())
	if err != nil {
		return nil, &contact.StorageError{Op: "list", Err: err}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+contactColumns+`
		FROM contacts`+where+listOrder, params...)
	if err != nil {
		return nil, &contact.StorageError{Op: "list", Err: err}
	}
	defer rows.Close()

	var contacts []contact.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, &contact.StorageError{Op: "list", Err: err}
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, &contact.StorageError{Op: "list", Err: err}
	}

	// Return empty slice instead of nil
	if contacts == nil {
		contacts = []contact.Contact{}
	}

	return contacts, nil
}

// Companies returns each distinct stored company value once, ascending.
// Dedup and order use SQLite's BINARY collation, so values differing only
// in case are distinct. Returns an empty slice (not nil) when the table
// is empty.
func (s *Store) Companies(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT company
		FROM contacts
		ORDER BY company COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, &contact.StorageError{Op: "companies", Err: err}
	}
	defer rows.Close()

	var companies []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &contact.StorageError{Op: "companies", Err: fmt.Errorf("scan company: %w", err)}
		}
		companies = append(companies, name)
	}

	if err := rows.Err(); err != nil {
		return nil, &contact.StorageError{Op: "companies", Err: err}
	}

	if companies == nil {
		companies = []string{}
	}

	return companies, nil
}

// scanContact scans a listing row into a Contact. A blank stored status
// reads as the default so callers never see a partially defaulted record.
func scanContact(rows *sql.Rows) (contact.Contact, error) {
	var c contact.Contact
	if err := rows.Scan(
		&c.ID, &c.Company, &c.FullName, &c.Telegram, &c.Phone, &c.Position,
		&c.Email, &c.Comments, &c.ResumePath, &c.Status, &c.LastContact,
		&c.NextStep, &c.CreatedAt,
	); err != nil {
		return contact.Contact{}, fmt.Errorf("scan contact: %w", err)
	}

	if c.Status == "" {
		c.Status = contact.DefaultStatus
	}

	return c, nil
}

// scanContactRow scans a single-row query into a Contact.
func scanContactRow(row *sql.Row) (contact.Contact, error) {
	var c contact.Contact
	if err := row.Scan(
		&c.ID, &c.Company, &c.FullName, &c.Telegram, &c.Phone, &c.Position,
		&c.Email, &c.Comments, &c.ResumePath, &c.Status, &c.LastContact,
		&c.NextStep, &c.CreatedAt,
	); err != nil {
		return contact.Contact{}, err
	}

	if c.Status == "" {
		c.Status = contact.DefaultStatus
	}

	return c, nil
}
