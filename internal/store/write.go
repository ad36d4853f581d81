package store

import (
	"context"

	"recruitcrm/internal/contact"
)

// Insert stores a new contact and returns the assigned id.
//
// The record is normalized (trim, NFC, default status) and validated
// before anything touches the database; a *contact.ValidationError means
// no row was written. id and created_at are assigned by storage.
func (s *Store) Insert(ctx context.Context, c contact.Contact) (int64, error) {
	c = c.Normalized()
	if err := c.Validate(); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO contacts
		(company, full_name, telegram, phone, position, email, comments, resume_path, status, last_contact, next_step)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		c.Company,
		c.FullName,
		c.Telegram,
		c.Phone,
		c.Position,
		c.Email,
		c.Comments,
		c.ResumePath,
		c.Status,
		c.LastContact,
		c.NextStep,
	)
	if err != nil {
		return 0, &contact.StorageError{Op: "insert", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, &contact.StorageError{Op: "insert", Err: err}
	}

	return id, nil
}

// Update replaces all mutable fields of the row keyed by c.ID.
//
// The same normalize-then-validate gate as Insert applies. An unknown id
// returns *contact.NotFoundError, detected by zero affected rows; id and
// created_at are never touched.
func (s *Store) Update(ctx context.Context, c contact.Contact) error {
	c = c.Normalized()
	if err := c.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE contacts
		SET company = ?, full_name = ?, telegram = ?, phone = ?, position = ?,
		    email = ?, comments = ?, resume_path = ?, status = ?, last_contact = ?, next_step = ?
		WHERE id = ?
	`,
		c.Company,
		c.FullName,
		c.Telegram,
		c.Phone,
		c.Position,
		c.Email,
		c.Comments,
		c.ResumePath,
		c.Status,
		c.LastContact,
		c.NextStep,
		c.ID,
	)
	if err != nil {
		return &contact.StorageError{Op: "update", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &contact.StorageError{Op: "update", Err: err}
	}
	if affected == 0 {
		return &contact.NotFoundError{ID: c.ID}
	}

	return nil
}

// Delete removes the row with the given id. Deleting an id that does not
// exist is a no-op, not an error.
func (s *Store) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return &contact.StorageError{Op: "delete", Err: err}
	}
	return nil
}
