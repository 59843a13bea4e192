package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type (
	Submission struct {
		ID        string  `json:"id"`
		GroupID   string  `json:"group_id"`
		Title     string  `json:"title"`
		StartDate *int64  `json:"start_date"`
		EndDate   *int64  `json:"end_date"`
		Notes     *string `json:"notes"`
		CreatedAt int64   `json:"created_at"`
	}
)

func (s *Store) CreateSubmission(ctx context.Context, sub Submission) (string, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.CreatedAt == 0 {
		sub.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx, `insert into trip_submissions (id, group_id, title, start_date, end_date, notes, created_at)
		values (?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.GroupID, sub.Title, sub.StartDate, sub.EndDate, sub.Notes, sub.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("unable to store submission for group %v, cause %w", sub.GroupID, err)
	}
	return sub.ID, nil
}

func (s *Store) SubmissionsByGroup(ctx context.Context, groupID string) ([]Submission, error) {
	rows, err := s.db.QueryContext(ctx, `select id, group_id, title, start_date, end_date, notes, created_at
		from trip_submissions
		where group_id = ?
		order by created_at desc`, groupID)
	if err != nil {
		return nil, fmt.Errorf("unable to list submissions of group %v, cause %w", groupID, err)
	}
	defer rows.Close()
	out := []Submission{}
	for rows.Next() {
		var sub Submission
		err = rows.Scan(&sub.ID, &sub.GroupID, &sub.Title, &sub.StartDate, &sub.EndDate, &sub.Notes, &sub.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unable to scan submission row, cause %w", err)
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// PromoteSubmission turns the submission into a trip. Insert and delete
// run in one transaction, the promotion never duplicates nor loses the
// submission.
func (s *Store) PromoteSubmission(ctx context.Context, id string) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("unable to open transaction, cause %w", err)
	}
	defer tx.Rollback()
	var sub Submission
	err = tx.QueryRowContext(ctx, `select id, group_id, title, start_date, end_date, notes
		from trip_submissions where id = ?`, id).
		Scan(&sub.ID, &sub.GroupID, &sub.Title, &sub.StartDate, &sub.EndDate, &sub.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return "", NotFound{Kind: "submission", ID: id}
	} else if err != nil {
		return "", fmt.Errorf("unable to load submission %v, cause %w", id, err)
	}
	tripID := uuid.NewString()
	_, err = tx.ExecContext(ctx, `insert into trips (id, group_id, title, start_date, end_date, notes)
		values (?, ?, ?, ?, ?, ?)`,
		tripID, sub.GroupID, sub.Title, sub.StartDate, sub.EndDate, sub.Notes)
	if err != nil {
		return "", fmt.Errorf("unable to promote submission %v, cause %w", id, err)
	}
	_, err = tx.ExecContext(ctx, `delete from trip_submissions where id = ?`, id)
	if err != nil {
		return "", fmt.Errorf("unable to discard promoted submission %v, cause %w", id, err)
	}
	err = tx.Commit()
	if err != nil {
		return "", fmt.Errorf("unable to commit promotion of submission %v, cause %w", id, err)
	}
	return tripID, nil
}

func (s *Store) DeleteSubmission(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `delete from trip_submissions where id = ?`, id)
	if err != nil {
		return fmt.Errorf("unable to delete submission %v, cause %w", id, err)
	}
	return nil
}
