package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type (
	PaymentLink struct {
		ID        string `json:"id"`
		GroupID   string `json:"group_id"`
		Label     string `json:"label"`
		VendorURL string `json:"vendor_url"`
		DueAt     *int64 `json:"due_at"`
	}
)

func (s *Store) PaymentLinks(ctx context.Context, groupID string) ([]PaymentLink, error) {
	rows, err := s.db.QueryContext(ctx, `select id, group_id, label, vendor_url, due_at
		from payment_links
		where group_id = ?
		order by (due_at is null) asc, due_at asc`, groupID)
	if err != nil {
		return nil, fmt.Errorf("unable to list payment links of group %v, cause %w", groupID, err)
	}
	defer rows.Close()
	out := []PaymentLink{}
	for rows.Next() {
		var p PaymentLink
		err = rows.Scan(&p.ID, &p.GroupID, &p.Label, &p.VendorURL, &p.DueAt)
		if err != nil {
			return nil, fmt.Errorf("unable to scan payment link row, cause %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) CreatePaymentLink(ctx context.Context, p PaymentLink) (string, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `insert into payment_links (id, group_id, label, vendor_url, due_at)
		values (?, ?, ?, ?, ?)`,
		p.ID, p.GroupID, p.Label, p.VendorURL, p.DueAt)
	if err != nil {
		return "", fmt.Errorf("unable to store payment link for group %v, cause %w", p.GroupID, err)
	}
	return p.ID, nil
}
