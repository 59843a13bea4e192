package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type (
	Group struct {
		ID           string  `json:"id"`
		Name         string  `json:"name"`
		Capacity     *int64  `json:"capacity"`
		BrandID      *string `json:"brand_id"`
		LeaderUserID *string `json:"leader_user_id"`
		IsPublic     bool    `json:"is_public"`
	}
)

func (s *Store) CreateGroup(ctx context.Context, g Group) (string, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `insert into groups (id, name, capacity, brand_id, is_public) values (?, ?, ?, ?, ?)`,
		g.ID, g.Name, g.Capacity, g.BrandID, g.IsPublic)
	if err != nil {
		return "", fmt.Errorf("unable to store group %v, cause %w", g.Name, err)
	}
	return g.ID, nil
}

func (s *Store) Groups(ctx context.Context) ([]Group, error) {
	rows, err := s.db.QueryContext(ctx, `select id, name, capacity, brand_id, leader_user_id, is_public
		from groups order by name asc`)
	if err != nil {
		return nil, fmt.Errorf("unable to list groups, cause %w", err)
	}
	defer rows.Close()
	out := []Group{}
	for rows.Next() {
		var g Group
		err = rows.Scan(&g.ID, &g.Name, &g.Capacity, &g.BrandID, &g.LeaderUserID, &g.IsPublic)
		if err != nil {
			return nil, fmt.Errorf("unable to scan group row, cause %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *Store) GroupExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `select 1 from groups where id = ? limit 1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("unable to check group %v, cause %w", id, err)
	}
	return true, nil
}

func (s *Store) SetGroupLeader(ctx context.Context, groupID string, leaderUserID *string) error {
	_, err := s.db.ExecContext(ctx, `update groups set leader_user_id = ? where id = ?`, leaderUserID, groupID)
	if err != nil {
		return fmt.Errorf("unable to set leader of group %v, cause %w", groupID, err)
	}
	return nil
}

// SetGroupVisibility flips the group flag and cascades it to every trip
// in the group. Both updates run in one transaction so a reader never
// observes a half applied cascade.
func (s *Store) SetGroupVisibility(ctx context.Context, groupID string, public bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unable to open transaction, cause %w", err)
	}
	defer tx.Rollback()
	_, err = tx.ExecContext(ctx, `update groups set is_public = ? where id = ?`, public, groupID)
	if err != nil {
		return fmt.Errorf("unable to update visibility of group %v, cause %w", groupID, err)
	}
	_, err = tx.ExecContext(ctx, `update trips set is_public = ? where group_id = ?`, public, groupID)
	if err != nil {
		return fmt.Errorf("unable to cascade visibility to trips of group %v, cause %w", groupID, err)
	}
	return tx.Commit()
}

func (s *Store) GroupsForUser(ctx context.Context, userID string) ([]Group, error) {
	rows, err := s.db.QueryContext(ctx, `select g.id, g.name, g.capacity, g.brand_id, g.leader_user_id, g.is_public
		from groups g
		inner join group_members gm on gm.group_id = g.id
		where gm.user_id = ?
		order by g.name asc`, userID)
	if err != nil {
		return nil, fmt.Errorf("unable to list groups of user %v, cause %w", userID, err)
	}
	defer rows.Close()
	out := []Group{}
	for rows.Next() {
		var g Group
		err = rows.Scan(&g.ID, &g.Name, &g.Capacity, &g.BrandID, &g.LeaderUserID, &g.IsPublic)
		if err != nil {
			return nil, fmt.Errorf("unable to scan group row, cause %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// ActiveTrip picks the next upcoming trip of the group, falling back to
// the most recent one when nothing is scheduled ahead. Returns nil when
// the group has no trips at all.
func (s *Store) ActiveTrip(ctx context.Context, groupID string, now int64) (*Trip, error) {
	t, err := scanTrip(s.db.QueryRowContext(ctx, `select `+tripColumns+` from trips
		where group_id = ? and start_date is not null and start_date >= ?
		order by start_date asc limit 1`, groupID, now))
	if err == nil {
		return &t, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("unable to load upcoming trip of group %v, cause %w", groupID, err)
	}
	t, err = scanTrip(s.db.QueryRowContext(ctx, `select `+tripColumns+` from trips
		where group_id = ?
		order by (start_date is null) asc, start_date desc limit 1`, groupID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to load latest trip of group %v, cause %w", groupID, err)
	}
	return &t, nil
}
