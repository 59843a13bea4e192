package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// AddMember records the membership pair, ignoring duplicates. Existence
// of the pair is the only authorization signal for member-tier reads.
func (s *Store) AddMember(ctx context.Context, groupID, userID string) error {
	_, err := s.db.ExecContext(ctx, `insert or ignore into group_members (group_id, user_id) values (?, ?)`,
		groupID, userID)
	if err != nil {
		return fmt.Errorf("unable to add user %v to group %v, cause %w", userID, groupID, err)
	}
	return nil
}

func (s *Store) RemoveMember(ctx context.Context, groupID, userID string) error {
	_, err := s.db.ExecContext(ctx, `delete from group_members where group_id = ? and user_id = ?`,
		groupID, userID)
	if err != nil {
		return fmt.Errorf("unable to remove user %v from group %v, cause %w", userID, groupID, err)
	}
	return nil
}

func (s *Store) IsMember(ctx context.Context, userID, groupID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `select 1 from group_members where user_id = ? and group_id = ? limit 1`,
		userID, groupID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("unable to check membership of user %v in group %v, cause %w", userID, groupID, err)
	}
	return true, nil
}

// GroupMembers lists the public profile of every member, ordered by email.
func (s *Store) GroupMembers(ctx context.Context, groupID string) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `select u.id, u.email, u.name, u.created_at
		from group_members gm
		inner join users u on u.id = gm.user_id
		where gm.group_id = ?
		order by u.email asc`, groupID)
	if err != nil {
		return nil, fmt.Errorf("unable to list members of group %v, cause %w", groupID, err)
	}
	defer rows.Close()
	out := []User{}
	for rows.Next() {
		var u User
		err = rows.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unable to scan member row, cause %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
