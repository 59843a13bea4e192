package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type (
	// Store owns every table of the trip platform. User and session rows
	// are never touched by any other component.
	Store struct {
		db *sql.DB
	}
)

func openStoreDatabase(ctx context.Context, dir string) (*sql.DB, error) {
	dbfile := filepath.Join(dir, "tripstack.db")
	err := os.MkdirAll(filepath.Dir(dbfile), 0755)
	if err != nil {
		return nil, fmt.Errorf("unable to create directory %v to hold the store, cause %w", dir, err)
	}
	connstr := fmt.Sprintf("file:%v?_journal=wal&_foreign_keys=on&mode=rwc", dbfile)
	conn, err := sql.Open("sqlite3", connstr)
	if err != nil {
		return nil, fmt.Errorf("unable to open %v, cause %w", dbfile, err)
	}
	err = conn.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to ping store %v, cause %w", dbfile, err)
	}
	return conn, nil
}

// Open loads (creating when missing) the store kept under dir.
func Open(ctx context.Context, dir string) (*Store, error) {
	conn, err := openStoreDatabase(ctx, dir)
	if err != nil {
		return nil, err
	}
	s := &Store{db: conn}
	err = s.init(ctx)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to init store %v, cause %w", dir, err)
	}
	return s, nil
}

func (s *Store) init(ctx context.Context) error {
	for _, cmd := range []string{
		`create table if not exists users(
			id text not null primary key,
			email text not null unique,
			email_hash64 integer not null,
			name text,
			created_at integer not null,
			password_salt text,
			password_hash text,
			password_iters integer
		)`,
		`create index if not exists idx_users_email_hash64
			on users(email_hash64)
		`,
		`create table if not exists user_sessions(
			token text not null primary key,
			user_id text not null,
			created_at integer not null,
			expires_at integer not null,
			revoked_at integer,
			foreign key (user_id) references users(id)
		)`,
		`create table if not exists brands(
			id text not null primary key,
			name text not null,
			facebook_url text,
			instagram_url text,
			twitter_url text,
			tiktok_url text
		)`,
		`create table if not exists groups(
			id text not null primary key,
			name text not null,
			capacity integer,
			brand_id text,
			leader_user_id text,
			is_public integer not null default 0
		)`,
		`create table if not exists group_members(
			group_id text not null,
			user_id text not null,
			primary key (group_id, user_id)
		)`,
		`create table if not exists payment_links(
			id text not null primary key,
			group_id text not null,
			label text not null,
			vendor_url text not null,
			due_at integer
		)`,
		`create table if not exists trips(
			id text not null primary key,
			group_id text not null,
			title text not null,
			start_date integer,
			end_date integer,
			notes text,
			is_public integer not null default 0,
			has_cruise integer not null default 0,
			has_flights integer not null default 0,
			has_hotel integer not null default 0,
			has_all_inclusive integer not null default 0
		)`,
		`create index if not exists idx_trips_group_id
			on trips(group_id)
		`,
		`create table if not exists cruise_cabins(
			id text not null primary key,
			trip_id text not null,
			cabin_no text,
			category text,
			deck text,
			guests integer,
			price_cents integer,
			notes text
		)`,
		`create table if not exists flight_segments(
			id text not null primary key,
			trip_id text not null,
			carrier text,
			flight_no text,
			depart_airport text,
			arrive_airport text,
			depart_ts integer,
			arrive_ts integer,
			record_locator text
		)`,
		`create table if not exists hotel_rooms(
			id text not null primary key,
			trip_id text not null,
			hotel_name text,
			room_type text,
			check_in_ts integer,
			check_out_ts integer,
			occupants integer,
			confirmation text
		)`,
		`create table if not exists ai_packages(
			id text not null primary key,
			trip_id text not null,
			resort_name text,
			plan_name text,
			check_in_ts integer,
			check_out_ts integer,
			occupants integer,
			confirmation text
		)`,
		`create table if not exists trip_submissions(
			id text not null primary key,
			group_id text not null,
			title text not null,
			start_date integer,
			end_date integer,
			notes text,
			created_at integer not null
		)`,
	} {
		_, err := s.db.ExecContext(ctx, cmd)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
