package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type (
	BrandSocials struct {
		FacebookURL  *string `json:"facebook_url"`
		InstagramURL *string `json:"instagram_url"`
		TwitterURL   *string `json:"twitter_url"`
		TiktokURL    *string `json:"tiktok_url"`
	}
)

// BrandSocials returns the social links of the brand, or an all-null
// record when the brand has no row yet.
func (s *Store) BrandSocials(ctx context.Context, brandID string) (BrandSocials, error) {
	var b BrandSocials
	err := s.db.QueryRowContext(ctx, `select facebook_url, instagram_url, twitter_url, tiktok_url
		from brands where id = ?`, brandID).
		Scan(&b.FacebookURL, &b.InstagramURL, &b.TwitterURL, &b.TiktokURL)
	if errors.Is(err, sql.ErrNoRows) {
		return BrandSocials{}, nil
	} else if err != nil {
		return BrandSocials{}, fmt.Errorf("unable to load socials of brand %v, cause %w", brandID, err)
	}
	return b, nil
}

// UpsertBrandSocials creates the brand row when missing and merges the
// non-nil links over the stored ones.
func (s *Store) UpsertBrandSocials(ctx context.Context, brandID string, b BrandSocials) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unable to open transaction, cause %w", err)
	}
	defer tx.Rollback()
	_, err = tx.ExecContext(ctx, `insert or ignore into brands (id, name) values (?, ?)`, brandID, "Unnamed Brand")
	if err != nil {
		return fmt.Errorf("unable to ensure brand %v exists, cause %w", brandID, err)
	}
	_, err = tx.ExecContext(ctx, `update brands
		set facebook_url  = coalesce(?, facebook_url),
			instagram_url = coalesce(?, instagram_url),
			twitter_url   = coalesce(?, twitter_url),
			tiktok_url    = coalesce(?, tiktok_url)
		where id = ?`,
		b.FacebookURL, b.InstagramURL, b.TwitterURL, b.TiktokURL, brandID)
	if err != nil {
		return fmt.Errorf("unable to update socials of brand %v, cause %w", brandID, err)
	}
	return tx.Commit()
}
