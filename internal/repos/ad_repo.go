package repos

import (
	"wealthestate/internal/domain"

	"github.com/jmoiron/sqlx"
)

type AdRepo struct{ db *sqlx.DB }

func NewAdRepo(db *sqlx.DB) *AdRepo { return &AdRepo{db: db} }

func (r *AdRepo) List() ([]domain.Ad, error) {
	var out []domain.Ad
	err := r.db.Select(&out, `
	  SELECT id, title, image_url, COALESCE(link,'') AS link, is_active,
	         COALESCE(merchant_account,'') AS merchant_account
	  FROM ads ORDER BY id`)
	return out, err
}

func (r *AdRepo) ListActive() ([]domain.Ad, error) {
	var out []domain.Ad
	err := r.db.Select(&out, `
	  SELECT id, title, image_url, COALESCE(link,'') AS link, is_active,
	         COALESCE(merchant_account,'') AS merchant_account
	  FROM ads WHERE is_active = 1 ORDER BY id`)
	return out, err
}

// Toggle flips the active flag for the current session; nothing persists.
func (r *AdRepo) Toggle(id string) error {
	_, err := r.db.Exec(`UPDATE ads SET is_active = 1 - is_active WHERE id = ?`, id)
	return err
}
