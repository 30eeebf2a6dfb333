package repos

import (
	"wealthestate/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PropertyRepo struct{ db *sqlx.DB }

func NewPropertyRepo(db *sqlx.DB) *PropertyRepo { return &PropertyRepo{db: db} }

const propertyCols = `
  id, title, COALESCE(description,'') AS description, price,
  COALESCE(location,'') AS location, type, images_json,
  COALESCE(seller_id,'') AS seller_id, COALESCE(seller_name,'') AS seller_name,
  COALESCE(seller_phone,'') AS seller_phone, COALESCE(seller_email,'') AS seller_email,
  COALESCE(seller_whatsapp,'') AS seller_whatsapp, created_at`

// List returns every listing, newest first.
func (r *PropertyRepo) List() ([]domain.Property, error) {
	var out []domain.Property
	err := r.db.Select(&out, `SELECT `+propertyCols+` FROM properties ORDER BY seq DESC`)
	return out, err
}

// ListByType returns the listings of one property type, newest first.
func (r *PropertyRepo) ListByType(t string) ([]domain.Property, error) {
	var out []domain.Property
	err := r.db.Select(&out, `SELECT `+propertyCols+` FROM properties WHERE type = ? ORDER BY seq DESC`, t)
	return out, err
}

func (r *PropertyRepo) Get(id string) (domain.Property, error) {
	var p domain.Property
	err := r.db.Get(&p, `SELECT `+propertyCols+` FROM properties WHERE id = ?`, id)
	return p, err
}

// Insert stores a new listing. Insertion order is the display order key, so
// the most recent insert is always served first.
func (r *PropertyRepo) Insert(p domain.Property) error {
	_, err := r.db.NamedExec(`INSERT INTO properties(
	    id,title,description,price,location,type,images_json,
	    seller_id,seller_name,seller_phone,seller_email,seller_whatsapp,created_at
	  ) VALUES (
	    :id,:title,:description,:price,:location,:type,:images_json,
	    :seller_id,:seller_name,:seller_phone,:seller_email,:seller_whatsapp,:created_at
	  )`, p)
	return err
}

// Delete removes a listing by id. Deleting an absent id is a no-op.
func (r *PropertyRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM properties WHERE id = ?`, id)
	return err
}

func (r *PropertyRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM properties`)
	return n, err
}
