package repos

import (
	"wealthestate/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

// Upsert writes a user record. Login re-synthesizes the demo and admin
// accounts on every submit, so a conflicting id is overwritten wholesale.
func (r *UserRepo) Upsert(u domain.User) error {
	_, err := r.DB.NamedExec(`INSERT INTO users(
	    id,name,email,phone,role,payment_method,bank_account,is_verified,property_count
	  ) VALUES (
	    :id,:name,:email,:phone,:role,:payment_method,:bank_account,:is_verified,:property_count
	  )
	  ON CONFLICT(id) DO UPDATE SET
	    name=excluded.name, email=excluded.email, phone=excluded.phone,
	    role=excluded.role, payment_method=excluded.payment_method,
	    bank_account=excluded.bank_account, is_verified=excluded.is_verified,
	    property_count=excluded.property_count`, u)
	return err
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
	  SELECT id,name,email,COALESCE(phone,'') AS phone,role,
	         COALESCE(payment_method,'') AS payment_method,
	         COALESCE(bank_account,'') AS bank_account,
	         is_verified,property_count
	  FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// IncrementPropertyCount bumps the owned-listing counter. The counter only
// ever goes up; there is no owner-side delete path.
func (r *UserRepo) IncrementPropertyCount(id string) error {
	_, err := r.DB.Exec(`UPDATE users SET property_count = property_count + 1 WHERE id=?`, id)
	return err
}

func (r *UserRepo) BindSession(sid, userID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,user_id,last_seen)
	                      VALUES(?,?,CURRENT_TIMESTAMP)
	                      ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`, sid, userID)
	return err
}

func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
	  SELECT u.id,u.name,u.email,COALESCE(u.phone,'') AS phone,u.role,
	         COALESCE(u.payment_method,'') AS payment_method,
	         COALESCE(u.bank_account,'') AS bank_account,
	         u.is_verified,u.property_count
	  FROM sessions s
	  JOIN users u ON u.id=s.user_id
	  WHERE s.id=?`, sid)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET user_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
