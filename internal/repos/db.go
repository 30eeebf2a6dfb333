package repos

import (
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A single connection keeps the :memory: database alive for the process
	// lifetime and serializes all writes.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the two demo listings and the sponsored ad if the store is empty.
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Listings. seq preserves insertion order; listings are served newest-first.
CREATE TABLE IF NOT EXISTS properties(
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL CHECK (price >= 0),
  location TEXT,
  type TEXT NOT NULL CHECK (type IN ('HOUSE_SALE','LAND_SALE','WAREHOUSE_SALE','APARTMENT_RENT','HOUSE_RENT')),
  images_json TEXT NOT NULL,
  seller_id TEXT,
  seller_name TEXT,
  seller_phone TEXT,
  seller_email TEXT,
  seller_whatsapp TEXT,
  created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_properties_type ON properties(type);

-- Sponsored ads
CREATE TABLE IF NOT EXISTS ads(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  image_url TEXT NOT NULL,
  link TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  merchant_account TEXT
);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT,
  role TEXT NOT NULL CHECK (role IN ('BUYER','SELLER','AGENT','ADMIN')),
  payment_method TEXT DEFAULT '',
  bank_account TEXT DEFAULT '',
  is_verified INTEGER NOT NULL DEFAULT 0,
  property_count INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM properties`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo listings and ads")
	now := time.Now().UnixMilli()

	tx := db.MustBegin()
	// Inserted land-first so the mansion renders first under newest-first order.
	tx.MustExec(`INSERT INTO properties(
	    id,title,description,price,location,type,images_json,
	    seller_id,seller_name,seller_phone,seller_email,seller_whatsapp,created_at
	  ) VALUES
	  ('2','Prime 10-Acre Industrial Land',
	   'Flat, secure land perfect for multi-purpose development near the main highway.',
	   120000,'Chilanga, Lusaka','LAND_SALE',
	   '["https://images.unsplash.com/photo-1500382017468-9049fed747ef?auto=format&fit=crop&q=80&w=800"]',
	   's2','Sarah Phiri','+260955888999','sarah@owner.com','260955888999',?),
	  ('1','Emerald Park Mansion',
	   'A 6-bedroom masterpiece with marble flooring and a private tennis court.',
	   850000,'Leopards Hill, Lusaka','HOUSE_SALE',
	   '["https://images.unsplash.com/photo-1613490493576-7fde63acd811?auto=format&fit=crop&q=80&w=800"]',
	   's1','Kelvin Mwamba','+260965000111','kelvin@agents.com','260965000111',?)`,
		now, now)

	tx.MustExec(`INSERT INTO ads(id,title,image_url,link,is_active,merchant_account) VALUES
	  ('ad1','Home Furnishing Expo 2025',
	   'https://images.unsplash.com/photo-1556228578-0d85b1a4d571?auto=format&fit=crop&q=80&w=400',
	   '#',1,'ACC-9900')`)

	return tx.Commit()
}
