package domain

type Ad struct {
	ID              string `db:"id"`
	Title           string `db:"title"`
	ImageURL        string `db:"image_url"`
	Link            string `db:"link"`
	IsActive        bool   `db:"is_active"`
	MerchantAccount string `db:"merchant_account"`
}
