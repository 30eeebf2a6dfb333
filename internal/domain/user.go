package domain

const (
	RoleBuyer  = "BUYER"
	RoleSeller = "SELLER"
	RoleAgent  = "AGENT"
	RoleAdmin  = "ADMIN"
)

const (
	PayBankTransfer = "BANK_TRANSFER"
	PayCreditCard   = "CREDIT_CARD"
	PayPayPal       = "PAYPAL"
	PayMobileMoney  = "MOBILE_MONEY"
)

type User struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`
	Role          string `db:"role"`
	PaymentMethod string `db:"payment_method"`
	BankAccount   string `db:"bank_account"`
	IsVerified    bool   `db:"is_verified"`
	PropertyCount int    `db:"property_count"`
}

// IsAdmin reports whether the user holds the administrative role.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
