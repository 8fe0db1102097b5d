package growstocks

import "time"

// User is an end user profile fetched from the api. Fields outside the
// requested scopes are left at their zero values; Email is nil when the
// account has no email on record.
type User struct {
	Id        int
	Name      string
	Email     *string
	GrowId    string
	Balance   int
	DiscordId int64
}

// Transaction is a payment event. Create responses carry only the id; the
// remaining fields are populated by Pay.FetchTransaction. User holds just
// the id unless the api returned more.
type Transaction struct {
	Id     int
	User   User
	Party  int
	Amount int
	Status int
	Time   time.Time
}

// Paid reports whether the transaction has been paid for.
func (t *Transaction) Paid() bool {
	return t.Status != 0
}
