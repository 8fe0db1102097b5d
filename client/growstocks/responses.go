package growstocks

import (
	"encoding/json"
	"strconv"
	"time"
)

type envelope interface {
	ok() bool
}

type BaseResponse struct {
	Success bool `json:"success"`
}

func (r BaseResponse) ok() bool {
	return r.Success
}

// User [/auth/user]
type userResponse struct {
	BaseResponse
	User userPayload `json:"user"`
}

type userPayload struct {
	Id      int     `json:"id"`
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	GrowId  string  `json:"growid"`
	Balance int     `json:"balance"`
	// The api sends the discord id as a string.
	DiscordId json.Number `json:"discordID"`
}

func (u *userPayload) toUser() (*User, error) {
	var discordId int64
	if u.DiscordId != "" {
		id, err := strconv.ParseInt(u.DiscordId.String(), 10, 64)
		if err != nil {
			return nil, err
		}
		discordId = id
	}
	return &User{
		Id:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		GrowId:    u.GrowId,
		Balance:   u.Balance,
		DiscordId: discordId,
	}, nil
}

// New transaction [/pay/transaction/create]
type createTransactionResponse struct {
	BaseResponse
	Transaction int `json:"transaction"`
}

// Transaction lookup [/pay/transaction/create with a transaction id]
type transactionResponse struct {
	BaseResponse
	Transaction transactionPayload `json:"transaction"`
}

type transactionPayload struct {
	Id       int         `json:"id"`
	User     int         `json:"user"`
	Party    int         `json:"party"`
	Amount   int         `json:"amount"`
	Status   json.Number `json:"status"`
	DateTime string      `json:"date_time"`
}

func (t *transactionPayload) toTransaction() (*Transaction, error) {
	tx := &Transaction{
		Id:     t.Id,
		User:   User{Id: t.User},
		Party:  t.Party,
		Amount: t.Amount,
	}
	if t.Status != "" {
		status, err := strconv.Atoi(t.Status.String())
		if err != nil {
			return nil, err
		}
		tx.Status = status
	}
	if t.DateTime != "" {
		parsed, err := time.Parse(time.DateTime, t.DateTime)
		if err != nil {
			return nil, err
		}
		tx.Time = parsed
	}
	return tx, nil
}

// SendResponse [/pay/send] is handed back raw; the api documents nothing
// beyond the success flag.
type SendResponse struct {
	BaseResponse
}

// Balance [/pay/balance]
type balanceResponse struct {
	BaseResponse
	Balance json.Number `json:"balance"`
}

func (b *balanceResponse) toBalance() (int, error) {
	if b.Balance == "" {
		return 0, nil
	}
	return strconv.Atoi(b.Balance.String())
}
