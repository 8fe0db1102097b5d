package growstocks

import (
	"net/url"
	"strconv"
)

// Pay issues requests against the pay endpoints. Not meant to be used
// outside a Client, reach it through Client.Pay.
type Pay struct {
	client *Client
}

// CreateTransaction opens a transaction requesting amount world locks from
// the given user. The api caps notes at 50 chars.
func (p *Pay) CreateTransaction(user User, amount int, notes string) (*Transaction, error) {
	form := url.Values{}
	form.Set("secret", p.client.config.Secret)
	form.Set("user", strconv.Itoa(user.Id))
	form.Set("amount", strconv.Itoa(amount))
	if notes != "" {
		form.Set("notes", notes)
	}
	var rsp createTransactionResponse
	if err := p.client.postForm(transactionEndpoint, form, &rsp); err != nil {
		return nil, err
	}
	return &Transaction{Id: rsp.Transaction}, nil
}

// FetchTransaction fetches the current state of a previously created
// transaction.
func (p *Pay) FetchTransaction(tx *Transaction) (*Transaction, error) {
	form := url.Values{}
	form.Set("secret", p.client.config.Secret)
	form.Set("transaction", strconv.Itoa(tx.Id))
	var rsp transactionResponse
	if err := p.client.postForm(transactionEndpoint, form, &rsp); err != nil {
		return nil, err
	}
	return rsp.Transaction.toTransaction()
}

// PaymentUrl builds the url to send a user to for paying a transaction. An
// empty redirectUri falls back to the configured default redirect.
func (p *Pay) PaymentUrl(tx *Transaction, redirectUri string) (string, error) {
	redirectUri, err := p.client.resolveRedirect(redirectUri, p.client.config.Redirects.Pay)
	if err != nil {
		return "", err
	}
	params := url.Values{}
	params.Set("client", strconv.Itoa(p.client.config.ClientId))
	params.Set("redirect_uri", encodeRedirect(redirectUri))
	params.Set("transaction", strconv.Itoa(tx.Id))
	return payUrl + "?" + params.Encode(), nil
}

// Send transfers world locks from the developer account to a user.
func (p *Pay) Send(user User, amount int, notes string) (*SendResponse, error) {
	form := url.Values{}
	form.Set("secret", p.client.config.Secret)
	form.Set("party", strconv.Itoa(user.Id))
	form.Set("amount", strconv.Itoa(amount))
	form.Set("notes", notes)
	var rsp SendResponse
	if err := p.client.postForm(sendEndpoint, form, &rsp); err != nil {
		return nil, err
	}
	return &rsp, nil
}

// Balance returns the developer account's world lock balance.
func (p *Pay) Balance() (int, error) {
	form := url.Values{}
	form.Set("secret", p.client.config.Secret)
	var rsp balanceResponse
	if err := p.client.postForm(balanceEndpoint, form, &rsp); err != nil {
		return 0, err
	}
	return rsp.toBalance()
}
