package growstocks

const (
	defaultApiUrl = "https://api.growstocks.xyz/v1"
	authorizeUrl  = "https://auth.growstocks.xyz/user/authorize"
	payUrl        = "https://pay.growstocks.xyz/pay"

	userEndpoint = "/auth/user"
	// The api reads /pay/transaction/create as both create and lookup,
	// keyed on whether the form carries a transaction id.
	transactionEndpoint = "/pay/transaction/create"
	sendEndpoint        = "/pay/send"
	balanceEndpoint     = "/pay/balance"
)
