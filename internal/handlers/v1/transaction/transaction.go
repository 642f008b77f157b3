package transaction

// Transaction is the API response model for a ledger entry.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID        int64  `json:"id" doc:"Transaction ID"`
	UserPhone string `json:"userPhone" doc:"Owning user's phone number"`
	Amount    string `json:"amount" doc:"Signed decimal amount"`
	Category  string `json:"category" doc:"Category label"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}
