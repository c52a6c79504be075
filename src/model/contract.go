package model

// Contract identifies the traded instrument the way the gateway expects it.
type Contract struct {
	Symbol   string `json:"symbol"`
	SecType  string `json:"secType"`
	Exchange string `json:"exchange"`
	Currency string `json:"currency"`
}
