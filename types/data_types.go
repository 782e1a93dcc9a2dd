package types

// Amount is a monetary value as the API returns it: a decimal string plus
// an ISO currency code.
type Amount struct {
	Amount   string `json:"Amount"`
	Currency string `json:"Currency"`
}

// AccountNumber holds the scheme-qualified account identification.
type AccountNumber struct {
	SchemeName     string `json:"SchemeName"`
	Identification string `json:"Identification"`
	Name           string `json:"Name,omitempty"`
}

type Account struct {
	AccountID      string          `json:"AccountId"`
	Currency       string          `json:"Currency"`
	AccountType    string          `json:"AccountType"`
	AccountSubType string          `json:"AccountSubType"`
	Nickname       string          `json:"Nickname,omitempty"`
	Status         string          `json:"Status,omitempty"`
	Account        []AccountNumber `json:"Account,omitempty"`
}

type Balance struct {
	AccountID            string `json:"AccountId"`
	Type                 string `json:"Type"`
	CreditDebitIndicator string `json:"CreditDebitIndicator"`
	DateTime             string `json:"DateTime,omitempty"`
	Amount               Amount `json:"Amount"`
}

type Transaction struct {
	AccountID              string `json:"AccountId"`
	TransactionReference   string `json:"TransactionReference,omitempty"`
	CreditDebitIndicator   string `json:"CreditDebitIndicator"`
	Status                 string `json:"Status,omitempty"`
	BookingDateTime        string `json:"BookingDateTime,omitempty"`
	TransactionInformation string `json:"TransactionInformation,omitempty"`
	Amount                 Amount `json:"Amount"`
}

// ConsentRequest is the body posted to the account-access-consents endpoint.
type ConsentRequest struct {
	Data ConsentRequestData `json:"Data"`
	Risk map[string]any     `json:"Risk"`
}

type ConsentRequestData struct {
	Permissions []string `json:"Permissions"`
}

// ConsentResponse is the resource returned for a created consent. Status
// starts at AwaitingAuthorisation and moves to Authorised once the sandbox
// approves it.
type ConsentResponse struct {
	Data ConsentResponseData `json:"Data"`
}

type ConsentResponseData struct {
	ConsentID        string   `json:"ConsentId"`
	Status           string   `json:"Status"`
	CreationDateTime string   `json:"CreationDateTime"`
	Permissions      []string `json:"Permissions"`
}

// AuthorizeResponse is the JSON body the sandbox returns in AUTO_POSTMAN
// mode; the authorization code is embedded in RedirectURI.
type AuthorizeResponse struct {
	RedirectURI string `json:"redirectUri"`
}

type AccountsResponse struct {
	Data AccountsData `json:"Data"`
}

type AccountsData struct {
	Account []Account `json:"Account"`
}

type BalancesResponse struct {
	Data BalancesData `json:"Data"`
}

type BalancesData struct {
	Balance []Balance `json:"Balance"`
}

type TransactionsResponse struct {
	Data TransactionsData `json:"Data"`
}

type TransactionsData struct {
	Transaction []Transaction `json:"Transaction"`
}
