package natwest

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/openbanking-go/natwest-sandbox/types"
)

// Accounts lists the accounts visible to the user token.
func (s *Session) Accounts(ctx context.Context) ([]types.Account, error) {
	if s.dataClient == nil {
		return nil, &DataFetchError{Err: errors.New("no user access token issued")}
	}

	var resp types.AccountsResponse
	if err := s.dataClient.Get(ctx, s.aispURL("accounts"), nil, nil, &resp); err != nil {
		return nil, &DataFetchError{Err: err}
	}
	logrus.WithField("count", len(resp.Data.Account)).Info("Accounts retrieved")
	return resp.Data.Account, nil
}

// Balances lists the balances of one account.
func (s *Session) Balances(ctx context.Context, accountID string) ([]types.Balance, error) {
	if s.dataClient == nil {
		return nil, &DataFetchError{Err: errors.New("no user access token issued")}
	}

	url := s.aispURL(fmt.Sprintf("accounts/%s/balances", accountID))
	var resp types.BalancesResponse
	if err := s.dataClient.Get(ctx, url, nil, nil, &resp); err != nil {
		return nil, &DataFetchError{Err: err}
	}
	return resp.Data.Balance, nil
}

// Transactions lists the most recent transactions of one account, capped
// at the session's transaction limit.
func (s *Session) Transactions(ctx context.Context, accountID string) ([]types.Transaction, error) {
	if s.dataClient == nil {
		return nil, &DataFetchError{Err: errors.New("no user access token issued")}
	}

	url := s.aispURL(fmt.Sprintf("accounts/%s/transactions", accountID))
	var resp types.TransactionsResponse
	if err := s.dataClient.Get(ctx, url, nil, nil, &resp); err != nil {
		return nil, &DataFetchError{Err: err}
	}
	txns := resp.Data.Transaction
	if len(txns) > s.txnLimit {
		txns = txns[:s.txnLimit]
	}
	return txns, nil
}
