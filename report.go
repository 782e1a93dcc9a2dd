package natwest

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/openbanking-go/natwest-sandbox/types"
)

// Report holds everything retrieved for the test user. Problems records
// per-account fetch failures that did not abort the run.
type Report struct {
	Accounts []AccountDetail
	Problems []string
}

// AccountDetail groups an account with its balances and recent
// transactions. Either slice may be nil when that call failed; the failure
// is recorded in the report's Problems.
type AccountDetail struct {
	Account      types.Account
	Balances     []types.Balance
	Transactions []types.Transaction
}

// FetchReport retrieves accounts, then balances and transactions per
// account. A balances or transactions failure is noted and retrieval
// continues; a failure listing accounts is fatal since there is nothing to
// display.
func (s *Session) FetchReport(ctx context.Context) (*Report, error) {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, account := range accounts {
		detail := AccountDetail{Account: account}

		balances, err := s.Balances(ctx, account.AccountID)
		if err != nil {
			note := fmt.Sprintf("balances for account %s: %v", account.AccountID, err)
			logrus.WithField("account_id", account.AccountID).WithError(err).Warn("Skipping balances")
			report.Problems = append(report.Problems, note)
		} else {
			detail.Balances = balances
		}

		transactions, err := s.Transactions(ctx, account.AccountID)
		if err != nil {
			note := fmt.Sprintf("transactions for account %s: %v", account.AccountID, err)
			logrus.WithField("account_id", account.AccountID).WithError(err).Warn("Skipping transactions")
			report.Problems = append(report.Problems, note)
		} else {
			detail.Transactions = transactions
		}

		report.Accounts = append(report.Accounts, detail)
	}
	return report, nil
}
