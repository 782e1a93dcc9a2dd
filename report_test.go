package natwest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/openbanking-go/natwest-sandbox/httpwrap"
)

// withUserToken equips the session with a data client as if the code
// exchange had completed.
func withUserToken(s *Session, token string) *Session {
	s.userToken = token
	s.dataClient = httpwrap.NewClient().WithBearerToken(token)
	return s
}

func TestFetchReport_PartialBalanceFailure(t *testing.T) {
	session, mux, teardown := newTestSession(t)
	defer teardown()
	withUserToken(session, "T2")

	mux.HandleFunc("/open-banking/v4.0/aisp/accounts", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"Data":{"Account":[{"AccountId":"A1","Currency":"GBP","AccountType":"Personal","AccountSubType":"CurrentAccount"}]}}`)
	})
	mux.HandleFunc("/open-banking/v4.0/aisp/accounts/A1/balances", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"Message":"balance service unavailable"}`)
	})
	mux.HandleFunc("/open-banking/v4.0/aisp/accounts/A1/transactions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"Data":{"Transaction":[{"AccountId":"A1","CreditDebitIndicator":"Credit","Amount":{"Amount":"25.00","Currency":"GBP"}},{"AccountId":"A1","CreditDebitIndicator":"Debit","Amount":{"Amount":"10.50","Currency":"GBP"}}]}}`)
	})

	report, err := session.FetchReport(context.Background())
	if err != nil {
		t.Fatalf("FetchReport returned an error: %v", err)
	}
	if len(report.Accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(report.Accounts))
	}
	if report.Accounts[0].Balances != nil {
		t.Errorf("expected no balances, got %+v", report.Accounts[0].Balances)
	}
	if len(report.Accounts[0].Transactions) != 2 {
		t.Errorf("expected 2 transactions, got %d", len(report.Accounts[0].Transactions))
	}
	if len(report.Problems) != 1 {
		t.Fatalf("expected 1 problem note, got %d: %v", len(report.Problems), report.Problems)
	}
	if !strings.Contains(report.Problems[0], "balances for account A1") {
		t.Errorf("unexpected problem note %q", report.Problems[0])
	}
	if !strings.Contains(report.Problems[0], "balance service unavailable") {
		t.Errorf("expected the server payload in the problem note, got %q", report.Problems[0])
	}
}

func TestFetchReport_AccountsFailureIsFatal(t *testing.T) {
	session, mux, teardown := newTestSession(t)
	defer teardown()
	withUserToken(session, "T2")

	mux.HandleFunc("/open-banking/v4.0/aisp/accounts", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"Message":"boom"}`)
	})

	report, err := session.FetchReport(context.Background())
	if report != nil {
		t.Errorf("expected no report, got %+v", report)
	}
	var fetchErr *DataFetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected DataFetchError, got %T: %v", err, err)
	}
}

func TestTransactions_LimitApplied(t *testing.T) {
	session, mux, teardown := newTestSession(t)
	defer teardown()
	withUserToken(session, "T2")
	session.WithTransactionLimit(3)

	mux.HandleFunc("/open-banking/v4.0/aisp/accounts/A1/transactions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"Data":{"Transaction":[`+
			`{"AccountId":"A1","Amount":{"Amount":"1.00","Currency":"GBP"}},`+
			`{"AccountId":"A1","Amount":{"Amount":"2.00","Currency":"GBP"}},`+
			`{"AccountId":"A1","Amount":{"Amount":"3.00","Currency":"GBP"}},`+
			`{"AccountId":"A1","Amount":{"Amount":"4.00","Currency":"GBP"}},`+
			`{"AccountId":"A1","Amount":{"Amount":"5.00","Currency":"GBP"}}]}}`)
	})

	txns, err := session.Transactions(context.Background(), "A1")
	if err != nil {
		t.Fatalf("Transactions returned an error: %v", err)
	}
	if len(txns) != 3 {
		t.Errorf("expected 3 transactions, got %d", len(txns))
	}
	if txns[0].Amount.Amount != "1.00" {
		t.Errorf("expected the most recent transactions to be kept, got %+v", txns[0])
	}
}

func TestAccounts_RequiresUserToken(t *testing.T) {
	session, _, teardown := newTestSession(t)
	defer teardown()

	_, err := session.Accounts(context.Background())
	var fetchErr *DataFetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected DataFetchError, got %T: %v", err, err)
	}
}
