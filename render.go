package natwest

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/openbanking-go/natwest-sandbox/types"
)

const rule = "============================================================"

// Render writes the report as plain terminal text.
func Render(w io.Writer, report *Report) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "ACCOUNT DETAILS")
	fmt.Fprintln(w, rule)

	for idx, detail := range report.Accounts {
		account := detail.Account

		fmt.Fprintf(w, "\nACCOUNT #%d\n", idx+1)
		fmt.Fprintln(w, strings.Repeat("-", 60))
		fmt.Fprintf(w, "  Account ID:   %s\n", account.AccountID)
		fmt.Fprintf(w, "  Type:         %s / %s\n", account.AccountType, account.AccountSubType)
		fmt.Fprintf(w, "  Currency:     %s\n", account.Currency)
		if account.Nickname != "" {
			fmt.Fprintf(w, "  Nickname:     %s\n", account.Nickname)
		}
		if account.Status != "" {
			fmt.Fprintf(w, "  Status:       %s\n", account.Status)
		}
		for _, number := range account.Account {
			fmt.Fprintf(w, "  Account Number:\n")
			fmt.Fprintf(w, "    Scheme:         %s\n", number.SchemeName)
			fmt.Fprintf(w, "    Identification: %s\n", number.Identification)
			if number.Name != "" {
				fmt.Fprintf(w, "    Name:           %s\n", number.Name)
			}
		}

		if len(detail.Balances) > 0 {
			fmt.Fprintf(w, "\n  Balances:\n")
			for _, balance := range detail.Balances {
				fmt.Fprintf(w, "    %s: %s (%s)", balance.Type, formatAmount(balance.Amount, ""), balance.CreditDebitIndicator)
				if balance.DateTime != "" {
					fmt.Fprintf(w, " at %s", balance.DateTime)
				}
				fmt.Fprintln(w)
			}
		}

		if len(detail.Transactions) > 0 {
			fmt.Fprintf(w, "\n  Recent Transactions (last %d):\n", len(detail.Transactions))
			for i, txn := range detail.Transactions {
				fmt.Fprintf(w, "    %d. %s  %s  %s\n", i+1, txn.BookingDateTime, formatAmount(txn.Amount, txn.CreditDebitIndicator), txn.CreditDebitIndicator)
				if txn.TransactionInformation != "" {
					fmt.Fprintf(w, "       %s\n", txn.TransactionInformation)
				}
				if txn.TransactionReference != "" {
					fmt.Fprintf(w, "       Reference: %s\n", txn.TransactionReference)
				}
			}
		}
		fmt.Fprintln(w)
	}

	if len(report.Problems) > 0 {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, "PARTIAL RESULTS")
		fmt.Fprintln(w, rule)
		for _, problem := range report.Problems {
			fmt.Fprintf(w, "  - %s\n", problem)
		}
	}
}

// formatAmount renders a monetary amount with its currency, prefixing a
// sign when a credit/debit indicator is given. Unparseable amounts are
// shown as the server sent them.
func formatAmount(amount types.Amount, indicator string) string {
	sign := ""
	switch indicator {
	case "Credit":
		sign = "+"
	case "Debit":
		sign = "-"
	}
	value, err := decimal.NewFromString(amount.Amount)
	if err != nil {
		return fmt.Sprintf("%s%s %s", sign, amount.Currency, amount.Amount)
	}
	return fmt.Sprintf("%s%s %s", sign, amount.Currency, value.StringFixed(2))
}
