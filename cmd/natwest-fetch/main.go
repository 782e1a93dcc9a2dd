package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	natwest "github.com/openbanking-go/natwest-sandbox"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		envFile  string
		proxy    string
		txnLimit int
		timeout  time.Duration
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:          "natwest-fetch",
		Short:        "Fetch accounts, balances and transactions from the NatWest Open Banking sandbox",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetFormatter(&logrus.TextFormatter{
				FullTimestamp: true,
			})
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			creds, err := natwest.LoadCredentials(envFile)
			if err != nil {
				return err
			}

			session := natwest.NewSession(creds).
				WithTransactionLimit(txnLimit).
				WithTimeout(timeout)
			session.SetBaseURLs(os.Getenv("NATWEST_API_BASE_URL"), os.Getenv("NATWEST_AUTH_BASE_URL"))
			if proxy != "" {
				if err := session.SetProxy(proxy); err != nil {
					return err
				}
			}

			logrus.WithFields(logrus.Fields{
				"environment": "sandbox",
				"api_version": natwest.APIVersion,
				"test_user":   creds.TestUsername,
			}).Info("Starting account fetch")

			report, err := session.Run(cmd.Context())
			if err != nil {
				return err
			}

			natwest.Render(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "path to a .env file with credentials (default: ./.env)")
	cmd.Flags().StringVar(&proxy, "proxy", "", "http(s) or socks5 proxy for all requests")
	cmd.Flags().IntVar(&txnLimit, "transactions", natwest.DefaultTransactionLimit, "number of recent transactions to show per account")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-request timeout (default 10s)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
