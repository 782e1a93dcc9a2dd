package natwest

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Credentials identifies the registered sandbox application and the test
// customer. All fields are required and immutable for a run.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	TestUsername string
}

// LoadCredentials reads credentials from the environment, optionally
// loading a .env file first. An empty envFile loads ".env" from the
// working directory if present.
func LoadCredentials(envFile string) (Credentials, error) {
	var err error
	if envFile != "" {
		err = godotenv.Load(envFile)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		logrus.WithError(err).Debug("No .env file loaded, relying on process environment")
	}

	creds := Credentials{
		ClientID:     os.Getenv("NATWEST_CLIENT_ID"),
		ClientSecret: os.Getenv("NATWEST_CLIENT_SECRET"),
		RedirectURI:  os.Getenv("NATWEST_REDIRECT_URI"),
		TestUsername: os.Getenv("NATWEST_TEST_USERNAME"),
	}
	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// Validate reports every required field that is missing.
func (c Credentials) Validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "NATWEST_CLIENT_ID")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "NATWEST_CLIENT_SECRET")
	}
	if c.RedirectURI == "" {
		missing = append(missing, "NATWEST_REDIRECT_URI")
	}
	if c.TestUsername == "" {
		missing = append(missing, "NATWEST_TEST_USERNAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing credentials: %s", strings.Join(missing, ", "))
	}
	return nil
}

// AuthorizationUsername is the test customer number qualified with the
// sandbox user domain.
func (c Credentials) AuthorizationUsername() string {
	return c.TestUsername + sandboxUserDomain
}
