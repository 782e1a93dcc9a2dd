package natwest

const (
	// BaseURL is the sandbox Account & Transaction API host.
	BaseURL = "https://ob.sandbox.natwest.com"
	// AuthBaseURL is the sandbox authorization host.
	AuthBaseURL = "https://api.sandbox.natwest.com"
	// APIVersion selects the Open Banking Read/Write API version.
	APIVersion = "v4.0"

	// sandboxUserDomain is appended to the test customer number to form the
	// authorization_username the sandbox expects.
	sandboxUserDomain = "@55b21c17-7172-4105-8eff-750fe83efef9.example.org"

	// DefaultTransactionLimit is how many recent transactions are kept per
	// account.
	DefaultTransactionLimit = 5
)

// Authorization modes understood by the sandbox. AUTO_POSTMAN answers with
// a JSON body carrying the redirect URI; AUTO answers with a plain redirect.
const (
	AuthModeAuto        = "AUTO"
	AuthModeAutoPostman = "AUTO_POSTMAN"
)

// ConsentPermissions is the fixed permission set requested for the consent.
var ConsentPermissions = []string{
	"ReadAccountsDetail",
	"ReadBalances",
	"ReadTransactionsCredits",
	"ReadTransactionsDebits",
	"ReadTransactionsDetail",
	"ReadProducts",
	"ReadBeneficiariesDetail",
	"ReadDirectDebits",
	"ReadOffers",
	"ReadScheduledPaymentsDetail",
	"ReadStandingOrdersDetail",
	"ReadStatementsDetail",
}
