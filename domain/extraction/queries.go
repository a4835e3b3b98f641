package extraction

// Aliases the identity validator depends on.
const (
	AliasSurname     = "Surname"
	AliasGivenName   = "GivenName"
	AliasDateOfBirth = "DateOfBirth"
	AliasIssueDate   = "IssueDate"
	AliasExpireDate  = "ExpireDate"
	AliasSex         = "Sex"
	AliasAge         = "Age"
)

// IdentityDocumentQueries is the built-in query set for passports, identity
// cards and driving licences.
func IdentityDocumentQueries() []Query {
	return []Query{
		{Alias: AliasSurname, Text: "What's the surname?"},
		{Alias: AliasGivenName, Text: "What's the given name?"},
		{Alias: "MiddleName", Text: "What's the middle name?"},
		{Alias: AliasDateOfBirth, Text: "What's the date of birthday?"},
		{Alias: AliasIssueDate, Text: "What's the issue date?"},
		{Alias: AliasExpireDate, Text: "What's the expire date?"},
		{Alias: "StreetAndNumber", Text: "What's the street and number?"},
		{Alias: "City", Text: "What's the city?"},
		{Alias: "PostalCode", Text: "What's the postal code?"},
		{Alias: "DrivingLicenceNumber", Text: "What's the Driving Licence Number?"},
		{Alias: "PassportNumber", Text: "What's the passport Number?"},
		{Alias: AliasSex, Text: "What's the sex?"},
		{Alias: "Country", Text: "What's the country?"},
		{Alias: "PlaceOfBirth", Text: "What's the place of birth in the passport?"},
	}
}

// VehicleFinanceQueries is the built-in query set for vehicle finance
// agreements. It exceeds the backend's per-request query limit on purpose;
// callers chunk it before submission.
func VehicleFinanceQueries() []Query {
	return []Query{
		{Alias: "customerName", Text: "What's the name of customer?"},
		{Alias: "customerAddress", Text: "What's the address of customer?"},
		{Alias: "registrationNumber", Text: "What's the registration number?"},
		{Alias: "firstRegistered", Text: "When's the first registered of Vehicle?"},
		{Alias: "lenderName", Text: "What's the name of lender?"},
		{Alias: "lenderAddress", Text: "What's the address of lender?"},
		{Alias: "creditIntermediaryName", Text: "What's the name of Credit Intermediary?"},
		{Alias: "creditIntermediaryAddress", Text: "What's the address of Credit Intermediary?"},
		{Alias: "totalCashPrice", Text: "How much is the total cash Price of goods?"},
		{Alias: "advancePaymentCash", Text: "How much is the Advance Payment (Cash)?"},
		{Alias: "advancePaymentPartExchange", Text: "How much is the Advance Payment (Part Exchange)?"},
		{Alias: "amountOfCredit", Text: "How much is the amount of credit?"},
		{Alias: "financeCharges", Text: "How much is the Plus Finance Charges of Interest, Acceptance Fee, Purchase Fee?"},
		{Alias: "totalAmountPayable", Text: "How much is the Total Amount Payable?"},
		{Alias: "aprRate", Text: "How much is the percent of APR?"},
		{Alias: "agreementDuration", Text: "How many months are the Duration of agreement?"},
		{Alias: "finalMonthPayment", Text: "How much is the final month payment?"},
		{Alias: "monthlyPayments", Text: "How much is the monthly Payments?"},
		{Alias: "signatureDate", Text: "When was the signature on behalf of the lender made?"},
		{Alias: "agreementNumber", Text: "What's the agreement Number of contract document?"},
		{Alias: "vehicleMakeModel", Text: "What's the Make/Model of vehicle?"},
		{Alias: "vehicleVIN", Text: "What's the VIN number?"},
	}
}
