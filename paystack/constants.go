package paystack

// Endpoint path roots for the resource groups.
const (
	customerEndpoint     = "/customer/"
	subscriptionEndpoint = "/subscription/"
	subaccountEndpoint   = "/subaccount/"
	dedicatedEndpoint    = "/dedicated_account/"
	chargeEndpoint       = "/charge/"
	refundEndpoint       = "/refund/"
	settlementEndpoint   = "/settlement/"
	recipientEndpoint    = "/transferrecipient/"
)

// Currency is a settlement currency supported by Paystack.
type Currency string

// Currencies supported by Paystack.
const (
	CurrencyGHS Currency = "GHS"
	CurrencyKES Currency = "KES"
	CurrencyNGN Currency = "NGN"
	CurrencyUSD Currency = "USD"
	CurrencyZAR Currency = "ZAR"
)

// Valid reports whether the currency is one Paystack supports.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyGHS, CurrencyKES, CurrencyNGN, CurrencyUSD, CurrencyZAR:
		return true
	}
	return false
}

// RiskAction controls whether a customer is whitelisted or blacklisted.
type RiskAction string

const (
	RiskActionDefault RiskAction = "default"
	RiskActionAllow   RiskAction = "allow"
	RiskActionDeny    RiskAction = "deny"
)

// Valid reports whether the risk action is recognized.
func (r RiskAction) Valid() bool {
	switch r {
	case RiskActionDefault, RiskActionAllow, RiskActionDeny:
		return true
	}
	return false
}

// SettlementSchedule controls when a subaccount is paid out.
type SettlementSchedule string

const (
	// ScheduleAuto means payout is T+1.
	ScheduleAuto    SettlementSchedule = "auto"
	ScheduleWeekly  SettlementSchedule = "weekly"
	ScheduleMonthly SettlementSchedule = "monthly"
	// ScheduleManual means payout happens only when requested.
	ScheduleManual SettlementSchedule = "manual"
)

// Valid reports whether the schedule is recognized.
func (s SettlementSchedule) Valid() bool {
	switch s {
	case ScheduleAuto, ScheduleWeekly, ScheduleMonthly, ScheduleManual:
		return true
	}
	return false
}

// AccountType is a customer's type of account.
type AccountType string

const (
	AccountTypePersonal AccountType = "personal"
	AccountTypeBusiness AccountType = "business"
)

// Valid reports whether the account type is recognized.
func (a AccountType) Valid() bool {
	return a == AccountTypePersonal || a == AccountTypeBusiness
}

// DocumentType is a customer's mode of identity.
type DocumentType string

const (
	DocumentIdentityNumber    DocumentType = "identityNumber"
	DocumentPassportNumber    DocumentType = "passportNumber"
	DocumentBusinessRegNumber DocumentType = "businessRegistrationNumber"
)

// Valid reports whether the document type is recognized.
func (d DocumentType) Valid() bool {
	switch d {
	case DocumentIdentityNumber, DocumentPassportNumber, DocumentBusinessRegNumber:
		return true
	}
	return false
}

// DVABank is a provider of dedicated virtual accounts.
type DVABank string

const (
	DVABankWema  DVABank = "wema-bank"
	DVABankTitan DVABank = "titan-paystack"
)

// Valid reports whether the provider is recognized.
func (b DVABank) Valid() bool {
	return b == DVABankWema || b == DVABankTitan
}

// Channel is a payment channel.
type Channel string

const (
	ChannelBank         Channel = "bank"
	ChannelBankTransfer Channel = "bank_transfer"
	ChannelCard         Channel = "card"
	ChannelETF          Channel = "etf"
	ChannelMobileMoney  Channel = "mobile_money"
	ChannelQR           Channel = "qr"
	ChannelUSSD         Channel = "ussd"
)

// Valid reports whether the channel is recognized.
func (c Channel) Valid() bool {
	switch c {
	case ChannelBank, ChannelBankTransfer, ChannelCard, ChannelETF,
		ChannelMobileMoney, ChannelQR, ChannelUSSD:
		return true
	}
	return false
}

// Gateway is a payment gateway a bank may support.
type Gateway string

const (
	GatewayEMandate       Gateway = "emandate"
	GatewayDigitalMandate Gateway = "digitalbankmandate"
)

// Valid reports whether the gateway is recognized.
func (g Gateway) Valid() bool {
	return g == GatewayEMandate || g == GatewayDigitalMandate
}

// RecipientType is the kind of account money can be sent to.
type RecipientType string

const (
	RecipientBase        RecipientType = "base"
	RecipientGhipss      RecipientType = "ghipss"
	RecipientMobileMoney RecipientType = "mobile_money"
	RecipientNuban       RecipientType = "nuban"
)

// Valid reports whether the recipient type is recognized.
func (r RecipientType) Valid() bool {
	switch r {
	case RecipientBase, RecipientGhipss, RecipientMobileMoney, RecipientNuban:
		return true
	}
	return false
}

// SettlementStatus filters settlements by payout state.
type SettlementStatus string

const (
	SettlementSuccess    SettlementStatus = "success"
	SettlementFailed     SettlementStatus = "failed"
	SettlementPending    SettlementStatus = "pending"
	SettlementProcessing SettlementStatus = "processing"
)

// Valid reports whether the status is recognized.
func (s SettlementStatus) Valid() bool {
	switch s {
	case SettlementSuccess, SettlementFailed, SettlementPending, SettlementProcessing:
		return true
	}
	return false
}
