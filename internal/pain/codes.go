package pain

// Message namespace and fixed code values used in every generated file.
const (
	Namespace    = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

	PaymentMethodTransfer   = "TRF"
	ServiceLevelNonUrgent   = "NURG"
	CategoryPurposeSupplier = "SUPP"

	// Bankgiro clearing on the creditor side.
	ClearingSystemBankgiro = "SESBA"
	ClearingMemberBankgiro = "9900"
	AccountSchemeBankgiro  = "BGNR"

	// Structured creditor reference.
	ReferenceTypeSCOR = "SCOR"

	// MaxEndToEndIDLength is the Max35Text limit of EndToEndId.
	MaxEndToEndIDLength = 35
)
