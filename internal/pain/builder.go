// Package pain builds ISO 20022 pain.001.001.03 customer credit transfer
// initiation documents.
//
// Build is pure: it reads nothing but its arguments, validates every payment
// before constructing anything, and returns an immutable tree. Rendering the
// tree to bytes is the job of package painxml.
package pain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"fjacquet/pain-gen/internal/currencyutils"
	"fjacquet/pain-gen/internal/dateutils"
	"fjacquet/pain-gen/internal/models"
	"fjacquet/pain-gen/internal/xmltree"

	"github.com/shopspring/decimal"
)

// Options tune how debtor data is rendered.
type Options struct {
	// StripIDSeparators drops everything but letters and digits from the
	// debtor's organisation number before it is written.
	StripIDSeparators bool
}

// GroupHeader carries the message-level values of a document.
type GroupHeader struct {
	MessageID            string
	CreationDateTime     time.Time
	NumberOfTransactions int
	ControlSum           decimal.Decimal
	InitiatingPartyID    string
}

// Document is a built message: its header values plus the element tree.
type Document struct {
	Header GroupHeader
	tree   xmltree.Node
}

// Tree returns the root Document element.
func (d Document) Tree() xmltree.Node {
	return d.tree
}

// FileName derives the output file name from the message id, so the file and
// the id it announces always come from the same instant.
func (d Document) FileName(prefix string) string {
	return prefix + d.Header.MessageID + ".xml"
}

// Build validates payments and maps them, in order, to one PmtInf block each.
// now is used for both MsgId and CreDtTm and is rendered without any zone
// conversion.
func Build(debtor models.DebtorProfile, payments []models.PaymentRecord, now time.Time, opts Options) (Document, error) {
	if err := Validate(payments); err != nil {
		return Document{}, err
	}

	header := GroupHeader{
		MessageID:            MessageID(now),
		CreationDateTime:     now.Truncate(time.Second),
		NumberOfTransactions: len(payments),
		ControlSum:           currencyutils.Sum(models.Amounts(payments)...),
		InitiatingPartyID:    debtor.OrganisationID(opts.StripIDSeparators),
	}

	blocks := make([]xmltree.Node, 0, len(payments)+1)
	blocks = append(blocks, groupHeader(header))
	for _, p := range payments {
		blocks = append(blocks, paymentInformation(debtor, p, opts))
	}

	tree := xmltree.Element("Document",
		xmltree.Element("CstmrCdtTrfInitn", blocks...),
	).WithAttr("xmlns", Namespace).WithAttr("xmlns:xsi", XSINamespace)

	return Document{Header: header, tree: tree}, nil
}

// MessageID is the decimal count of seconds since the Unix epoch.
func MessageID(now time.Time) string {
	return strconv.FormatInt(now.Unix(), 10)
}

// EndToEndID joins issuer and invoice number, then cuts the result to 35
// characters. Whitespace left at the end of a cut id is dropped.
func EndToEndID(issuer string, invoiceNumber int64) string {
	id := []rune(fmt.Sprintf("%s %d", issuer, invoiceNumber))
	if len(id) <= MaxEndToEndIDLength {
		return string(id)
	}
	return strings.TrimRightFunc(string(id[:MaxEndToEndIDLength]), unicode.IsSpace)
}

func groupHeader(h GroupHeader) xmltree.Node {
	return xmltree.Element("GrpHdr",
		xmltree.Leaf("MsgId", h.MessageID),
		xmltree.Leaf("CreDtTm", h.CreationDateTime.Format(dateutils.DateTimeLayoutISO)),
		xmltree.Leaf("NbOfTxs", strconv.Itoa(h.NumberOfTransactions)),
		xmltree.Leaf("CtrlSum", currencyutils.FormatAmount(h.ControlSum)),
		xmltree.Element("InitgPty", organisationID(h.InitiatingPartyID)),
	)
}

func organisationID(id string) xmltree.Node {
	return xmltree.Element("Id",
		xmltree.Element("OrgId",
			xmltree.Element("Othr",
				xmltree.Leaf("Id", id),
			),
		),
	)
}

func paymentInformation(debtor models.DebtorProfile, p models.PaymentRecord, opts Options) xmltree.Node {
	return xmltree.Element("PmtInf",
		xmltree.Leaf("PmtInfId", p.InvoiceRef()),
		xmltree.Leaf("PmtMtd", PaymentMethodTransfer),
		xmltree.Leaf("ReqdExctnDt", dateutils.ToISODate(p.DateDue)),
		xmltree.Element("Dbtr",
			xmltree.Leaf("Nm", debtor.Name),
			organisationID(debtor.OrganisationID(opts.StripIDSeparators)),
			xmltree.Leaf("CtryOfRes", debtor.Country),
		),
		xmltree.Element("DbtrAcct",
			xmltree.Element("Id", xmltree.Leaf("IBAN", debtor.IBAN)),
		),
		xmltree.Element("DbtrAgt",
			xmltree.Element("FinInstnId", xmltree.Leaf("BIC", debtor.BIC)),
		),
		creditTransfer(p),
	)
}

func creditTransfer(p models.PaymentRecord) xmltree.Node {
	amount := p.Money()

	return xmltree.Element("CdtTrfTxInf",
		xmltree.Element("PmtId",
			xmltree.Leaf("InstrId", p.InvoiceRef()),
			xmltree.Leaf("EndToEndId", EndToEndID(p.Issuer, p.InvoiceNumber)),
		),
		xmltree.Element("PmtTpInf",
			xmltree.Element("SvcLvl", xmltree.Leaf("Cd", ServiceLevelNonUrgent)),
			xmltree.Element("CtgyPurp", xmltree.Leaf("Cd", CategoryPurposeSupplier)),
		),
		xmltree.Element("Amt",
			xmltree.Leaf("InstdAmt", amount.Fixed(), xmltree.Attr{Name: "Ccy", Value: amount.Currency}),
		),
		xmltree.Element("CdtrAgt",
			xmltree.Element("FinInstnId",
				xmltree.Element("ClrSysMmbId",
					xmltree.Element("ClrSysId", xmltree.Leaf("Cd", ClearingSystemBankgiro)),
					xmltree.Leaf("MmbId", ClearingMemberBankgiro),
				),
			),
		),
		xmltree.Element("Cdtr", xmltree.Leaf("Nm", p.Issuer)),
		xmltree.Element("CdtrAcct",
			xmltree.Element("Id",
				xmltree.Element("Othr",
					xmltree.Leaf("Id", p.AccountNumber),
					xmltree.Element("SchmeNm", xmltree.Leaf("Prtry", AccountSchemeBankgiro)),
				),
			),
		),
		xmltree.Element("RmtInf",
			xmltree.Element("Strd",
				xmltree.Element("CdtrRefInf",
					xmltree.Element("Tp",
						xmltree.Element("CdOrPrtry", xmltree.Leaf("Cd", ReferenceTypeSCOR)),
					),
					xmltree.Leaf("Ref", p.InvoiceRef()),
				),
			),
		),
	)
}
