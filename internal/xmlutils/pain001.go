package xmlutils

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/xmlpath.v2"
)

// Pain001XPaths holds the expressions used to read a pain.001.001.03 file.
// Payment paths are relative to one PmtInf element.
type Pain001XPaths struct {
	Header struct {
		MessageID            string
		CreationDateTime     string
		NumberOfTransactions string
		ControlSum           string
		InitiatingPartyID    string
	}

	PaymentInformation string

	Payment struct {
		ID               string
		ExecutionDate    string
		DebtorIBAN       string
		EndToEndID       string
		InstructedAmount string
		Currency         string
		CreditorName     string
		CreditorAccount  string
		Reference        string
	}
}

// DefaultPain001XPaths returns the expressions for the standard layout.
func DefaultPain001XPaths() Pain001XPaths {
	var p Pain001XPaths

	const hdr = "/Document/CstmrCdtTrfInitn/GrpHdr/"
	p.Header.MessageID = hdr + "MsgId"
	p.Header.CreationDateTime = hdr + "CreDtTm"
	p.Header.NumberOfTransactions = hdr + "NbOfTxs"
	p.Header.ControlSum = hdr + "CtrlSum"
	p.Header.InitiatingPartyID = hdr + "InitgPty/Id/OrgId/Othr/Id"

	p.PaymentInformation = "/Document/CstmrCdtTrfInitn/PmtInf"

	p.Payment.ID = "PmtInfId"
	p.Payment.ExecutionDate = "ReqdExctnDt"
	p.Payment.DebtorIBAN = "DbtrAcct/Id/IBAN"
	p.Payment.EndToEndID = "CdtTrfTxInf/PmtId/EndToEndId"
	p.Payment.InstructedAmount = "CdtTrfTxInf/Amt/InstdAmt"
	p.Payment.Currency = "CdtTrfTxInf/Amt/InstdAmt/@Ccy"
	p.Payment.CreditorName = "CdtTrfTxInf/Cdtr/Nm"
	p.Payment.CreditorAccount = "CdtTrfTxInf/CdtrAcct/Id/Othr/Id"
	p.Payment.Reference = "CdtTrfTxInf/RmtInf/Strd/CdtrRefInf/Ref"

	return p
}

// Pain001Summary is what ReadPain001 recovers from a file.
type Pain001Summary struct {
	MessageID            string
	CreationDateTime     string
	NumberOfTransactions int
	ControlSum           decimal.Decimal
	InitiatingPartyID    string
	Payments             []Pain001Payment
}

// Pain001Payment is one PmtInf block.
type Pain001Payment struct {
	ID              string
	ExecutionDate   string
	DebtorIBAN      string
	EndToEndID      string
	Amount          decimal.Decimal
	Currency        string
	CreditorName    string
	CreditorAccount string
	Reference       string
}

// ReadPain001 extracts header values and every payment from root.
func ReadPain001(root *xmlpath.Node) (Pain001Summary, error) {
	paths := DefaultPain001XPaths()
	var s Pain001Summary

	values := make(map[string]string, 5)
	for _, xp := range []string{
		paths.Header.MessageID,
		paths.Header.CreationDateTime,
		paths.Header.NumberOfTransactions,
		paths.Header.ControlSum,
		paths.Header.InitiatingPartyID,
	} {
		v, err := ExtractFirst(root, xp)
		if err != nil {
			return Pain001Summary{}, err
		}
		values[xp] = v
	}

	s.MessageID = values[paths.Header.MessageID]
	if s.MessageID == "" {
		return Pain001Summary{}, fmt.Errorf("no pain.001 group header found")
	}
	s.CreationDateTime = values[paths.Header.CreationDateTime]
	s.InitiatingPartyID = values[paths.Header.InitiatingPartyID]

	n, err := strconv.Atoi(values[paths.Header.NumberOfTransactions])
	if err != nil {
		return Pain001Summary{}, fmt.Errorf("invalid NbOfTxs %q: %w", values[paths.Header.NumberOfTransactions], err)
	}
	s.NumberOfTransactions = n

	s.ControlSum, err = decimal.NewFromString(values[paths.Header.ControlSum])
	if err != nil {
		return Pain001Summary{}, fmt.Errorf("invalid CtrlSum %q: %w", values[paths.Header.ControlSum], err)
	}

	infoPath, err := xmlpath.Compile(paths.PaymentInformation)
	if err != nil {
		return Pain001Summary{}, fmt.Errorf("failed to compile XPath %q: %w", paths.PaymentInformation, err)
	}
	iter := infoPath.Iter(root)
	for i := 0; iter.Next(); i++ {
		p, err := readPayment(iter.Node(), paths)
		if err != nil {
			return Pain001Summary{}, fmt.Errorf("PmtInf %d: %w", i, err)
		}
		s.Payments = append(s.Payments, p)
	}

	return s, nil
}

func readPayment(node *xmlpath.Node, paths Pain001XPaths) (Pain001Payment, error) {
	get := func(xp string) (string, error) { return ExtractFirst(node, xp) }

	var p Pain001Payment
	targets := []struct {
		xpath string
		dst   *string
	}{
		{paths.Payment.ID, &p.ID},
		{paths.Payment.ExecutionDate, &p.ExecutionDate},
		{paths.Payment.DebtorIBAN, &p.DebtorIBAN},
		{paths.Payment.EndToEndID, &p.EndToEndID},
		{paths.Payment.Currency, &p.Currency},
		{paths.Payment.CreditorName, &p.CreditorName},
		{paths.Payment.CreditorAccount, &p.CreditorAccount},
		{paths.Payment.Reference, &p.Reference},
	}
	for _, t := range targets {
		v, err := get(t.xpath)
		if err != nil {
			return Pain001Payment{}, err
		}
		*t.dst = v
	}

	raw, err := get(paths.Payment.InstructedAmount)
	if err != nil {
		return Pain001Payment{}, err
	}
	p.Amount, err = decimal.NewFromString(raw)
	if err != nil {
		return Pain001Payment{}, fmt.Errorf("invalid InstdAmt %q: %w", raw, err)
	}
	return p, nil
}

// Mismatches lists every way the header disagrees with the payments. An
// empty result means NbOfTxs and CtrlSum are consistent.
func (s Pain001Summary) Mismatches() []string {
	var out []string
	if s.NumberOfTransactions != len(s.Payments) {
		out = append(out, fmt.Sprintf("NbOfTxs is %d but the file holds %d payments", s.NumberOfTransactions, len(s.Payments)))
	}

	sum := decimal.Zero
	seen := make(map[string]bool, len(s.Payments))
	for _, p := range s.Payments {
		sum = sum.Add(p.Amount)
		if seen[p.ID] {
			out = append(out, fmt.Sprintf("PmtInfId %s is used more than once", p.ID))
		}
		seen[p.ID] = true
	}
	if !sum.Equal(s.ControlSum) {
		out = append(out, fmt.Sprintf("CtrlSum is %s but the amounts add up to %s", s.ControlSum.StringFixed(2), sum.StringFixed(2)))
	}
	return out
}
