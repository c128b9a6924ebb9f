package logging

// Field names shared by every log line the tool writes.
const (
	FieldFile          = "file_path"
	FieldOutputFile    = "output_file"
	FieldFormat        = "format"
	FieldCountry       = "country"
	FieldMessageID     = "message_id"
	FieldRunID         = "run_id"
	FieldPaymentIndex  = "payment_index"
	FieldInvoiceNumber = "invoice_number"
	FieldIssuer        = "issuer"
	FieldDateDue       = "date_due"
	FieldAdjustedTo    = "adjusted_to"
	FieldFloor         = "floor"
	FieldCeiling       = "ceiling"
	FieldControlSum    = "control_sum"
	FieldCount         = "count"
	FieldOperation     = "operation"
	FieldError         = "error"
)
