package entity

import "github.com/johnnybahia/marcasceara/constants"

// OrderRecord is one purchase order normalized into the common reporting
// schema. The JSON field names are the aggregation endpoint's wire contract
// and must not change. A record is built once per document (narrative
// vendors) or once per qualifying table row (tabular vendor) and is never
// mutated afterwards.
type OrderRecord struct {
	// OrderDate is the expected delivery/fulfilment date, DD/MM/YYYY.
	OrderDate string `json:"dataPedido"`
	// ReceivedDate is the document emission date, DD/MM/YYYY.
	ReceivedDate string `json:"dataRecebimento"`
	// SourceFile is the originating file name, kept for provenance.
	SourceFile string `json:"arquivo"`
	// Client is the canonical vendor name, one of constants.AllVendors.
	Client string `json:"cliente"`
	// Brand is the sub-brand within the vendor, with a vendor-specific default.
	Brand string `json:"marca"`
	// Location is the delivery city, optionally suffixed with a region code
	// in parentheses, or constants.NotFound.
	Location string `json:"local"`
	// Quantity is a non-negative count; zero when unparsable.
	Quantity int `json:"qtd"`
	// Unit is one of the constants.Unit enumeration.
	Unit constants.Unit `json:"unidade"`
	// Value is the monetary total already rendered as "R$ 1.234,56".
	// The numeric amount is private to the extractor that built the record.
	Value string `json:"valor"`
	// OrderNumber is the vendor's purchase-order identifier (digits, six or
	// more), or constants.NotFound.
	OrderNumber string `json:"ordemCompra"`
	// Elastic is "SIM" when the elastic-material keyword appeared in the
	// source table row. Only tabular records carry it.
	Elastic string `json:"elastico,omitempty"`
}
