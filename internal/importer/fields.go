package importer

// CanonicalField is one of the fixed schema fields every spreadsheet column
// is mapped onto during import.
type CanonicalField string

const (
	FieldDeclarationID        CanonicalField = "declaration_id"
	FieldExporterName         CanonicalField = "exporter_name"
	FieldConsigneeName        CanonicalField = "consignee_name"
	FieldProductDescription   CanonicalField = "product_description"
	FieldHsCode               CanonicalField = "hs_code"
	FieldQuantity             CanonicalField = "quantity"
	FieldUnit                 CanonicalField = "unit"
	FieldFobValue             CanonicalField = "fob_value"
	FieldCurrency             CanonicalField = "currency"
	FieldPortOfLoading        CanonicalField = "port_of_loading"
	FieldPortOfDischarge      CanonicalField = "port_of_discharge"
	FieldCountryOfDestination CanonicalField = "country_of_destination"
	FieldShipmentDate         CanonicalField = "shipment_date"
)

// fieldAliases lists the accepted header spellings per field, most specific
// first. Priority matters: the resolver tries aliases in order within each
// matching pass, so a generic alias like "Value" or "Date" must come last or
// it steals matches from better-named columns.
var fieldAliases = map[CanonicalField][]string{
	FieldDeclarationID: {
		"SB No", "SB_No", "SB Number", "Shipping Bill No", "Shipping Bill Number",
		"Declaration No", "Declaration Number", "BE No", "Bill No",
	},
	FieldExporterName: {
		"Exporter Name", "Exporter", "Shipper Name", "Shipper", "Supplier Name", "Supplier",
	},
	FieldConsigneeName: {
		"Consignee Name", "Consignee", "Importer Name", "Importer", "Buyer Name", "Buyer",
	},
	FieldProductDescription: {
		"Product Description", "Item Description", "Goods Description", "Description", "Product",
	},
	FieldHsCode: {
		"HS Code", "HSCode", "ITC HS Code", "ITCHS", "Tariff Code", "HS",
	},
	FieldQuantity: {
		"Quantity", "Qty", "Net Quantity", "Net Qty",
	},
	FieldUnit: {
		"Unit Quantity Code", "UQC", "Unit", "UOM",
	},
	FieldFobValue: {
		"FOB Value", "FOB (USD)", "FOB USD", "FOB Value USD", "Total FOB", "FOB", "Value",
	},
	FieldCurrency: {
		"Invoice Currency", "Currency", "CUR",
	},
	FieldPortOfLoading: {
		"Port of Loading", "Indian Port", "Loading Port", "Origin Port", "POL",
	},
	FieldPortOfDischarge: {
		"Port of Discharge", "Foreign Port", "Discharge Port", "Destination Port", "POD",
	},
	FieldCountryOfDestination: {
		"Country of Destination", "Destination Country", "Country",
	},
	FieldShipmentDate: {
		"Shipment Date", "SB Date", "LEO Date", "Date",
	},
}

// canonicalFields is the processing order for a row; every field is resolved
// for every row.
var canonicalFields = []CanonicalField{
	FieldDeclarationID,
	FieldExporterName,
	FieldConsigneeName,
	FieldProductDescription,
	FieldHsCode,
	FieldQuantity,
	FieldUnit,
	FieldFobValue,
	FieldCurrency,
	FieldPortOfLoading,
	FieldPortOfDischarge,
	FieldCountryOfDestination,
	FieldShipmentDate,
}

// Aliases returns the prioritized header aliases for a canonical field.
func Aliases(f CanonicalField) []string {
	return fieldAliases[f]
}
