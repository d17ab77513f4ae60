package constants

// FieldKind describes the semantic type a schema field carries in the
// output record. Every value is nullable.
type FieldKind string

const (
	KindIdentifier FieldKind = "identifier" // short alphanumeric code
	KindDate       FieldKind = "date"       // ISO YYYY-MM-DD when normalized
	KindText       FieldKind = "text"       // free text
	KindList       FieldKind = "list"       // list of short strings
	KindContact    FieldKind = "contact"    // nested contact object
)

// SchemaFields is the canonical ordered field list. Output records carry
// exactly these keys, in exactly this order. Do not reorder: the emission
// order, the rule extraction order, and the merge loop all follow it.
var SchemaFields = []string{
	"bid_number",
	"title",
	"due_date",
	"bid_submission_type",
	"term_of_bid",
	"pre_bid_meeting",
	"installation",
	"bid_bond_requirement",
	"delivery_date",
	"payment_terms",
	"additional_documentation_required",
	"mfg_for_registration",
	"contract_or_cooperative_to_use",
	"model_no",
	"part_no",
	"product",
	"contact_info",
	"company_name",
	"bid_summary",
	"product_specification",
	"value",
}

// FieldKinds maps each schema field to its semantic type.
var FieldKinds = map[string]FieldKind{
	"bid_number":                        KindIdentifier,
	"title":                             KindText,
	"due_date":                          KindDate,
	"bid_submission_type":               KindText,
	"term_of_bid":                       KindText,
	"pre_bid_meeting":                   KindText,
	"installation":                      KindText,
	"bid_bond_requirement":              KindText,
	"delivery_date":                     KindDate,
	"payment_terms":                     KindText,
	"additional_documentation_required": KindList,
	"mfg_for_registration":              KindText,
	"contract_or_cooperative_to_use":    KindText,
	"model_no":                          KindIdentifier,
	"part_no":                           KindIdentifier,
	"product":                           KindText,
	"contact_info":                      KindContact,
	"company_name":                      KindText,
	"bid_summary":                       KindText,
	"product_specification":             KindText,
	"value":                             KindText,
}

// ContactKeys are the sub-keys of the contact_info object, in emission order.
var ContactKeys = []string{"contact_name", "email", "phone", "company_name"}

// Bookkeeping keys the processor attaches to a final record after cleanup.
const (
	KeySourceFile    = "_source_file"
	KeyRuleExtracted = "_rule_extracted"
	KeyLLMUsed       = "_llm_used"
)

// IsSchemaField reports whether name is one of the canonical fields.
func IsSchemaField(name string) bool {
	_, ok := FieldKinds[name]
	return ok
}
