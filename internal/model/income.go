package model

// PersonIncome holds the raw income components for one person. Amounts are
// integer yen. Net figures are always derived on demand from these fields,
// never cached alongside them.
type PersonIncome struct {
	GrossEmploymentIncome int64 `json:"gross_employment_income"`
	OtherNetIncome        int64 `json:"other_net_income"`
}
