package plan

// Nature classifies an account by financial-statement side.
type Nature string

const (
	NatureAsset     Nature = "ACTIF"
	NatureLiability Nature = "PASSIF"
	NatureExpense   Nature = "CHARGE"
	NatureRevenue   Nature = "PRODUIT"
	NatureSpecial   Nature = "SPECIAL"
)

// Side is the normal balance side of an account.
type Side string

const (
	SideDebit  Side = "DEBITEUR"
	SideCredit Side = "CREDITEUR"
)

// Usage states whether the standard requires, allows or forbids posting
// to an account.
type Usage string

const (
	UsageMandatory Usage = "OBLIGATOIRE"
	UsageOptional  Usage = "FACULTATIF"
	UsageForbidden Usage = "INTERDIT"
)

// Account is one entry of the SYSCOHADA Revise chart of accounts.
// Numbers are two to four digits; balance accounts attach to the chart
// entry whose number prefixes them.
type Account struct {
	Number string
	Label  string
	Class  int
	Nature Nature
	Side   Side
	Usage  Usage
}
