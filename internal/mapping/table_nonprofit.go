package mapping

// NonProfitTable is the mapping for non-profit entities (EBNL):
// associative funds instead of capital, membership dues and grants on
// the revenue side.
func NonProfitTable() (*Table, error) {
	return NewTable(SectorNonProfit, []SectionBlock{
		{Section: SectionAssets, Lines: []Line{
			{Code: "EA_1", Label: "Immobilisations incorporelles", Accounts: []string{"21"}, Contra: []string{"281", "291"}},
			{Code: "EA_2", Label: "Immobilisations corporelles", Accounts: []string{"22", "23", "24"}, Contra: []string{"282", "283", "284", "292", "293", "294"}},
			{Code: "EA_3", Label: "Immobilisations financieres", Accounts: []string{"26", "27"}, Contra: []string{"296", "297"}},
			{Code: "EA_4", Label: "Stocks", Accounts: []string{"31", "32", "33", "36"}, Contra: []string{"39"}},
			{Code: "EA_5", Label: "Creances usagers et adherents", Accounts: []string{"41"}, Contra: []string{"491"}},
			{Code: "EA_6", Label: "Autres creances", Accounts: []string{"409", "445", "471"}},
			{Code: "EA_7", Label: "Tresorerie actif", Accounts: []string{"50", "51", "52", "53", "54", "55", "57", "58"}, Contra: []string{"59"}},
		}},
		{Section: SectionLiabilities, Lines: []Line{
			{Code: "EP_1", Label: "Fonds associatifs sans droit de reprise", Accounts: []string{"101", "102", "103"}},
			{Code: "EP_2", Label: "Fonds associatifs avec droit de reprise", Accounts: []string{"104", "105"}},
			{Code: "EP_3", Label: "Reserves", Accounts: []string{"11"}},
			{Code: "EP_4", Label: "Report a nouveau", Accounts: []string{"12"}},
			{Code: "EP_5", Label: "Resultat de l'exercice", Accounts: []string{"13"}},
			{Code: "EP_6", Label: "Subventions d'investissement", Accounts: []string{"14"}},
			{Code: "EP_7", Label: "Fonds dedies et provisions", Accounts: []string{"15", "19"}},
			{Code: "EP_8", Label: "Emprunts et dettes financieres", Accounts: []string{"16", "17"}},
			{Code: "EP_9", Label: "Fournisseurs", Accounts: []string{"40"}},
			{Code: "EP_10", Label: "Dettes fiscales et sociales", Accounts: []string{"42", "43", "44"}},
			{Code: "EP_11", Label: "Autres dettes", Accounts: []string{"45", "46", "47", "48"}},
			{Code: "EP_12", Label: "Tresorerie passif", Accounts: []string{"56"}},
		}},
		{Section: SectionExpenses, Lines: []Line{
			{Code: "EC_1", Label: "Achats de biens et services", Accounts: []string{"60"}},
			{Code: "EC_2", Label: "Services exterieurs", Accounts: []string{"61", "62", "63"}},
			{Code: "EC_3", Label: "Impots et taxes", Accounts: []string{"64"}},
			{Code: "EC_4", Label: "Autres charges", Accounts: []string{"65"}},
			{Code: "EC_5", Label: "Charges de personnel", Accounts: []string{"66"}},
			{Code: "EC_6", Label: "Charges financieres", Accounts: []string{"67"}},
			{Code: "EC_7", Label: "Dotations aux amortissements et provisions", Accounts: []string{"68", "69"}},
			{Code: "EC_8", Label: "Charges HAO", Accounts: []string{"81", "83", "85"}},
			{Code: "EC_9", Label: "Impot sur le resultat", Accounts: []string{"89"}},
		}},
		{Section: SectionRevenues, Lines: []Line{
			{Code: "ER_1", Label: "Cotisations des membres", Accounts: []string{"701", "702", "703"}},
			{Code: "ER_2", Label: "Prestations et ventes", Accounts: []string{"705", "706", "707"}},
			{Code: "ER_3", Label: "Subventions d'exploitation", Accounts: []string{"71"}},
			{Code: "ER_4", Label: "Dons, legs et liberalites", Accounts: []string{"75"}},
			{Code: "ER_5", Label: "Produits financiers", Accounts: []string{"77"}},
			{Code: "ER_6", Label: "Reprises et transferts de charges", Accounts: []string{"78", "79"}},
			{Code: "ER_7", Label: "Produits HAO", Accounts: []string{"82", "84", "86", "88"}},
		}},
	})
}
