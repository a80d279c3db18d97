package mapping

// SmallEntityTable is the mapping for the Systeme Minimal de Tresorerie
// (SMT), the simplified regime for small entities: about a third of the
// SN line count.
func SmallEntityTable() (*Table, error) {
	return NewTable(SectorSmallEntity, []SectionBlock{
		{Section: SectionAssets, Lines: []Line{
			{Code: "AI_1", Label: "Immobilisations incorporelles", Accounts: []string{"21"}, Contra: []string{"281", "291"}},
			{Code: "AI_2", Label: "Immobilisations corporelles", Accounts: []string{"22", "23", "24", "25"}, Contra: []string{"282", "283", "284", "292", "293", "294"}},
			{Code: "AI_3", Label: "Immobilisations financieres", Accounts: []string{"26", "27"}, Contra: []string{"296", "297"}},
			{Code: "AC_1", Label: "Stocks", Accounts: []string{"31", "32", "33", "34", "35", "36", "37", "38"}, Contra: []string{"39"}},
			{Code: "AC_2", Label: "Creances clients", Accounts: []string{"41"}, Contra: []string{"491"}},
			{Code: "AC_3", Label: "Autres creances", Accounts: []string{"409", "445", "471"}, Contra: []string{"492", "495", "496", "497"}},
			{Code: "AC_4", Label: "Charges constatees d'avance", Accounts: []string{"476"}},
			{Code: "TA_1", Label: "Banques", Accounts: []string{"52", "53"}},
			{Code: "TA_2", Label: "Caisse", Accounts: []string{"57"}},
			{Code: "TA_3", Label: "Autres tresorerie actif", Accounts: []string{"50", "51", "54", "55", "58"}, Contra: []string{"59"}},
		}},
		{Section: SectionLiabilities, Lines: []Line{
			{Code: "CP_1", Label: "Capital", Accounts: []string{"101", "102", "103", "104", "105"}},
			{Code: "CP_2", Label: "Reserves", Accounts: []string{"11"}},
			{Code: "CP_3", Label: "Report a nouveau", Accounts: []string{"12"}},
			{Code: "CP_4", Label: "Resultat de l'exercice", Accounts: []string{"13"}},
			{Code: "CP_5", Label: "Autres capitaux propres", Accounts: []string{"106", "14", "15"}},
			{Code: "DF_1", Label: "Emprunts et dettes financieres", Accounts: []string{"16", "17", "18", "19"}},
			{Code: "PC_1", Label: "Fournisseurs", Accounts: []string{"401", "402", "403", "404", "405", "408"}},
			{Code: "PC_2", Label: "Dettes fiscales et sociales", Accounts: []string{"42", "43", "44"}},
			{Code: "PC_3", Label: "Autres dettes", Accounts: []string{"419", "45", "46", "47", "48"}},
			{Code: "TP_1", Label: "Tresorerie passif", Accounts: []string{"56"}},
		}},
		{Section: SectionExpenses, Lines: []Line{
			{Code: "CH_1", Label: "Achats de marchandises", Accounts: []string{"601"}},
			{Code: "CH_2", Label: "Achats de matieres et fournitures", Accounts: []string{"602", "604", "605", "608"}},
			{Code: "CH_3", Label: "Variation de stocks", Accounts: []string{"603"}},
			{Code: "CH_4", Label: "Transports", Accounts: []string{"61"}},
			{Code: "CH_5", Label: "Services exterieurs", Accounts: []string{"62", "63"}},
			{Code: "CH_6", Label: "Impots et taxes", Accounts: []string{"64"}},
			{Code: "CH_7", Label: "Autres charges", Accounts: []string{"65"}},
			{Code: "CH_8", Label: "Charges de personnel", Accounts: []string{"66"}},
			{Code: "CH_9", Label: "Dotations aux amortissements et provisions", Accounts: []string{"68", "69"}},
			{Code: "CH_10", Label: "Charges financieres, HAO et impot", Accounts: []string{"67", "81", "83", "85", "89"}},
		}},
		{Section: SectionRevenues, Lines: []Line{
			{Code: "PR_1", Label: "Ventes de marchandises", Accounts: []string{"701"}},
			{Code: "PR_2", Label: "Ventes de produits et services", Accounts: []string{"702", "703", "704", "705", "706", "707"}},
			{Code: "PR_3", Label: "Production stockee et immobilisee", Accounts: []string{"72", "73"}},
			{Code: "PR_4", Label: "Subventions d'exploitation", Accounts: []string{"71"}},
			{Code: "PR_5", Label: "Autres produits et transferts de charges", Accounts: []string{"75", "78", "791", "797", "798"}},
			{Code: "PR_6", Label: "Produits financiers et HAO", Accounts: []string{"77", "787", "82", "84", "86", "88"}},
		}},
	})
}
