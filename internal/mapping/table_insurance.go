package mapping

// InsuranceTable is the mapping for insurers (plan comptable CIMA):
// placements on the asset side, technical provisions on the liability
// side, a technical and a non-technical income statement.
func InsuranceTable() (*Table, error) {
	return NewTable(SectorInsurance, []SectionBlock{
		{Section: SectionAssets, Lines: []Line{
			{Code: "AA_1", Label: "Immeubles", Accounts: []string{"21", "22"}, Contra: []string{"281", "282"}},
			{Code: "AA_2", Label: "Actions et parts sociales", Accounts: []string{"23", "24"}, Contra: []string{"283", "284"}},
			{Code: "AA_3", Label: "Prets et effets assimiles", Accounts: []string{"25", "26"}, Contra: []string{"295", "296"}},
			{Code: "AA_4", Label: "Depots et cautionnements", Accounts: []string{"27"}},
			{Code: "AA_5", Label: "Part des reassureurs, provisions de primes", Accounts: []string{"33", "34"}},
			{Code: "AA_6", Label: "Part des reassureurs, autres provisions", Accounts: []string{"35", "36"}},
			{Code: "AA_7", Label: "Creances d'operations d'assurance", Accounts: []string{"41"}, Contra: []string{"491"}},
			{Code: "AA_8", Label: "Creances d'operations de reassurance", Accounts: []string{"43"}, Contra: []string{"493"}},
			{Code: "AA_9", Label: "Autres creances", Accounts: []string{"45", "46"}},
			{Code: "AA_10", Label: "Personnel et comptes rattaches", Accounts: []string{"47"}},
			{Code: "AA_11", Label: "Comptes de regularisation actif", Accounts: []string{"485"}},
			{Code: "AA_12", Label: "Tresorerie", Accounts: []string{"50", "51", "52", "53", "57"}},
		}},
		{Section: SectionLiabilities, Lines: []Line{
			{Code: "AP_1", Label: "Capital ou fonds d'etablissement", Accounts: []string{"10"}},
			{Code: "AP_2", Label: "Reserves", Accounts: []string{"11"}},
			{Code: "AP_3", Label: "Report a nouveau", Accounts: []string{"12"}},
			{Code: "AP_4", Label: "Resultat de l'exercice", Accounts: []string{"13"}},
			{Code: "AP_5", Label: "Subventions et fonds assimiles", Accounts: []string{"14"}},
			{Code: "AP_6", Label: "Provisions pour risques et charges", Accounts: []string{"19"}},
			{Code: "AP_7", Label: "Provisions techniques de primes", Accounts: []string{"30", "31"}},
			{Code: "AP_8", Label: "Provisions techniques de sinistres", Accounts: []string{"32"}},
			{Code: "AP_9", Label: "Emprunts et dettes financieres", Accounts: []string{"16", "17"}},
			{Code: "AP_10", Label: "Dettes d'operations d'assurance et de reassurance", Accounts: []string{"40", "42"}},
			{Code: "AP_11", Label: "Autres dettes", Accounts: []string{"44"}},
			{Code: "AP_12", Label: "Comptes de regularisation passif", Accounts: []string{"48"}},
		}},
		{Section: SectionExpenses, Lines: []Line{
			{Code: "CT_1", Label: "Prestations et frais payes", Accounts: []string{"60"}},
			{Code: "CT_2", Label: "Charges des placements", Accounts: []string{"61"}},
			{Code: "CT_3", Label: "Commissions versees", Accounts: []string{"62"}},
			{Code: "CT_4", Label: "Variations des provisions techniques", Accounts: []string{"63"}},
			{Code: "CT_5", Label: "Frais generaux", Accounts: []string{"64", "65"}},
			{Code: "CT_6", Label: "Charges de personnel", Accounts: []string{"66"}},
			{Code: "CNT_1", Label: "Charges non techniques courantes", Accounts: []string{"67"}},
			{Code: "CNT_2", Label: "Dotations aux amortissements et provisions", Accounts: []string{"68"}},
			{Code: "CNT_3", Label: "Charges exceptionnelles et impot", Accounts: []string{"69"}},
		}},
		{Section: SectionRevenues, Lines: []Line{
			{Code: "PT_1", Label: "Primes emises", Accounts: []string{"70"}},
			{Code: "PT_2", Label: "Variation des provisions pour primes non acquises", Accounts: []string{"71"}},
			{Code: "PT_3", Label: "Produits des placements", Accounts: []string{"72"}},
			{Code: "PT_4", Label: "Commissions recues des reassureurs", Accounts: []string{"73"}},
			{Code: "PT_5", Label: "Autres produits techniques", Accounts: []string{"74", "75", "76"}},
			{Code: "PNT_1", Label: "Produits non techniques courants", Accounts: []string{"78"}},
			{Code: "PNT_2", Label: "Reprises et produits exceptionnels", Accounts: []string{"79"}},
		}},
	})
}
