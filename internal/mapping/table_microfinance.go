package mapping

// MicrofinanceTable is the mapping for microfinance institutions:
// member loans and deposits around a treasury core, equity in class 5.
func MicrofinanceTable() (*Table, error) {
	return NewTable(SectorMicrofinance, []SectionBlock{
		{Section: SectionAssets, Lines: []Line{
			{Code: "MA_1", Label: "Caisse", Accounts: []string{"10"}},
			{Code: "MA_2", Label: "Comptes ordinaires chez les banques", Accounts: []string{"11"}},
			{Code: "MA_3", Label: "Placements et depots", Accounts: []string{"12", "13", "14"}},
			{Code: "MA_4", Label: "Credits a court terme aux membres", Accounts: []string{"20", "21"}, Contra: []string{"298"}},
			{Code: "MA_5", Label: "Credits a moyen et long terme", Accounts: []string{"22", "23"}, Contra: []string{"299"}},
			{Code: "MA_6", Label: "Creances en souffrance", Accounts: []string{"24", "25"}, Contra: []string{"294"}},
			{Code: "MA_7", Label: "Debiteurs divers", Accounts: []string{"33", "34", "35"}},
			{Code: "MA_8", Label: "Comptes de regularisation actif", Accounts: []string{"36", "37"}},
			{Code: "MA_9", Label: "Immobilisations incorporelles", Accounts: []string{"40", "41"}, Contra: []string{"481"}},
			{Code: "MA_10", Label: "Immobilisations corporelles", Accounts: []string{"42", "43", "44"}, Contra: []string{"482"}},
			{Code: "MA_11", Label: "Immobilisations financieres", Accounts: []string{"45", "46"}},
			{Code: "MA_12", Label: "Immobilisations en cours", Accounts: []string{"47"}},
		}},
		{Section: SectionLiabilities, Lines: []Line{
			{Code: "MP_1", Label: "Emprunts bancaires", Accounts: []string{"15"}},
			{Code: "MP_2", Label: "Ressources affectees", Accounts: []string{"16", "17"}},
			{Code: "MP_3", Label: "Depots a vue des membres", Accounts: []string{"30", "31"}},
			{Code: "MP_4", Label: "Depots a terme des membres", Accounts: []string{"32"}},
			{Code: "MP_5", Label: "Crediteurs divers", Accounts: []string{"38", "39"}},
			{Code: "MP_6", Label: "Capital social", Accounts: []string{"50", "51"}},
			{Code: "MP_7", Label: "Reserves", Accounts: []string{"52", "53"}},
			{Code: "MP_8", Label: "Report a nouveau", Accounts: []string{"54"}},
			{Code: "MP_9", Label: "Resultat de l'exercice", Accounts: []string{"55"}},
			{Code: "MP_10", Label: "Provisions pour risques et charges", Accounts: []string{"56", "57"}},
			{Code: "MP_11", Label: "Subventions et fonds affectes", Accounts: []string{"58", "59"}},
		}},
		{Section: SectionExpenses, Lines: []Line{
			{Code: "MC_1", Label: "Charges sur operations de tresorerie", Accounts: []string{"60"}},
			{Code: "MC_2", Label: "Charges sur operations avec les membres", Accounts: []string{"61"}},
			{Code: "MC_3", Label: "Autres charges financieres", Accounts: []string{"62"}},
			{Code: "MC_4", Label: "Achats et services exterieurs", Accounts: []string{"63", "64"}},
			{Code: "MC_5", Label: "Impots et taxes", Accounts: []string{"65"}},
			{Code: "MC_6", Label: "Charges de personnel", Accounts: []string{"66"}},
			{Code: "MC_7", Label: "Autres charges", Accounts: []string{"67"}},
			{Code: "MC_8", Label: "Dotations aux amortissements et provisions", Accounts: []string{"68"}},
			{Code: "MC_9", Label: "Charges exceptionnelles et impot", Accounts: []string{"69"}},
		}},
		{Section: SectionRevenues, Lines: []Line{
			{Code: "MR_1", Label: "Produits sur operations de tresorerie", Accounts: []string{"70"}},
			{Code: "MR_2", Label: "Produits sur operations avec les membres", Accounts: []string{"71"}},
			{Code: "MR_3", Label: "Autres produits financiers", Accounts: []string{"72"}},
			{Code: "MR_4", Label: "Produits accessoires", Accounts: []string{"74", "75"}},
			{Code: "MR_5", Label: "Subventions d'exploitation", Accounts: []string{"76", "77"}},
			{Code: "MR_6", Label: "Reprises et produits exceptionnels", Accounts: []string{"78", "79"}},
		}},
		{Section: SectionOffBalance, Lines: []Line{
			{Code: "MH_1", Label: "Engagements de financement donnes", Accounts: []string{"90"}},
			{Code: "MH_2", Label: "Engagements de garantie recus", Accounts: []string{"91"}},
		}},
	})
}
