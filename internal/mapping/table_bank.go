package mapping

// BankTable is the mapping for credit institutions (plan comptable
// bancaire): treasury and interbank in the low classes, customer
// operations, securities, then fixed assets and equity.
func BankTable() (*Table, error) {
	return NewTable(SectorBank, []SectionBlock{
		{Section: SectionAssets, Lines: []Line{
			{Code: "BA_1", Label: "Caisse et banques centrales", Accounts: []string{"10"}},
			{Code: "BA_2", Label: "Effets publics et assimiles", Accounts: []string{"11", "12"}},
			{Code: "BA_3", Label: "Creances sur etablissements de credit", Accounts: []string{"13", "14"}},
			{Code: "BA_4", Label: "Prets et avances interbancaires", Accounts: []string{"18"}},
			{Code: "BA_5", Label: "Credits a la clientele", Accounts: []string{"20", "21", "22"}, Contra: []string{"290", "291", "292"}},
			{Code: "BA_6", Label: "Comptes ordinaires debiteurs", Accounts: []string{"23", "24"}, Contra: []string{"293", "294"}},
			{Code: "BA_7", Label: "Creances impayees et douteuses", Accounts: []string{"27", "28"}, Contra: []string{"297", "298"}},
			{Code: "BA_8", Label: "Titres de transaction", Accounts: []string{"30", "31"}},
			{Code: "BA_9", Label: "Titres de placement", Accounts: []string{"33", "34"}, Contra: []string{"390"}},
			{Code: "BA_10", Label: "Titres d'investissement", Accounts: []string{"35", "36"}},
			{Code: "BA_11", Label: "Immobilisations incorporelles", Accounts: []string{"40", "41"}, Contra: []string{"481"}},
			{Code: "BA_12", Label: "Immobilisations corporelles", Accounts: []string{"42", "43", "44"}, Contra: []string{"482"}},
			{Code: "BA_13", Label: "Immobilisations financieres", Accounts: []string{"45", "46"}},
			{Code: "BA_14", Label: "Actionnaires ou associes", Accounts: []string{"47"}},
		}},
		{Section: SectionLiabilities, Lines: []Line{
			{Code: "BP_1", Label: "Dettes envers les etablissements de credit", Accounts: []string{"15"}},
			{Code: "BP_2", Label: "Emprunts interbancaires", Accounts: []string{"16", "17"}},
			{Code: "BP_3", Label: "Comptes d'epargne", Accounts: []string{"25"}},
			{Code: "BP_4", Label: "Depots a terme", Accounts: []string{"26"}},
			{Code: "BP_5", Label: "Titres de creances negociables emis", Accounts: []string{"32"}},
			{Code: "BP_6", Label: "Autres dettes sur titres", Accounts: []string{"37", "38"}},
			{Code: "BP_7", Label: "Dettes diverses", Accounts: []string{"49"}},
			{Code: "BP_8", Label: "Capital", Accounts: []string{"50", "51"}},
			{Code: "BP_9", Label: "Reserves et primes", Accounts: []string{"52", "53"}},
			{Code: "BP_10", Label: "Report a nouveau", Accounts: []string{"54"}},
			{Code: "BP_11", Label: "Resultat de l'exercice", Accounts: []string{"55"}},
			{Code: "BP_12", Label: "Provisions pour risques", Accounts: []string{"56", "57"}},
			{Code: "BP_13", Label: "Fonds pour risques bancaires generaux", Accounts: []string{"58", "59"}},
		}},
		{Section: SectionExpenses, Lines: []Line{
			{Code: "CB_1", Label: "Charges sur operations de tresorerie", Accounts: []string{"60"}},
			{Code: "CB_2", Label: "Charges sur operations avec la clientele", Accounts: []string{"61"}},
			{Code: "CB_3", Label: "Charges sur operations sur titres", Accounts: []string{"62"}},
			{Code: "CB_4", Label: "Charges sur operations de change", Accounts: []string{"63"}},
			{Code: "CB_5", Label: "Charges sur operations de hors-bilan", Accounts: []string{"64"}},
			{Code: "CB_6", Label: "Charges sur prestations de services financiers", Accounts: []string{"65"}},
			{Code: "CB_7", Label: "Charges generales d'exploitation", Accounts: []string{"66"}},
			{Code: "CB_8", Label: "Frais de personnel", Accounts: []string{"67"}},
			{Code: "CB_9", Label: "Dotations aux amortissements et provisions", Accounts: []string{"68"}},
			{Code: "CB_10", Label: "Charges exceptionnelles et impot", Accounts: []string{"69"}},
		}},
		{Section: SectionRevenues, Lines: []Line{
			{Code: "PB_1", Label: "Produits sur operations de tresorerie", Accounts: []string{"70"}},
			{Code: "PB_2", Label: "Produits sur operations avec la clientele", Accounts: []string{"71"}},
			{Code: "PB_3", Label: "Produits sur operations sur titres", Accounts: []string{"72"}},
			{Code: "PB_4", Label: "Produits sur operations de change", Accounts: []string{"73"}},
			{Code: "PB_5", Label: "Produits sur operations de hors-bilan", Accounts: []string{"74"}},
			{Code: "PB_6", Label: "Produits sur prestations de services financiers", Accounts: []string{"75"}},
			{Code: "PB_7", Label: "Autres produits d'exploitation bancaire", Accounts: []string{"76", "77"}},
			{Code: "PB_8", Label: "Reprises de provisions", Accounts: []string{"78"}},
			{Code: "PB_9", Label: "Produits exceptionnels", Accounts: []string{"79"}},
		}},
		{Section: SectionOffBalance, Lines: []Line{
			{Code: "HB_1", Label: "Engagements de financement donnes", Accounts: []string{"90"}},
			{Code: "HB_2", Label: "Engagements de financement recus", Accounts: []string{"91"}},
			{Code: "HB_3", Label: "Engagements de garantie donnes", Accounts: []string{"92"}},
			{Code: "HB_4", Label: "Engagements de garantie recus", Accounts: []string{"93"}},
			{Code: "HB_5", Label: "Engagements sur titres", Accounts: []string{"94", "95"}},
			{Code: "HB_6", Label: "Operations en devises", Accounts: []string{"96", "97"}},
			{Code: "HB_7", Label: "Autres engagements", Accounts: []string{"98", "99"}},
		}},
	})
}
