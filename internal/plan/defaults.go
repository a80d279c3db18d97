package plan

// DefaultPlan returns the built-in SYSCOHADA Revise chart of accounts.
// Two-digit entries carry the class defaults; more specific entries
// override side or usage where the standard does.
func DefaultPlan() []Account {
	return []Account{
		// Classe 1 - Ressources durables
		{Number: "10", Label: "Capital", Class: 1, Nature: NatureLiability, Side: SideCredit, Usage: UsageMandatory},
		{Number: "101", Label: "Capital social", Class: 1, Nature: NatureLiability, Side: SideCredit, Usage: UsageMandatory},
		{Number: "104", Label: "Primes liees au capital social", Class: 1, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "105", Label: "Ecarts de reevaluation", Class: 1, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "106", Label: "Reserves", Class: 1, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "109", Label: "Actionnaires, capital souscrit non appele", Class: 1, Nature: NatureLiability, Side: SideDebit, Usage: UsageOptional},
		{Number: "11", Label: "Reserves", Class: 1, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "12", Label: "Report a nouveau", Class: 1, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "13", Label: "Resultat net de l'exercice", Class: 1, Nature: NatureLiability, Side: SideCredit, Usage: UsageMandatory},
		{Number: "14", Label: "Subventions d'investissement", Class: 1, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "15", Label: "Provisions reglementees", Class: 1, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "16", Label: "Emprunts et dettes assimilees", Class: 1, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "17", Label: "Dettes de credit-bail et contrats assimiles", Class: 1, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "18", Label: "Dettes liees a des participations", Class: 1, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "19", Label: "Provisions pour risques et charges", Class: 1, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},

		// Classe 2 - Actif immobilise
		{Number: "21", Label: "Immobilisations incorporelles", Class: 2, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "22", Label: "Terrains", Class: 2, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "23", Label: "Batiments, installations techniques et agencements", Class: 2, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "24", Label: "Materiel, mobilier et actifs biologiques", Class: 2, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "245", Label: "Materiel de transport", Class: 2, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "25", Label: "Avances et acomptes verses sur immobilisations", Class: 2, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "26", Label: "Titres de participation", Class: 2, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "27", Label: "Autres immobilisations financieres", Class: 2, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "28", Label: "Amortissements", Class: 2, Nature: NatureAsset, Side: SideCredit, Usage: UsageOptional},
		{Number: "29", Label: "Depreciations des immobilisations", Class: 2, Nature: NatureAsset, Side: SideCredit, Usage: UsageOptional},

		// Classe 3 - Stocks
		{Number: "31", Label: "Marchandises", Class: 3, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "32", Label: "Matieres premieres et fournitures liees", Class: 3, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "33", Label: "Autres approvisionnements", Class: 3, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "34", Label: "Produits en cours", Class: 3, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "36", Label: "Produits finis", Class: 3, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "38", Label: "Stocks en cours de route, en consignation", Class: 3, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "39", Label: "Depreciations des stocks", Class: 3, Nature: NatureAsset, Side: SideCredit, Usage: UsageOptional},

		// Classe 4 - Tiers
		{Number: "40", Label: "Fournisseurs et comptes rattaches", Class: 4, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "401", Label: "Fournisseurs, dettes en compte", Class: 4, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "409", Label: "Fournisseurs debiteurs", Class: 4, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "41", Label: "Clients et comptes rattaches", Class: 4, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "411", Label: "Clients", Class: 4, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "419", Label: "Clients crediteurs", Class: 4, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "42", Label: "Personnel", Class: 4, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "43", Label: "Organismes sociaux", Class: 4, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "44", Label: "Etat et collectivites publiques", Class: 4, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "443", Label: "Etat, TVA facturee", Class: 4, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "445", Label: "Etat, TVA recuperable", Class: 4, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "45", Label: "Organismes internationaux", Class: 4, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "46", Label: "Associes et groupe", Class: 4, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "47", Label: "Debiteurs et crediteurs divers", Class: 4, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "471", Label: "Comptes d'attente", Class: 4, Nature: NatureSpecial, Side: SideDebit, Usage: UsageOptional},
		{Number: "48", Label: "Creances et dettes hors activites ordinaires", Class: 4, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "49", Label: "Depreciations et provisions pour risques (tiers)", Class: 4, Nature: NatureAsset, Side: SideCredit, Usage: UsageOptional},

		// Classe 5 - Tresorerie
		{Number: "50", Label: "Titres de placement", Class: 5, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "51", Label: "Valeurs a encaisser", Class: 5, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "52", Label: "Banques", Class: 5, Nature: NatureAsset, Side: SideDebit, Usage: UsageMandatory},
		{Number: "53", Label: "Etablissements financiers et assimiles", Class: 5, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "56", Label: "Banques, credits de tresorerie", Class: 5, Nature: NatureLiability, Side: SideCredit, Usage: UsageOptional},
		{Number: "57", Label: "Caisse", Class: 5, Nature: NatureAsset, Side: SideDebit, Usage: UsageMandatory},
		{Number: "58", Label: "Regies d'avances, accreditifs et virements internes", Class: 5, Nature: NatureAsset, Side: SideDebit, Usage: UsageOptional},
		{Number: "59", Label: "Depreciations et provisions (tresorerie)", Class: 5, Nature: NatureAsset, Side: SideCredit, Usage: UsageOptional},

		// Classe 6 - Charges des activites ordinaires
		{Number: "60", Label: "Achats et variations de stocks", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "601", Label: "Achats de marchandises", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "602", Label: "Achats de matieres premieres", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "603", Label: "Variations des stocks de biens achetes", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "605", Label: "Autres achats", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "61", Label: "Transports", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "62", Label: "Services exterieurs A", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "625", Label: "Primes d'assurance", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "627", Label: "Publicite, publications, relations publiques", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "63", Label: "Services exterieurs B", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "64", Label: "Impots et taxes", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "6471", Label: "Penalites d'assiette, impots directs", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "6478", Label: "Autres amendes penales et fiscales", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "65", Label: "Autres charges", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "658", Label: "Dons et liberalites accordes", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "66", Label: "Charges de personnel", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "67", Label: "Frais financiers et charges assimilees", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "68", Label: "Dotations aux amortissements", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "69", Label: "Dotations aux provisions et aux depreciations", Class: 6, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},

		// Classe 7 - Produits des activites ordinaires
		{Number: "70", Label: "Ventes", Class: 7, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "701", Label: "Ventes de marchandises", Class: 7, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "702", Label: "Ventes de produits finis", Class: 7, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "706", Label: "Services vendus", Class: 7, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "707", Label: "Produits accessoires", Class: 7, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "71", Label: "Subventions d'exploitation", Class: 7, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "72", Label: "Production immobilisee", Class: 7, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "73", Label: "Variations des stocks de biens et services produits", Class: 7, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "75", Label: "Autres produits", Class: 7, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "77", Label: "Revenus financiers et produits assimiles", Class: 7, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "78", Label: "Transferts de charges", Class: 7, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "79", Label: "Reprises de provisions et de depreciations", Class: 7, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},

		// Classe 8 - Autres charges et autres produits (HAO)
		{Number: "81", Label: "Valeurs comptables des cessions d'immobilisations", Class: 8, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "82", Label: "Produits des cessions d'immobilisations", Class: 8, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "83", Label: "Charges hors activites ordinaires", Class: 8, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "84", Label: "Produits hors activites ordinaires", Class: 8, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "85", Label: "Dotations hors activites ordinaires", Class: 8, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},
		{Number: "86", Label: "Reprises hors activites ordinaires", Class: 8, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "88", Label: "Subventions d'equilibre", Class: 8, Nature: NatureRevenue, Side: SideCredit, Usage: UsageOptional},
		{Number: "89", Label: "Impots sur le resultat", Class: 8, Nature: NatureExpense, Side: SideDebit, Usage: UsageOptional},

		// Classe 9 - Engagements et comptabilite analytique
		{Number: "90", Label: "Engagements obtenus et engagements accordes", Class: 9, Nature: NatureSpecial, Side: SideDebit, Usage: UsageOptional},
	}
}
