package mapping

// GeneralTable is the mapping for the Systeme Normal (SN): the full
// SYSCOHADA Revise balance sheet and income statement line set.
func GeneralTable() (*Table, error) {
	return NewTable(SectorGeneral, []SectionBlock{
		{Section: SectionAssets, Lines: []Line{
			{Code: "AQ", Label: "Frais d'etablissement", Accounts: []string{"201"}, Contra: []string{"2801", "2901"}},
			{Code: "AR", Label: "Charges a repartir", Accounts: []string{"202"}, Contra: []string{"2802", "2902"}},
			{Code: "AS", Label: "Primes de remboursement des obligations", Accounts: []string{"206"}, Contra: []string{"2806", "2906"}},
			{Code: "AD", Label: "Frais de recherche et developpement", Accounts: []string{"211", "212"}, Contra: []string{"2811", "2812", "2911", "2912"}},
			{Code: "AE", Label: "Brevets, licences, logiciels", Accounts: []string{"213", "214", "215"}, Contra: []string{"2813", "2814", "2815", "2913", "2914", "2915"}},
			{Code: "AF", Label: "Fonds commercial et droit au bail", Accounts: []string{"216", "217"}, Contra: []string{"2816", "2817", "2916", "2917"}},
			{Code: "AG", Label: "Autres immobilisations incorporelles", Accounts: []string{"218", "219"}, Contra: []string{"2818", "2819", "2918", "2919"}},
			{Code: "AJ", Label: "Terrains", Accounts: []string{"22"}, Contra: []string{"282", "292"}},
			{Code: "AK", Label: "Batiments", Accounts: []string{"231", "232", "233", "234"}, Contra: []string{"2831", "2832", "2833", "2834", "2931", "2932", "2933", "2934"}},
			{Code: "AL", Label: "Installations et agencements", Accounts: []string{"235", "237", "238"}, Contra: []string{"2835", "2837", "2838", "2935", "2937", "2938"}},
			{Code: "AM", Label: "Materiel", Accounts: []string{"241", "242", "243", "244"}, Contra: []string{"2841", "2842", "2843", "2844", "2941", "2942", "2943", "2944"}},
			{Code: "AN", Label: "Materiel de transport", Accounts: []string{"245"}, Contra: []string{"2845", "2945"}},
			{Code: "AP", Label: "Avances et acomptes sur immobilisations", Accounts: []string{"251", "252"}},
			{Code: "AT", Label: "Titres de participation", Accounts: []string{"26"}, Contra: []string{"296"}},
			{Code: "AU", Label: "Autres immobilisations financieres", Accounts: []string{"271", "272", "273", "274", "275", "276", "277"}, Contra: []string{"297"}},
			{Code: "BA", Label: "Actif circulant HAO", Accounts: []string{"485", "486", "487", "488"}, Contra: []string{"498"}},
			{Code: "BC", Label: "Marchandises", Accounts: []string{"31"}, Contra: []string{"391"}},
			{Code: "BD", Label: "Matieres premieres", Accounts: []string{"32"}, Contra: []string{"392"}},
			{Code: "BE", Label: "Autres approvisionnements", Accounts: []string{"33"}, Contra: []string{"393"}},
			{Code: "BF", Label: "Encours", Accounts: []string{"34", "35"}, Contra: []string{"394", "395"}},
			{Code: "BG", Label: "Produits fabriques", Accounts: []string{"36", "37"}, Contra: []string{"396", "397"}},
			{Code: "BI", Label: "Fournisseurs, avances versees", Accounts: []string{"409"}, Contra: []string{"490"}},
			{Code: "BJ", Label: "Clients", Accounts: []string{"411", "412", "413", "414", "415", "416", "418"}, Contra: []string{"491"}},
			{Code: "BK", Label: "Autres creances", Accounts: []string{"421", "425", "445", "449", "46", "47"}, Contra: []string{"492", "493", "494", "495", "496", "497"}},
			{Code: "BQ", Label: "Titres de placement", Accounts: []string{"50"}, Contra: []string{"590"}},
			{Code: "BR", Label: "Valeurs a encaisser", Accounts: []string{"51"}, Contra: []string{"591"}},
			{Code: "BS", Label: "Banques, caisse", Accounts: []string{"52", "53", "54", "55", "57", "58"}, Contra: []string{"592", "593", "594"}},
			{Code: "BU", Label: "Ecart de conversion actif", Accounts: []string{"478"}},
		}},
		{Section: SectionLiabilities, Lines: []Line{
			{Code: "CA", Label: "Capital", Accounts: []string{"101", "102", "103", "104", "105"}},
			{Code: "CB", Label: "Actionnaires, capital non appele", Accounts: []string{"109"}},
			{Code: "CC", Label: "Primes et reserves", Accounts: []string{"11"}},
			{Code: "CD", Label: "Ecarts de reevaluation", Accounts: []string{"106"}},
			{Code: "CE", Label: "Resultat net", Accounts: []string{"13"}},
			{Code: "CF", Label: "Autres capitaux propres", Accounts: []string{"14", "15"}},
			{Code: "CG", Label: "Report a nouveau", Accounts: []string{"12"}},
			{Code: "DA", Label: "Emprunts", Accounts: []string{"161", "162", "163", "164", "165"}},
			{Code: "DB", Label: "Dettes de credit-bail", Accounts: []string{"167"}},
			{Code: "DC", Label: "Dettes financieres diverses", Accounts: []string{"166", "168", "181", "182", "183", "184", "19"}},
			{Code: "DH", Label: "Dettes circulantes HAO", Accounts: []string{"481", "482", "483", "484"}},
			{Code: "DI", Label: "Clients, avances recues", Accounts: []string{"419"}},
			{Code: "DJ", Label: "Fournisseurs", Accounts: []string{"401", "402", "403", "404", "405", "408"}},
			{Code: "DK", Label: "Dettes fiscales", Accounts: []string{"441", "442", "443", "444", "446", "447", "448"}},
			{Code: "DL", Label: "Dettes sociales", Accounts: []string{"422", "423", "424", "426", "427", "428", "43"}},
			{Code: "DM", Label: "Autres dettes", Accounts: []string{"185", "186", "187", "188", "45"}},
			{Code: "DN", Label: "Risques provisionnes", Accounts: []string{"499"}},
			{Code: "DQ", Label: "Banques, credits de tresorerie", Accounts: []string{"56"}},
			{Code: "DZ", Label: "Ecart de conversion passif", Accounts: []string{"479"}},
		}},
		{Section: SectionExpenses, Lines: []Line{
			{Code: "RA", Label: "Achats de marchandises", Accounts: []string{"601"}},
			{Code: "RB", Label: "Variation de stocks de marchandises", Accounts: []string{"6031"}},
			{Code: "RC", Label: "Achats de matieres premieres", Accounts: []string{"602"}},
			{Code: "RD", Label: "Variation de stocks de matieres", Accounts: []string{"6032"}},
			{Code: "RE", Label: "Autres achats", Accounts: []string{"604", "605", "608"}},
			{Code: "RF", Label: "Variation des autres stocks", Accounts: []string{"6033"}},
			{Code: "RG", Label: "Transports", Accounts: []string{"61"}},
			{Code: "RH", Label: "Services exterieurs", Accounts: []string{"62", "63"}},
			{Code: "RI", Label: "Impots et taxes", Accounts: []string{"64"}},
			{Code: "RJ", Label: "Autres charges", Accounts: []string{"65"}},
			{Code: "RK", Label: "Charges de personnel", Accounts: []string{"66"}},
			{Code: "RL", Label: "Dotations aux amortissements", Accounts: []string{"681", "682"}},
			{Code: "RM", Label: "Dotations aux provisions", Accounts: []string{"691"}},
			{Code: "RN", Label: "Frais financiers", Accounts: []string{"67"}},
			{Code: "RO", Label: "Pertes de change", Accounts: []string{"676"}},
			{Code: "RP", Label: "Dotations financieres", Accounts: []string{"687", "697"}},
			{Code: "RQ", Label: "Charges HAO", Accounts: []string{"81", "83", "85"}},
			{Code: "RS", Label: "Impot sur le resultat", Accounts: []string{"89"}},
		}},
		{Section: SectionRevenues, Lines: []Line{
			{Code: "TA", Label: "Ventes de marchandises", Accounts: []string{"701"}},
			{Code: "TB", Label: "Ventes de produits fabriques", Accounts: []string{"702", "703", "704", "705"}},
			{Code: "TC", Label: "Travaux et services vendus", Accounts: []string{"706"}},
			{Code: "TD", Label: "Production stockee", Accounts: []string{"73"}},
			{Code: "TE", Label: "Production immobilisee", Accounts: []string{"72"}},
			{Code: "TF", Label: "Produits accessoires", Accounts: []string{"707"}},
			{Code: "TG", Label: "Subventions d'exploitation", Accounts: []string{"71"}},
			{Code: "TH", Label: "Autres produits", Accounts: []string{"75"}},
			{Code: "TI", Label: "Transferts de charges", Accounts: []string{"78"}},
			{Code: "TJ", Label: "Reprises de provisions", Accounts: []string{"791", "798"}},
			{Code: "TK", Label: "Revenus financiers", Accounts: []string{"77"}},
			{Code: "TL", Label: "Gains de change", Accounts: []string{"776"}},
			{Code: "TM", Label: "Reprises financieres", Accounts: []string{"787", "797"}},
			{Code: "TN", Label: "Produits HAO", Accounts: []string{"82", "84", "86", "88"}},
		}},
	})
}
