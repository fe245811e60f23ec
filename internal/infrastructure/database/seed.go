package database

import (
	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type seedAccount struct {
	number string
	name   string
}

type seedJournal struct {
	code        string
	name        string
	journalType enum.JournalType
}

// Simplified Belgian minimum chart of accounts (PCMN). The account class is
// derived from the leading digit of the account number.
var pcmnAccounts = []seedAccount{
	// Classe 1 - Fonds propres, provisions et dettes à plus d'un an
	{"10", "Capital"},
	{"100", "Capital souscrit"},
	{"101", "Capital non appelé"},
	{"12", "Plus-values de réévaluation"},
	{"13", "Réserves"},
	{"130", "Réserves légales"},
	{"131", "Réserves indisponibles"},
	{"14", "Bénéfice reporté"},
	{"15", "Subsides en capital"},
	{"16", "Provisions et impôts différés"},
	{"17", "Dettes à plus d'un an"},
	{"170", "Emprunts subordonnés"},
	{"171", "Emprunts obligataires non convertibles"},
	{"172", "Emprunts obligataires convertibles"},
	{"173", "Emprunts et dettes de location-financement"},
	{"174", "Autres emprunts"},

	// Classe 2 - Frais d'établissement, actifs immobilisés
	{"20", "Frais d'établissement"},
	{"21", "Immobilisations incorporelles"},
	{"22", "Terrains et constructions"},
	{"220", "Terrains"},
	{"221", "Constructions"},
	{"23", "Installations, machines et outillage"},
	{"24", "Mobilier et matériel roulant"},
	{"240", "Mobilier"},
	{"241", "Matériel roulant"},
	{"25", "Immobilisations détenues en location-financement"},
	{"26", "Autres immobilisations corporelles"},
	{"27", "Immobilisations financières"},
	{"28", "Amortissements des immobilisations"},

	// Classe 3 - Stock et commandes en cours
	{"30", "Approvisionnements - matières premières"},
	{"31", "Approvisionnements - fournitures"},
	{"32", "En-cours de fabrication"},
	{"33", "Produits finis"},
	{"34", "Marchandises"},
	{"35", "Immeubles destinés à la vente"},
	{"36", "Acomptes versés sur achats"},
	{"37", "Commandes en cours d'exécution"},

	// Classe 4 - Créances et dettes à un an au plus
	{"40", "Créances commerciales"},
	{"400", "Clients"},
	{"401", "Effets à recevoir"},
	{"402", "Clients, créances douteuses"},
	{"41", "Autres créances"},
	{"411", "TVA à récupérer"},
	{"412", "Impôts et versements fiscaux à récupérer"},
	{"44", "Dettes commerciales"},
	{"440", "Fournisseurs"},
	{"441", "Effets à payer"},
	{"45", "Dettes fiscales, salariales et sociales"},
	{"450", "Dettes fiscales estimées"},
	{"451", "TVA à payer"},
	{"452", "Impôts et taxes à payer"},
	{"453", "Précomptes retenus"},
	{"454", "ONSS"},
	{"455", "Rémunérations"},
	{"47", "Dettes diverses"},
	{"48", "Comptes de régularisation"},

	// Classe 5 - Placements de trésorerie et valeurs disponibles
	{"50", "Actions et parts"},
	{"51", "Créances à plus d'un an échéant dans l'année"},
	{"52", "Créances à court terme"},
	{"53", "Dépôts à terme"},
	{"54", "Valeurs échues à l'encaissement"},
	{"55", "Établissements de crédit"},
	{"550", "Comptes courants bancaires"},
	{"56", "Office des chèques postaux"},
	{"57", "Caisses"},
	{"570", "Caisse espèces"},
	{"58", "Virements internes"},

	// Classe 6 - Charges
	{"60", "Approvisionnements et marchandises"},
	{"600", "Achats de matières premières"},
	{"601", "Achats de fournitures"},
	{"602", "Achats de services, travaux et études"},
	{"603", "Sous-traitances générales"},
	{"604", "Achats de marchandises"},
	{"61", "Services et biens divers"},
	{"610", "Loyers et charges locatives"},
	{"611", "Entretien et réparation"},
	{"612", "Fournitures faites à l'entreprise"},
	{"613", "Rétributions de tiers"},
	{"614", "Annonces, publicité"},
	{"616", "Primes d'assurances"},
	{"617", "Commissions aux tiers"},
	{"618", "Rémunérations, prix, commissions et courtages"},
	{"62", "Rémunérations, charges sociales et pensions"},
	{"620", "Rémunérations et avantages sociaux directs"},
	{"621", "Cotisations patronales de sécurité sociale"},
	{"622", "Primes patronales pour assurances extralégales"},
	{"623", "Autres frais de personnel"},
	{"624", "Pensions"},
	{"63", "Amortissements, réductions de valeur et provisions"},
	{"630", "Dotations aux amortissements"},
	{"631", "Réductions de valeur sur stocks"},
	{"632", "Réductions de valeur sur créances commerciales"},
	{"64", "Autres charges d'exploitation"},
	{"640", "Charges fiscales d'exploitation"},
	{"641", "Moins-values sur réalisations d'immobilisations"},
	{"65", "Charges financières"},
	{"650", "Charges des dettes"},
	{"651", "Réductions de valeur sur actifs circulants"},
	{"66", "Charges exceptionnelles"},
	{"67", "Impôts sur le résultat"},
	{"670", "Impôts belges sur le résultat"},

	// Classe 7 - Produits
	{"70", "Chiffre d'affaires"},
	{"700", "Ventes de marchandises"},
	{"701", "Ventes de produits finis"},
	{"702", "Ventes de déchets et rebuts"},
	{"703", "Ventes d'emballages récupérables"},
	{"704", "Facturations des travaux en cours"},
	{"705", "Prestations de services"},
	{"71", "Variation des stocks et des commandes en cours"},
	{"72", "Production immobilisée"},
	{"74", "Autres produits d'exploitation"},
	{"740", "Subsides d'exploitation et montants compensatoires"},
	{"741", "Plus-values sur réalisations d'actifs immobilisés"},
	{"75", "Produits financiers"},
	{"750", "Produits des immobilisations financières"},
	{"751", "Produits des actifs circulants"},
	{"752", "Plus-values sur réalisations d'actifs circulants"},
	{"753", "Subsides en capital et en intérêts"},
	{"754", "Différences de change"},
	{"76", "Produits exceptionnels"},
}

// The seven Belgian journals.
var belgianJournals = []seedJournal{
	{"VTE", "Journal des ventes", enum.JournalTypeSales},
	{"ACH", "Journal des achats", enum.JournalTypePurchases},
	{"CAI", "Journal de caisse", enum.JournalTypeCash},
	{"BNQ", "Journal de banque", enum.JournalTypeBank},
	{"OD", "Opérations diverses", enum.JournalTypeGeneral},
	{"OUV", "Journal d'ouverture", enum.JournalTypeOpening},
	{"CLO", "Journal de clôture", enum.JournalTypeClosing},
}

// SeedDefaultData creates the PCMN chart of accounts and the Belgian
// journals if they do not exist yet. Existing rows are never modified.
func SeedDefaultData(db *gorm.DB) error {
	log.Info().Msg("seeding chart of accounts and journals")

	for _, a := range pcmnAccounts {
		class, err := enum.AccountClassFromNumber(a.number)
		if err != nil {
			return err
		}

		var existing entity.Account
		if err := db.Where("account_number = ?", a.number).First(&existing).Error; err == nil {
			continue
		}

		account := entity.Account{
			AccountNumber: a.number,
			AccountName:   a.name,
			AccountClass:  class,
			IsActive:      true,
		}
		if err := db.Create(&account).Error; err != nil {
			log.Warn().Err(err).Str("account", a.number).Msg("failed to seed account")
		}
	}

	for _, j := range belgianJournals {
		var existing entity.Journal
		if err := db.Where("code = ?", j.code).First(&existing).Error; err == nil {
			continue
		}

		journal := entity.Journal{
			Code:        j.code,
			Name:        j.name,
			JournalType: j.journalType,
			IsActive:    true,
		}
		if err := db.Create(&journal).Error; err != nil {
			log.Warn().Err(err).Str("journal", j.code).Msg("failed to seed journal")
		}
	}

	return nil
}
