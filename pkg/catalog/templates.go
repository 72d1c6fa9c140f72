package catalog

import "github.com/Eloura74/Backbone/pkg/models"

// Template text is authored in French, as in the documents this system
// produces. Every variable part is a [BRACKET] token filled in by the
// resolver; nothing is interpolated at render time.

var facturationTemplates = []Template{
	{
		ID:       "facture_paiement",
		Label:    "Preuve de virement",
		Category: models.CategoryFacturation,
		Subject:  "Preuve de virement - Facture [REFERENCE]",
		Body: `Bonjour,

Veuillez trouver ci-joint la preuve de virement concernant la facture : [REFERENCE].

Le paiement a été effectué le [DATE]. Je vous remercie de bien vouloir m'accuser réception de ce règlement et de mettre à jour mon dossier.

Cordialement,
`,
	},
	{
		ID:       "facture_relance_1",
		Label:    "Relance amiable",
		Category: models.CategoryFacturation,
		Subject:  "Rappel : Facture en attente - [REFERENCE]",
		Body: `Madame, Monsieur,

Sauf erreur ou omission de ma part, le paiement de la facture référencée [REFERENCE], d'un montant de [MONTANT], ne nous est pas encore parvenu.

Il s'agit sans doute d'un simple oubli. Je vous prie de bien vouloir procéder au règlement avant le [DATE].

Si le virement a déjà été effectué, merci de ne pas tenir compte de ce courriel.

Cordialement,
`,
	},
	{
		ID:       "facture_relance_2",
		Label:    "Seconde relance",
		Category: models.CategoryFacturation,
		Subject:  "Relance : Facture impayée - [REFERENCE]",
		Body: `Madame, Monsieur,

Malgré ma précédente relance du [DATE], je constate que la facture [REFERENCE] d'un montant de [MONTANT] reste impayée à ce jour.

Je vous demande de bien vouloir régulariser votre situation immédiatement.

Cordialement,
`,
	},
	{
		ID:       "facture_mise_demeure",
		Label:    "Mise en demeure",
		Category: models.CategoryFacturation,
		Subject:  "MISE EN DEMEURE - Facture [REFERENCE]",
		Body: `Madame, Monsieur,

Par la présente, je vous mets en demeure de régler la somme de [MONTANT] due au titre de la facture [REFERENCE] sous 8 jours.

À défaut de paiement dans ce délai, je me verrai contraint d'engager les procédures légales nécessaires au recouvrement de cette créance.

Cette lettre vaut mise en demeure de payer.

Salutations distinguées,
`,
	},
	{
		ID:       "facture_contestation",
		Label:    "Contestation de facture",
		Category: models.CategoryFacturation,
		Subject:  "Contestation de facture - [REFERENCE]",
		Body: `Madame, Monsieur,

Je fais suite à la réception de la facture n°[REFERENCE].

Après vérification, je constate une erreur : [MOTIF]. En conséquence, je conteste le montant réclamé.

Je vous remercie de bien vouloir procéder aux vérifications nécessaires et de m'adresser un avoir ou une facture rectificative.

Cordialement,
`,
	},
	{
		ID:       "facture_devis",
		Label:    "Proposition commerciale / Devis",
		Category: models.CategoryFacturation,
		Subject:  "Proposition commerciale / Devis - [REFERENCE]",
		Body: `Bonjour,

Suite à nos échanges, j'ai le plaisir de vous transmettre notre proposition commerciale pour : [REFERENCE].

Vous trouverez le détail de l'offre en pièce jointe (ou ci-dessous).

Je reste à votre disposition pour toute question.

Cordialement,
`,
	},
	{
		ID:       "finance_rib",
		Label:    "Envoi de RIB",
		Category: models.CategoryFacturation,
		Subject:  "Envoi de RIB - [REFERENCE]",
		Body: `Bonjour,

Veuillez trouver ci-joint mon Relevé d'Identité Bancaire (RIB) pour le dossier : [REFERENCE].

Merci de bien vouloir faire le nécessaire pour les futurs virements/prélèvements.

Cordialement,
`,
	},
}

var rhTemplates = []Template{
	{
		ID:       "rh_convocation",
		Label:    "Convocation à un entretien",
		Category: models.CategoryRH,
		Subject:  "Convocation à un entretien - [OBJET]",
		Body: `Bonjour,

Suite à notre échange, j'ai le plaisir de vous confirmer votre entretien prévu le [DATE] à [HEURE] concernant : [OBJET].

L'entretien se déroulera [LIEU/VISIO].

Merci de me confirmer votre présence.

Cordialement,
`,
	},
	{
		ID:       "rh_offre",
		Label:    "Proposition de collaboration",
		Category: models.CategoryRH,
		Subject:  "Proposition de collaboration - [POSTE]",
		Body: `Bonjour,

Nous avons été très intéressés par votre profil.

Dans le cadre de notre recherche pour [POSTE], nous souhaiterions vous proposer une collaboration.

Seriez-vous disponible pour un bref échange téléphonique cette semaine ?

Bien à vous,
`,
	},
	{
		ID:       "rh_promesse",
		Label:    "Promesse d'embauche",
		Category: models.CategoryRH,
		Subject:  "Promesse d'embauche - [POSTE]",
		Body: `Madame, Monsieur,

Nous avons le plaisir de vous confirmer notre intention de vous engager au poste de [POSTE].

Date de début : [DATE]
Rémunération : [MONTANT]

Cette promesse d'embauche vaut contrat de travail sous réserve de la validation de votre période d'essai.

Cordialement,
`,
	},
	{
		ID:       "rh_avertissement",
		Label:    "Avertissement",
		Category: models.CategoryRH,
		Subject:  "Avertissement - [OBJET]",
		Body: `Monsieur/Madame,

Par la présente, nous vous notifions un avertissement suite aux faits suivants : [FAITS].

Nous vous demandons de bien vouloir rectifier votre comportement/travail à l'avenir.

Cordialement,
La Direction
`,
	},
	{
		ID:       "rh_certificat",
		Label:    "Certificat de travail",
		Category: models.CategoryRH,
		Subject:  "Certificat de travail - [NOM SALARIÉ]",
		Body: `ATTESTATION

Je soussigné(e), [NOM EMPLOYEUR], certifie que [NOM SALARIÉ] a été employé(e) au sein de notre société en qualité de [POSTE].

Date d'entrée : [DATE ENTRÉE]
Date de sortie : [DATE SORTIE]

Il/Elle nous quitte libre de tout engagement.

Fait pour servir et valoir ce que de droit.
`,
	},
	{
		ID:       "rh_conges_validation",
		Label:    "Validation de congés",
		Category: models.CategoryRH,
		Subject:  "Validation de vos congés - [PÉRIODE]",
		Body: `Bonjour,

J'ai le plaisir de vous informer que votre demande de congés pour la période [PÉRIODE] a été validée.

Profitez bien de ce repos !

Cordialement,
`,
	},
}

var logementTemplates = []Template{
	{
		ID:       "logement_preavis",
		Label:    "Préavis de départ",
		Category: models.CategoryLogement,
		Subject:  "Préavis de départ - [ADRESSE]",
		Body: `Objet : Résiliation de bail et préavis de départ

Madame, Monsieur,

Par la présente, je vous informe de mon intention de quitter le logement situé à [ADRESSE].

Conformément à la législation en vigueur, je respecterai un préavis de [DURÉE], mon départ étant effectif le [DATE FIN].

Je reste à votre disposition pour convenir d'une date pour l'état des lieux de sortie.

Veuillez agréer, Madame, Monsieur, l'expression de mes salutations distinguées.
`,
	},
	{
		ID:       "logement_sinistre",
		Label:    "Déclaration de sinistre",
		Category: models.CategoryLogement,
		Subject:  "Déclaration de sinistre - [ADRESSE]",
		Body: `Madame, Monsieur,

Je vous informe par la présente d'un sinistre survenu dans mon logement : [ADRESSE].

Nature du sinistre : [NATURE]
Date de constatation : [DATE]

J'ai pris les premières mesures conservatoires. Je reste dans l'attente de vos instructions pour la suite des démarches (expertise, réparations).

Cordialement,
`,
	},
	{
		ID:       "logement_quittance",
		Label:    "Quittance de loyer",
		Category: models.CategoryLogement,
		Subject:  "Quittance de loyer - [PÉRIODE]",
		Body: `QUITTANCE DE LOYER

Période : [PÉRIODE]
Adresse : [ADRESSE]

Je soussigné(e), [PROPRIÉTAIRE], certifie avoir reçu de [LOCATAIRE] la somme de [MONTANT] euros en paiement du loyer et des charges pour la période susmentionnée.

Dont Loyer : [MONTANT LOYER]
Dont Charges : [MONTANT CHARGES]

Fait le [DATE].
`,
	},
	{
		ID:       "logement_travaux",
		Label:    "Demande de travaux",
		Category: models.CategoryLogement,
		Subject:  "Demande de travaux - [ADRESSE]",
		Body: `Madame, Monsieur,

Je me permets de vous solliciter concernant des réparations nécessaires dans le logement : [ADRESSE].

En effet, j'ai constaté [DESCRIPTION PROBLÈME].

Ces réparations incombant au propriétaire, je vous remercie de bien vouloir faire le nécessaire dans les meilleurs délais.

Cordialement,
`,
	},
}

var directionTemplates = []Template{
	{
		ID:       "direction_cr",
		Label:    "Compte-rendu de réunion",
		Category: models.CategoryDirection,
		Subject:  "Compte-rendu : [OBJET]",
		Body: `Bonjour à tous,

Voici le compte-rendu des points abordés concernant : [OBJET].

POINTS CLÉS :
- [POINT 1]
- [POINT 2]

ACTIONS À MENER :
- [ACTION] (Responsable : [NOM])

Prochaine échéance : [DATE]

Cordialement,
`,
	},
	{
		ID:       "direction_note",
		Label:    "Note de service",
		Category: models.CategoryDirection,
		Subject:  "Note de service - [OBJET]",
		Body: `NOTE D'INFORMATION

Objet : [OBJET]

À l'attention de l'ensemble des collaborateurs,

Nous vous informons que [INFORMATION PRINCIPALE].

Cette mesure prendra effet à compter du [DATE].

Merci de votre prise en compte.

La Direction.
`,
	},
	{
		ID:       "direction_odj",
		Label:    "Ordre du jour",
		Category: models.CategoryDirection,
		Subject:  "Ordre du jour - [OBJET]",
		Body: `Bonjour,

Voici l'ordre du jour pour la réunion concernant : [OBJET].

Date : [DATE]
Heure : [HEURE]

ORDRE DU JOUR :
1. Introduction
2. Point sur l'avancement
3. Questions diverses

Merci de préparer vos interventions.

Cordialement,
`,
	},
	{
		ID:       "admin_procuration",
		Label:    "Procuration",
		Category: models.CategoryDirection,
		Subject:  "Procuration - [OBJET]",
		Body: `PROCURATION

Je soussigné(e), [NOM MANDANT], né(e) le [DATE NAISSANCE] à [LIEU], demeurant à [ADRESSE MANDANT],

Donne par la présente procuration à :
[NOM MANDATAIRE], demeurant à [ADRESSE MANDATAIRE],

Pour effectuer en mon nom et pour mon compte les démarches suivantes concernant : [OBJET].

Cette procuration est valable jusqu'au [DATE FIN].

Fait le [DATE].
`,
	},
	{
		ID:       "admin_resiliation",
		Label:    "Demande de résiliation",
		Category: models.CategoryDirection,
		Subject:  "Demande de résiliation - [OBJET]",
		Body: `Madame, Monsieur,

Par la présente, je vous informe de ma volonté de résilier mon contrat n°[NUMÉRO] concernant : [OBJET].

Je souhaite que cette résiliation prenne effet à compter du [DATE], conformément aux conditions générales de vente.

Je vous remercie de me confirmer la prise en compte de cette demande et de m'adresser une facture de clôture.

Cordialement,
`,
	},
}

var urgenceTemplates = []Template{
	{
		ID:       "urgence_signalement",
		Label:    "Signalement critique",
		Category: models.CategoryUrgence,
		Subject:  "URGENCE : Signalement critique - [OBJET]",
		Body: `URGENT

Je souhaite signaler un incident critique concernant : [OBJET].

Niveau de gravité : ÉLEVÉ
Date/Heure : [DATE]

Action immédiate requise. Merci d'intervenir ou de confirmer la réception de ce message au plus vite.

Cordialement,
`,
	},
}

var generalTemplates = []Template{
	{
		ID:       "email_rdv",
		Label:    "Confirmation de rendez-vous",
		Category: models.CategoryGeneral,
		Subject:  "Confirmation de rendez-vous - [OBJET]",
		Body: `Bonjour,

Je vous confirme notre rendez-vous pour : [OBJET].

Date : [DATE]
Heure : [HEURE]

Merci de me tenir informé en cas de changement.

Cordialement,
`,
	},
	{
		ID:       "reponse_libre",
		Label:    "Réponse libre",
		Category: models.CategoryGeneral,
		// Subject/body are synthesized from the item content by the
		// renderer; this entry only anchors the id in the catalog.
		Subject: "Re : [OBJET]",
		Body:    "",
	},
}
