// Package cortex holds the heuristic text analysis behind the assistant
// endpoints: sentiment, structured summary and reply suggestion. Everything
// here is deterministic keyword/regexp work on opaque text.
package cortex

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	SentimentUrgent   = "Urgent 🔴"
	SentimentPositive = "Positif 🟢"
	SentimentNeutral  = "Neutre 🔵"
)

var (
	urgentKeywords   = []string{"urgent", "immédiat", "retard", "mise en demeure", "deadline", "important"}
	positiveKeywords = []string{"merci", "plaisir", "accord", "confirmé", "succès", "bien reçu"}

	amountRe = regexp.MustCompile(`\d+[.,]\d{2}\s?€?`)
	dateRe   = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
)

// Sentiment classifies the urgency of a text by keyword lookup.
func Sentiment(text string) string {
	lower := strings.ToLower(text)
	for _, w := range urgentKeywords {
		if strings.Contains(lower, w) {
			return SentimentUrgent
		}
	}
	for _, w := range positiveKeywords {
		if strings.Contains(lower, w) {
			return SentimentPositive
		}
	}
	return SentimentNeutral
}

// Subject guesses a subject line: the first non-trivial line among the
// first five.
func Subject(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if len(s) > 5 && len(s) < 100 {
			return s
		}
	}
	return "Non identifié"
}

// Summarize produces a small structured summary: detected subject, amounts,
// key dates and sentiment.
func Summarize(text string) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("📄 **Sujet détecté** : %s", Subject(text)))
	if amounts := amountRe.FindAllString(text, 3); len(amounts) > 0 {
		parts = append(parts, fmt.Sprintf("💰 **Montants trouvés** : %s", strings.Join(amounts, ", ")))
	}
	if dates := dateRe.FindAllString(text, 3); len(dates) > 0 {
		parts = append(parts, fmt.Sprintf("📅 **Dates clés** : %s", strings.Join(dates, ", ")))
	}
	parts = append(parts, "mood: "+Sentiment(text))
	return strings.Join(parts, "\n")
}

// SuggestReply returns a canned reply matching the dominant topic of the
// context text.
func SuggestReply(context string) string {
	lower := strings.ToLower(context)
	switch {
	case strings.Contains(lower, "facture") || strings.Contains(lower, "paiement"):
		return `Bonjour,

Bien reçu. Le paiement a été programmé et sera effectué dans les plus brefs délais.

Cordialement,`
	case strings.Contains(lower, "rendez-vous") || strings.Contains(lower, "réunion") || strings.Contains(lower, "dispo"):
		return `Bonjour,

Merci pour votre message. Je suis disponible aux créneaux suivants :
- Lundi matin
- Mercredi après-midi

Dans l'attente de votre confirmation.

Cordialement,`
	case strings.Contains(lower, "candidature") || strings.Contains(lower, "cv"):
		return `Bonjour,

Nous avons bien reçu votre candidature et nous vous en remercions.
Nous reviendrons vers vous sous une semaine après étude de votre dossier.

Cordialement,`
	default:
		return `Bonjour,

J'ai bien reçu votre message et je vous en remercie.
Je reviens vers vous très rapidement.

Cordialement,`
	}
}
