package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/Eloura74/Backbone/pkg/catalog"
	"github.com/Eloura74/Backbone/pkg/placeholder"
)

func TestRenderPassesCatalogTextThrough(t *testing.T) {
	var r CatalogRenderer
	doc, err := r.Render("facture_relance_1", Context{ItemContent: "relance client"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	tpl, _ := catalog.Get("facture_relance_1")
	if doc.Subject != tpl.Subject || doc.Body != tpl.Body {
		t.Fatal("draft differs from catalog text")
	}
	// tokens survive rendering untouched
	toks := placeholder.Extract(doc)
	if len(toks) == 0 {
		t.Fatal("draft lost its placeholder tokens")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	var r CatalogRenderer
	_, err := r.Render("no_such_template", Context{})
	var ut *UnknownTemplateError
	if !errors.As(err, &ut) {
		t.Fatalf("err = %v, want UnknownTemplateError", err)
	}
	if ut.TemplateID != "no_such_template" {
		t.Fatalf("TemplateID = %q", ut.TemplateID)
	}
}

func TestRenderAppendsInstruction(t *testing.T) {
	var r CatalogRenderer
	doc, err := r.Render("facture_paiement", Context{Instruction: "ton ferme"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(doc.Body, "Instructions complémentaires : ton ferme") {
		t.Fatalf("instruction not annotated: %q", doc.Body)
	}
	// the annotation must not introduce a new placeholder token
	base, _ := r.Render("facture_paiement", Context{})
	if len(placeholder.Extract(doc)) != len(placeholder.Extract(base)) {
		t.Fatal("instruction annotation introduced a placeholder token")
	}
}

func TestRenderIgnoresBlankInstruction(t *testing.T) {
	var r CatalogRenderer
	doc, err := r.Render("facture_paiement", Context{Instruction: "   "})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(doc.Body, "Instructions") {
		t.Fatalf("blank instruction annotated: %q", doc.Body)
	}
}

func TestRenderFreeReply(t *testing.T) {
	var r CatalogRenderer
	doc, err := r.Render("reponse_libre", Context{ItemContent: "Proposition de rendez-vous jeudi"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(doc.Subject, "Re : ") {
		t.Fatalf("subject = %q", doc.Subject)
	}
	if doc.Body == "" {
		t.Fatal("free reply body is empty")
	}
}
