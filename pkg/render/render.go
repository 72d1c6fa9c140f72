// Package render turns a template id plus an item context into a draft
// document. Catalog text passes through literally with its placeholder
// tokens intact; the resolver stage owns substitution.
package render

import (
	"fmt"
	"strings"

	"github.com/Eloura74/Backbone/pkg/catalog"
	"github.com/Eloura74/Backbone/pkg/cortex"
	"github.com/Eloura74/Backbone/pkg/models"
)

// Context carries the item content and the optional free-text instruction
// from the caller. The instruction is advisory: a non-generative renderer
// may annotate the draft with it or ignore it entirely.
type Context struct {
	ItemContent string
	Instruction string
}

// Renderer produces a draft document for a template id. Implementations
// must be pure and safe for concurrent use; a generative backend can be
// swapped in without touching the lifecycle manager.
type Renderer interface {
	Render(templateID string, ctx Context) (models.Document, error)
}

// UnknownTemplateError reports a template id absent from the catalog.
type UnknownTemplateError struct {
	TemplateID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template: %s", e.TemplateID)
}

// freeReplyTemplate synthesizes its draft from the item content instead of
// catalog text.
const freeReplyTemplate = "reponse_libre"

// CatalogRenderer renders catalog templates verbatim. It never interprets
// the item content; drafts keep their [BRACKET] tokens for the resolver.
type CatalogRenderer struct{}

func (CatalogRenderer) Render(templateID string, ctx Context) (models.Document, error) {
	if templateID == freeReplyTemplate {
		return freeReply(ctx), nil
	}
	t, ok := catalog.Get(templateID)
	if !ok {
		return models.Document{}, &UnknownTemplateError{TemplateID: templateID}
	}
	doc := models.Document{Subject: t.Subject, Body: t.Body}
	if note := strings.TrimSpace(ctx.Instruction); note != "" {
		doc.Body += "\n\n--\nInstructions complémentaires : " + note + "\n"
	}
	return doc, nil
}

// freeReply builds a canned reply from the item content. The subject guess
// and reply text come from the cortex heuristics.
func freeReply(ctx Context) models.Document {
	subject := cortex.Subject(ctx.ItemContent)
	body := cortex.SuggestReply(ctx.ItemContent)
	if note := strings.TrimSpace(ctx.Instruction); note != "" {
		body += "\n\n--\nInstructions complémentaires : " + note + "\n"
	}
	return models.Document{
		Subject: "Re : " + subject,
		Body:    body,
	}
}
