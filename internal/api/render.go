package api

import (
	"embed"
	"fmt"
	"html/template"

	"tgrera-complaint-form/internal/complaint/annotator"
	"tgrera-complaint-form/internal/complaint/livecheck"
	"tgrera-complaint-form/internal/complaint/orchestrator"
	"tgrera-complaint-form/internal/form"
	"tgrera-complaint-form/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

type pageData struct {
	Groups       []form.Group
	View         session.View
	Confirmation template.HTML
	ScrollTarget string
}

// controlData is one form control ready to render.
type controlData struct {
	form.FieldDef
	Value      string
	Checked    bool
	State      annotator.RenderedField
	LabelColor string
	Hint       *livecheck.HintState
}

func (c controlData) FieldStyle() template.CSS {
	if c.State.Style.BorderColor == "" {
		return ""
	}
	return template.CSS(fmt.Sprintf("border-color: %s; background: %s", c.State.Style.BorderColor, c.State.Style.Background))
}

func (c controlData) LabelStyle() template.CSS {
	if c.LabelColor == "" {
		return ""
	}
	return template.CSS("color: " + c.LabelColor)
}

func (c controlData) HintStyle() template.CSS {
	if c.Hint == nil {
		return ""
	}
	return template.CSS("color: " + c.Hint.Color)
}

func control(p *pageData, d form.FieldDef) controlData {
	c := controlData{
		FieldDef:   d,
		Value:      p.View.Values[d.ID],
		Checked:    p.View.Checked[d.ID],
		State:      p.View.Fields[d.ID],
		LabelColor: p.View.Labels[d.ID],
	}
	if h, ok := p.View.Hints[d.ID]; ok {
		c.Hint = &h
	}
	return c
}

// scrollTarget maps the pipeline's scroll anchor to an element id on the page.
func scrollTarget(anchor string) string {
	switch anchor {
	case "":
		return ""
	case orchestrator.SuccessAnchor:
		return anchor
	default:
		return anchor + "-error"
	}
}

func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"control": control,
	}).ParseFS(templateFS, "templates/*.html"))
}
