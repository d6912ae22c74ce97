// internal/complaint/livecheck/livecheck.go
package livecheck

import (
	"strings"

	"tgrera-complaint-form/internal/common/logger"
	"tgrera-complaint-form/internal/complaint/annotator"
	"tgrera-complaint-form/internal/complaint/validators"
	"tgrera-complaint-form/internal/form"
)

// Checks validates individual fields as the user leaves them and keeps the
// description hint current while typing.
type Checks struct {
	form      form.Adapter
	annotator *annotator.Annotator
	hints     *Hints
	logger    logger.Logger
}

func New(f form.Adapter, a *annotator.Annotator, hints *Hints, log logger.Logger) *Checks {
	return &Checks{
		form:      f,
		annotator: a,
		hints:     hints,
		logger:    logger.ForComponent(log, "livecheck"),
	}
}

// Attach registers the blur and input listeners on the form.
func (c *Checks) Attach() {
	c.form.OnEvent(form.FieldAadhaar, form.EventBlur, func() { c.check(validators.Aadhaar) })
	c.form.OnEvent(form.FieldPAN, form.EventBlur, c.checkPAN)
	c.form.OnEvent(form.FieldMobile, form.EventBlur, func() { c.check(validators.Mobile) })
	c.form.OnEvent(form.FieldDescription, form.EventInput, c.updateDescriptionHint)
}

func (c *Checks) check(spec validators.FieldSpec) {
	ok := c.annotator.Apply(spec.ID, spec.Validate(c.form.GetValue(spec.ID)), spec.ErrorMessage)
	c.logger.Debug("blur check", map[string]interface{}{"fieldId": spec.ID, "valid": ok})
}

func (c *Checks) checkPAN() {
	c.form.SetValue(form.FieldPAN, strings.ToUpper(c.form.GetValue(form.FieldPAN)))
	c.check(validators.PAN)
}

func (c *Checks) updateDescriptionHint() {
	c.hints.Update(form.FieldDescription, c.form.GetValue(form.FieldDescription))
}
