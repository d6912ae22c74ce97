// internal/complaint/documents/checker.go
package documents

import (
	"tgrera-complaint-form/internal/common/logger"
	"tgrera-complaint-form/internal/form"
	"tgrera-complaint-form/internal/models"
)

const (
	LabelMissing = "#c0392b"
	LabelPresent = "#2c3e50"
)

// LabelSink recolours the label of a document checkbox.
type LabelSink interface {
	SetLabelColor(flag, color string)
}

// LabelColors is a LabelSink backed by a map.
type LabelColors map[string]string

func (l LabelColors) SetLabelColor(flag, color string) { l[flag] = color }

type Checker struct {
	form      form.Adapter
	labels    LabelSink
	mandatory []string
	strict    bool
	logger    logger.Logger
}

// NewChecker checks the given mandatory flags. When strict is false a
// mandatory checkbox missing from the form counts as satisfied.
func NewChecker(f form.Adapter, labels LabelSink, mandatory []string, strict bool, log logger.Logger) *Checker {
	return &Checker{
		form:      f,
		labels:    labels,
		mandatory: mandatory,
		strict:    strict,
		logger:    logger.ForComponent(log, "documents"),
	}
}

// ValidateMandatoryDocs reports whether every mandatory document is
// confirmed. Every present label is recoloured regardless of the result.
func (c *Checker) ValidateMandatoryDocs() bool {
	allChecked := true
	for _, flag := range c.mandatory {
		if !c.form.HasFlag(flag) {
			c.logger.Warn("mandatory document checkbox absent", map[string]interface{}{
				"flag":   flag,
				"strict": c.strict,
			})
			if c.strict {
				allChecked = false
			}
			continue
		}

		if c.form.IsChecked(flag) {
			c.setLabel(flag, LabelPresent)
		} else {
			c.setLabel(flag, LabelMissing)
			allChecked = false
		}
	}
	return allChecked
}

// Unconfirmed lists the mandatory flags that currently fail the check,
// without touching labels.
func (c *Checker) Unconfirmed() []string {
	var out []string
	for _, flag := range c.mandatory {
		if !c.form.HasFlag(flag) {
			if c.strict {
				out = append(out, flag)
			}
			continue
		}
		if !c.form.IsChecked(flag) {
			out = append(out, flag)
		}
	}
	return out
}

func (c *Checker) setLabel(flag, color string) {
	if c.labels != nil {
		c.labels.SetLabelColor(flag, color)
	}
}

// Collect reads all ten document flags. Absent checkboxes read as false.
func (c *Checker) Collect() models.DocumentFlags {
	return models.DocumentFlags{
		Aadhaar:       c.form.IsChecked(form.DocAadhaar),
		PAN:           c.form.IsChecked(form.DocPAN),
		Agreement:     c.form.IsChecked(form.DocAgreement),
		Receipts:      c.form.IsChecked(form.DocReceipts),
		Allotment:     c.form.IsChecked(form.DocAllotment),
		Comms:         c.form.IsChecked(form.DocComms),
		Photos:        c.form.IsChecked(form.DocPhotos),
		Notice:        c.form.IsChecked(form.DocNotice),
		Brochure:      c.form.IsChecked(form.DocBrochure),
		BankStatement: c.form.IsChecked(form.DocBankStatement),
	}
}
