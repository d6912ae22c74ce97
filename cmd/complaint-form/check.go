package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"tgrera-complaint-form/internal/common/logger"
	"tgrera-complaint-form/internal/complaint/complaintid"
	"tgrera-complaint-form/internal/complaint/orchestrator"

	"github.com/charmbracelet/lipgloss"
)

// checkFlags holds the parsed flags for the check command.
type checkFlags struct {
	configPath string
	format     string
	strict     bool
	verbose    bool
}

// checkPayload is a complete form post: text values plus checkbox states.
type checkPayload struct {
	Fields    map[string]string `json:"fields"`
	Documents map[string]bool   `json:"documents"`
}

func runCheck(ctx context.Context, path string, flags checkFlags, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	switch flags.format {
	case "text", "json":
	default:
		return codeError(3, "invalid --format %q: want text or json", flags.format)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return codeError(3, "reading payload: %s", err)
	}
	var payload checkPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return codeError(3, "parsing payload: %s", err)
	}

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return codeError(3, "loading config: %s", err)
	}
	if flags.strict {
		cfg.Complaint.StrictDocumentCheck = true
	}

	log := logger.NewNoOpLogger()
	if flags.verbose {
		log = logger.NewStructured("debug", "console", "stderr")
	}

	factory, err := newFactory(cfg, complaintid.NewMemoryRegistry(), nil, log)
	if err != nil {
		return codeError(3, "building pipeline: %s", err)
	}

	outcome, err := factory.Build("cli").Submit(ctx, payload.Fields, payload.Documents)
	if err != nil {
		return codeError(1, "submission failed: %s", err)
	}

	if flags.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(outcome); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, renderOutcome(outcome))
	}

	if err := outcome.Err(); err != nil {
		return codeError(2, "complaint not submitted: %s", err)
	}
	return nil
}

func renderOutcome(o *orchestrator.Outcome) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TGRERA complaint check"))
	b.WriteString("\n")

	for _, r := range o.Results {
		if r.IsValid {
			b.WriteString(passStyle.Render("✔ " + r.FieldID))
		} else {
			b.WriteString(failStyle.Render("✘ "+r.FieldID) + "  " + r.Message)
		}
		b.WriteString("\n")
	}
	for _, a := range o.Alerts {
		b.WriteString(alertStyle.Render(a))
		b.WriteString("\n")
	}

	if !o.Submitted || o.Confirmation == nil {
		if o.ScrollTo != "" {
			b.WriteString(labelStyle.Render("First error:") + o.ScrollTo + "\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}

	c := o.Confirmation
	rows := []string{
		passStyle.Bold(true).Render("Complaint Submitted Successfully!"),
		row("Complaint ID:", c.ComplaintID),
		row("Complainant:", c.Complainant),
		row("Project:", c.Project),
		row("Category:", c.Category),
		row("Date & Time:", c.DateTime),
		row("Confirmation To:", c.Email),
		"",
		c.Notice(),
	}
	b.WriteString(confirmationStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	return b.String()
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}
