package main

import (
	"fmt"

	"tgrera-complaint-form/internal/common/config"
	"tgrera-complaint-form/internal/common/logger"
	"tgrera-complaint-form/internal/common/observability"
	"tgrera-complaint-form/internal/common/validation"
	"tgrera-complaint-form/internal/complaint/complaintid"
	"tgrera-complaint-form/internal/complaint/orchestrator"
	"tgrera-complaint-form/internal/complaint/presenter"
	"tgrera-complaint-form/internal/session"
)

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// newFactory builds the shared collaborators every session pipeline uses.
func newFactory(cfg *config.Config, registry complaintid.Registry, obs *observability.Observability, log logger.Logger) (*session.Factory, error) {
	orchCfg, err := orchestrator.LoadConfig(cfg.Complaint)
	if err != nil {
		return nil, err
	}
	schema, err := validation.NewComplaintRecordValidator()
	if err != nil {
		return nil, fmt.Errorf("load record schema: %w", err)
	}

	ids := complaintid.NewGenerator(log,
		complaintid.WithPrefix(cfg.Complaint.IDPrefix),
		complaintid.WithLocation(orchCfg.Location),
		complaintid.WithMaxAttempts(cfg.Complaint.IDMaxAttempts),
		complaintid.WithRegistry(registry),
	)

	return &session.Factory{
		Config:    orchCfg,
		IDs:       ids,
		Presenter: presenter.New(cfg.Complaint.ConfirmationMinutes, log),
		Schema:    schema,
		Obs:       obs,
		Logger:    log,
	}, nil
}
