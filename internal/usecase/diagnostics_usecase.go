package usecase

import (
	"context"

	"aurora_motors/internal/usecase/interfaces"
)

const (
	maxListedCollections = 10
	maxErrorDetail       = 80
)

// DiagnosticsReport summarizes backend and storage connectivity.
type DiagnosticsReport struct {
	Backend          string
	Configured       bool
	Database         string
	DatabaseURLSet   bool
	DatabaseName     string
	ConnectionStatus string
	Collections      []string
}

// IDiagnosticsUseCase reports connectivity. It never fails.

type IDiagnosticsUseCase interface {
	Status(ctx context.Context) DiagnosticsReport
}

type DiagnosticsUseCase struct {
	probe interfaces.IStorageProbe
}

var _ IDiagnosticsUseCase = (*DiagnosticsUseCase)(nil)

func NewDiagnosticsUseCase(probe interfaces.IStorageProbe) *DiagnosticsUseCase {
	return &DiagnosticsUseCase{probe: probe}
}

func (u *DiagnosticsUseCase) Status(ctx context.Context) DiagnosticsReport {
	report := DiagnosticsReport{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	info := u.probe.Info()
	if !info.Configured {
		return report
	}
	report.Configured = true
	report.Database = "available"
	report.DatabaseURLSet = info.Endpoint != ""
	report.DatabaseName = info.Database

	collections, err := u.probe.Collections(ctx)
	if err != nil {
		report.Database = "connected but error: " + truncate(err.Error(), maxErrorDetail)
		return report
	}
	if len(collections) > maxListedCollections {
		collections = collections[:maxListedCollections]
	}
	report.Collections = collections
	report.ConnectionStatus = "connected"
	report.Database = "connected and working"
	return report
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
