package services

import (
	"github.com/finbooks/ledger_core/internal/platform/config"
)

// ServiceContainer bundles the reconciliation services so the consuming
// backend wires them once per process. Every service is stateless apart
// from configuration and safe for concurrent use.
type ServiceContainer struct {
	Journal   *JournalService
	Ledger    *LedgerService
	Reporting *ReportingService
	Aging     *AgingService
}

// NewServiceContainer creates a new service container from configuration.
func NewServiceContainer(cfg *config.Config) *ServiceContainer {
	return &ServiceContainer{
		Journal:   NewJournalService(cfg.BalanceTolerance),
		Ledger:    NewLedgerService(),
		Reporting: NewReportingService(cfg.BalanceTolerance),
		Aging:     NewAgingService(),
	}
}
