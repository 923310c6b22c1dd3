package cron

import (
	"context"
	"time"

	"github.com/autopay-hq/autopay-backend-go/internal/domain/payslip"
)

// RegisterPayrollRefresh schedules the current-month payslip refresh.
// Regeneration is an idempotent upsert per (employee, month), so rerunning
// the job only brings figures up to date with the latest attendance.
func RegisterPayrollRefresh(s *Scheduler, svc payslip.PayrollService, interval time.Duration) {
	s.AddJob("payroll-refresh", interval, func(ctx context.Context) error {
		return svc.RefreshAll(ctx, time.Now().UTC())
	})
}
