// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3 with second-precision expressions.
//
// PairingAuditJob counts orders without a delivery and deliveries without an
// order. A healthy database has none of either, because both rows are written
// in one transaction and deleted together. Non-zero counts are logged at WARN.
//
//	audit := jobs.NewPairingAuditJob(countHandler, jobs.DefaultAuditSchedule, logger)
//	manager := jobs.NewJobManager(audit)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
package jobs
