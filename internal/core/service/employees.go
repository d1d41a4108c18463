package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"orbiont.com/meetmetrics/internal/core/domain"
	"orbiont.com/meetmetrics/internal/core/port"
)

// EmployeeSync mirrors the HR directory into the analytics store.
// It is a full refresh: truncate the employee datasource, then push
// the flattened roster in one batch.
type EmployeeSync struct {
	directory port.DirectoryClient
	analytics port.AnalyticsClient
}

func NewEmployeeSync(directory port.DirectoryClient, analytics port.AnalyticsClient) *EmployeeSync {
	return &EmployeeSync{
		directory: directory,
		analytics: analytics,
	}
}

func (s *EmployeeSync) Sync(ctx context.Context) (int, error) {
	employees, err := s.directory.ListEmployees(ctx)
	if err != nil {
		return 0, err
	}
	if len(employees) == 0 {
		log.Info("Directory returned no employees, nothing to sync")
		return 0, nil
	}

	rows := make([]domain.EmployeeRow, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, flattenEmployee(emp))
	}

	if err := s.analytics.TruncateEmployees(ctx); err != nil {
		return 0, err
	}
	if err := s.analytics.PushEmployees(ctx, rows); err != nil {
		return 0, err
	}

	log.WithField("employees", len(rows)).Info("Synced employee directory")
	return len(rows), nil
}

func flattenEmployee(emp domain.DirectoryEmployee) domain.EmployeeRow {
	row := domain.EmployeeRow{
		EmployeeID:     emp.ID,
		EmployeeNumber: emp.EmployeeNumber,
		FullName:       emp.FullName,
		Email:          emp.Email,
	}
	if emp.Position != nil {
		row.Position = &emp.Position.Name
	}
	if emp.Department != nil {
		row.Department = &emp.Department.Name
	}
	if emp.Division != nil {
		row.Division = &emp.Division.Name
	}
	if emp.ReportingTo != nil {
		fullName := emp.ReportingTo.FirstName + " " + emp.ReportingTo.LastName
		row.ReportingToID = &emp.ReportingTo.ID
		row.ReportingToEmail = &emp.ReportingTo.Email
		row.ReportingToFullName = &fullName
	}
	return row
}
