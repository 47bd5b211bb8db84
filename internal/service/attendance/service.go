package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/workshophq/workforce-backend-go/internal/domain/attendance"
	"github.com/workshophq/workforce-backend-go/internal/domain/employee"
	"github.com/workshophq/workforce-backend-go/internal/pkg/tenant"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// SaveDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SaveDay(ctx context.Context, req attendance.SaveDayRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	day := attendance.Day{
		AccountID: accountID,
		Date:      date,
		Records:   make(map[string]attendance.ClockRecord, len(req.Records)),
	}
	for _, rec := range req.Records {
		day.Records[rec.EmployeeID] = attendance.ClockRecord{
			EmployeeID: rec.EmployeeID,
			InTime:     rec.InTime,
			OutTime:    rec.OutTime,
			LunchIn:    rec.LunchIn,
			LunchOut:   rec.LunchOut,
		}
	}

	saved, err := s.attendanceRepo.UpsertDay(ctx, day)
	if err != nil {
		return attendance.DayResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	return mapToDayResponse(saved), nil
}

// GetDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDay(ctx context.Context, dateStr string) (attendance.DayResponse, error) {
	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return attendance.DayResponse{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	day, err := s.attendanceRepo.GetByDate(ctx, accountID, date)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	return mapToDayResponse(day), nil
}

// UpdateRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateRecordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	return s.attendanceRepo.UpdateRecord(ctx, accountID, date, attendance.ClockRecord{
		EmployeeID: req.EmployeeID,
		InTime:     req.InTime,
		OutTime:    req.OutTime,
		LunchIn:    req.LunchIn,
		LunchOut:   req.LunchOut,
	})
}

// DeleteRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteRecord(ctx context.Context, dateStr string, employeeID string) error {
	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	return s.attendanceRepo.DeleteRecord(ctx, accountID, date, employeeID)
}

// DailyReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DailyReport(ctx context.Context, filter attendance.DailyReportFilter) ([]attendance.DailyRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	from, _ := time.Parse("2006-01-02", filter.From)
	to, _ := time.Parse("2006-01-02", filter.To)

	days, err := s.attendanceRepo.ListRange(ctx, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}

	emps, err := s.employeeRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}

	return Flatten(days, emps, filter.EmployeeID), nil
}

func mapToDayResponse(day attendance.Day) attendance.DayResponse {
	resp := attendance.DayResponse{
		Date:    day.Date.Format("2006-01-02"),
		Records: make([]attendance.ClockRecordResponse, 0, len(day.Records)),
	}
	for _, rec := range sortedRecords(day) {
		resp.Records = append(resp.Records, attendance.ClockRecordResponse{
			EmployeeID: rec.EmployeeID,
			InTime:     rec.InTime,
			OutTime:    rec.OutTime,
			LunchIn:    rec.LunchIn,
			LunchOut:   rec.LunchOut,
		})
	}
	return resp
}
