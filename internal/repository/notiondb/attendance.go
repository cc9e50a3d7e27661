package notiondb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/notion"
)

// Property names of the attendance collection.
const (
	propDate         = "날짜"
	propEmployee     = "직원"
	propCheckInTime  = "출근시간"
	propCheckOutTime = "퇴근시간"
	propWorkingHours = "근무시간"
	propStatus       = "상태"

	// propTitle is the id alias the store accepts for a page's title
	// property regardless of its display name.
	propTitle = "title"
)

type AttendanceRepository struct {
	client     *notion.Client
	databaseID string
}

func NewAttendanceRepository(client *notion.Client, databaseID string) *AttendanceRepository {
	return &AttendanceRepository{
		client:     client,
		databaseID: databaseID,
	}
}

// FindByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *AttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Record, error) {
	resp, err := r.client.QueryDatabase(ctx, r.databaseID, notion.QueryRequest{
		Filter: &notion.Filter{
			And: []notion.Filter{
				{Property: propDate, Date: &notion.DateCondition{Equals: date}},
				{Property: propEmployee, Relation: &notion.RelationCondition{Contains: employeeID}},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query attendance: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}

	rec := recordFromPage(resp.Results[0], employeeID)
	return &rec, nil
}

// Create implements attendance.AttendanceRepository.
func (r *AttendanceRepository) Create(ctx context.Context, rec attendance.Record, title string) (attendance.Record, error) {
	props := map[string]notion.PropertyValue{
		propTitle:    notion.NewTitle(title),
		propDate:     notion.NewDate(rec.Date),
		propEmployee: notion.NewRelation(rec.EmployeeID),
		propStatus:   notion.NewSelect(rec.Status),
	}
	if rec.CheckInTime != "" {
		props[propCheckInTime] = notion.NewRichText(rec.CheckInTime)
	}

	page, err := r.client.CreatePage(ctx, notion.CreatePageRequest{
		Parent:     notion.Parent{DatabaseID: r.databaseID},
		Properties: props,
	})
	if err != nil {
		return attendance.Record{}, fmt.Errorf("create attendance page: %w", err)
	}

	rec.ID = page.ID
	return rec, nil
}

// Update implements attendance.AttendanceRepository. Only non-nil fields of
// the patch are sent; omitted properties keep their stored value.
func (r *AttendanceRepository) Update(ctx context.Context, id string, fields attendance.UpdateFields) error {
	props := map[string]notion.PropertyValue{}
	if fields.CheckInTime != nil {
		props[propCheckInTime] = notion.NewRichText(*fields.CheckInTime)
	}
	if fields.CheckOutTime != nil {
		props[propCheckOutTime] = notion.NewRichText(*fields.CheckOutTime)
	}
	if fields.WorkingHours != nil {
		props[propWorkingHours] = notion.NewRichText(strconv.FormatFloat(*fields.WorkingHours, 'f', -1, 64))
	}
	if fields.Status != nil {
		props[propStatus] = notion.NewSelect(*fields.Status)
	}
	if len(props) == 0 {
		return nil
	}

	if _, err := r.client.UpdatePage(ctx, id, props); err != nil {
		return fmt.Errorf("update attendance page: %w", err)
	}
	return nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID, onOrAfter string, limit int) ([]attendance.Record, error) {
	resp, err := r.client.QueryDatabase(ctx, r.databaseID, notion.QueryRequest{
		Filter: &notion.Filter{
			And: []notion.Filter{
				{Property: propDate, Date: &notion.DateCondition{OnOrAfter: onOrAfter}},
				{Property: propEmployee, Relation: &notion.RelationCondition{Contains: employeeID}},
			},
		},
		Sorts:    []notion.Sort{{Property: propDate, Direction: notion.Descending}},
		PageSize: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("query attendance history: %w", err)
	}

	records := make([]attendance.Record, 0, len(resp.Results))
	for _, page := range resp.Results {
		records = append(records, recordFromPage(page, employeeID))
	}
	return records, nil
}

// recordFromPage maps a stored page to the flat record, total over any
// stored shape. The status defaults to 미확인 when absent; working hours
// stored as unparseable text read as unset.
func recordFromPage(page notion.Page, employeeID string) attendance.Record {
	props := page.Properties

	empID := props[propEmployee].FirstRelationID()
	if empID == "" {
		empID = employeeID
	}

	status := props[propStatus].SelectName()
	if status == "" {
		status = attendance.StatusUnknown
	}

	rec := attendance.Record{
		ID:           page.ID,
		Date:         props[propDate].DateStart(),
		EmployeeID:   empID,
		CheckInTime:  props[propCheckInTime].PlainText(),
		CheckOutTime: props[propCheckOutTime].PlainText(),
		Status:       status,
	}

	if s := props[propWorkingHours].PlainText(); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			rec.WorkingHours = &v
		}
	} else if n := props[propWorkingHours].NumberValue(); n != nil {
		rec.WorkingHours = n
	}

	return rec
}
