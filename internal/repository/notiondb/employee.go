// Package notiondb implements the domain repositories on top of the hosted
// record store, translating between flat domain records and the store's
// per-kind property shapes.
package notiondb

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/employee"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/notion"
)

// Property names of the employees collection as administered in the store.
const (
	propEmployeeName = "이름"
	propDepartment   = "부서"
	propPosition     = "직급"
	propEmployeeCode = "사원번호"
	propPhone        = "연락처"
	propEmail        = "이메일"
	propProfileImage = "프로필사진"
)

type EmployeeRepository struct {
	client     *notion.Client
	databaseID string
}

func NewEmployeeRepository(client *notion.Client, databaseID string) *EmployeeRepository {
	return &EmployeeRepository{
		client:     client,
		databaseID: databaseID,
	}
}

// List implements employee.EmployeeRepository.
func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	resp, err := r.client.QueryDatabase(ctx, r.databaseID, notion.QueryRequest{
		Sorts: []notion.Sort{{Property: propEmployeeName, Direction: notion.Ascending}},
	})
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}

	employees := make([]employee.Employee, 0, len(resp.Results))
	for _, page := range resp.Results {
		employees = append(employees, employeeFromPage(page))
	}
	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	page, err := r.client.GetPage(ctx, id)
	if err != nil {
		var apiErr *notion.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee page: %w", err)
	}
	return employeeFromPage(page), nil
}

// employeeFromPage maps a stored page to the flat shape. It is total over
// any stored shape: a missing or re-typed property falls back to its
// documented default instead of failing the record.
func employeeFromPage(page notion.Page) employee.Employee {
	props := page.Properties

	name := props[propEmployeeName].PlainText()
	if name == "" {
		name = employee.FallbackName
	}

	return employee.Employee{
		ID:           page.ID,
		Name:         name,
		Department:   props[propDepartment].SelectName(),
		Position:     props[propPosition].SelectName(),
		EmployeeCode: props[propEmployeeCode].PlainText(),
		Phone:        props[propPhone].PlainText(),
		Email:        props[propEmail].EmailValue(),
		ProfileImage: props[propProfileImage].FirstFileURL(),
	}
}
