package main

import (
	"fmt"
	"net/http"

	"github.com/checkmate-hq/checkmate-backend-go/internal/config"
	appHTTP "github.com/checkmate-hq/checkmate-backend-go/internal/handler/http"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/notion"
	"github.com/checkmate-hq/checkmate-backend-go/internal/repository/notiondb"
	attendanceService "github.com/checkmate-hq/checkmate-backend-go/internal/service/attendance"
	employeeService "github.com/checkmate-hq/checkmate-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	// The store client lives from process start to shutdown and is injected
	// everywhere it is needed.
	var opts []notion.Option
	if cfg.Notion.BaseURL != "" {
		opts = append(opts, notion.WithBaseURL(cfg.Notion.BaseURL))
	}
	client := notion.NewClient(cfg.Notion.APIKey, opts...)

	employeeRepo := notiondb.NewEmployeeRepository(client, cfg.Notion.EmployeesDatabaseID)
	attendanceRepo := notiondb.NewAttendanceRepository(client, cfg.Notion.AttendanceDatabaseID)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	diagnosticsHandler := appHTTP.NewDiagnosticsHandler(cfg.Notion)

	router := appHTTP.NewRouter(employeeHandler, attendanceHandler, diagnosticsHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
