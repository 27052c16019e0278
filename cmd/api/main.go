package main

import (
	"fmt"
	"net/http"

	"github.com/dawami-hr/dawami-backend-go/internal/config"
	appHTTP "github.com/dawami-hr/dawami-backend-go/internal/handler/http"
	"github.com/dawami-hr/dawami-backend-go/internal/pkg/database"
	"github.com/dawami-hr/dawami-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dawami-hr/dawami-backend-go/internal/service/attendance"
	leaveService "github.com/dawami-hr/dawami-backend-go/internal/service/leave"
	reportService "github.com/dawami-hr/dawami-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.StatementTimeout)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	txManager := postgresql.NewTxManager(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	employeeDirectory := postgresql.NewEmployeeDirectory(db)
	reportRepo := postgresql.NewReportRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, employeeDirectory, cfg.Policy)
	balanceSvc := leaveService.NewBalanceService(txManager, leaveTypeRepo, leaveBalanceRepo)
	requestSvc := leaveService.NewRequestService(txManager, leaveRequestRepo, employeeDirectory, cfg.Policy)
	reportSvc := reportService.NewReportService(reportRepo, employeeDirectory)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(balanceSvc, requestSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(cfg, attendanceHandler, leaveHandler, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
