package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/payfitlite/nesthr-backend-go/internal/config"
	appHTTP "github.com/payfitlite/nesthr-backend-go/internal/handler/http"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/cron"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/jwt"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/oauth"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/storage"
	"github.com/payfitlite/nesthr-backend-go/internal/repository/postgresql"
	accountService "github.com/payfitlite/nesthr-backend-go/internal/service/account"
	auditService "github.com/payfitlite/nesthr-backend-go/internal/service/audit"
	authService "github.com/payfitlite/nesthr-backend-go/internal/service/auth"
	companyService "github.com/payfitlite/nesthr-backend-go/internal/service/company"
	dashboardService "github.com/payfitlite/nesthr-backend-go/internal/service/dashboard"
	employeeService "github.com/payfitlite/nesthr-backend-go/internal/service/employee"
	identityService "github.com/payfitlite/nesthr-backend-go/internal/service/identity"
	leaveService "github.com/payfitlite/nesthr-backend-go/internal/service/leave"
	payrollService "github.com/payfitlite/nesthr-backend-go/internal/service/payroll"
	timesheetService "github.com/payfitlite/nesthr-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	accountRepo := postgresql.NewAccountRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	membershipRepo := postgresql.NewMembershipRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.GoogleOAuthEnabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	authSvc := authService.NewAuthService(db, accountRepo, membershipRepo, refreshTokenRepo, jwtService, googleService)
	identitySvc := identityService.NewIdentityService(db, accountRepo, membershipRepo, companyRepo, employeeRepo, auditRepo, jwtService)
	accountSvc := accountService.NewAccountService(db, accountRepo, auditRepo)
	companySvc := companyService.NewCompanyService(db, companyRepo, membershipRepo, auditRepo, fileStorage)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, accountRepo, auditRepo)
	timesheetSvc := timesheetService.NewTimesheetService(db, timesheetRepo, employeeRepo, auditRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo, auditRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, auditRepo, fileStorage)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo)
	auditSvc := auditService.NewAuditService(auditRepo)

	scheduler := cron.NewScheduler()
	cron.NewPayrollJobs(payrollSvc, cfg.Payroll).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(authSvc, jwtService),
		appHTTP.NewContextHandler(identitySvc),
		appHTTP.NewAccountHandler(accountSvc),
		appHTTP.NewCompanyHandler(companySvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewTimesheetHandler(timesheetSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewAuditHandler(auditSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
