package http

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/config"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/handler/http/middleware"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	contextHandler ContextHandler,
	accountHandler AccountHandler,
	companyHandler CompanyHandler,
	employeeHandler EmployeeHandler,
	timesheetHandler TimesheetHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
	auditHandler AuditHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nesthr-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	// uploaded files (logos, payroll documents) for local storage deployments
	if cfg.Storage.Type == "local" {
		fileServer(r, "/uploads", http.Dir(cfg.Storage.BasePath))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Get("/login/oauth/google", authHandler.LoginWithGoogle)
			r.Get("/oauth/callback/google", authHandler.OAuthCallbackGoogle)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/context", func(r chi.Router) {
				r.Get("/", contextHandler.GetContext)
				r.Post("/switch", contextHandler.SwitchCompany)
				r.Get("/company", contextHandler.CurrentCompany)
				r.Get("/portal", contextHandler.Portal)
			})

			// Superuser only
			r.Route("/accounts", func(r chi.Router) {
				r.Use(middleware.SuperuserOnly)
				r.Get("/", accountHandler.List)
				r.Post("/", accountHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", accountHandler.Get)
					r.Put("/", accountHandler.Update)
					r.Put("/role", accountHandler.UpdateRole)
					r.Post("/deactivate", accountHandler.Deactivate)
					r.Post("/reactivate", accountHandler.Reactivate)
				})
			})

			r.Route("/companies", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.SuperuserOnly)
					r.Get("/", companyHandler.List)
					r.Post("/", companyHandler.Create)
				})

				// "my" addresses the token's current company
				r.Route("/my", func(r chi.Router) {
					r.Use(middleware.RequireCompany)
					r.Get("/", companyHandler.Get)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(account.ActionWrite, account.EntityCompany))
						r.Put("/", companyHandler.Update)
						r.Put("/branding", companyHandler.UploadLogo)
					})
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", companyHandler.Get)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(account.ActionWrite, account.EntityCompany))
						r.Put("/", companyHandler.Update)
						r.Post("/logo", companyHandler.UploadLogo)
					})

					r.Route("/members", func(r chi.Router) {
						r.Use(middleware.RequirePermission(account.ActionAdmin, account.EntitySettings))
						r.Get("/", companyHandler.ListMembers)
						r.Post("/", companyHandler.AddMember)
						r.Put("/{accountID}", companyHandler.UpdateMemberRole)
						r.Delete("/{accountID}", companyHandler.RemoveMember)
					})
				})
			})

			// Company-scoped resources
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireCompany)

				r.Route("/employees", func(r chi.Router) {
					r.With(middleware.RequirePermission(account.ActionRead, account.EntityEmployee)).
						Get("/", employeeHandler.List)
					r.With(middleware.RequirePermission(account.ActionWrite, account.EntityEmployee)).
						Post("/", employeeHandler.Create)

					r.Route("/{id}", func(r chi.Router) {
						r.With(middleware.RequirePermission(account.ActionRead, account.EntityEmployee)).
							Get("/", employeeHandler.Get)

						r.Group(func(r chi.Router) {
							r.Use(middleware.RequirePermission(account.ActionWrite, account.EntityEmployee))
							r.Put("/", employeeHandler.Update)
							r.Post("/deactivate", employeeHandler.Deactivate)
							r.Post("/reactivate", employeeHandler.Reactivate)
						})
					})
				})

				r.Route("/timesheets", func(r chi.Router) {
					r.With(middleware.RequirePermission(account.ActionRead, account.EntityTimesheet)).
						Get("/", timesheetHandler.List)
					r.With(middleware.RequirePermission(account.ActionWrite, account.EntityTimesheet)).
						Post("/", timesheetHandler.Create)

					r.Route("/{id}", func(r chi.Router) {
						r.With(middleware.RequirePermission(account.ActionRead, account.EntityTimesheet)).
							Get("/", timesheetHandler.Get)

						r.Group(func(r chi.Router) {
							r.Use(middleware.RequirePermission(account.ActionWrite, account.EntityTimesheet))
							r.Put("/", timesheetHandler.Update)
							r.Post("/submit", timesheetHandler.Submit)
							r.Delete("/", timesheetHandler.Delete)
						})

						r.Group(func(r chi.Router) {
							r.Use(middleware.RequirePermission(account.ActionApprove, account.EntityTimesheet))
							r.Post("/approve", timesheetHandler.Approve)
							r.Post("/reject", timesheetHandler.Reject)
						})
					})
				})

				r.Route("/leave", func(r chi.Router) {
					r.With(middleware.RequirePermission(account.ActionRead, account.EntityLeave)).
						Get("/", leaveHandler.List)
					r.With(middleware.RequirePermission(account.ActionWrite, account.EntityLeave)).
						Post("/", leaveHandler.Create)

					r.Route("/{id}", func(r chi.Router) {
						r.With(middleware.RequirePermission(account.ActionRead, account.EntityLeave)).
							Get("/", leaveHandler.Get)

						r.Group(func(r chi.Router) {
							r.Use(middleware.RequirePermission(account.ActionWrite, account.EntityLeave))
							r.Put("/", leaveHandler.Update)
							r.Post("/submit", leaveHandler.Submit)
							r.Delete("/", leaveHandler.Delete)
						})

						r.Group(func(r chi.Router) {
							r.Use(middleware.RequirePermission(account.ActionApprove, account.EntityLeave))
							r.Post("/approve", leaveHandler.Approve)
							r.Post("/reject", leaveHandler.Reject)
						})
					})
				})

				r.Route("/payroll", func(r chi.Router) {
					r.With(middleware.RequirePermission(account.ActionRead, account.EntityPayroll)).
						Get("/", payrollHandler.List)
					r.With(middleware.RequirePermission(account.ActionWrite, account.EntityPayroll)).
						Post("/", payrollHandler.Create)

					r.Route("/{id}", func(r chi.Router) {
						r.With(middleware.RequirePermission(account.ActionRead, account.EntityPayroll)).
							Get("/", payrollHandler.Get)
						r.With(middleware.RequirePermission(account.ActionRead, account.EntityPayroll)).
							Get("/document", payrollHandler.Document)
						r.With(middleware.RequirePermission(account.ActionApprove, account.EntityPayroll)).
							Post("/approve", payrollHandler.Approve)
						r.With(middleware.RequirePermission(account.ActionAdmin, account.EntityPayroll)).
							Post("/archive", payrollHandler.Archive)
					})
				})

				r.Route("/dashboard", func(r chi.Router) {
					r.With(middleware.RequirePermission(account.ActionApprove, account.EntityTimesheet)).
						Get("/pending", dashboardHandler.Pending)
					r.Get("/me", dashboardHandler.EmployeePending)
				})

				r.With(middleware.RequirePermission(account.ActionRead, account.EntityAudit)).
					Get("/audit", auditHandler.List)
			})
		})
	})

	return r
}

// fileServer mounts a static file handler, refusing path parameters.
func fileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("fileServer does not permit URL parameters")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, req *http.Request) {
		rctx := chi.RouteContext(req.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, req)
	})
}
