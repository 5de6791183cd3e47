package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/skills-wallet-api/internal/middleware"
	"github.com/noah-isme/skills-wallet-api/internal/models"
	"github.com/noah-isme/skills-wallet-api/internal/service"
)

// Router wires all handlers onto the gin engine.
type Router struct {
	Auth         *AuthHandler
	Subjects     *SubjectHandler
	Exams        *ExamHandler
	Credentials  *CredentialHandler
	Verification *VerificationHandler
	Wallet       *WalletHandler
	Metrics      *MetricsHandler

	AuthService *service.AuthService
}

// Register mounts every route group under the API prefix. Verification
// endpoints stay public: any party may look up a credential.
func (r *Router) Register(engine *gin.Engine, prefix string) {
	engine.GET("/health", r.Metrics.Health)
	engine.GET("/ready", r.Metrics.Health)
	engine.GET("/metrics", r.Metrics.Prometheus)

	api := engine.Group(prefix)

	api.POST("/auth/login", r.Auth.Login)
	api.GET("/auth/me", middleware.JWT(r.AuthService), r.Auth.Me)

	api.POST("/verify", r.Verification.VerifyToken)
	api.POST("/verify/credential", r.Verification.VerifyCredential)
	api.POST("/verify/transaction", r.Verification.VerifyTransaction)

	authed := api.Group("", middleware.JWT(r.AuthService))

	provider := middleware.RequireRoles(models.RoleProvider)
	anyRole := middleware.RequireRoles(models.RoleProvider, models.RoleStudent, models.RoleVerifier)

	authed.GET("/subjects", anyRole, r.Subjects.List)
	authed.GET("/subjects/:id", anyRole, r.Subjects.Get)
	authed.POST("/subjects", provider, r.Subjects.Create)
	authed.GET("/subjects/:id/classes", anyRole, r.Subjects.ListClasses)
	authed.POST("/subjects/:id/classes", provider, r.Subjects.CreateClass)

	authed.GET("/exams", anyRole, r.Exams.List)
	authed.GET("/exams/:id", anyRole, r.Exams.Get)
	authed.POST("/exams", provider, r.Exams.Create)
	authed.POST("/exams/generate", provider, r.Exams.Generate)
	authed.POST("/exams/:id/evaluate", anyRole, r.Exams.Evaluate)

	authed.POST("/credentials/issue", provider, r.Credentials.Issue)
	authed.GET("/credentials/:id", anyRole, r.Credentials.Get)

	walletRoles := middleware.RequireRoles(models.RoleProvider, models.RoleVerifier, "SELF")
	authed.GET("/wallet/:studentId", walletRoles, r.Wallet.Get)
	authed.GET("/wallet/:studentId/export", walletRoles, r.Wallet.Export)

	ledgerRoles := middleware.RequireRoles(models.RoleProvider, models.RoleVerifier)
	authed.GET("/blockchain/transactions", ledgerRoles, r.Credentials.ListTransactions)
	authed.GET("/blockchain/transactions/:txId", ledgerRoles, r.Credentials.GetTransaction)
}
