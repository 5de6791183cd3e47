package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/skills-wallet-api/internal/models"
)

func runRBAC(t *testing.T, claims *models.JWTClaims, studentParam string, roles ...models.UserRole) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if claims != nil {
		c.Set(ContextUserKey, claims)
	}
	if studentParam != "" {
		c.Params = gin.Params{{Key: "studentId", Value: studentParam}}
	}

	passed := false
	RequireRoles(roles...)(c)
	if !c.IsAborted() {
		passed = true
	}
	return rec, passed
}

func TestRequireRolesAllowsMatchingRole(t *testing.T) {
	claims := &models.JWTClaims{UserID: "u1", Role: models.RoleProvider}
	_, passed := runRBAC(t, claims, "", models.RoleProvider)
	assert.True(t, passed)
}

func TestRequireRolesRejectsOtherRole(t *testing.T) {
	claims := &models.JWTClaims{UserID: "u1", Role: models.RoleStudent}
	rec, passed := runRBAC(t, claims, "", models.RoleProvider)
	assert.False(t, passed)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRolesRejectsMissingClaims(t *testing.T) {
	rec, passed := runRBAC(t, nil, "", models.RoleProvider)
	assert.False(t, passed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRolesSelfMatchesOwnWallet(t *testing.T) {
	claims := &models.JWTClaims{UserID: "user_student_1", Role: models.RoleStudent}

	_, passed := runRBAC(t, claims, "user_student_1", models.RoleProvider, "SELF")
	assert.True(t, passed)

	rec, passed := runRBAC(t, claims, "someone_else", models.RoleProvider, "SELF")
	assert.False(t, passed)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
