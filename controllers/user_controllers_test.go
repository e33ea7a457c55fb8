package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/utils"
)

func TestLoginProfileLogout(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/login", "", map[string]string{"email": adminEmail, "password": "salah"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Email atau password salah", decodeEnvelope(t, rec).Message)

	rec = app.do(http.MethodPost, "/login", "", map[string]string{"email": "nobody@largarage.local", "password": adminPassword})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.api(http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var user models.User
	decodeData(t, rec, &user)
	assert.Equal(t, adminEmail, user.Email)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NotContains(t, rec.Body.String(), "password")

	assert.Equal(t, http.StatusOK, app.api(http.MethodPost, "/api/logout", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, app.api(http.MethodGet, "/api/profile", nil).Code)
}

func TestAPIRequiresToken(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, http.StatusUnauthorized, app.do(http.MethodGet, "/api/services", "", nil).Code)
	assert.Equal(t, http.StatusOK, app.do(http.MethodGet, "/ping", "", nil).Code)
}

func TestSettingsDefaultsAndAdminOnlyUpdate(t *testing.T) {
	app := newTestApp(t)

	rec := app.api(http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var settings models.Settings
	decodeData(t, rec, &settings)
	assert.Equal(t, "BENGKEL PRO", settings.WorkshopName)
	assert.Equal(t, "Alamat Bengkel Belum Diatur", settings.Address)

	mechanic, err := utils.GenerateToken(99, "mekanik")
	require.NoError(t, err)
	body := map[string]string{"workshop_name": "LarGarage Motor", "address": "Jl. Pahlawan 7", "phone": "021-555", "owner": "Lar"}
	assert.Equal(t, http.StatusForbidden, app.do(http.MethodPut, "/api/settings", mechanic, body).Code)

	rec = app.api(http.MethodPut, "/api/settings", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeData(t, rec, &settings)
	assert.Equal(t, "LarGarage Motor", settings.WorkshopName)
	assert.Equal(t, "Lar", settings.Owner)

	rec = app.api(http.MethodPut, "/api/settings", map[string]string{"workshop_name": "Bengkel Baru"})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &settings)
	assert.Equal(t, "Bengkel Baru", settings.WorkshopName)
	assert.Equal(t, "Admin", settings.Owner)
}
