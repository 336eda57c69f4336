package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/Tony-Muriuki/Good-Doctor-Backend/internal/db"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/routes"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	sessions := session.NewManager(session.NewMemoryStore(), "test-secret", time.Hour)

	r := gin.New()
	routes.RegisterRoutes(r, db, sessions)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func entityID(t *testing.T, w *httptest.ResponseRecorder) uint {
	t.Helper()
	id, ok := decode(t, w)["id"].(float64)
	require.True(t, ok, "response carries no id")
	return uint(id)
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.CookieName {
			return ck
		}
	}
	return nil
}

func signupUser(t *testing.T, r *gin.Engine, email string) uint {
	t.Helper()
	w := do(t, r, http.MethodPost, "/signup", gin.H{
		"name":         "Jane Roe",
		"email":        email,
		"age":          30,
		"gender":       "female",
		"phone_number": "0712345678",
		"password":     "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return entityID(t, w)
}

func createDoctor(t *testing.T, r *gin.Engine, email string) uint {
	t.Helper()
	w := do(t, r, http.MethodPost, "/doctors", gin.H{
		"name":             "Dr. Smith",
		"email":            email,
		"specialty":        "Cardiology",
		"experience_years": 12,
		"availability":     "Weekdays",
		"password":         "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return entityID(t, w)
}

func createAppointment(t *testing.T, r *gin.Engine, userID, doctorID uint) uint {
	t.Helper()
	w := do(t, r, http.MethodPost, "/appointments", gin.H{
		"user_id":   userID,
		"doctor_id": doctorID,
		"date":      "2023-07-09",
		"time":      "10:00",
		"status":    "Scheduled",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return entityID(t, w)
}

func createPrescription(t *testing.T, r *gin.Engine, appointmentID uint) uint {
	t.Helper()
	w := do(t, r, http.MethodPost, "/prescriptions", gin.H{
		"appointment_id": appointmentID,
		"medicine":       "Amoxicillin",
		"dosage":         "500mg",
		"instructions":   "Twice a day after meals",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return entityID(t, w)
}

// --------- Auth & session ---------

func TestSignupLoginCheckSession(t *testing.T) {
	r := setupAPI(t)

	signupUser(t, r, "jane@example.com")

	w := do(t, r, http.MethodPost, "/login", gin.H{
		"email":    "jane@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")

	ck := sessionCookie(w)
	require.NotNil(t, ck, "login must issue a session cookie")

	w = do(t, r, http.MethodGet, "/check_session", nil, ck)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jane@example.com", decode(t, w)["email"])
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupAPI(t)

	signupUser(t, r, "jane@example.com")

	w := do(t, r, http.MethodPost, "/login", gin.H{
		"email":    "jane@example.com",
		"password": "not-the-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
	assert.Nil(t, sessionCookie(w), "failed login must not authenticate a session")
}

func TestCheckSessionAnonymous(t *testing.T) {
	r := setupAPI(t)

	w := do(t, r, http.MethodGet, "/check_session", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDoctorLogin(t *testing.T) {
	r := setupAPI(t)

	createDoctor(t, r, "smith@example.com")

	w := do(t, r, http.MethodPost, "/doctor_login", gin.H{
		"email":    "smith@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	ck := sessionCookie(w)
	require.NotNil(t, ck)

	w = do(t, r, http.MethodGet, "/check_session", nil, ck)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cardiology", decode(t, w)["specialty"])
}

func TestLogoutClearsBothSlots(t *testing.T) {
	r := setupAPI(t)

	signupUser(t, r, "jane@example.com")
	w := do(t, r, http.MethodPost, "/login", gin.H{
		"email":    "jane@example.com",
		"password": "secret123",
	})
	ck := sessionCookie(w)
	require.NotNil(t, ck)

	w = do(t, r, http.MethodDelete, "/logout", nil, ck)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/check_session", nil, ck)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestClearSession(t *testing.T) {
	r := setupAPI(t)

	signupUser(t, r, "jane@example.com")
	w := do(t, r, http.MethodPost, "/login", gin.H{
		"email":    "jane@example.com",
		"password": "secret123",
	})
	ck := sessionCookie(w)
	require.NotNil(t, ck)

	w = do(t, r, http.MethodDelete, "/clear", nil, ck)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/check_session", nil, ck)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSignupDuplicateEmail(t *testing.T) {
	r := setupAPI(t)

	signupUser(t, r, "jane@example.com")

	w := do(t, r, http.MethodPost, "/signup", gin.H{
		"name":         "Other Jane",
		"email":        "jane@example.com",
		"age":          25,
		"gender":       "female",
		"phone_number": "0798765432",
		"password":     "secret123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

// --------- Users ---------

func TestUserUpdateFullReplace(t *testing.T) {
	r := setupAPI(t)

	id := signupUser(t, r, "jane@example.com")

	w := do(t, r, http.MethodPut, fmt.Sprintf("/users/%d", id), gin.H{
		"name":         "Jane Doe",
		"email":        "jane@example.com",
		"age":          31,
		"gender":       "female",
		"phone_number": "0700000000",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "Jane Doe", body["name"])
	assert.Equal(t, float64(31), body["age"])
}

func TestUserUpdatePassword(t *testing.T) {
	r := setupAPI(t)

	id := signupUser(t, r, "jane@example.com")

	w := do(t, r, http.MethodPut, fmt.Sprintf("/users/%d", id), gin.H{
		"name":         "Jane Roe",
		"email":        "jane@example.com",
		"age":          30,
		"gender":       "female",
		"phone_number": "0712345678",
		"password":     "newsecret456",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/login", gin.H{
		"email":    "jane@example.com",
		"password": "newsecret456",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/login", gin.H{
		"email":    "jane@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserNotFound(t *testing.T) {
	r := setupAPI(t)

	w := do(t, r, http.MethodGet, "/users/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

// --------- Appointments ---------

func TestAppointmentRoundTrip(t *testing.T) {
	r := setupAPI(t)

	userID := signupUser(t, r, "jane@example.com")
	doctorID := createDoctor(t, r, "smith@example.com")
	apID := createAppointment(t, r, userID, doctorID)

	w := do(t, r, http.MethodGet, fmt.Sprintf("/appointments/%d", apID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "2023-07-09", body["date"])
	assert.Equal(t, "10:00", body["time"])
	assert.Equal(t, "Scheduled", body["status"])

	// The nested user must not re-include an appointments list.
	user := body["user"].(map[string]any)
	assert.Equal(t, "jane@example.com", user["email"])
	_, hasAppointments := user["appointments"]
	assert.False(t, hasAppointments)
}

func TestAppointmentMalformedDate(t *testing.T) {
	r := setupAPI(t)

	userID := signupUser(t, r, "jane@example.com")
	doctorID := createDoctor(t, r, "smith@example.com")

	w := do(t, r, http.MethodPost, "/appointments", gin.H{
		"user_id":   userID,
		"doctor_id": doctorID,
		"date":      "2023-13-40",
		"time":      "10:00",
		"status":    "Scheduled",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "date")

	// Nothing persisted.
	w = do(t, r, http.MethodGet, "/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestAppointmentMalformedTime(t *testing.T) {
	r := setupAPI(t)

	userID := signupUser(t, r, "jane@example.com")
	doctorID := createDoctor(t, r, "smith@example.com")

	w := do(t, r, http.MethodPost, "/appointments", gin.H{
		"user_id":   userID,
		"doctor_id": doctorID,
		"date":      "2023-07-09",
		"time":      "25:99",
		"status":    "Scheduled",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "time")
}

func TestAppointmentUnknownDoctor(t *testing.T) {
	r := setupAPI(t)

	userID := signupUser(t, r, "jane@example.com")

	w := do(t, r, http.MethodPost, "/appointments", gin.H{
		"user_id":   userID,
		"doctor_id": 999,
		"date":      "2023-07-09",
		"time":      "10:00",
		"status":    "Scheduled",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "doctor_id")
}

func TestAppointmentListByPrincipal(t *testing.T) {
	r := setupAPI(t)

	userID := signupUser(t, r, "jane@example.com")
	otherID := signupUser(t, r, "mary@example.com")
	doctorID := createDoctor(t, r, "smith@example.com")

	createAppointment(t, r, userID, doctorID)
	createAppointment(t, r, userID, doctorID)
	createAppointment(t, r, otherID, doctorID)

	w := do(t, r, http.MethodGet, fmt.Sprintf("/users/%d/appointments", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var forUser []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &forUser))
	assert.Len(t, forUser, 2)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/doctors/%d/appointments", doctorID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var forDoctor []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &forDoctor))
	assert.Len(t, forDoctor, 3)
}

func TestDoctorDeleteCascades(t *testing.T) {
	r := setupAPI(t)

	userID := signupUser(t, r, "jane@example.com")
	doctorID := createDoctor(t, r, "smith@example.com")
	firstAp := createAppointment(t, r, userID, doctorID)
	secondAp := createAppointment(t, r, userID, doctorID)
	prescriptionID := createPrescription(t, r, firstAp)

	w := do(t, r, http.MethodDelete, fmt.Sprintf("/doctors/%d", doctorID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	for _, path := range []string{
		fmt.Sprintf("/doctors/%d", doctorID),
		fmt.Sprintf("/appointments/%d", firstAp),
		fmt.Sprintf("/appointments/%d", secondAp),
		fmt.Sprintf("/prescriptions/%d", prescriptionID),
	} {
		w = do(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}

	// The patient remains.
	w = do(t, r, http.MethodGet, fmt.Sprintf("/users/%d", userID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// --------- Prescriptions ---------

func TestPrescriptionLifecycle(t *testing.T) {
	r := setupAPI(t)

	userID := signupUser(t, r, "jane@example.com")
	doctorID := createDoctor(t, r, "smith@example.com")
	apID := createAppointment(t, r, userID, doctorID)
	id := createPrescription(t, r, apID)

	w := do(t, r, http.MethodGet, fmt.Sprintf("/prescriptions/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Amoxicillin", body["medicine"])
	assert.Equal(t, "2023-07-09", body["appointment"].(map[string]any)["date"])

	w = do(t, r, http.MethodPut, fmt.Sprintf("/prescriptions/%d", id), gin.H{
		"appointment_id": apID,
		"medicine":       "Ibuprofen",
		"dosage":         "200mg",
		"instructions":   "As needed",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Ibuprofen", decode(t, w)["medicine"])

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/prescriptions/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/prescriptions/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPrescriptionUnknownAppointment(t *testing.T) {
	r := setupAPI(t)

	w := do(t, r, http.MethodPost, "/prescriptions", gin.H{
		"appointment_id": 999,
		"medicine":       "Amoxicillin",
		"dosage":         "500mg",
		"instructions":   "Twice a day",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "appointment_id")
}
