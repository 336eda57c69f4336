package session

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const CookieName = "session"

// Manager issues and reads the session cookie. The cookie value is an HS256
// token carrying only the opaque session id; the principal itself stays
// server-side in the Store. A cookie that fails to parse, or an id the store
// no longer knows, reads as "not authenticated" rather than an error.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: []byte(secret), ttl: ttl}
}

func (m *Manager) Current(c *gin.Context) (Session, bool) {
	sid, ok := m.sidFromCookie(c)
	if !ok {
		return Session{}, false
	}
	sess, ok, err := m.store.Get(c.Request.Context(), sid)
	if err != nil || !ok {
		return Session{}, false
	}
	return sess, true
}

func (m *Manager) SetUser(c *gin.Context, userID uint) error {
	return m.set(c, Session{UserID: userID})
}

func (m *Manager) SetDoctor(c *gin.Context, doctorID uint) error {
	return m.set(c, Session{DoctorID: doctorID})
}

// Logout zeroes both principal slots but keeps the session record.
func (m *Manager) Logout(c *gin.Context) error {
	sid, ok := m.sidFromCookie(c)
	if !ok {
		return nil
	}
	return m.store.Set(c.Request.Context(), sid, Session{})
}

// Clear removes the session record entirely and expires the cookie.
func (m *Manager) Clear(c *gin.Context) error {
	if sid, ok := m.sidFromCookie(c); ok {
		if err := m.store.Delete(c.Request.Context(), sid); err != nil {
			return err
		}
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	return nil
}

func (m *Manager) set(c *gin.Context, sess Session) error {
	sid, ok := m.sidFromCookie(c)
	if !ok {
		sid = uuid.NewString()
	}
	if err := m.store.Set(c.Request.Context(), sid, sess); err != nil {
		return err
	}
	token, err := m.sign(sid)
	if err != nil {
		return err
	}
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

func (m *Manager) sign(sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) sidFromCookie(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return "", false
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}
