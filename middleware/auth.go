package middleware

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adityaanand10062000/storefront-api/models"
	"github.com/adityaanand10062000/storefront-api/utils"
)

const (
	sessionUserKey     = "user_id"
	rememberCookieName = "remember_token"
	rememberLifetime   = 30 * 24 * time.Hour
)

func rememberSecret() []byte {
	if s := os.Getenv("REMEMBER_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte(os.Getenv("SESSION_SECRET"))
}

// CurrentUser resolves the request's authenticated user, first from the
// session, then from the remember-me cookie, and exposes it to handlers and
// templates. Requests without a valid identity pass through anonymously.
func CurrentUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)

		userID, ok := s.Get(sessionUserKey).(uint)
		if !ok {
			id, err := parseRememberToken(c)
			if err != nil {
				c.Next()
				return
			}
			userID = id
			s.Set(sessionUserKey, userID)
			_ = s.Save()
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			// Session or token points at a user that no longer resolves.
			s.Delete(sessionUserKey)
			_ = s.Save()
			c.Next()
			return
		}

		c.Set(utils.CurrentUserKey, user)
		c.Next()
	}
}

// RequireAuth gates a route on an authenticated session, sending anonymous
// visitors to the login page.
func RequireAuth(c *gin.Context) {
	if _, ok := utils.CurrentUser(c); !ok {
		utils.AddFlash(c, "info", "Please log in to access this page.")
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// SignIn binds the session to user. With remember set, a signed token cookie
// keeps the login alive beyond the browser session.
func SignIn(c *gin.Context, user models.User, remember bool) error {
	s := sessions.Default(c)
	s.Set(sessionUserKey, user.ID)
	if err := s.Save(); err != nil {
		return err
	}

	if remember {
		token, err := issueRememberToken(user.ID)
		if err != nil {
			return err
		}
		c.SetCookie(rememberCookieName, token, int(rememberLifetime/time.Second), "/", "", false, true)
	}
	return nil
}

// SignOut clears the session identity and the remember cookie. The cart, if
// any, stays in the session.
func SignOut(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(sessionUserKey)
	c.SetCookie(rememberCookieName, "", -1, "/", "", false, true)
	return s.Save()
}

func issueRememberToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"jti": uuid.NewString(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(rememberLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(rememberSecret())
}

func parseRememberToken(c *gin.Context) (uint, error) {
	cookie, err := c.Cookie(rememberCookieName)
	if err != nil || cookie == "" {
		return 0, errors.New("no remember token")
	}

	token, err := jwt.Parse(cookie, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return rememberSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid or expired remember token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	// Numeric JWT claims decode as float64.
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, errors.New("invalid subject claim")
	}
	return uint(sub), nil
}
