package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adityaanand10062000/storefront-api/middleware"
	"github.com/adityaanand10062000/storefront-api/models"
	"github.com/adityaanand10062000/storefront-api/utils"
)

type registerForm struct {
	Username string `form:"username" binding:"required,min=2,max=20"`
	Email    string `form:"email" binding:"required,email,max=120"`
	Password string `form:"password" binding:"required,min=6"`
	Confirm  string `form:"confirm_password" binding:"required,eqfield=Password"`
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	Remember bool   `form:"remember"`
}

// GET /register
func RegisterForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.HTML(http.StatusOK, "register.html", utils.ViewData(c, "Register", nil))
	}
}

// POST /register
//
// Register creates the durable user record with a hashed password. A unique
// index violation on username or email comes back as a form error.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}

		var form registerForm
		if err := c.ShouldBind(&form); err != nil {
			c.HTML(http.StatusOK, "register.html", utils.ViewData(c, "Register", gin.H{
				"error":    "Please check the form and try again.",
				"username": form.Username,
				"email":    form.Email,
			}))
			return
		}

		user := models.User{Username: form.Username, Email: form.Email}
		if err := user.SetPassword(form.Password); err != nil {
			c.String(http.StatusInternalServerError, "Failed to hash password")
			return
		}

		if err := db.Create(&user).Error; err != nil {
			msg := "Failed to create account, please try again."
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				msg = "That username or email is already taken."
			}
			c.HTML(http.StatusOK, "register.html", utils.ViewData(c, "Register", gin.H{
				"error":    msg,
				"username": form.Username,
				"email":    form.Email,
			}))
			return
		}

		utils.AddFlash(c, "success", "Congratulations, you are now a registered user!")
		c.Redirect(http.StatusFound, "/login")
	}
}

// GET /login
func LoginForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.HTML(http.StatusOK, "login.html", utils.ViewData(c, "Login", nil))
	}
}

// POST /login
//
// Login authenticates by email and password and binds the session to the
// user. Unknown email and wrong password produce the same message so the
// response does not reveal which part was wrong.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}

		var form loginForm
		if err := c.ShouldBind(&form); err != nil {
			c.HTML(http.StatusOK, "login.html", utils.ViewData(c, "Login", gin.H{
				"error": "Please check the form and try again.",
				"email": form.Email,
			}))
			return
		}

		var user models.User
		err := db.Where("email = ?", form.Email).First(&user).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusInternalServerError, "Failed to look up account")
			return
		}

		if err != nil || !user.CheckPassword(form.Password) {
			utils.AddFlash(c, "danger", "Login unsuccessful. Please check email and password.")
			c.HTML(http.StatusOK, "login.html", utils.ViewData(c, "Login", gin.H{
				"email": form.Email,
			}))
			return
		}

		if err := middleware.SignIn(c, user, form.Remember); err != nil {
			c.String(http.StatusInternalServerError, "Failed to establish session")
			return
		}

		utils.AddFlash(c, "success", "Login successful!")
		c.Redirect(http.StatusFound, "/")
	}
}

// GET /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := middleware.SignOut(c); err != nil {
			c.String(http.StatusInternalServerError, "Failed to end session")
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}
