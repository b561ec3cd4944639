package handlers

import (
	"net/http"
	"server/auth"
	"server/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type SignupRequest struct {
	Name     string `form:"name" binding:"required"`
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func SignupView(c *gin.Context) {
	render(c, http.StatusOK, "signup.tmpl", nil)
}

func SignupSubmit(c *gin.Context) {
	req := SignupRequest{}
	if c.ShouldBindWith(&req, binding.Form) != nil {
		render(c, http.StatusOK, "signup.tmpl", gin.H{"error": "All fields are required"})
		return
	}
	user, err := models.UserCreate(req.Name, req.Username, req.Password)
	if err != nil {
		render(c, http.StatusOK, "signup.tmpl", gin.H{"error": "Username is taken"})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}

func LoginView(c *gin.Context) {
	render(c, http.StatusOK, "login.tmpl", nil)
}

func LoginSubmit(c *gin.Context) {
	req := LoginRequest{}
	if c.ShouldBindWith(&req, binding.Form) != nil {
		render(c, http.StatusOK, "login.tmpl", gin.H{"error": "All fields are required"})
		return
	}
	user, success := models.UserLogin(req.Username, req.Password)
	if !success {
		render(c, http.StatusOK, "login.tmpl", gin.H{"error": "Wrong username or password"})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	session := auth.LoadSession(c)
	session.LogoutUser()
	c.Redirect(http.StatusFound, "/")
}
