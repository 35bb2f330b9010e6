package main

import (
	"net/http"

	"bitbucket.org/mmdatafocus/labregistry_backend/models"
	"github.com/gin-gonic/gin"
)

func registerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewUser
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}
		user, err := models.CreateUser(c.Request.Context(), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

func loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}
		pair, err := models.Login(c.Request.Context(), &input)
		if err != nil {
			if err == models.ErrInvalidCredentials {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			respondError(c, err)
			return
		}
		user, err := models.GetUserByUsername(c.Request.Context(), input.Username)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"access_token":  pair.AccessToken,
			"refresh_token": pair.RefreshToken,
			"token_type":    pair.TokenType,
			"user":          user,
		})
	}
}

func refreshHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.RefreshInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}
		pair, err := models.Refresh(c.Request.Context(), &input)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, pair)
	}
}

func logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := requireSessionUser(c)
		if !ok {
			return
		}
		if err := models.Logout(c.Request.Context(), username); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
