package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"idrive/internal/config"
	"idrive/internal/identity"
	"idrive/internal/middleware"
)

type checkExistenceInput struct {
	PhoneNumber uint64 `json:"phoneNumber" binding:"required"`
}

// CheckOwnerExistence reports whether a phone number belongs to any actor.
// No authentication required: it backs the login screen.
func CheckOwnerExistence(c *gin.Context) {
	var input checkExistenceInput
	if !bindJSON(c, &input) {
		return
	}

	owner, err := identity.LookupOwner(input.PhoneNumber)
	if err != nil {
		serverError(c, "error while checking owner existence", err)
		return
	}
	if owner == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Property owner doesn't exists."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Property owner exists."})
}

// OwnerDetails returns the caller's own role record, whichever actor table
// the verified phone number resolves to.
func OwnerDetails(c *gin.Context) {
	owner, err := identity.LookupOwner(middleware.Phone(c))
	if err != nil {
		serverError(c, "error while getting owner details", err)
		return
	}
	if owner == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Property owner doesn't exists."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Property owner exists.",
		"data":    owner.Record(),
	})
}

type refreshTokenInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshToken exchanges a refresh token at the identity provider's token
// endpoint for a fresh id token.
func RefreshToken(c *gin.Context) {
	var input refreshTokenInput
	if !bindJSON(c, &input) {
		return
	}

	payload, _ := json.Marshal(map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": input.RefreshToken,
	})

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(config.IdentityTokenEndpoint(), "application/json", bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("refresh token exchange failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
		return
	}
	defer resp.Body.Close()

	var body struct {
		IDToken string `json:"id_token"`
	}
	if resp.StatusCode != http.StatusOK || json.NewDecoder(resp.Body).Decode(&body) != nil {
		logrus.WithField("status", resp.StatusCode).Error("refresh token exchange rejected")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": body.IDToken})
}
