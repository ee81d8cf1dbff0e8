// Package auth handles authentication and authorization: user registration,
// login, password hashing, token issuance and validation, and the bearer
// token middleware protecting resource routes.
package auth

// RegisterRequest is the registration payload. The password cap at 72
// bytes is a bcrypt input limit.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"alice"`
	Password string `json:"password" validate:"required,min=1,max=72" example:"correct horse battery staple"`
}

// UserResponse is the registration response: the new account without any
// credential material.
type UserResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"correct horse battery staple"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
}
