// Package config loads the booking service settings from config.env, .env
// and the process environment, using the variable names of the existing
// deployment (PORT, NODE_ENV, JWT_SECRET, EMAIL_USER and so on). Production
// gets stricter checks on the JWT secret, the encryption key and the client
// credential allow-list.
package config
