// Package auth implements the credential primitives of the server: parsing
// Authorization headers, bcrypt password hashing, HS256 access tokens and the
// server-side refresh token store.
package auth
