// Package auth issues and validates the HMAC-signed access tokens that
// identify the user behind an API request.
package auth
