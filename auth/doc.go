/*
Package auth is the authentication core of the gallery API.

Identity

A login request carries a Google-issued ID token. VerifyIdentity checks it
against Google's published keys and the configured client ID before any
claim in it is trusted. Claims never come out of an unverified token.

Sessions

A successful login is represented by a session credential: an HS256-signed
JWT carrying the internal user id and role, expiring one hour after issue.
Validity is purely a function of signature and expiry; there is no
server-side revocation list.
*/
package auth
