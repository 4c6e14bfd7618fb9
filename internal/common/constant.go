package common

// AuthorizationHeaderName is the gRPC metadata key carrying the bearer token.
// gRPC lower-cases metadata keys, so this matches an HTTP "Authorization"
// header forwarded by a gateway.
const AuthorizationHeaderName = "authorization"

// BearerPrefix precedes the token inside the authorization value.
const BearerPrefix = "Bearer "
