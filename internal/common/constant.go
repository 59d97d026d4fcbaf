package common

// AuthorizationHeaderName carries credentials on HTTP requests and gRPC metadata.
const AuthorizationHeaderName = "Authorization"

// Authorization schemes accepted by the credential extractor.
const (
	SchemeBearer = "Bearer"
	SchemeAPIKey = "ApiKey"
)

// Messages shared by every transport.
const (
	MsgAuthorizationNotFound = "Authorization not found"
	MsgWrongHeaderScheme     = "wrong header scheme"
	MsgEmptyToken            = "Empty token"
	MsgInvalidAccessToken    = "Invalid or expired token"
	MsgInvalidRefreshToken   = "invalid refresh token"
	MsgIncorrectCredentials  = "Incorrect email or password."
)
