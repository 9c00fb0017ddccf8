package accounts

// SignUpData is the response body for a successful registration.
type SignUpData struct {
	UserID      string `json:"userId"      doc:"New account identifier"              example:"u-8f14e45f"`
	UserType    string `json:"userType"    doc:"Account type"                        example:"creator"`
	LandingPath string `json:"landingPath" doc:"Where the client should navigate"    example:"/dashboard"`
}

// SignUpOutput for POST /auth/signup (201 Created)
type SignUpOutput struct {
	Body SignUpData
}

// SignOutData confirms session revocation.
type SignOutData struct {
	SignedOut bool `json:"signedOut" doc:"Whether refresh tokens were revoked" example:"true"`
}

// SignOutOutput for POST /auth/signout
type SignOutOutput struct {
	Body SignOutData
}
