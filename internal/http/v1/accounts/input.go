package accounts

// SignUpInput for POST /auth/signup
type SignUpInput struct {
	Body struct {
		Email           string `json:"email"           format:"email"                required:"true" doc:"Email address"      example:"meera@example.com"`
		Password        string `json:"password"        minLength:"6" maxLength:"128" required:"true" doc:"Password"           example:"s3cret-pass"`
		ConfirmPassword string `json:"confirmPassword" minLength:"6" maxLength:"128" required:"true" doc:"Password, repeated" example:"s3cret-pass"`
		FullName        string `json:"fullName"        minLength:"1" maxLength:"100" required:"true" doc:"Display name"       example:"Meera Sharma"`
		UserType        string `json:"userType"        enum:"user,creator"           required:"true" doc:"Account type"       example:"creator"`
	}
}

// SignOutInput for POST /auth/signout (no body needed)
type SignOutInput struct{}
