package authsdk

// ============================================================================
// Request Types
// ============================================================================

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"Passw0rd!"`
}

// LoginRequest is the body of POST /api/auth/login. EmailOrUsername is a
// username or an email address.
type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" example:"alice"`
	Password        string `json:"password" example:"Passw0rd!"`
}

// ForgotPasswordRequest is the body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" example:"alice@example.com"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password/{token}.
type ResetPasswordRequest struct {
	Password string `json:"password" example:"N3wPassw0rd!"`
}

// ============================================================================
// Response Types
// ============================================================================

// MessageResponse is the envelope returned by every endpoint that only
// reports an outcome.
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Logged out successfully."`
}

// UserProfile is the public view of an account.
type UserProfile struct {
	ID        string  `json:"id" example:"01JAB3N9M6WQ4X2D5T8K7Y0C1E"`
	Username  string  `json:"username" example:"alice"`
	Email     string  `json:"email" example:"alice@example.com"`
	AvatarURL *string `json:"avatarUrl"`
	Bio       *string `json:"bio"`
}

// LoginData wraps the profile returned on a successful login.
type LoginData struct {
	User UserProfile `json:"user"`
}

// LoginResponse is returned by POST /api/auth/login on success.
type LoginResponse struct {
	Success bool      `json:"success" example:"true"`
	Message string    `json:"message" example:"Login successful."`
	Data    LoginData `json:"data"`
}

// MeResponse is returned by GET /api/auth/me.
type MeResponse struct {
	Success bool        `json:"success" example:"true"`
	User    UserProfile `json:"user"`
}

// ActivationNotice describes the fresh activation link sent on a login
// attempt against an inactive account.
type ActivationNotice struct {
	Message string `json:"message" example:"A new activation link has been sent to your email."`
	Email   string `json:"email" example:"alice@example.com"`
}

// NeedsActivationResponse is returned with 403 when an inactive account
// presents the right password.
type NeedsActivationResponse struct {
	Success         bool             `json:"success" example:"false"`
	Message         string           `json:"message" example:"Account is not activated."`
	NeedsActivation bool             `json:"needsActivation" example:"true"`
	Data            ActivationNotice `json:"data"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the credential store connection status
	Database string `json:"database"`

	// Signer indicates whether tokens can be issued
	Signer string `json:"signer"`
}
