package http

// User-facing response messages.
const (
	MsgRegisterSuccess    = "Registration successful! Check your email to activate your account."
	MsgLoginSuccess       = "Login successful."
	MsgLogoutSuccess      = "Logged out successfully."
	MsgInvalidCredentials = "Invalid credentials or inactive account."

	MsgRegisterFieldsRequired = "Username, email, and password are required."
	MsgLoginFieldsRequired    = "Email or username and password are required."
	MsgInvalidUsername        = "Username must be alphanumeric without spaces or symbols."
	MsgInvalidEmail           = "Invalid email format."
	MsgInvalidPassword        = "Password must be at least 8 characters and include uppercase, lowercase, number, and symbol."
	MsgGuessablePassword      = "Password is too easy to guess. Try a longer password or fewer repeated characters."
	MsgUsernameTaken          = "This username is already taken."
	MsgEmailTaken             = "This email is already registered."
	MsgUsernameAndEmailTaken  = "Both username and email are already taken."
	MsgInvalidBody            = "Invalid request body."

	MsgActivated              = "Account activated successfully. You can now log in."
	MsgAccountInactive        = "Account is not activated."
	MsgActivationLinkResent   = "A new activation link has been sent to your email."
	MsgAlreadyActivated       = "Account is already activated."
	MsgMissingActivationToken = "Activation token is missing."
	MsgInvalidActivationToken = "Invalid or expired activation token."
	MsgUserNotFound           = "User not found."

	MsgEmailRequired      = "Email is required."
	MsgResetLinkMaybeSent = "If that email exists, a reset link was sent."
	MsgResetLinkSent      = "Password reset link sent to your email."
	MsgPasswordUpdated    = "Password updated successfully."
	MsgResetInputRequired = "Token and new password are required."
	MsgInvalidResetToken  = "Invalid or expired reset token."

	MsgMissingRefreshToken = "Missing refresh token"
	MsgInvalidRefreshToken = "Invalid refresh token"
	MsgTokenRefreshed      = "Access token refreshed successfully"

	MsgServerError = "Something went wrong. Please try again later."
)
