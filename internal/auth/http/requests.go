package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/aussiebroadwan/instamedia/pkg/authsdk"
)

const maxBodyBytes = 1 << 20

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	errMalformedBody = errors.New(MsgInvalidBody)
)

// decodeBody reads a JSON request body into dst. An empty body leaves dst
// zeroed so required-field checks report the missing fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errMalformedBody
	}
	return nil
}

// firstError returns the first failed check. Checks are listed in the
// order clients expect them reported.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func validateRegister(req authsdk.RegisterRequest) error {
	required := validation.Required.Error(MsgRegisterFieldsRequired)
	return firstError(
		validation.Validate(req.Username, required),
		validation.Validate(req.Email, required),
		validation.Validate(req.Password, required),
		validation.Validate(req.Username, is.Alphanumeric.Error(MsgInvalidUsername)),
		validation.Validate(req.Email, validation.Match(emailPattern).Error(MsgInvalidEmail)),
	)
}

func validateLogin(req authsdk.LoginRequest) error {
	required := validation.Required.Error(MsgLoginFieldsRequired)
	return firstError(
		validation.Validate(req.EmailOrUsername, required),
		validation.Validate(req.Password, required),
	)
}
