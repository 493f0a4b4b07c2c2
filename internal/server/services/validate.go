package services

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/usersrpc/internal/common"
)

const MinPasswordLength = 6

var validate = validator.New()

func checkName(verr *common.ValidationError, name string) {
	if strings.TrimSpace(name) == "" {
		verr.Add("name", "must not be empty")
	}
}

func checkEmail(verr *common.ValidationError, email string) {
	if email == "" {
		verr.Add("email", "must not be empty")
		return
	}
	if err := validate.Var(email, "email"); err != nil {
		verr.Add("email", "must be a valid email address")
	}
}

func checkPassword(verr *common.ValidationError, password string) {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		verr.Add("password", "must be at least 6 characters")
	}
}

func checkID(verr *common.ValidationError, id string) {
	if id == "" {
		verr.Add("id", "must not be empty")
	}
}

func validateCreate(name, email, password string) error {
	verr := &common.ValidationError{}
	checkName(verr, name)
	checkEmail(verr, email)
	checkPassword(verr, password)
	return verr.OrNil()
}

func validateUpdate(id, name, email, password string) error {
	verr := &common.ValidationError{}
	checkID(verr, id)
	checkName(verr, name)
	checkEmail(verr, email)
	if password != "" {
		checkPassword(verr, password)
	}
	return verr.OrNil()
}

func validateID(id string) error {
	verr := &common.ValidationError{}
	checkID(verr, id)
	return verr.OrNil()
}

func normalizePaging(page, pageSize int) (int, int, error) {
	verr := &common.ValidationError{}
	if page < 0 {
		verr.Add("page", "must not be negative")
	}
	if pageSize < 0 {
		verr.Add("page_size", "must not be negative")
	}
	if err := verr.OrNil(); err != nil {
		return 0, 0, err
	}

	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize, nil
}
