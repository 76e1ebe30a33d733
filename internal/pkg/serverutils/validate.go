package serverutils

import "stratigo-site/internal/entity"

func ValidateRequest(req interface{}) error {
	return entity.Validate(req)
}
