package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTitleRequired        = errors.New("title is required")
	ErrDescriptionRequired  = errors.New("description is required")
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrImagePath            = errors.New("image file cannot be read")
)
