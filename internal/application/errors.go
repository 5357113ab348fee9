package application

import "frankfurter/internal/domain"

var ErrBadRequest error = domain.NewBadInput("bad request")
