package cart

import "errors"

var ErrQuantityLimit = errors.New("cart line quantity limit reached")
