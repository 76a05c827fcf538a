package order_test

import "pizza/internal/core/domain/model/kernel"

func kernelID(v int64) kernel.ID {
	return kernel.ID(v)
}
