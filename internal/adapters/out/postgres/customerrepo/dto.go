package customerrepo

import (
	"pizza/internal/core/domain/model/customer"
	"pizza/internal/core/domain/model/kernel"
)

type CustomerDTO struct {
	ID      int64 `gorm:"primaryKey;autoIncrement"`
	Name    string
	Address string
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID().Int64(),
		Name:    c.Name(),
		Address: c.Address(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreCustomer(kernel.ID(dto.ID), dto.Name, dto.Address)
}
