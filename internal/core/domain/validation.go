package domain

import (
	"fmt"
	"strings"
)

// Validate проверяет обязательные поля клиента.
func (c Client) Validate() error {
	if strings.TrimSpace(c.FullName) == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.PassportNumber) == "" {
		return fmt.Errorf("%w: passport number is required", ErrInvalidInput)
	}
	return nil
}

// Validate проверяет обязательные поля и допустимые значения перечислений.
func (p Property) Validate() error {
	if strings.TrimSpace(p.CadastralNumber) == "" {
		return fmt.Errorf("%w: cadastral number is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if _, err := ParsePropertyType(string(p.Type)); err != nil {
		return err
	}
	if _, err := ParsePropertyPurpose(string(p.Purpose)); err != nil {
		return err
	}
	return nil
}

// Validate проверяет ссылки и, если задан, тип заявки.
func (in RequestInput) Validate() error {
	if in.ClientID <= 0 {
		return fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}
	if in.PropertyID <= 0 {
		return fmt.Errorf("%w: property id is required", ErrInvalidInput)
	}
	if in.Type != nil {
		if _, err := ParseRequestType(string(*in.Type)); err != nil {
			return err
		}
	}
	if in.Amount != nil && in.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	return nil
}
