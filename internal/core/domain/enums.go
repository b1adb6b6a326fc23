package domain

import (
	"fmt"
	"strings"
)

// RequestType - тип заявки клиента.
type RequestType string

const (
	RequestTypeBuy  RequestType = "Buy"
	RequestTypeSell RequestType = "Sell"
)

// PropertyType - тип объекта недвижимости.
type PropertyType string

const (
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeHouse     PropertyType = "House"
	PropertyTypeOffice    PropertyType = "Office"
	PropertyTypeWarehouse PropertyType = "Warehouse"
	PropertyTypeLandPlot  PropertyType = "LandPlot"
)

// PropertyPurpose - назначение объекта недвижимости.
type PropertyPurpose string

const (
	PropertyPurposeResidential PropertyPurpose = "Residential"
	PropertyPurposeCommercial  PropertyPurpose = "Commercial"
)

var (
	requestTypes     = []RequestType{RequestTypeBuy, RequestTypeSell}
	propertyTypes    = []PropertyType{PropertyTypeApartment, PropertyTypeHouse, PropertyTypeOffice, PropertyTypeWarehouse, PropertyTypeLandPlot}
	propertyPurposes = []PropertyPurpose{PropertyPurposeResidential, PropertyPurposeCommercial}
)

// ParseRequestType разбирает строку без учета регистра.
func ParseRequestType(s string) (RequestType, error) {
	for _, t := range requestTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown request type %q", ErrInvalidInput, s)
}

// ParsePropertyType разбирает строку без учета регистра.
func ParsePropertyType(s string) (PropertyType, error) {
	for _, t := range propertyTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown property type %q", ErrInvalidInput, s)
}

// ParsePropertyPurpose разбирает строку без учета регистра.
func ParsePropertyPurpose(s string) (PropertyPurpose, error) {
	for _, p := range propertyPurposes {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown property purpose %q", ErrInvalidInput, s)
}

// PropertyTypes возвращает все известные типы объектов в порядке объявления.
func PropertyTypes() []PropertyType {
	out := make([]PropertyType, len(propertyTypes))
	copy(out, propertyTypes)
	return out
}
