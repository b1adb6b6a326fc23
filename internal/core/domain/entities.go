package domain

import "github.com/shopspring/decimal"

// Entity - любая сущность с целочисленным идентификатором, который выдает хранилище.
type Entity interface {
	EntityID() int
}

// Client - клиент агентства.
type Client struct {
	ID             int
	FullName       string
	PassportNumber string
	Phone          string
}

func (c Client) EntityID() int { return c.ID }

// Property - объект недвижимости.
type Property struct {
	ID              int
	CadastralNumber string
	Address         string
	Floors          int
	TotalArea       float64
	Rooms           int
	CeilingHeight   float64
	FloorNumber     int
	HasEncumbrance  bool
	Type            PropertyType
	Purpose         PropertyPurpose
}

func (p Property) EntityID() int { return p.ID }

// Request - заявка на покупку или продажу. Client и Property всегда
// разрешены до полных записей; Type, Amount и DateCreated необязательны.
type Request struct {
	ID          int
	Client      *Client
	Property    *Property
	Type        *RequestType
	Amount      *decimal.Decimal
	DateCreated *Date
}

func (r Request) EntityID() int { return r.ID }

// IsWellFormed - у заявки есть и клиент, и объект.
func (r Request) IsWellFormed() bool {
	return r.Client != nil && r.Property != nil
}

// HasType проверяет наличие и значение типа заявки.
func (r Request) HasType(t RequestType) bool {
	return r.Type != nil && *r.Type == t
}

// RequestInput - данные для создания/замены заявки (ссылки по идентификаторам).
type RequestInput struct {
	ClientID    int
	PropertyID  int
	Type        *RequestType
	Amount      *decimal.Decimal
	DateCreated *Date
}
