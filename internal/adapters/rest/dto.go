package rest

import (
	"agency-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ClientDTO - клиент в запросах и ответах. ID в теле запроса игнорируется.
type ClientDTO struct {
	ID             int    `json:"id"`
	FullName       string `json:"full_name"`
	PassportNumber string `json:"passport_number"`
	Phone          string `json:"phone"`
}

func toClientDTO(c domain.Client) ClientDTO {
	return ClientDTO{ID: c.ID, FullName: c.FullName, PassportNumber: c.PassportNumber, Phone: c.Phone}
}

func toClientDTOs(clients []domain.Client) []ClientDTO {
	out := make([]ClientDTO, len(clients))
	for i, c := range clients {
		out[i] = toClientDTO(c)
	}
	return out
}

func (d ClientDTO) toDomain() domain.Client {
	return domain.Client{FullName: d.FullName, PassportNumber: d.PassportNumber, Phone: d.Phone}
}

type PropertyDTO struct {
	ID              int     `json:"id"`
	CadastralNumber string  `json:"cadastral_number"`
	Address         string  `json:"address"`
	Floors          int     `json:"floors"`
	TotalArea       float64 `json:"total_area"`
	Rooms           int     `json:"rooms"`
	CeilingHeight   float64 `json:"ceiling_height"`
	FloorNumber     int     `json:"floor_number"`
	HasEncumbrance  bool    `json:"has_encumbrance"`
	Type            string  `json:"type"`
	Purpose         string  `json:"purpose"`
}

func toPropertyDTO(p domain.Property) PropertyDTO {
	return PropertyDTO{
		ID:              p.ID,
		CadastralNumber: p.CadastralNumber,
		Address:         p.Address,
		Floors:          p.Floors,
		TotalArea:       p.TotalArea,
		Rooms:           p.Rooms,
		CeilingHeight:   p.CeilingHeight,
		FloorNumber:     p.FloorNumber,
		HasEncumbrance:  p.HasEncumbrance,
		Type:            string(p.Type),
		Purpose:         string(p.Purpose),
	}
}

// toDomain приводит перечисления к каноническому виду.
func (d PropertyDTO) toDomain() (domain.Property, error) {
	propertyType, err := domain.ParsePropertyType(d.Type)
	if err != nil {
		return domain.Property{}, err
	}
	purpose, err := domain.ParsePropertyPurpose(d.Purpose)
	if err != nil {
		return domain.Property{}, err
	}
	return domain.Property{
		CadastralNumber: d.CadastralNumber,
		Address:         d.Address,
		Floors:          d.Floors,
		TotalArea:       d.TotalArea,
		Rooms:           d.Rooms,
		CeilingHeight:   d.CeilingHeight,
		FloorNumber:     d.FloorNumber,
		HasEncumbrance:  d.HasEncumbrance,
		Type:            propertyType,
		Purpose:         purpose,
	}, nil
}

// RequestInputDTO - тело POST/PUT /requests.
type RequestInputDTO struct {
	ClientID    int              `json:"client_id"`
	PropertyID  int              `json:"property_id"`
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	DateCreated *domain.Date     `json:"date_created"`
}

func (d RequestInputDTO) toDomain() (domain.RequestInput, error) {
	input := domain.RequestInput{
		ClientID:    d.ClientID,
		PropertyID:  d.PropertyID,
		Amount:      d.Amount,
		DateCreated: d.DateCreated,
	}
	if d.Type != nil {
		t, err := domain.ParseRequestType(*d.Type)
		if err != nil {
			return domain.RequestInput{}, err
		}
		input.Type = &t
	}
	return input, nil
}

// RequestDTO - заявка в ответе, со вложенными клиентом и объектом.
type RequestDTO struct {
	ID          int              `json:"id"`
	Client      *ClientDTO       `json:"client"`
	Property    *PropertyDTO     `json:"property"`
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	DateCreated *domain.Date     `json:"date_created"`
}

func toRequestDTO(r domain.Request) RequestDTO {
	dto := RequestDTO{ID: r.ID, Amount: r.Amount, DateCreated: r.DateCreated}
	if r.Client != nil {
		c := toClientDTO(*r.Client)
		dto.Client = &c
	}
	if r.Property != nil {
		p := toPropertyDTO(*r.Property)
		dto.Property = &p
	}
	if r.Type != nil {
		t := string(*r.Type)
		dto.Type = &t
	}
	return dto
}

func toRequestDTOs(requests []domain.Request) []RequestDTO {
	out := make([]RequestDTO, len(requests))
	for i, r := range requests {
		out[i] = toRequestDTO(r)
	}
	return out
}
