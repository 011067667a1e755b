package dto

// PartnerInputDTO is one partner entry in a batch attach request.
type PartnerInputDTO struct {
	Name          string  `json:"name" binding:"required"`
	Type          string  `json:"type"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
}

// ContactInputDTO is one brokerage or agent entry in a batch attach request.
type ContactInputDTO struct {
	Name          string  `json:"name" binding:"required"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
}

type AttachPartnersRequestDTO struct {
	Partners    []PartnerInputDTO `json:"partners"`
	ProjectName *string           `json:"projectName"`
}

type AttachBrokeragesRequestDTO struct {
	Brokerages  []ContactInputDTO `json:"brokerages"`
	ProjectName *string           `json:"projectName"`
}

type AttachAgentsRequestDTO struct {
	Agents      []ContactInputDTO `json:"agents"`
	ProjectName *string           `json:"projectName"`
}
