package models

// PhysicianAssociation describes a subject's registered physician as returned
// by the physician registry. Absence of an association is a valid terminal
// outcome of the lookup, not an error.
type PhysicianAssociation struct {
	FirstName        string `json:"first_name"`
	MiddleName       string `json:"middle_name"`
	LastName         string `json:"last_name"`
	NationalID       string `json:"national_id"`
	ProfessionalID   string `json:"professional_id"`
	RegistryID       int    `json:"registry_id"`
	OfficeName       string `json:"office_name"`
	OfficeOrgNumber  string `json:"office_org_number"`
	OfficePostalCode string `json:"office_postal_code"`
	OfficeCity       string `json:"office_city"`
}

// FullName joins the physician's name parts, skipping an empty middle name.
func (p PhysicianAssociation) FullName() string {
	if p.MiddleName == "" {
		return p.FirstName + " " + p.LastName
	}
	return p.FirstName + " " + p.MiddleName + " " + p.LastName
}

// PartnerCapability is one entry of the transport partner's capability list.
type PartnerCapability struct {
	PartnerID  string `json:"partner_id"`
	RegistryID int    `json:"registry_id"`
}

// OrganizationIdentity is the physician office's identity as resolved by the
// address registry.
type OrganizationIdentity struct {
	RegistryID int    `json:"registry_id"`
	OrgNumber  string `json:"org_number"`
	Name       string `json:"name"`
}

// OrganizationAddress is the postal address resolved for a fallback letter.
type OrganizationAddress struct {
	OrgNumber  string `json:"org_number"`
	Name       string `json:"name"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}
