package response

import "secure-it/internal/data/entity"

type SiteModeResponse struct {
	OK               bool            `json:"ok"`
	Mode             entity.SiteMode `json:"mode"`
	EcommerceEnabled bool            `json:"ecommerceEnabled"`
}

type ContactDetails struct {
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	ResponseTime string `json:"responseTime"`
}

type OrganizationResponse struct {
	Name      string   `json:"name"`
	LegalName string   `json:"legalName"`
	Tagline   string   `json:"tagline"`
	URL       string   `json:"url"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	SameAs    []string `json:"sameAs"`
}

type ContactForm struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Subject string `json:"subject"`
	Success string `json:"success"`
	Error   string `json:"error"`
}

type ContactResponse struct {
	OK               bool                 `json:"ok"`
	Mode             entity.SiteMode      `json:"mode"`
	EcommerceEnabled bool                 `json:"ecommerceEnabled"`
	Heading          string               `json:"heading"`
	Intro            string               `json:"intro"`
	Notice           string               `json:"notice,omitempty"`
	ShowPackages     bool                 `json:"showPackages"`
	Form             ContactForm          `json:"form"`
	Details          ContactDetails       `json:"details"`
	Organization     OrganizationResponse `json:"organization"`
}

func SiteModeToResponse(mode entity.SiteMode) SiteModeResponse {
	return SiteModeResponse{
		OK:               true,
		Mode:             mode,
		EcommerceEnabled: mode.EcommerceEnabled(),
	}
}
