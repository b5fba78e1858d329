package entity

import "strings"

type SiteMode string

const (
	SiteModeEcommerce SiteMode = "ecommerce"
	SiteModeBasic     SiteMode = "basic"
)

// ParseSiteMode treats anything unrecognised as the e-commerce experience.
func ParseSiteMode(value string) SiteMode {
	switch SiteMode(strings.ToLower(strings.TrimSpace(value))) {
	case SiteModeBasic:
		return SiteModeBasic
	default:
		return SiteModeEcommerce
	}
}

func (m SiteMode) EcommerceEnabled() bool {
	return m == SiteModeEcommerce
}

func (m SiteMode) Toggle() SiteMode {
	if m == SiteModeEcommerce {
		return SiteModeBasic
	}
	return SiteModeEcommerce
}
