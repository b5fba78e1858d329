package usecase

import "secure-it/internal/dto/response"

// Static copy rendered by the contact page. Ecommerce and basic modes share
// the contact details and differ in heading, intro and form.

var contactDetails = response.ContactDetails{
	Email:        "info@yberion.com",
	Phone:        "+61 434 438 494",
	Location:     "Melbourne, Australia",
	ResponseTime: "Replies within one business day",
}

var organization = response.OrganizationResponse{
	Name:      "Zyvrix",
	LegalName: "Zyvrix Pty Ltd",
	Tagline:   "Building bold products with security at the core.",
	URL:       "https://zyvrix.com",
	Email:     "info@zyvrix.com",
	Phone:     "+61 434 438 494",
	SameAs: []string{
		"https://zyvrix.com",
		"https://www.linkedin.com",
		"https://github.com/buitbypasan",
	},
}

type contactCopy struct {
	heading string
	intro   string
	notice  string
	form    response.ContactForm
}

var ecommerceContact = contactCopy{
	heading: "Let's build your next secure product",
	intro:   "Give us the essentials and we'll return a tailored proposal with security guidance and delivery milestones.",
	form: response.ContactForm{
		Key:     "contact",
		Label:   "Contact page",
		Subject: "Zyvrix — New contact request",
		Success: "Thanks for reaching out! We'll reply within one business day.",
		Error:   "We couldn't send your message. Please email rans.rath@gmail.com instead.",
	},
}

var basicContact = contactCopy{
	heading: "Let's talk about your goals",
	intro:   "Share a short note about your project and we'll get in touch to plan the right next step.",
	notice:  "Package and service selection is available when the e-commerce experience is enabled. Use the form below to send us a quick message and we'll follow up personally.",
	form: response.ContactForm{
		Key:     "basicContact",
		Label:   "Contact page (basic site)",
		Subject: "Zyvrix — Basic site enquiry",
		Success: "Thanks for saying hello. We'll reply with next steps soon.",
		Error:   "We couldn't deliver your message. Please email rans.rath@gmail.com and we'll get back to you.",
	},
}
