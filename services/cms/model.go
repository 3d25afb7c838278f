package cms

import "github.com/danudara/storefront/services/i18n"

const (
	SectionBanners     = "banners"
	SectionPromotions  = "promotions"
	SectionAbout       = "about"
	SectionContact     = "contact"
	SectionNewArrivals = "newArrivals"
	SectionLanguages   = "languages"
)

var Sections = []string{SectionBanners, SectionPromotions, SectionAbout, SectionContact, SectionNewArrivals, SectionLanguages}

type Content struct {
	Banners     []Banner     `json:"banners"`
	Promotions  Promotions   `json:"promotions"`
	About       About        `json:"about"`
	Contact     Contact      `json:"contact"`
	NewArrivals NewArrivals  `json:"newArrivals"`
	Languages   i18n.Strings `json:"languages,omitempty"`
}

type Banner struct {
	ID       int                `json:"id"`
	Image    string             `json:"image"`
	Title    i18n.LocalizedText `json:"title"`
	Subtitle i18n.LocalizedText `json:"subtitle"`
	Link     string             `json:"link"`
}

type Promotions struct {
	Active bool               `json:"active"`
	Text   i18n.LocalizedText `json:"text"`
}

type About struct {
	Title   i18n.LocalizedText `json:"title"`
	Content i18n.LocalizedText `json:"content"`
	Image   string             `json:"image"`
}

type Contact struct {
	Phone       string             `json:"phone"`
	WhatsApp    string             `json:"whatsapp"`
	Email       string             `json:"email"`
	Address     i18n.LocalizedText `json:"address"`
	SocialMedia SocialMedia        `json:"socialMedia"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Youtube   string `json:"youtube"`
}

type NewArrivals struct {
	Enabled bool               `json:"enabled"`
	Limit   int                `json:"limit"`
	Title   i18n.LocalizedText `json:"title"`
}

func IsSection(name string) bool {
	for _, section := range Sections {
		if section == name {
			return true
		}
	}
	return false
}
