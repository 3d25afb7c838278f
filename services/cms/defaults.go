package cms

import "github.com/danudara/storefront/services/i18n"

// DefaultContent is served whenever the hosted document cannot be read.
func DefaultContent() Content {
	return Content{
		Banners: []Banner{
			{
				ID:    1,
				Image: "assets/images/banner1.jpg",
				Title: localized(
					"Premium Quality Textiles",
					"р╢Лр╖Гр╖Гр╖К р╢нр╢нр╖Кр╢нр╖Кр╖Ар╢║р╖Ъ р╢╗р╖Щр╢пр╖Тр╢┤р╖Тр╖Ер╖Т",
					"родро░рооро╛рой роЬро╡рпБро│ро┐роХро│рпН",
				),
				Subtitle: localized(
					"Discover our exclusive collection",
					"р╢Ер╢┤р╢Ьр╖Ъ р╖Гр╖Фр╖Ар╖Тр╖Бр╖Ър╖Вр╖У р╢Ср╢Ър╢нр╖Фр╖А р╖Гр╖Ьр╢║р╖П р╢Ьр╢▒р╖Кр╢▒",
					"роОроЩрпНроХро│ро┐ройрпН рокро┐ро░родрпНропрпЗроХ родрпКроХрпБрокрпНрокрпИроХрпН роХрогрпНроЯро▒ро┐ропрпБроЩрпНроХро│рпН",
				),
				Link: "shop.html",
			},
		},
		Promotions: Promotions{
			Active: true,
			Text: localized(
				"ЁЯОЙ Free delivery on orders over Rs. 5000!",
				"ЁЯОЙ р╢╗р╖Ф. 5000 р╢з р╖Ар╖Рр╢йр╖Т р╢Зр╢лр╖Ар╖Фр╢╕р╖К р╖Гр╢│р╖Др╖П р╢▒р╖Ьр╢╕р╖Тр╢╜р╖Ъ р╢╢р╖Щр╢пр╖П р╖Др╖Рр╢╗р╖Ур╢╕!",
				"ЁЯОЙ ро░рпВ. 5000 роХрпНроХрпБ роорпЗро▓рпН роЖро░рпНроЯро░рпНроХро│рпБроХрпНроХрпБ роЗро▓ро╡роЪ роЯрпЖро▓ро┐ро╡ро░ро┐!",
			),
		},
		About: About{
			Title: localized(
				"About Danudara Textiles",
				"р╢пр╢▒р╖Фр╢пр╢╗ р╢зр╖Щр╢Ър╖Кр╖Гр╖Кр╢зр╢║р╖Тр╢╜р╖Кр╖Гр╖К р╢Ьр╖Рр╢▒",
				"родройрпБродро░ро╛ роЬро╡рпБро│ро┐роХро│рпН рокро▒рпНро▒ро┐",
			),
			Content: localized(
				"Danudara Textiles is a leading textile company in Sri Lanka...",
				"р╢пр╢▒р╖Фр╢пр╢╗ р╢зр╖Щр╢Ър╖Кр╖Гр╖Кр╢зр╢║р╖Тр╢╜р╖Кр╖Гр╖К р╢║р╢▒р╖Ф р╖Бр╖КтАНр╢╗р╖У р╢╜р╢Вр╢Ър╖Пр╖Ар╖Ъ р╢┤р╖КтАНр╢╗р╢╕р╖Фр╢Ы р╢╗р╖Щр╢пр╖Тр╢┤р╖Тр╖Ер╖Т р╖Гр╢╕р╖Пр╢Ьр╢╕р╢Ър╖Т...",
				"родройрпБродро░ро╛ роЬро╡рпБро│ро┐роХро│рпН роЗро▓роЩрпНроХрпИропро┐ро▓рпН роорпБройрпНройрогро┐ роЬро╡рпБро│ро┐ роиро┐ро▒рпБро╡ройрооро╛роХрпБроорпН...",
			),
			Image: "assets/images/about.jpg",
		},
		Contact: Contact{
			Phone:    "+94 XX XXX XXXX",
			WhatsApp: "94XXXXXXXXX",
			Email:    "info@danudaratextiles.lk",
			Address: localized(
				"Colombo, Sri Lanka",
				"р╢Ър╖Ьр╖Ер╢╣, р╖Бр╖КтАНр╢╗р╖У р╢╜р╢Вр╢Ър╖Пр╖А",
				"роХрпКро┤рпБроорпНрокрпБ, роЗро▓роЩрпНроХрпИ",
			),
		},
		NewArrivals: NewArrivals{
			Enabled: true,
			Limit:   8,
			Title: localized(
				"New Arrivals",
				"р╢Ер╢╜р╖Фр╢нр╖К р╢Ср╢Ър╢нр╖Ф р╢Ър╖Тр╢╗р╖Ур╢╕р╖К",
				"рокрпБродро┐роп ро╡ро░ро╡рпБроХро│рпН",
			),
		},
		Languages: i18n.DefaultStrings(),
	}
}

func localized(en string, si string, ta string) i18n.LocalizedText {
	return i18n.LocalizedText{"en": en, "si": si, "ta": ta}
}
