package i18n

// Messages are the fixed interface strings of the landing page.
type Messages struct {
	NavCompany    string `json:"navCompany"`
	NavTrade      string `json:"navTrade"`
	NavProduction string `json:"navProduction"`
	NavPurchase   string `json:"navPurchase"`
	NavContacts   string `json:"navContacts"`
	WriteUs       string `json:"writeUs"`
	ProductsTitle string `json:"productsTitle"`
	NewsTitle     string `json:"newsTitle"`
	Address       string `json:"address"`
	Phones        string `json:"phones"`
	Questions     string `json:"questions"`
}

var dictionaries = map[Locale]Messages{
	Default: {
		NavCompany:    "About Us",
		NavTrade:      "Products",
		NavProduction: "Production",
		NavPurchase:   "Purchase",
		NavContacts:   "Contacts",
		WriteUs:       "Contact Us",
		ProductsTitle: "Products",
		NewsTitle:     "News",
		Address:       "Address",
		Phones:        "Phones",
		Questions:     "Any questions?",
	},
	Ru: {
		NavCompany:    "О компании",
		NavTrade:      "Продукция",
		NavProduction: "Производство",
		NavPurchase:   "Закупки",
		NavContacts:   "Контакты",
		WriteUs:       "Связаться с нами",
		ProductsTitle: "Продукция",
		NewsTitle:     "Новости",
		Address:       "Адрес",
		Phones:        "Телефоны",
		Questions:     "Остались вопросы?",
	},
	Uz: {
		NavCompany:    "Biz haqimizda",
		NavTrade:      "Mahsulotlar",
		NavProduction: "Ishlab chiqarish",
		NavPurchase:   "Xarid",
		NavContacts:   "Bog'lanish",
		WriteUs:       "Biz bilan bog'laning",
		ProductsTitle: "Mahsulotlar",
		NewsTitle:     "Yangiliklar",
		Address:       "Manzil",
		Phones:        "Telefonlar",
		Questions:     "Savollar qoldimi?",
	},
}

// Dictionary returns the interface strings for l.
func Dictionary(l Locale) Messages {
	if m, ok := dictionaries[l]; ok {
		return m
	}
	return dictionaries[Default]
}
