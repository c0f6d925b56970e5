package landing

import (
	"time"

	"github.com/jomboydon/landing_backend/internal/i18n"
)

// Page is the landing page projected into a single locale with every asset
// reference resolved to a loadable URL.
type Page struct {
	Locale      i18n.Locale   `json:"locale"`
	Messages    i18n.Messages `json:"messages"`
	CompanyName string        `json:"companyName"`
	Logo        string        `json:"logo,omitempty"`
	Hero        Hero          `json:"hero"`
	Mission     Mission       `json:"mission"`
	Stats       []Stat        `json:"stats"`
	Products    []Product     `json:"products"`
	News        []News        `json:"news"`
	Footer      Footer        `json:"footer"`
	Languages   []i18n.Locale `json:"languages"`
}

type Hero struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	CtaText         string `json:"ctaText"`
	BackgroundVideo string `json:"backgroundVideo,omitempty"`
}

type Mission struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type News struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Footer struct {
	Address   string  `json:"address,omitempty"`
	Instagram string  `json:"instagram,omitempty"`
	Telegram  string  `json:"telegram,omitempty"`
	Youtube   string  `json:"youtube,omitempty"`
	Facebook  string  `json:"facebook,omitempty"`
	Phones    []Phone `json:"phones"`
}

type Phone struct {
	Number      string `json:"number"`
	Department  string `json:"department"`
	Description string `json:"description,omitempty"`
}
