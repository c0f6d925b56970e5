// Package landing assembles the public landing page for one locale.
package landing

import (
	"context"
	"encoding/json"
	"log"

	"gorm.io/gorm"

	"github.com/jomboydon/landing_backend/internal/assets"
	"github.com/jomboydon/landing_backend/internal/cache"
	"github.com/jomboydon/landing_backend/internal/database"
	"github.com/jomboydon/landing_backend/internal/i18n"
	"github.com/jomboydon/landing_backend/internal/models"
)

const newsOnLanding = 4

type Builder struct {
	DB          *gorm.DB
	Cache       cache.Landing
	BaseURL     string
	CompanyName string
}

// Load returns the page for loc, serving it from the cache when possible.
func (b *Builder) Load(ctx context.Context, loc i18n.Locale) (*Page, error) {
	c := b.cache()
	if data, ok, err := c.Get(ctx, loc); err != nil {
		log.Printf("landing: cache get %s: %v", loc, err)
	} else if ok {
		var page Page
		if err := json.Unmarshal(data, &page); err == nil {
			return &page, nil
		}
	}

	page, err := b.Build(ctx, loc)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(page); err == nil {
		if err := c.Set(ctx, loc, data); err != nil {
			log.Printf("landing: cache set %s: %v", loc, err)
		}
	}
	return page, nil
}

// Invalidate drops cached pages for every locale. Errors are logged only.
func (b *Builder) Invalidate(ctx context.Context) {
	if b == nil {
		return
	}
	if err := b.cache().Invalidate(ctx); err != nil {
		log.Printf("landing: cache invalidate: %v", err)
	}
}

func (b *Builder) cache() cache.Landing {
	if b.Cache == nil {
		return cache.Noop{}
	}
	return b.Cache
}

// Build reads every section from the database and projects it into loc.
func (b *Builder) Build(ctx context.Context, loc i18n.Locale) (*Page, error) {
	db := b.DB.WithContext(ctx)
	page := &Page{
		Locale:      loc,
		Messages:    i18n.Dictionary(loc),
		CompanyName: b.CompanyName,
		Languages:   i18n.Supported,
		Stats:       []Stat{},
		Products:    []Product{},
		News:        []News{},
		Footer:      Footer{Phones: []Phone{}},
	}

	var hero models.HeroSection
	if found, err := database.LoadSingleton(db, &hero); err != nil {
		return nil, err
	} else if found {
		t := i18n.ProjectAll(hero, loc)
		page.Hero = Hero{
			Title:           t["title"],
			Subtitle:        t["subtitle"],
			CtaText:         t["ctaText"],
			BackgroundVideo: b.resolve(hero.BackgroundVideo),
		}
	}

	var mission models.MissionSection
	if found, err := database.LoadSingleton(db, &mission); err != nil {
		return nil, err
	} else if found {
		t := i18n.ProjectAll(mission, loc)
		page.Mission = Mission{Title: t["title"], Text: t["text"], Image: b.resolve(mission.Image)}
	}

	var stats []models.Stat
	if err := db.Order("sort_order asc").Order("id asc").Find(&stats).Error; err != nil {
		return nil, err
	}
	for _, s := range stats {
		page.Stats = append(page.Stats, Stat{Value: s.Value, Label: s.Translations()["label"].In(loc)})
	}

	var products []models.Product
	if err := db.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	for _, p := range products {
		t := i18n.ProjectAll(p, loc)
		page.Products = append(page.Products, Product{
			ID:          p.ID,
			Name:        t["name"],
			Description: t["description"],
			Category:    t["category"],
			Price:       p.Price,
			ImageURL:    b.resolve(p.ImageURL),
		})
	}

	var news []models.News
	if err := db.Order("created_at desc").Limit(newsOnLanding).Find(&news).Error; err != nil {
		return nil, err
	}
	for _, n := range news {
		t := i18n.ProjectAll(n, loc)
		page.News = append(page.News, News{
			ID:        n.ID,
			Title:     t["title"],
			Excerpt:   Excerpt(t["content"], ExcerptRunes),
			ImageURL:  b.resolve(n.ImageURL),
			CreatedAt: n.CreatedAt,
		})
	}

	var settings models.SiteSettings
	found, err := database.LoadSingleton(db.Preload("Phones", func(tx *gorm.DB) *gorm.DB { return tx.Order("id asc") }), &settings)
	if err != nil {
		return nil, err
	}
	if found {
		if settings.CompanyName != "" {
			page.CompanyName = settings.CompanyName
		}
		page.Logo = b.resolve(settings.Logo)
		page.Footer.Address = settings.Translations()["address"].In(loc)
		page.Footer.Instagram = deref(settings.Instagram)
		page.Footer.Telegram = deref(settings.Telegram)
		page.Footer.Youtube = deref(settings.Youtube)
		page.Footer.Facebook = deref(settings.Facebook)
		for _, ph := range settings.Phones {
			t := i18n.ProjectAll(ph, loc)
			page.Footer.Phones = append(page.Footer.Phones, Phone{
				Number:      ph.Number,
				Department:  t["department"],
				Description: t["description"],
			})
		}
	}
	return page, nil
}

func (b *Builder) resolve(s *string) string {
	return assets.FromPtr(s).Resolve(b.BaseURL)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
