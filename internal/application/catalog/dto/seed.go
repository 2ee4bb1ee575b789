package dto

// SeedDocument is the catalog seed file layout.
type SeedDocument struct {
	Categories            []SeedCategory             `yaml:"categories"`
	FAQs                  []SeedFAQ                  `yaml:"faqs"`
	NotificationTemplates []SeedNotificationTemplate `yaml:"notification_templates"`
}

type SeedCategory struct {
	Code         string        `yaml:"code"`
	Name         string        `yaml:"name"`
	AllowedScope string        `yaml:"allowed_scope"`
	DisplayOrder int           `yaml:"display_order"`
	Active       *bool         `yaml:"active"`
	Guidance     *SeedGuidance `yaml:"guidance"`
}

type SeedGuidance struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type SeedFAQ struct {
	Question     string `yaml:"question"`
	Answer       string `yaml:"answer"`
	DisplayOrder int    `yaml:"display_order"`
}

type SeedNotificationTemplate struct {
	EventKey string `yaml:"event_key"`
	Channel  string `yaml:"channel"`
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
}

type SeedResult struct {
	CategoriesCreated int `json:"categories_created"`
	CategoriesUpdated int `json:"categories_updated"`
	GuidanceUpserted  int `json:"guidance_upserted"`
	FAQsCreated       int `json:"faqs_created"`
	TemplatesUpserted int `json:"templates_upserted"`
}
