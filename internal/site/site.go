// Package site holds the content and presentation settings of the agency
// landing page: navigation, hero copy, feature cards and SEO metadata.
package site

// NavLink is one entry of the site navigation. Href is either an absolute
// path ("/work") or an in-page anchor ("#contact").
type NavLink struct {
	Name string `yaml:"name" json:"name" mapstructure:"name"`
	Href string `yaml:"href" json:"href" mapstructure:"href"`
}

// CTAButton describes the call-to-action button shown in the header.
type CTAButton struct {
	Text string `yaml:"text" json:"text" mapstructure:"text"`
	Href string `yaml:"href" json:"href" mapstructure:"href"`
}

// Hero is the first section of the landing page.
type Hero struct {
	Headline string `yaml:"headline" json:"headline" mapstructure:"headline"`
	Subtitle string `yaml:"subtitle" json:"subtitle" mapstructure:"subtitle"`
	VideoSrc string `yaml:"videoSrc" json:"videoSrc" mapstructure:"videoSrc"`
	CTAText  string `yaml:"ctaText" json:"ctaText" mapstructure:"ctaText"`
}

// FeatureItem is a single service card. Number is a display label such as
// "01" and is not meant to be parsed.
type FeatureItem struct {
	Number      string `yaml:"number" json:"number" mapstructure:"number"`
	Title       string `yaml:"title" json:"title" mapstructure:"title"`
	Description string `yaml:"description" json:"description" mapstructure:"description"`
	MediaSrc    string `yaml:"mediaSrc" json:"mediaSrc" mapstructure:"mediaSrc"`
}

// Features is the horizontally scrolling services section.
type Features struct {
	Title    string        `yaml:"title" json:"title" mapstructure:"title"`
	Subtitle string        `yaml:"subtitle" json:"subtitle" mapstructure:"subtitle"`
	Items    []FeatureItem `yaml:"items" json:"items" mapstructure:"items"`
}

// Meta carries the SEO tags of the page head. Keywords is a comma separated
// list kept as written.
type Meta struct {
	Title       string `yaml:"title" json:"title" mapstructure:"title"`
	Description string `yaml:"description" json:"description" mapstructure:"description"`
	Keywords    string `yaml:"keywords" json:"keywords" mapstructure:"keywords"`
}

// Configuration is the complete site content record. Every field is required.
type Configuration struct {
	SiteName  string    `yaml:"siteName" json:"siteName" mapstructure:"siteName"`
	NavLinks  []NavLink `yaml:"navLinks" json:"navLinks" mapstructure:"navLinks"`
	CTAButton CTAButton `yaml:"ctaButton" json:"ctaButton" mapstructure:"ctaButton"`
	Hero      Hero      `yaml:"hero" json:"hero" mapstructure:"hero"`
	Features  Features  `yaml:"features" json:"features" mapstructure:"features"`
	Meta      Meta      `yaml:"meta" json:"meta" mapstructure:"meta"`
}

var siteConfig = Configuration{
	SiteName: "NEXT_GEN_AGENCY",

	NavLinks: []NavLink{
		{Name: "Work", Href: "/work"},
		{Name: "Services", Href: "#services"},
		{Name: "About", Href: "#work"},
		{Name: "Contact", Href: "#contact"},
	},

	CTAButton: CTAButton{
		Text: "Get Started",
		Href: "#contact",
	},

	Hero: Hero{
		Headline: "Crafting Digital Reality",
		Subtitle: "We transform ideas into exceptional digital experiences that drive growth and innovation.",
		VideoSrc: "/videos/hero-main-loop.mp4",
		CTAText:  "Explore Our Work",
	},

	Features: Features{
		Title:    "What We Offer",
		Subtitle: "Comprehensive solutions tailored to your business needs",
		Items: []FeatureItem{
			{
				Number:      "01",
				Title:       "Brand Identity",
				Description: "Crafting distinctive visual identities that communicate your brand's essence and resonate with your audience. We design systems that are timeless yet forward-thinking.",
				MediaSrc:    "/videos/card-architecture-holo.mp4",
			},
			{
				Number:      "02",
				Title:       "Web Development",
				Description: "Building modern, scalable web applications with cutting-edge technologies. From concept to deployment, we deliver high-performance digital experiences that exceed expectations.",
				MediaSrc:    "/videos/card-software-flow.mp4",
			},
			{
				Number:      "03",
				Title:       "Digital Strategy",
				Description: "Data-driven insights and strategic planning to elevate your digital presence. We transform complex challenges into clear, actionable roadmaps that maximize ROI.",
				MediaSrc:    "/videos/card-engineering-mech.mp4",
			},
		},
	},

	Meta: Meta{
		Title:       "NEXT_GEN_AGENCY - Premium Digital Solutions",
		Description: "Transform your digital presence with cutting-edge solutions and exceptional design.",
		Keywords:    "web development, design, digital agency, branding",
	},
}

// Config returns the site configuration. Each call returns an independent
// copy, so callers may not alter what later callers see.
func Config() Configuration {
	c := siteConfig
	c.NavLinks = append([]NavLink(nil), siteConfig.NavLinks...)
	c.Features.Items = append([]FeatureItem(nil), siteConfig.Features.Items...)
	return c
}
