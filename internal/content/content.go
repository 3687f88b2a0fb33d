// Package content holds the static copy for the home and service pages.
// Tables are built on each call and never mutated after return.
package content

import (
	"errors"
	"fmt"

	"summitcare.com.au/web/internal/ui"
)

// ErrUnknownService is returned by ServiceBySlug for slugs outside the table.
var ErrUnknownService = errors.New("content: unknown service")

// Entry is a navigational content item: a service, location or page teaser.
type Entry struct {
	Title       string
	Description string
	Icon        ui.Icon
	Category    string
	Href        string
}

// Card maps the entry to its card presentation.
func (e Entry) Card() ui.Card {
	return ui.Card{
		Title:       e.Title,
		Description: e.Description,
		Icon:        e.Icon,
		Category:    e.Category,
		Href:        e.Href,
	}
}

// Cards maps entries to cards, keeping order.
func Cards(entries []Entry) []ui.Card {
	out := make([]ui.Card, len(entries))
	for i, e := range entries {
		out[i] = e.Card()
	}
	return out
}

// Service is one NDIS support type with its landing page copy.
type Service struct {
	Slug            string
	Code            string
	Name            string
	Summary         string
	Icon            ui.Icon
	MetaTitle       string
	MetaDescription string
	Hero            ui.HeroOptions
	Highlights      []ui.Feature
	Process         []ui.GridItem
	FAQs            []ui.AccordionItem
	CTA             ui.CTAOptions
}

// Path is the service landing page route.
func (s Service) Path() string { return "/" + s.Slug }

// Entry returns the service teaser used on the home page.
func (s Service) Entry() Entry {
	return Entry{
		Title:       s.Name,
		Description: s.Summary,
		Icon:        s.Icon,
		Category:    s.Code,
		Href:        s.Path(),
	}
}

var (
	enquire = ui.ActionLink{Label: "Enquire now", Href: "/contact/enquire", Icon: "lucide:message-circle"}
	call    = ui.ActionLink{Label: "Call 1300 786 648", Href: "tel:1300786648", Icon: "lucide:phone"}
)

// Services returns the service table in display order.
func Services() []Service {
	return []Service{
		{
			Slug:            "sil",
			Code:            "SIL",
			Name:            "Supported Independent Living",
			Summary:         "Help with daily tasks in a shared or individual home, so you can live as independently as possible.",
			Icon:            "lucide:home",
			MetaTitle:       "Supported Independent Living (SIL) | Summit Care",
			MetaDescription: "NDIS Supported Independent Living across Western Sydney. 24/7 support in shared and individual homes from Summit Care.",
			Hero: ui.HeroOptions{
				Eyebrow:     "Supported Independent Living",
				Title:       "A home that supports the life you want",
				Description: "Our SIL teams provide the right level of help, from a few hours a day to round-the-clock support.",
				Image:       "/assets/img/sil-hero.jpg",
				ImageAlt:    "Two housemates cooking together in a bright kitchen",
				Actions:     []ui.ActionLink{enquire, call},
			},
			Highlights: []ui.Feature{
				{Icon: "lucide:clock", Title: "24/7 support", Description: "Active overnight or sleepover support, matched to your plan."},
				{Icon: "lucide:users", Title: "Compatible housemates", Description: "We take time to match people who will enjoy living together."},
				{Icon: "lucide:target", Title: "Goal-focused", Description: "Daily routines built around the goals in your NDIS plan.", Variant: ui.VariantAccent},
			},
			Process: []ui.GridItem{
				{Icon: "lucide:phone-call", Title: "Talk to us", Description: "Tell us about your plan, goals and preferred suburbs."},
				{Icon: "lucide:house", Title: "Visit a home", Description: "Meet the team and potential housemates."},
				{Icon: "lucide:clipboard-check", Title: "Plan your supports", Description: "We prepare a roster of care with you and your supporters."},
				{Icon: "lucide:key-round", Title: "Move in", Description: "We help with the move and check in often in the first weeks.", Effect: ui.EffectBounce},
			},
			FAQs: []ui.AccordionItem{
				{Question: "Who is eligible for SIL?", Answer: "NDIS participants with SIL funding in their plan, usually people who need significant help every day."},
				{Question: "Does SIL include rent?", Answer: "No. SIL funds support. Rent and board are paid separately, and may be covered by SDA funding if eligible."},
			},
			CTA: ui.CTAOptions{
				Title:       "Looking for a SIL vacancy?",
				Description: "Our intake team can tell you about current vacancies across Western Sydney.",
				Primary:     enquire,
				Secondary:   call,
			},
		},
		{
			Slug:            "sda",
			Code:            "SDA",
			Name:            "Specialist Disability Accommodation",
			Summary:         "Purpose-built homes designed for people with extreme functional impairment or very high support needs.",
			Icon:            "lucide:building-2",
			MetaTitle:       "Specialist Disability Accommodation (SDA) | Summit Care",
			MetaDescription: "Find NDIS Specialist Disability Accommodation in NSW. Improved Liveability, Fully Accessible and High Physical Support homes.",
			Hero: ui.HeroOptions{
				Eyebrow:     "Specialist Disability Accommodation",
				Title:       "Homes designed around your needs",
				Description: "SDA homes combine accessible design and assistive technology with support from a team you trust.",
				Image:       "/assets/img/sda-hero.jpg",
				ImageAlt:    "Wide hallway and accessible bathroom in a modern SDA home",
				Actions:     []ui.ActionLink{enquire},
			},
			Highlights: []ui.Feature{
				{Icon: "lucide:accessibility", Title: "Fully accessible design", Description: "Step-free entries, wide doorways and accessible bathrooms."},
				{Icon: "lucide:cpu", Title: "Assistive technology", Description: "Automated doors, ceiling hoists and emergency call systems where needed."},
				{Icon: "lucide:badge-check", Title: "Certified homes", Description: "Every home is certified against the SDA Design Standard."},
			},
			Process: []ui.GridItem{
				{Icon: "lucide:file-search", Title: "Check eligibility", Description: "We help you understand your SDA determination."},
				{Icon: "lucide:map", Title: "Find a home", Description: "Browse available homes by design category and location."},
				{Icon: "lucide:key-round", Title: "Move in", Description: "We coordinate with your SIL provider and support coordinator."},
			},
			FAQs: []ui.AccordionItem{
				{Question: "What are the SDA design categories?", Answer: "Improved Liveability, Robust, Fully Accessible and High Physical Support."},
				{Question: "Can I choose a different SIL provider?", Answer: "Yes. SDA and SIL are separate, and you can choose who provides your support."},
			},
			CTA: ui.CTAOptions{
				Title:     "Ask about SDA vacancies",
				Primary:   enquire,
				Secondary: call,
			},
		},
		{
			Slug:            "sta",
			Code:            "STA",
			Name:            "Short Term Accommodation",
			Summary:         "Respite stays of up to 14 days at a time, giving you a break and your carers time to recharge.",
			Icon:            "lucide:sun",
			MetaTitle:       "Short Term Accommodation (STA) and Respite | Summit Care",
			MetaDescription: "NDIS Short Term Accommodation and respite in Western Sydney. Planned and emergency stays with 24/7 support.",
			Hero: ui.HeroOptions{
				Eyebrow:     "Short Term Accommodation",
				Title:       "A break that feels like a holiday",
				Description: "Planned or emergency respite in comfortable homes with activities and outings.",
				Image:       "/assets/img/sta-hero.jpg",
				ImageAlt:    "Guests relaxing in a garden",
				Actions:     []ui.ActionLink{enquire},
			},
			Highlights: []ui.Feature{
				{Icon: "lucide:calendar-days", Title: "Flexible bookings", Description: "Stays from one night up to 14 days."},
				{Icon: "lucide:party-popper", Title: "Activities included", Description: "Outings and activities chosen by guests.", HoverEffect: true},
				{Icon: "lucide:siren", Title: "Emergency respite", Description: "Short-notice stays when your usual supports are unavailable."},
			},
			Process: []ui.GridItem{
				{Icon: "lucide:phone-call", Title: "Book a stay", Description: "Call or email to check availability."},
				{Icon: "lucide:clipboard-list", Title: "Share your routines", Description: "We learn your preferences before you arrive."},
				{Icon: "lucide:smile", Title: "Enjoy your stay", Description: "Relax, join activities and recharge."},
			},
			FAQs: []ui.AccordionItem{
				{Question: "How is STA funded?", Answer: "STA is funded from the Core Supports budget in your NDIS plan."},
			},
			CTA: ui.CTAOptions{
				Title:   "Book a respite stay",
				Primary: enquire,
			},
		},
		{
			Slug:            "mta",
			Code:            "MTA",
			Name:            "Medium Term Accommodation",
			Summary:         "A place to stay for up to 90 days while your long-term home is being built or modified.",
			Icon:            "lucide:hourglass",
			MetaTitle:       "Medium Term Accommodation (MTA) | Summit Care",
			MetaDescription: "NDIS Medium Term Accommodation while you wait for your permanent home. Accessible, furnished homes in Western Sydney.",
			Hero: ui.HeroOptions{
				Eyebrow:     "Medium Term Accommodation",
				Title:       "Somewhere safe while you wait",
				Description: "Furnished, accessible homes for up to 90 days while your permanent housing is arranged.",
				Image:       "/assets/img/mta-hero.jpg",
				ImageAlt:    "Furnished bedroom in a medium term accommodation home",
				Actions:     []ui.ActionLink{enquire},
			},
			Highlights: []ui.Feature{
				{Icon: "lucide:sofa", Title: "Fully furnished", Description: "Move in with just your personal belongings."},
				{Icon: "lucide:hospital", Title: "Hospital discharge", Description: "A safe step between hospital and home."},
				{Icon: "lucide:handshake", Title: "Coordinated transition", Description: "We work with your support coordinator on the long-term plan."},
			},
			Process: []ui.GridItem{
				{Icon: "lucide:file-check", Title: "Confirm funding", Description: "MTA must be included in your NDIS plan."},
				{Icon: "lucide:truck", Title: "Move in", Description: "We help you settle quickly."},
				{Icon: "lucide:home", Title: "Move on", Description: "We support the transition to your permanent home."},
			},
			FAQs: []ui.AccordionItem{
				{Question: "How long can I stay in MTA?", Answer: "Usually up to 90 days, depending on your plan."},
			},
			CTA: ui.CTAOptions{
				Title:     "Need somewhere to stay?",
				Primary:   enquire,
				Secondary: call,
			},
		},
	}
}

// ServiceBySlug returns the service whose slug matches exactly.
func ServiceBySlug(slug string) (Service, error) {
	for _, s := range Services() {
		if s.Slug == slug {
			return s, nil
		}
	}
	return Service{}, fmt.Errorf("%w: %q", ErrUnknownService, slug)
}

// Home is the landing page copy.
type Home struct {
	Hero         ui.HeroOptions
	WhyChoose    ui.FeatureGroup
	SupportIcons []ui.Icon
	Stats        ui.GridOptions
	CTA          ui.CTAOptions
}

// HomePage returns the landing page content.
func HomePage() Home {
	return Home{
		Hero: ui.HeroOptions{
			Eyebrow:     "Registered NDIS provider",
			Title:       "Disability support that fits your life",
			Description: "Supported Independent Living, accommodation and respite across Western Sydney, delivered by people who know their communities.",
			Image:       "/assets/img/home-hero.jpg",
			ImageAlt:    "Support worker and participant laughing on a park bench",
			Actions:     []ui.ActionLink{enquire, {Label: "Explore SIL", Href: "/sil", Icon: "lucide:arrow-right"}},
		},
		WhyChoose: ui.FeatureGroup{
			Variant:    ui.VariantPrimary,
			Direction:  ui.DirectionRow,
			Background: true,
			Items: []ui.Feature{
				{Icon: "lucide:heart-handshake", Title: "Person-centred", Description: "Your goals and preferences shape every support.", HoverEffect: true},
				{Icon: "lucide:map-pin", Title: "Local teams", Description: "Support workers who live and work in your community.", HoverEffect: true},
				{Icon: "lucide:shield-check", Title: "Registered and audited", Description: "Audited against the NDIS Practice Standards.", Variant: ui.VariantAccent, HoverEffect: true},
			},
		},
		SupportIcons: []ui.Icon{"lucide:home", "lucide:building-2", "lucide:sun", "lucide:hourglass"},
		Stats: ui.GridOptions{
			Columns: 4,
			Variant: ui.VariantSecondary,
			Items: []ui.GridItem{
				{Icon: "lucide:house", Title: "30+ homes", Description: "Across Western Sydney"},
				{Icon: "lucide:users", Title: "200+ staff", Description: "Screened and trained"},
				{Icon: "lucide:clock", Title: "24/7", Description: "On-call support"},
				{Icon: "lucide:star", Title: "4.8 rating", Description: "From participants and families", Variant: ui.VariantAccent, Effect: ui.EffectGlow},
			},
		},
		CTA: ui.CTAOptions{
			Title:       "Talk to our intake team",
			Description: "Ask about vacancies, funding or how to get started.",
			Primary:     enquire,
			Secondary:   call,
		},
	}
}
