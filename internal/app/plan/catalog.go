package plan

import (
	"github.com/samber/lo"

	"github.com/nuworldagency/SpeechScribe/internal/app/model"
)

// catalog is the fixed tier table. Plans are immutable; mutation happens
// only on UserSubscription records, never here.
var catalog = []model.Plan{
	{
		ID:            "starter",
		Name:          "Starter Project",
		Price:         39,
		Duration:      model.Duration72h,
		MaxAudioHours: 2,
		Features: []string{
			"Up to 2 hours of audio",
			"High-accuracy transcription (93%+)",
			"Basic speaker diarization",
			"Auto punctuation & casing",
			"Automatic language detection",
			"Basic text summary",
			"Download in TXT & DOC formats",
			"72-hour access to dashboard",
			"Email support",
		},
	},
	{
		ID:            "professional",
		Name:          "Professional Project",
		Price:         129,
		Duration:      model.Duration7d,
		MaxAudioHours: 10,
		Features: []string{
			"Up to 10 hours of audio",
			"Priority transcription queue",
			"Advanced speaker diarization",
			"Multichannel audio support",
			"Custom vocabulary & spelling",
			"Profanity filtering",
			"Filler word removal",
			"Advanced AI summary & analysis",
			"Entity detection",
			"Key phrases extraction",
			"Download in all formats (TXT, DOC, SRT, VTT)",
			"Timestamps & speaker labels",
			"Chapter markers",
			"Priority email & chat support",
			"7-day access to dashboard",
		},
	},
	{
		ID:            "business",
		Name:          "Business Project",
		Price:         349,
		Duration:      model.Duration30d,
		MaxAudioHours: 35,
		Features: []string{
			"Up to 35 hours of audio",
			"Highest priority transcription",
			"Real-time streaming transcription",
			"Advanced speaker diarization",
			"PII redaction",
			"Custom vocabulary & spelling",
			"Topic detection & classification",
			"Sentiment analysis",
			"Advanced entity detection",
			"End of utterance detection",
			"ITN/Formatting",
			"Custom export templates",
			"Team collaboration (up to 5 members)",
			"API access with documentation",
			"Bulk processing",
			"Advanced analytics dashboard",
			"24/7 Premium support",
			"30-day access to dashboard",
		},
	},
	{
		ID:            "enterprise",
		Name:          "Enterprise Solution",
		Price:         999,
		Duration:      model.Duration30d,
		MaxAudioHours: 120,
		Features: []string{
			"Up to 120 hours of audio",
			"Unlimited real-time streaming",
			"Dedicated transcription queue",
			"Advanced PII redaction",
			"Custom AI model fine-tuning",
			"Custom LLM prompts",
			"Advanced audio intelligence",
			"Multi-language support",
			"Enterprise-grade security",
			"Custom integration support",
			"Unlimited team members",
			"Dedicated account manager",
			"Custom feature development",
			"SLA guarantees",
			"Priority bug fixes",
			"Quarterly business reviews",
			"White-label options",
			"Custom retention policies",
		},
	},
}

// All returns a copy of the full catalog.
func All() []model.Plan {
	plans := make([]model.Plan, len(catalog))
	copy(plans, catalog)
	return plans
}

// Find returns the plan with the given id.
func Find(id string) (model.Plan, bool) {
	return lo.Find(catalog, func(p model.Plan) bool { return p.ID == id })
}
