package admin

import (
	"time"

	"pressroom/models"
)

// GetLegalSections returns all legal documents.
func (a *DefaultAdminService) GetLegalSections() []models.LegalSection {
	now := time.Now().UTC().Format(time.RFC3339)

	return []models.LegalSection{
		{
			ID:       "tos",
			Title:    "Terms of Service",
			Summary:  "These terms govern your use of the Pressroom platform.",
			Content:  generateTermsOfService(),
			Audience: models.AudienceAll,
			Version:  "v1.0",
			Updated:  now,
		},
		{
			ID:       "privacy",
			Title:    "Privacy Policy",
			Summary:  "How Pressroom collects and uses personal data.",
			Content:  generatePrivacyPolicy(),
			Audience: models.AudienceAll,
			Version:  "v1.0",
			Updated:  now,
		},
		{
			ID:       "editorial",
			Title:    "Editorial Standards & Sourcing Policy",
			Summary:  "Rules contributors must follow before an article can be published.",
			Content:  generateEditorialStandards(),
			Audience: models.AudienceAuthor,
			Version:  "v1.0",
			Updated:  now,
		},
		{
			ID:       "grievance",
			Title:    "Grievance & Takedown Policy",
			Summary:  "How defamation, misinformation and copyright complaints are handled.",
			Content:  generateGrievancePolicy(),
			Audience: models.AudienceAll,
			Version:  "v1.0",
			Updated:  now,
		},
	}
}

// GetLegalSectionsFor returns legal documents relevant to the audience.
func (a *DefaultAdminService) GetLegalSectionsFor(audience string) []models.LegalSection {
	all := a.GetLegalSections()
	var filtered []models.LegalSection

	for _, section := range all {
		if section.Audience == models.AudienceAll || section.Audience == audience {
			filtered = append(filtered, section)
		}
	}
	return filtered
}

func generateTermsOfService() string {
	return `Welcome to Pressroom. By accessing or using our platform, you agree to be bound by these Terms of Service...

1. Eligibility: You must be 16+ to use Pressroom.
2. Platform Use: Pressroom aggregates news and publishes citizen-contributed articles after editorial review.
3. Contributions: Contributors are responsible for the accuracy of submitted content.
4. Moderation: Articles may be rejected, unpublished or flagged at the editorial team's discretion.
5. Liability: Pressroom is a platform; contributed articles represent their authors.
6. Complaints: Legal grievances must be filed through the grievance desk.

Full details available on our website.`
}

func generatePrivacyPolicy() string {
	return `Pressroom values your privacy. We collect minimal personal data only as required to operate the platform...

1. Data We Collect: Name, email, verification documents (contributors only).
2. How We Use It: Account access, contributor verification, moderation.
3. Third Parties: Headline providers (aggregation), storage providers (document uploads).
4. Rights: You can request data deletion anytime.

See our full privacy terms online.`
}

func generateEditorialStandards() string {
	return `All Pressroom contributors agree to:

- Cite at least one verifiable source per article.
- Submit original reporting of at least minimum length; no reposts.
- Declare conflicts of interest.
- Accept editorial review before publication.

Repeated violations may result in loss of verified status.`
}

func generateGrievancePolicy() string {
	return `1. Grievances are acknowledged immediately on submission.
2. Defamation, hate speech and privacy complaints are handled at high priority.
3. Misinformation and copyright complaints are investigated against cited sources.
4. Content flagged by multiple readers is suspended pending review.
5. Outcomes and resolutions are recorded and available to the reporter.`
}
