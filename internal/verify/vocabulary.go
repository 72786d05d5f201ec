package verify

// Vocabulary is an immutable named term set used for keyword-density scoring.
// Terms are stored in normalized form; a single shared value per document
// kind keeps the gating path and the ATS diagnostic path from drifting apart.
type Vocabulary struct {
	Name  string
	Terms []string
}

func (v Vocabulary) Size() int { return len(v.Terms) }

// Caller-side gate thresholds (the verifier itself only scores).
const (
	ResumeKeywordThreshold      = 40
	CertificateKeywordThreshold = 25
)

// ResumeVocabulary holds professional/CV terms expected in a genuine resume.
var ResumeVocabulary = Vocabulary{
	Name: "resume",
	Terms: []string{
		"experience", "experienced", "education", "skills", "skilled",
		"objective", "summary", "profile", "project", "projects",
		"certification", "certified", "achievement", "achievements", "award",
		"awards", "internship", "bachelor", "master", "degree",
		"diploma", "university", "college", "school", "leadership",
		"management", "communication", "teamwork", "analytical", "motivated",
		"responsible", "responsibilities", "developed", "implemented", "designed",
		"managed", "created", "organized", "coordinated", "improved",
		"achieved", "trained", "supervised", "collaborated", "delivered",
		"maintained", "resume", "curriculum vitae", "career", "professional",
		"employment", "proficient", "proficiency", "expertise", "knowledge",
		"languages", "references", "volunteer", "workshop", "seminar",
		"training", "course", "gpa", "honors", "thesis",
		"research", "publication", "portfolio", "technical", "software",
		"programming", "database", "marketing", "sales", "finance",
		"accounting", "engineering", "analysis", "strategy", "planning",
		"budget", "client", "customer", "stakeholder", "presentation",
		"negotiation", "problem solving", "detail oriented", "team player", "self motivated",
		"results driven", "task oriented", "adaptable", "initiative", "mentored",
		"streamlined", "optimized", "launched", "executed", "administered",
		"facilitated", "recruited", "forecasting", "reporting", "scheduling",
	},
}

// CertificateVocabulary holds terms expected in a company registration or
// incorporation certificate.
var CertificateVocabulary = Vocabulary{
	Name: "certificate",
	Terms: []string{
		"certificate", "certified", "certify", "registration", "registered",
		"registrar", "incorporation", "incorporated", "company", "limited",
		"private limited", "proprietor", "proprietorship", "partnership", "license",
		"ministry", "government", "authority", "authorized", "seal",
		"signature", "director", "enterprise", "establishment", "commerce",
		"trade", "business", "gst", "tax", "pan",
		"msme", "udyam", "memorandum", "articles of association", "shareholder",
		"capital", "compliance", "jurisdiction", "stamp", "official",
		"act", "section", "hereby", "issued", "valid",
	},
}
