package fields

import "regexp"

// Contact and entity patterns.
var (
	emailRE       = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	phoneTextRE   = regexp.MustCompile(`\+?[\d\s\-\(\)\.]{7,}`)
	phoneContext  = regexp.MustCompile(`(?i)(?:phone|mobile|cell|tel|contact)[\s:]*([+\d\s\-\(\)\.]{7,})`)
	profileURLRE  = regexp.MustCompile(`(?i)(https?://)?(www\.)?(linkedin\.com/in/[^\s]+|github\.com/[^\s]+)`)
	yearRE        = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)
	nameBlacklist = regexp.MustCompile(`(?i)\b(resume|cv|curriculum vitae|profile|contact|email|phone|address)\b`)
	nameLabelRE   = regexp.MustCompile(`(?i)(?:name|full name)[\s:]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})`)
	nonWordRE     = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// Education and experience vocabulary.
var (
	degreeRE     = regexp.MustCompile(`(?i)\b(B\.?(?:A|S|Tech|E|Sc|Com|BA|BS|BE)?|Bachelor(?:'?s)?|M\.?(?:A|S|Tech|E|Sc|BA|MBA|MS|ME)?|Master(?:'?s)?|PhD|Ph\.?D\.?|Doctor(?:ate)?|Associate|Diploma|Certificate|BSc|MSc|BEng|MEng|LLB|LLM|MD|JD)\b`)
	universityRE = regexp.MustCompile(`(?i)\b(University|College|Institute|School|Academy|IIT|IIIT|NIT|MIT|Stanford|Harvard|Berkeley|UCLA|USC|NYU|Columbia|Yale|Princeton|Cornell|Carnegie|Mellon|Georgia Tech|Caltech|Northwestern|Duke|Vanderbilt|Rice|Emory)\b`)
	gpaRE        = regexp.MustCompile(`(?i)(?:gpa|cgpa)[\s:]*(\d+\.?\d*(?:/\d+\.?\d*)?)`)
	honorsRE     = regexp.MustCompile(`(?i)\b(summa cum laude|magna cum laude|cum laude|with honors|distinction|first class|dean'?s list)\b`)
	jobTitleRE   = regexp.MustCompile(`(?i)\b(Engineer|Developer|Programmer|Analyst|Manager|Director|Lead|Senior|Junior|Intern|Consultant|Architect|Designer|Specialist|Coordinator|Administrator|Executive|Officer|Associate|Assistant|Technician|Supervisor|Team Lead)\b`)
	companyRE    = regexp.MustCompile(`(?i)\b(Inc\.?|LLC|Corp\.?|Corporation|Company|Co\.?|Ltd\.?|Limited|Technologies|Tech|Solutions|Systems|Services|Group|Consulting|Software|Digital|Labs?|Studio|Agency)\b`)
	dateTokenRE  = regexp.MustCompile(`(?i)\b(\d{4}|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4})\b`)
	entrySplitRE = regexp.MustCompile(`[|\-–]`)

	durationREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\s*[-–]\s*(?:Present|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}))`),
		regexp.MustCompile(`(?i)(\d{4}\s*[-–]\s*(?:Present|\d{4}))`),
		regexp.MustCompile(`(?i)(\d{1,2}/\d{4}\s*[-–]\s*(?:Present|\d{1,2}/\d{4}))`),
	}
)

// Section headings. Every alternative is anchored at the start of the line.
var (
	educationStart = regexp.MustCompile(`(?i)^\s*education\b`)
	educationStop  = regexp.MustCompile(`(?i)^\s*(experience|work|skills|projects|certifications)\b`)

	experienceStart = regexp.MustCompile(`(?i)^\s*(experience|work experience|employment|professional experience)\b`)
	experienceStop  = regexp.MustCompile(`(?i)^\s*(education|skills|projects|certifications)\b`)

	skillsHeading = regexp.MustCompile(`(?i)^\s*(?:(?:technical\s+)?skills?|technologies|tech\s*stack|tools?|programming|software|platforms|frameworks|languages)\b`)
	skillsStop    = regexp.MustCompile(`(?i)^\s*(experience|work|education|projects?|summary|certifications?|achievements?|awards?)\b`)

	projectsHeading       = regexp.MustCompile(`(?i)^\s*projects?\b`)
	certificationsHeading = regexp.MustCompile(`(?i)^\s*(?:certifications?|licenses?)\b`)
	languagesHeading      = regexp.MustCompile(`(?i)^\s*languages?\b`)
	awardsHeading         = regexp.MustCompile(`(?i)^\s*(?:awards?|achievements?|honors?)\b`)
	additionalStop        = regexp.MustCompile(`(?i)^\s*(?:experience|education|skills|references?)\b`)
)

// Skill filters.
var (
	skillDelimiters = regexp.MustCompile(`[\x{2022}•·|/;,\n\t]`)
	leadingNumber   = regexp.MustCompile(`^\d+[\.\)]\s*`)
	spaceRuns       = regexp.MustCompile(`\s+`)
	alnumRE         = regexp.MustCompile(`[A-Za-z0-9]`)
	descriptionVerb = regexp.MustCompile(`(?i)\b(implemented|developed|created|designed|built|used|worked|experience|project|detection|filtering|sorting|classification|parsing|recommendations|lookups|listings|fatigue)\b`)
	nonTechnical    = regexp.MustCompile(`(?i)\b(experience|education|university|college|company|project|team|role|position)\b`)
	nonSkill        = regexp.MustCompile(`(?i)\b(experience|years?|months?|team|project|company|university|college|degree|bachelor|master|phd|work|job|role|position|responsibilities|duties|tasks|achievements?|awards?|certifications?|summary|profile|objective|references?|available|upon|request|implemented|developed|created|designed|built|used|worked|detection|filtering|sorting|classification|parsing|recommendations|lookups|listings|fatigue|good|average|based|personalized|genre|score|category|top|character|manga|search|api|jikan)\b`)
	skillPunct      = regexp.MustCompile(`[.,(){}\[\]]`)
	bulletPrefix    = regexp.MustCompile(`^[•\-\*◦]\s*`)

	techKeywords = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:Python|Java|JavaScript|TypeScript|C\+\+|C#|PHP|Ruby|Go|Rust|Swift|Kotlin|Scala|C)\b`),
		regexp.MustCompile(`(?i)\b(?:React|Angular|Vue|Node\.js|Express|Django|Flask|Spring|Laravel|Rails)\b`),
		regexp.MustCompile(`(?i)\b(?:MySQL|PostgreSQL|MongoDB|Redis|SQLite|Oracle)\b`),
		regexp.MustCompile(`(?i)\b(?:AWS|Azure|GCP|Docker|Kubernetes|Git|GitHub)\b`),
		regexp.MustCompile(`(?i)\b(?:HTML|CSS|Bootstrap|jQuery|REST|API)\b`),
		regexp.MustCompile(`(?i)\b(?:Linux|Windows|Ubuntu|Nginx|Apache)\b`),
	}
)
