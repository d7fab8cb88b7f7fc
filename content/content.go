// Package content holds the static company data the assistant answers from.
// Everything here is fixed at compile time; the tool layer reads it, nothing
// writes it.
package content

import "strings"

type CompanyInfo struct {
	Name           string   `json:"name"`
	Tagline        string   `json:"tagline"`
	Founded        int      `json:"founded"`
	Location       string   `json:"location"`
	Specialties    []string `json:"specialties"`
	Contact        Contact  `json:"contact"`
	Certifications []string `json:"certifications"`
	UniqueValue    string   `json:"unique_value"`
}

type Contact struct {
	Email    string `json:"email"`
	EmailAlt string `json:"email_alt"`
	Phone    string `json:"phone"`
	PhoneAlt string `json:"phone_alt"`
	Website  string `json:"website"`
}

type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Project struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var company = CompanyInfo{
	Name:     "Winspiration Energy & Engineering Pvt. Ltd.",
	Tagline:  "Empowering Engineering Excellence",
	Founded:  2015,
	Location: "Thane (Mumbai), India",
	Specialties: []string{
		"Complex Piping Stress Analysis (Static/Dynamic)",
		"Offshore & Onshore Plant Design (FPSO, Refineries)",
		"Green Hydrogen & Bio-Refinery Projects",
		"Vibration Analysis & Troubleshooting",
		"Sustainable Engineering Solutions",
	},
	Contact: Contact{
		Email:    "info@ween.co.in",
		EmailAlt: "pravin@ween.co.in",
		Phone:    "+91 84079 79009",
		PhoneAlt: "+91 93561 16419",
		Website:  "https://ween.co.in",
	},
	Certifications: []string{
		"ISO 9001:2015 Certified",
	},
	UniqueValue: `We are an ISO 9001:2015 certified engineering company dedicated to "Empowering Engineering Excellence." Our approach combines technical innovation with a strong commitment to environmental sustainability and "Make in India" initiatives, ensuring cost-effective and ecologically viable solutions.`,
}

var services = []Service{
	{
		Name:        "Industrial Piping Engineering",
		Description: "Comprehensive piping solutions including plot plan development, equipment layout, and piping material specifications.",
	},
	{
		Name:        "Piping Stress Analysis",
		Description: "Static and dynamic stress analysis for critical systems like compressors, pumps, reactors, and steam turbines to ensure safety and reliability.",
	},
	{
		Name:        "Plant Layout Design & 3D Modeling",
		Description: "Advanced 3D modeling and design detailing for industrial plants, ensuring optimized layout and clash detection.",
	},
	{
		Name:        "Pipe Support Design",
		Description: "Specialized design and Finite Element Analysis (FEA) for pipe supports to maintain structural integrity under various loads.",
	},
	{
		Name:        "Project Management Services",
		Description: "End-to-end project conceptual engineering and management to deliver projects on time and within optimum costs.",
	},
}

var projects = []Project{
	{
		Name:        "Offshore FPSO Piping (North Sea)",
		URL:         "https://ween.co.in/project/offshore-north-sea-fpso-piping-glycol-dehy-package-for-shell-uk-Limited",
		Description: "Piping design for the Penguin field, Shetland, UK (Glycol Dehy package) for Shell UK Limited.",
		Industry:    "Oil & Gas / Offshore",
	},
	{
		Name:        "Flue-Gas Desulfurization (FGD)",
		URL:         "https://ween.co.in/project/flue-gas-desulfurization-fgd",
		Description: "Engineering solutions for emission control systems at Singareni, India.",
		Industry:    "Environmental / Power",
	},
	{
		Name:        "Waste Heat Recovery",
		URL:         "https://ween.co.in/project/waste-heat-recovery-in-piping-stress",
		Description: "Piping stress analysis for waste heat recovery systems in Basrah.",
		Industry:    "Power / Energy",
	},
	{
		Name:        "GBARAN Single Well HPHT Skid",
		URL:         "https://ween.co.in/project/gbaran-single-well-hpht-skid",
		Description: "Specialized high-pressure high-temperature skid design for a project in Yenagoa, Nigeria.",
		Industry:    "Oil & Gas",
	},
	{
		Name:        "Catalytic Dewaxing Units (CDWU & PPU)",
		URL:         "https://ween.co.in/project/catalytic-dewaxing-units-cdwu-and-ppu-for-iocl",
		Description: "Project execution for Indian Oil Corporation Limited (IOCL) in India.",
		Industry:    "Petrochemical",
	},
}

var industries = []string{
	"Oil & Gas",
	"Offshore Platforms",
	"Petrochemicals",
	"Power Plants",
	"Pharmaceutical",
	"Environmental Plants",
}

func Company() CompanyInfo {
	return company
}

func Services() []Service {
	return services
}

func Projects() []Project {
	return projects
}

func Industries() []string {
	return industries
}

func FAQs() []FAQ {
	return []FAQ{
		{
			Question: "What industries do you serve?",
			Answer:   "We serve a wide range of industries including " + strings.Join(industries, ", ") + ". We have extensive experience with projects worldwide.",
		},
		{
			Question: "Do you handle international projects?",
			Answer:   "Yes, we have extensive experience with projects in the UK, USA, UAE, Nigeria, Vietnam, and other regions worldwide.",
		},
		{
			Question: "Are you ISO certified?",
			Answer:   "Yes, Winspiration is ISO 9001:2015 certified, ensuring high standards in quality management.",
		},
		{
			Question: "What is your approach to sustainability?",
			Answer:   `We are strongly committed to environmental sustainability and "Make in India" initiatives, ensuring cost-effective and ecologically viable engineering solutions.`,
		},
	}
}
